package dailylog

import "github.com/starford/daily/internal/apperr"

// Section keys accepted by the service.
const (
	KeyDid     = "did"
	KeyPlan    = "plan"
	KeyBlock   = "block"
	KeyMeeting = "meeting"
	KeyNotes   = "notes"
)

// Canonical describes one of the five fixed sections of a daily log.
type Canonical struct {
	Key   string // did, plan, ...
	Title string // header line, e.g. "## ✅ Done"
	Label string // human name used in confirmations, e.g. "Done"
}

// Sections lists the canonical sections in document order.
var Sections = []Canonical{
	{Key: KeyDid, Title: "## ✅ Done", Label: "Done"},
	{Key: KeyPlan, Title: "## ▶️ To Do", Label: "To Do"},
	{Key: KeyBlock, Title: "## 🚧 Blockers", Label: "Blockers"},
	{Key: KeyMeeting, Title: "## 🗓 Meetings", Label: "Meetings"},
	{Key: KeyNotes, Title: "## 🧠 Quick Notes", Label: "Quick Notes"},
}

// cheatOrder is the order sections surface in a cheat sheet. It differs
// from the document order on purpose: meetings come right after Done.
var cheatOrder = []struct {
	title string
	key   string
}{
	{"DONE", KeyDid},
	{"MEETINGS", KeyMeeting},
	{"TO DO", KeyPlan},
	{"BLOCKERS", KeyBlock},
	{"QUICK NOTES", KeyNotes},
}

// Keys returns the valid section keys in document order.
func Keys() []string {
	keys := make([]string, len(Sections))
	for i, s := range Sections {
		keys[i] = s.Key
	}
	return keys
}

// Lookup returns the canonical section for key, or a *apperr.SectionError.
func Lookup(key string) (Canonical, error) {
	for _, s := range Sections {
		if s.Key == key {
			return s, nil
		}
	}
	return Canonical{}, &apperr.SectionError{Key: key, Valid: Keys()}
}
