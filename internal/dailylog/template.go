package dailylog

import (
	"strings"
	"time"
)

const (
	// DateLayout is the date format used in file names and frontmatter.
	DateLayout = "2006-01-02"
	// FileSuffix follows the date in every daily log file name.
	FileSuffix = "-daily.md"
)

// FileName returns the file name of the log for date. Time of day is ignored.
func FileName(date time.Time) string {
	return date.Format(DateLayout) + FileSuffix
}

// ParseFileName recovers the date from a daily log file name.
func ParseFileName(name string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSuffix(name, FileSuffix), time.Local)
}

// Template returns the content of a freshly created log for date.
func Template(date time.Time) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("type: daily\n")
	b.WriteString("date: " + date.Format(DateLayout) + "\n")
	b.WriteString("---\n")
	for _, s := range Sections {
		b.WriteString("\n")
		b.WriteString(s.Title + "\n")
	}
	return b.String()
}

// ParseDate reads a YYYY-MM-DD date in the local time zone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.Local)
}
