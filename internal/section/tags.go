package section

import "strings"

// TagPrefix introduces the inline tag list at the end of a bullet.
const TagPrefix = "#tags:"

// ParseTags returns the tags listed after the last "#tags:" in text,
// trimmed and in written order. Empty entries are dropped.
func ParseTags(text string) []string {
	idx := strings.LastIndex(text, TagPrefix)
	if idx < 0 {
		return []string{}
	}
	rest := text[idx+len(TagPrefix):]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}

	tags := []string{}
	for _, tag := range strings.Split(rest, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// FormatWithTags appends " #tags: a,b" to text. Tags are written as given,
// without sorting or de-duplication.
func FormatWithTags(text string, tags []string) string {
	if len(tags) == 0 {
		return text
	}
	return text + " " + TagPrefix + " " + strings.Join(tags, ",")
}

// FilterByTags keeps the bullets carrying at least one of tags, compared
// case-insensitively, in their original order. With no tags the input
// slice itself is returned.
func FilterByTags(bullets, tags []string) []string {
	if len(tags) == 0 {
		return bullets
	}

	want := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		want[strings.ToLower(tag)] = struct{}{}
	}

	filtered := []string{}
	for _, bullet := range bullets {
		for _, tag := range ParseTags(bullet) {
			if _, ok := want[strings.ToLower(tag)]; ok {
				filtered = append(filtered, bullet)
				break
			}
		}
	}
	return filtered
}

// ParseTagList splits a user supplied "a, b,,c" list into its non-empty,
// trimmed entries. A blank list yields nil.
func ParseTagList(raw string) []string {
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
