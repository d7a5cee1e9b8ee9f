package typewriter

import "strings"

// ParsePhrases splits a comma-separated phrase source into an ordered list.
// Surrounding whitespace is trimmed and blank entries are dropped.
func ParsePhrases(raw string) []string {
	parts := strings.Split(raw, ",")
	phrases := make([]string, 0, len(parts))
	for _, part := range parts {
		phrase := strings.TrimSpace(part)
		if phrase == "" {
			continue
		}
		phrases = append(phrases, phrase)
	}
	return phrases
}
