package dictionary

import "strings"

// TruncateWords collapses whitespace in text and keeps only its first maxWords words,
// appending "..." when anything was cut off. maxWords <= 0 keeps every word.
func TruncateWords(text string, maxWords int) string {
	words := strings.Fields(text)
	if maxWords <= 0 || len(words) <= maxWords {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:maxWords], " ") + "..."
}
