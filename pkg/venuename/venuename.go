package venuename

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Format converts a venue identifier slug into a display name
// ("revolver-upstairs" -> "Revolver Upstairs"). Already-readable
// names pass through with only capitalization applied.
func Format(venueID string) string {
	if venueID == "" {
		return ""
	}

	normalized := strings.NewReplacer("-", " ", "_", " ").Replace(venueID)

	words := strings.Fields(normalized)
	for i, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(r)) + word[size:]
	}
	return strings.Join(words, " ")
}
