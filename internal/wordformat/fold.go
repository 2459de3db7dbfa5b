package wordformat

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Letters NFD leaves untouched.
var ligatureReplacer = strings.NewReplacer(
	"ø", "o",
	"Ø", "O",
	"æ", "ae",
	"Æ", "Ae",
	"ß", "ss",
)

// FoldDiacritics strips accents and expands the few letters that have no decomposition,
// so "Crème" becomes "Creme" and "Straße" becomes "Strasse".
func FoldDiacritics(input string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(t, input)
	if err != nil {
		folded = input
	}
	return ligatureReplacer.Replace(folded)
}

var vowels = map[rune]struct{}{
	'a': {}, 'e': {}, 'i': {}, 'o': {}, 'u': {},
	'A': {}, 'E': {}, 'I': {}, 'O': {}, 'U': {},
}

// HasTooManyVowels reports whether vowels make up more than half of the word.
func HasTooManyVowels(word string) bool {
	length := utf8.RuneCountInString(word)
	if length == 0 {
		return false
	}

	count := 0
	for _, r := range word {
		if _, ok := vowels[r]; ok {
			count++
		}
	}
	return count*2 > length
}
