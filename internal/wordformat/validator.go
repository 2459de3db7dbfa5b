// Package wordformat decides whether a single word is structurally acceptable
// for a word list, without any external lookup.
package wordformat

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/at-ishikawa/wordcleaner/internal/language"
)

const (
	DefaultMinLength = 5
	DefaultMaxLength = 5
)

// Classic roman numerals up to 3999. Every group is optional, so the empty string matches too.
var romanNumeralPattern = regexp.MustCompile(`(?i)^M{0,3}(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})$`)

// Result is the verdict for one word. Word is always the normalized form.
type Result struct {
	Word  string
	Valid bool
}

type Validator struct {
	MinLength int
	MaxLength int
}

func NewValidator(minLength, maxLength int) *Validator {
	return &Validator{
		MinLength: minLength,
		MaxLength: maxLength,
	}
}

// ValidateFormat trims and uppercases rawWord and then rejects it when its length is out of
// range, it contains a rune outside allowed, it is a roman numeral or all of its runes are equal.
func (v *Validator) ValidateFormat(rawWord string, allowed language.Alphabet) Result {
	word := Normalize(rawWord)

	length := utf8.RuneCountInString(word)
	if length < v.MinLength || length > v.MaxLength {
		return invalid(word)
	}

	for _, r := range word {
		if !allowed.Contains(r) {
			return invalid(word)
		}
	}

	if IsRomanNumeral(word) {
		return invalid(word)
	}

	if AllSameChars(word) {
		return invalid(word)
	}

	return Result{Word: word, Valid: true}
}

func invalid(word string) Result {
	return Result{Word: word, Valid: false}
}

// Normalize trims surrounding whitespace and uppercases the word.
func Normalize(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}

// IsRomanNumeral reports whether the whole word is a roman numeral, ignoring case.
func IsRomanNumeral(word string) bool {
	return romanNumeralPattern.MatchString(word)
}

// AllSameChars reports whether every rune of a non-empty word is the same.
func AllSameChars(word string) bool {
	if word == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(word)
	for _, r := range word {
		if r != first {
			return false
		}
	}
	return true
}
