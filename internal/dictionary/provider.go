package dictionary

import (
	"context"
	"errors"
	"fmt"

	"github.com/at-ishikawa/wordcleaner/internal/language"
)

//go:generate mockgen -source=provider.go -destination=../mocks/dictionary/mock_provider.go -package=mock_dictionary

const DefaultMaxDefinitionWords = 16

// ErrNotFound marks a definitive "the dictionary has no entry" answer.
// Providers use it internally and turn it into an invalid Result without Err.
var ErrNotFound = errors.New("word not found")

// Result is the answer of a dictionary for one word.
// Err is set only when the lookup could not be completed, e.g. a network error or
// a 5xx response, and the caller may try again. A word the dictionary does not know
// is Valid=false with a nil Err.
type Result struct {
	Valid      bool
	Word       string
	Definition string
	Err        error
}

// Found builds a valid result.
func Found(word, definition string) Result {
	return Result{Valid: true, Word: word, Definition: definition}
}

// NotFound builds an invalid result for a word the dictionary does not know.
func NotFound(word string) Result {
	return Result{Word: word}
}

// Failed builds an invalid result for a lookup that could not be completed.
func Failed(word string, err error) Result {
	return Result{Word: word, Err: err}
}

// FromError turns an internal lookup error into a Result.
func FromError(word string, err error) Result {
	if errors.Is(err, ErrNotFound) {
		return NotFound(word)
	}
	return Failed(word, err)
}

// Provider validates single words against one external dictionary.
// ValidateWord never returns an error; failures are reported through Result.
type Provider interface {
	Language() language.Code
	ValidateWord(ctx context.Context, word string) Result
}

// Safe calls provider.ValidateWord and turns a panic into a failed Result.
func Safe(ctx context.Context, provider Provider, word string) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Failed(word, fmt.Errorf("%s provider panicked: %v", provider.Language(), r))
		}
	}()
	return provider.ValidateWord(ctx, word)
}
