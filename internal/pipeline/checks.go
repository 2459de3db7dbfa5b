package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/at-ishikawa/wordcleaner/internal/dictionary"
	"github.com/at-ishikawa/wordcleaner/internal/language"
	"github.com/at-ishikawa/wordcleaner/internal/wordformat"
)

type FormatCheckOptions struct {
	// FoldDiacritics folds accents and ligatures before validating, e.g. "Crème" is checked as "CREME".
	FoldDiacritics bool
	// RejectVowelHeavy rejects words where vowels are the majority of letters.
	RejectVowelHeavy bool
}

// FormatCheck accepts the lines passing validator against allowed. It never fails.
func FormatCheck(validator *wordformat.Validator, allowed language.Alphabet, options FormatCheckOptions) CheckFunc {
	return func(_ context.Context, line string) (Outcome, error) {
		if options.FoldDiacritics {
			line = wordformat.FoldDiacritics(line)
		}
		result := validator.ValidateFormat(line, allowed)
		if result.Valid && options.RejectVowelHeavy && wordformat.HasTooManyVowels(result.Word) {
			return Outcome{Word: result.Word}, nil
		}
		return Outcome{Accepted: result.Valid, Word: result.Word}, nil
	}
}

// DictionaryCheck accepts the lines provider knows. A failed lookup is returned as an error so it is retried.
func DictionaryCheck(provider dictionary.Provider) CheckFunc {
	return func(ctx context.Context, line string) (Outcome, error) {
		result := dictionary.Safe(ctx, provider, line)
		if result.Err != nil {
			return Outcome{}, fmt.Errorf("%s dictionary > %w", provider.Language(), result.Err)
		}
		return Outcome{
			Accepted:   result.Valid,
			Word:       strings.ToUpper(result.Word),
			Definition: result.Definition,
		}, nil
	}
}
