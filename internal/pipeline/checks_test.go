package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/wordcleaner/internal/dictionary"
	"github.com/at-ishikawa/wordcleaner/internal/language"
	mock_dictionary "github.com/at-ishikawa/wordcleaner/internal/mocks/dictionary"
	"github.com/at-ishikawa/wordcleaner/internal/wordformat"
)

func TestFormatCheck(t *testing.T) {
	validator := wordformat.NewValidator(5, 5)

	tests := []struct {
		name    string
		line    string
		alpha   language.Alphabet
		options FormatCheckOptions
		want    Outcome
	}{
		{
			name:  "valid word",
			line:  " apple ",
			alpha: language.NormalAlphabet(),
			want:  Outcome{Accepted: true, Word: "APPLE"},
		},
		{
			name:  "roman numeral",
			line:  "mmxiv",
			alpha: language.NormalAlphabet(),
			want:  Outcome{Word: "MMXIV"},
		},
		{
			name:  "accent outside the alphabet",
			line:  "crème",
			alpha: language.NormalAlphabet(),
			want:  Outcome{Word: "CRÈME"},
		},
		{
			name:    "folded accent",
			line:    "crème",
			alpha:   language.NormalAlphabet(),
			options: FormatCheckOptions{FoldDiacritics: true},
			want:    Outcome{Accepted: true, Word: "CREME"},
		},
		{
			name:  "special character of the language",
			line:  "crème",
			alpha: language.French.Alphabet(),
			want:  Outcome{Accepted: true, Word: "CRÈME"},
		},
		{
			name:    "vowel heavy word",
			line:    "aioli",
			alpha:   language.NormalAlphabet(),
			options: FormatCheckOptions{RejectVowelHeavy: true},
			want:    Outcome{Word: "AIOLI"},
		},
		{
			name:  "vowel heavy word is kept by default",
			line:  "aioli",
			alpha: language.NormalAlphabet(),
			want:  Outcome{Accepted: true, Word: "AIOLI"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatCheck(validator, tt.alpha, tt.options)(context.Background(), tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDictionaryCheck(t *testing.T) {
	errNetwork := errors.New("connection refused")

	tests := []struct {
		name    string
		result  dictionary.Result
		want    Outcome
		wantErr error
	}{
		{
			name:   "found word is uppercased",
			result: dictionary.Found("Hause", "Gebäude zum Wohnen"),
			want:   Outcome{Accepted: true, Word: "HAUSE", Definition: "Gebäude zum Wohnen"},
		},
		{
			name:   "unknown word",
			result: dictionary.NotFound("xyzzy"),
			want:   Outcome{Word: "XYZZY"},
		},
		{
			name:    "failed lookup",
			result:  dictionary.Failed("haus", errNetwork),
			wantErr: errNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			provider := mock_dictionary.NewMockProvider(ctrl)
			provider.EXPECT().Language().Return(language.German).AnyTimes()
			provider.EXPECT().ValidateWord(gomock.Any(), "haus").Return(tt.result)

			got, err := DictionaryCheck(provider)(context.Background(), "haus")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
