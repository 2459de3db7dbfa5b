package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordcleaner/internal/config"
	"github.com/at-ishikawa/wordcleaner/internal/language"
)

// useConfigFile points the commands to path for the duration of the test.
func useConfigFile(t *testing.T, path string) {
	t.Helper()
	oldConfigFile := configFile
	configFile = path
	t.Cleanup(func() { configFile = oldConfigFile })
}

func TestParseLanguages(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []language.Code
		wantErr error
	}{
		{
			name: "all languages by default",
			args: nil,
			want: []language.Code{language.Dutch, language.German, language.English, language.French},
		},
		{
			name: "given languages in order",
			args: []string{"FR", "nl"},
			want: []language.Code{language.French, language.Dutch},
		},
		{
			name:    "unsupported language",
			args:    []string{"nl", "es"},
			wantErr: language.ErrUnsupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLanguages(tt.args)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolvePath(t *testing.T) {
	cfg := config.WordListsConfig{Directory: "/lists"}
	assert.Equal(t, "/lists/de/de-words-clean.txt", resolvePath(cfg, "{LANGUAGE}/{LANGUAGE}-words-clean.txt", language.German, ""))
	assert.Equal(t, "custom.txt", resolvePath(cfg, "{LANGUAGE}/{LANGUAGE}-words-clean.txt", language.German, "custom.txt"))
}
