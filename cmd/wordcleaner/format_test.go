package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordcleaner/internal/language"
	"github.com/at-ishikawa/wordcleaner/internal/testutil"
)

func formatPaths(tmpDir string, code language.Code) (string, string) {
	dir := filepath.Join(tmpDir, "word-lists", code.String(), "hand-filtered")
	return filepath.Join(dir, code.String()+"-5-words.txt"), filepath.Join(dir, code.String()+"-5-filtered.txt")
}

func TestNewFormatCommand(t *testing.T) {
	cmd := newFormatCommand()

	assert.Equal(t, "format [language...]", cmd.Use)
	for _, name := range []string{"input", "output", "report", "fold-diacritics", "reject-vowel-heavy"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestNewFormatCommand_RunE(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		inputs  map[language.Code][]string
		want    map[language.Code]string
		wantErr string
	}{
		{
			name: "single language",
			args: []string{"nl"},
			inputs: map[language.Code][]string{
				language.Dutch: {"appel", "mmxvi", "aaaaa", "kaas", "crème", "ruïne"},
			},
			want: map[language.Code]string{
				language.Dutch: "APPEL\nRUÏNE",
			},
		},
		{
			name: "every language when none is given",
			args: []string{},
			inputs: map[language.Code][]string{
				language.Dutch:   {"fiets"},
				language.German:  {"größe", "haus"},
				language.English: {"apple", "crème"},
				language.French:  {"crème", "xviii"},
			},
			want: map[language.Code]string{
				language.Dutch:   "FIETS",
				language.German:  "GRÖßE",
				language.English: "APPLE",
				language.French:  "CRÈME",
			},
		},
		{
			name: "folded diacritics",
			args: []string{"en", "--fold-diacritics"},
			inputs: map[language.Code][]string{
				language.English: {"crème", "naïve"},
			},
			want: map[language.Code]string{
				language.English: "CREME\nNAIVE",
			},
		},
		{
			name: "vowel heavy words are rejected on request",
			args: []string{"fr", "--reject-vowel-heavy"},
			inputs: map[language.Code][]string{
				language.French: {"aioli", "table"},
			},
			want: map[language.Code]string{
				language.French: "TABLE",
			},
		},
		{
			name:    "unsupported language",
			args:    []string{"es"},
			wantErr: "unsupported language",
		},
		{
			name:    "output override with several languages",
			args:    []string{"nl", "de", "--output", "out.txt"},
			wantErr: "--input and --output require exactly one language",
		},
		{
			name:    "missing input file",
			args:    []string{"de"},
			wantErr: "no such file or directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			useConfigFile(t, testutil.SetupTestConfig(t, tmpDir, "http://127.0.0.1:0"))
			for code, words := range tt.inputs {
				inputPath, _ := formatPaths(tmpDir, code)
				testutil.WriteWordList(t, inputPath, words...)
			}

			cmd := newFormatCommand()
			cmd.SetArgs(tt.args)
			var out bytes.Buffer
			cmd.SetOut(&out)

			err := cmd.Execute()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)

			for code, want := range tt.want {
				_, outputPath := formatPaths(tmpDir, code)
				got, err := os.ReadFile(outputPath)
				require.NoError(t, err)
				assert.Equal(t, want, string(got), code.String())
			}
			assert.Contains(t, out.String(), "Processed")
		})
	}
}

func TestNewFormatCommand_RunE_Overrides(t *testing.T) {
	tmpDir := t.TempDir()
	useConfigFile(t, testutil.SetupTestConfig(t, tmpDir, "http://127.0.0.1:0"))

	inputPath := filepath.Join(tmpDir, "custom", "input.txt")
	outputPath := filepath.Join(tmpDir, "custom", "output", "filtered.txt")
	reportPath := filepath.Join(tmpDir, "report.yml")
	testutil.WriteWordList(t, inputPath, "stuhl", "xyz12", "tisch")

	cmd := newFormatCommand()
	cmd.SetArgs([]string{"de", "--input", inputPath, "--output", outputPath, "--report", reportPath})
	cmd.SetOut(&bytes.Buffer{})
	require.NoError(t, cmd.Execute())

	got, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "STUHL\nTISCH", string(got))

	report, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(report), "language: de")
	assert.Contains(t, string(report), "mode: format")
	assert.Contains(t, string(report), "accepted: 2")
}

func TestNewFormatCommand_RunE_InvalidConfig(t *testing.T) {
	useConfigFile(t, testutil.SetupBrokenConfig(t, t.TempDir()))

	cmd := newFormatCommand()
	cmd.SetArgs([]string{"nl"})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "configuration")
}
