package pipeline

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestWriteReports(t *testing.T) {
	startedAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	job := Job{
		InputPath:             "nl/nl-words-clean.txt",
		WordsOutputPath:       "nl/nl-words-dictionary-validated.txt",
		DefinitionsOutputPath: "nl/nl-words-with-definitions.txt",
	}
	reports := []Report{
		NewReport("nl", "dictionary", job, Stats{Processed: 3, Accepted: 2, Rejected: 1}, startedAt, startedAt.Add(time.Minute)),
		NewReport("de", "format", Job{InputPath: "de.txt", WordsOutputPath: "de-out.txt"}, Stats{Processed: 1, Accepted: 1}, startedAt, startedAt),
	}

	path := filepath.Join(t.TempDir(), "reports", "report.yaml")
	require.NoError(t, WriteReports(path, reports))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer func() {
		_ = file.Close()
	}()

	decoder := yaml.NewDecoder(file)
	for _, want := range reports {
		var got Report
		require.NoError(t, decoder.Decode(&got))
		assert.Equal(t, want, got)
	}

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "definitions_output: nl/nl-words-with-definitions.txt")
	assert.Contains(t, string(content), "  accepted: 2")
}
