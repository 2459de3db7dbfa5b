// Package testutil provides shared test helpers for creating config files and word list fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a config file whose word lists live under tmpDir/word-lists and whose
// dictionaries are all served from dictionaryURL. Retries are fast so failing tests stay quick.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir, dictionaryURL string) string {
	t.Helper()

	wordListsDir := filepath.Join(tmpDir, "word-lists")
	require.NoError(t, os.MkdirAll(wordListsDir, 0755))

	configContent := fmt.Sprintf(`word_lists:
  directory: %s
pipeline:
  chunk_size: 2
  max_retries: 1
  retry_base_delay: 1ms
dictionaries:
  request_timeout: 5s
  vandale:
    base_url: %s
  dwds:
    base_url: %s
  freedictionary:
    base_url: %s
  rapidapi:
    base_url: %s
`,
		wordListsDir,
		dictionaryURL,
		dictionaryURL,
		dictionaryURL,
		dictionaryURL,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupBrokenConfig creates a config file that cannot be parsed.
func SetupBrokenConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("word_lists:\n  directory: [[[\n"), 0644))
	return cfgPath
}

// WriteWordList writes words one per line to path, creating parent directories.
func WriteWordList(t *testing.T, path string, words ...string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0644))
}
