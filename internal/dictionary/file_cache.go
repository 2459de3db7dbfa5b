package dictionary

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/at-ishikawa/wordcleaner/internal/language"
)

// FileCache keeps raw dictionary responses on disk, one file per language and word,
// so a word list can be re-run without hitting the dictionaries again.
// A nil *FileCache disables caching.
type FileCache struct {
	rootDir string
}

// NewFileCache returns nil when cacheDirectory is empty.
func NewFileCache(cacheDirectory string) *FileCache {
	if cacheDirectory == "" {
		return nil
	}
	return &FileCache{
		rootDir: cacheDirectory,
	}
}

// filePath keeps the casing of word. German nouns and verbs like "Essen" and "essen"
// are separate entries.
func (cache *FileCache) filePath(code language.Code, word, extension string) string {
	name := url.PathEscape(strings.TrimSpace(word))
	return filepath.Join(cache.rootDir, string(code), name+extension)
}

// Fetch returns the cached body of word, or calls fetch and stores its body when it succeeds.
// Errors from fetch, including ErrNotFound, are returned unchanged and nothing is stored.
func (cache *FileCache) Fetch(code language.Code, word, extension string, fetch func() ([]byte, error)) ([]byte, error) {
	if cache == nil {
		return fetch()
	}

	localFilePath := cache.filePath(code, word, extension)
	if contents, err := os.ReadFile(localFilePath); err == nil {
		return contents, nil
	}

	contents, err := fetch()
	if err != nil {
		return nil, err
	}

	if err := cache.store(localFilePath, contents); err != nil {
		return contents, fmt.Errorf("cache.store > %w", err)
	}
	return contents, nil
}

// store writes through a temporary file so a concurrent reader never sees a partial body.
func (cache *FileCache) store(localFilePath string, contents []byte) error {
	dir := filepath.Dir(localFilePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}

	file, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("os.CreateTemp > %w", err)
	}
	defer func() {
		_ = os.Remove(file.Name())
	}()

	if _, err := file.Write(contents); err != nil {
		_ = file.Close()
		return fmt.Errorf("file.Write > %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("file.Close > %w", err)
	}
	if err := os.Rename(file.Name(), localFilePath); err != nil {
		return fmt.Errorf("os.Rename > %w", err)
	}
	return nil
}
