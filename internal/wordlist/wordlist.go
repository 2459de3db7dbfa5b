// Package wordlist reads and writes the one-word-per-line text files the cleaning jobs work on.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// Placeholder is replaced by the language code in path templates.
const Placeholder = "{LANGUAGE}"

// ResolvePath fills the language placeholder of template and joins it under dir.
func ResolvePath(dir, template, languageCode string) string {
	path := strings.ReplaceAll(template, Placeholder, languageCode)
	if dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// Lines lazily yields every line of the file at path without its line ending (LF or CRLF).
// Lines of any length are read whole.
// The file is opened on the first iteration and closed once iteration stops.
// An open or read failure is yielded as the error of the last pair.
func Lines(path string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		file, err := os.Open(path)
		if err != nil {
			yield("", fmt.Errorf("os.Open(%s) > %w", path, err))
			return
		}
		defer func() {
			_ = file.Close()
		}()

		reader := bufio.NewReader(file)
		for {
			line, err := reader.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				yield("", fmt.Errorf("reader.ReadString(%s) > %w", path, err))
				return
			}
			if line == "" && err != nil {
				return
			}
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if !yield(line, nil) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}

// Write replaces the file at path with lines joined by a newline, creating parent directories.
func Write(path string, lines []string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return nil
}
