package dictionary

import (
	"fmt"
	"net/http"
	"strings"
)

// Options are shared by every provider.
type Options struct {
	// MaxDefinitionWords bounds the definition kept for a word.
	MaxDefinitionWords int
	Cache              *FileCache
}

func (o Options) maxWords() int {
	if o.MaxDefinitionWords == 0 {
		return DefaultMaxDefinitionWords
	}
	return o.MaxDefinitionWords
}

// Summarize truncates a definition to the configured number of words.
func (o Options) Summarize(definition string) string {
	return TruncateWords(definition, o.maxWords())
}

// CheckStatus classifies a response status code.
// 5xx and 429 are retryable failures, any other non-2xx status means the word is unknown.
func CheckStatus(statusCode int, body string) error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}
	if statusCode >= 500 || statusCode == http.StatusTooManyRequests {
		return fmt.Errorf("response error %d: %s", statusCode, abbreviate(body))
	}
	return fmt.Errorf("status code %d > %w", statusCode, ErrNotFound)
}

func abbreviate(body string) string {
	const limit = 200
	body = strings.TrimSpace(body)
	if len(body) <= limit {
		return body
	}
	return body[:limit] + "..."
}
