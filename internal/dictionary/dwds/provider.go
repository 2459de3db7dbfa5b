// Package dwds validates German words by scraping the entry pages of the
// Digitales Wörterbuch der deutschen Sprache.
package dwds

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"resty.dev/v3"

	"github.com/at-ishikawa/wordcleaner/internal/dictionary"
	"github.com/at-ishikawa/wordcleaner/internal/language"
)

const DefaultBaseURL = "https://www.dwds.de"

// Selectors tried in order; the first one with text wins.
var definitionSelectors = []string{
	".dwdswb-definition",
	".dwdswb-lesart-def",
}

type Provider struct {
	httpClient *resty.Client
	baseURL    string
	options    dictionary.Options
	logger     *slog.Logger
}

var _ dictionary.Provider = (*Provider)(nil)

func NewProvider(httpClient *resty.Client, baseURL string, options dictionary.Options, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Provider{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		options:    options,
		logger:     logger.With("provider", "dwds"),
	}
}

func (p *Provider) Language() language.Code {
	return language.German
}

// ValidateWord keeps the casing of word, since German nouns are looked up capitalized.
func (p *Provider) ValidateWord(ctx context.Context, word string) dictionary.Result {
	definition, err := p.lookup(ctx, word)
	if err != nil {
		p.logger.DebugContext(ctx, "word rejected", "word", word, "error", err)
		return dictionary.FromError(word, err)
	}
	return dictionary.Found(word, definition)
}

func (p *Provider) lookup(ctx context.Context, word string) (string, error) {
	body, err := p.options.Cache.Fetch(language.German, word, ".html", func() ([]byte, error) {
		return p.fetchPage(ctx, word)
	})
	if err != nil {
		if body == nil {
			return "", err
		}
		p.logger.WarnContext(ctx, "failed to cache a response", "word", word, "error", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("goquery.NewDocumentFromReader > %w", err)
	}

	text := ExtractDefinition(doc)
	if text == "" {
		return "", fmt.Errorf("no definition on the page > %w", dictionary.ErrNotFound)
	}
	return p.options.Summarize(text), nil
}

func (p *Provider) fetchPage(ctx context.Context, word string) ([]byte, error) {
	res, err := p.httpClient.R().
		SetContext(ctx).
		SetPathParam("word", word).
		Get(p.baseURL + "/wb/{word}")
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if err := dictionary.CheckStatus(res.StatusCode(), res.String()); err != nil {
		return nil, err
	}
	return []byte(res.String()), nil
}

// ExtractDefinition returns the text of the main definition of an entry page.
// Cross references and internal links inside the definition are kept as plain text.
func ExtractDefinition(doc *goquery.Document) string {
	for _, selector := range definitionSelectors {
		text := strings.TrimSpace(doc.Find(selector).First().Text())
		if text != "" {
			return text
		}
	}
	return ""
}
