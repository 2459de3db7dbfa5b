// Package vandale validates Dutch words with the free search API of Van Dale.
package vandale

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"resty.dev/v3"

	"github.com/at-ishikawa/wordcleaner/internal/dictionary"
	"github.com/at-ishikawa/wordcleaner/internal/language"
)

const DefaultBaseURL = "https://zoeken.vandale.nl"

const searchPath = "/api/zoeken/rest/free/freesearch"

type Response struct {
	SearchPattern              string    `json:"searchPattern"`
	Articles                   []Article `json:"articles"`
	AlternativeDictionaryTypes []string  `json:"alternativeDictionaryTypes"`
}

type Article struct {
	Headword     string `json:"headword"`
	Content      string `json:"content"`
	Index        int    `json:"index"`
	DictionaryID string `json:"dictionaryId"`
	Language     string `json:"language"`
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
		logger:     logger.With("provider", "vandale"),
	}
}

func (p *Provider) Language() language.Code {
	return language.Dutch
}

// ValidateWord looks the word up and summarizes the content of the first article.
func (p *Provider) ValidateWord(ctx context.Context, word string) dictionary.Result {
	definition, err := p.lookup(ctx, word)
	if err != nil {
		p.logger.DebugContext(ctx, "word rejected", "word", word, "error", err)
		return dictionary.FromError(word, err)
	}
	return dictionary.Found(strings.ToUpper(word), definition)
}

func (p *Provider) lookup(ctx context.Context, word string) (string, error) {
	body, err := p.options.Cache.Fetch(language.Dutch, word, ".json", func() ([]byte, error) {
		return p.search(ctx, word)
	})
	if err != nil {
		if body == nil {
			return "", err
		}
		p.logger.WarnContext(ctx, "failed to cache a response", "word", word, "error", err)
	}

	var response Response
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("json.Unmarshal > %w", err)
	}
	if len(response.Articles) == 0 {
		return "", fmt.Errorf("no articles > %w", dictionary.ErrNotFound)
	}

	text, err := PlainText(response.Articles[0].Content)
	if err != nil {
		return "", fmt.Errorf("PlainText > %w", err)
	}
	definition := p.options.Summarize(text)
	if definition == "" {
		return "", fmt.Errorf("empty article > %w", dictionary.ErrNotFound)
	}
	return definition, nil
}

func (p *Provider) search(ctx context.Context, word string) ([]byte, error) {
	res, err := p.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"language": "nn",
			"limit":    "1",
			"pattern":  word,
		}).
		Get(p.baseURL + searchPath)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if err := dictionary.CheckStatus(res.StatusCode(), res.String()); err != nil {
		return nil, err
	}
	return []byte(res.String()), nil
}

// PlainText returns the text of an HTML fragment, with the text of separate elements
// separated by a space.
func PlainText(fragment string) (string, error) {
	root, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return "", fmt.Errorf("html.Parse > %w", err)
	}

	var parts []string
	var walk func(node *html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && (node.DataAtom == atom.Script || node.DataAtom == atom.Style) {
			return
		}
		if node.Type == html.TextNode {
			if text := strings.TrimSpace(node.Data); text != "" {
				parts = append(parts, text)
			}
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)

	return strings.Join(parts, " "), nil
}
