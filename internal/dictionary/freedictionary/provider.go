// Package freedictionary validates French words with freedictionaryapi.com.
package freedictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"resty.dev/v3"

	"github.com/at-ishikawa/wordcleaner/internal/dictionary"
	"github.com/at-ishikawa/wordcleaner/internal/language"
)

const DefaultBaseURL = "https://freedictionaryapi.com"

type Response struct {
	Word    string  `json:"word"`
	Entries []Entry `json:"entries"`
}

type Entry struct {
	PartOfSpeech string  `json:"partOfSpeech"`
	Senses       []Sense `json:"senses"`
}

type Sense struct {
	Definition string `json:"definition"`
}

// FirstDefinition is the definition of the first sense of the first entry.
func (r Response) FirstDefinition() string {
	if len(r.Entries) == 0 || len(r.Entries[0].Senses) == 0 {
		return ""
	}
	return strings.TrimSpace(r.Entries[0].Senses[0].Definition)
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
		logger:     logger.With("provider", "freedictionary"),
	}
}

func (p *Provider) Language() language.Code {
	return language.French
}

func (p *Provider) ValidateWord(ctx context.Context, word string) dictionary.Result {
	definition, err := p.lookup(ctx, word)
	if err != nil {
		p.logger.DebugContext(ctx, "word rejected", "word", word, "error", err)
		return dictionary.FromError(word, err)
	}
	return dictionary.Found(strings.ToUpper(word), definition)
}

func (p *Provider) lookup(ctx context.Context, word string) (string, error) {
	body, err := p.options.Cache.Fetch(language.French, strings.ToLower(word), ".json", func() ([]byte, error) {
		return p.fetchEntries(ctx, word)
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

	definition := p.options.Summarize(response.FirstDefinition())
	if definition == "" {
		return "", fmt.Errorf("no senses > %w", dictionary.ErrNotFound)
	}
	return definition, nil
}

func (p *Provider) fetchEntries(ctx context.Context, word string) ([]byte, error) {
	res, err := p.httpClient.R().
		SetContext(ctx).
		SetPathParam("word", strings.ToLower(word)).
		Get(p.baseURL + "/api/v1/entries/fr/{word}")
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if err := dictionary.CheckStatus(res.StatusCode(), res.String()); err != nil {
		return nil, err
	}
	return []byte(res.String()), nil
}
