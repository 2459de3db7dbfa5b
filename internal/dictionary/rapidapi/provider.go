package rapidapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/at-ishikawa/wordcleaner/internal/dictionary"
	"github.com/at-ishikawa/wordcleaner/internal/language"
)

var ErrNotConfigured = errors.New("RapidAPI host and key are required for WordsAPI")

type Config struct {
	RapidAPIHost string
	RapidAPIKey  string
	// BaseURL defaults to https://<RapidAPIHost>.
	BaseURL string
}

// Provider validates English words with WordsAPI on RapidAPI.
type Provider struct {
	config     Config
	httpClient *resty.Client
	options    dictionary.Options
	logger     *slog.Logger
}

var _ dictionary.Provider = (*Provider)(nil)

func NewProvider(httpClient *resty.Client, config Config, options dictionary.Options, logger *slog.Logger) *Provider {
	return &Provider{
		config:     config,
		httpClient: httpClient,
		options:    options,
		logger:     logger.With("provider", "wordsapi"),
	}
}

func (p *Provider) Language() language.Code {
	return language.English
}

// Configured reports ErrNotConfigured when the RapidAPI credentials are missing.
func (p *Provider) Configured() error {
	if p.config.RapidAPIHost == "" || p.config.RapidAPIKey == "" {
		return ErrNotConfigured
	}
	return nil
}

func (p *Provider) ValidateWord(ctx context.Context, word string) dictionary.Result {
	definition, err := p.lookup(ctx, word)
	if err != nil {
		p.logger.DebugContext(ctx, "word rejected", "word", word, "error", err)
		return dictionary.FromError(word, err)
	}
	return dictionary.Found(strings.ToUpper(word), definition)
}

// Lookup returns the WordsAPI entry of word.
func (p *Provider) Lookup(ctx context.Context, word string) (Response, error) {
	var resp Response
	contents, err := p.options.Cache.Fetch(language.English, strings.ToLower(word), ".json", func() ([]byte, error) {
		return p.lookupAPI(ctx, word)
	})
	if err != nil {
		if contents == nil {
			return resp, err
		}
		p.logger.WarnContext(ctx, "failed to cache a response", "word", word, "error", err)
	}
	if err := json.Unmarshal(contents, &resp); err != nil {
		return resp, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return resp, nil
}

func (p *Provider) lookup(ctx context.Context, word string) (string, error) {
	resp, err := p.Lookup(ctx, word)
	if err != nil {
		return "", err
	}
	definition := p.options.Summarize(resp.FirstDefinition())
	if definition == "" {
		return "", fmt.Errorf("no definitions > %w", dictionary.ErrNotFound)
	}
	return definition, nil
}

func (p *Provider) lookupAPI(ctx context.Context, word string) ([]byte, error) {
	if err := p.Configured(); err != nil {
		return nil, err
	}

	config := p.config
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "https://" + config.RapidAPIHost
	}

	res, err := p.httpClient.R().
		SetContext(ctx).
		SetHeader("x-rapidapi-host", config.RapidAPIHost).
		SetHeader("x-rapidapi-key", config.RapidAPIKey).
		Get(
			fmt.Sprintf("%s/words/%s", strings.TrimSuffix(baseURL, "/"), url.PathEscape(strings.ToLower(word))),
		)
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w", err)
	}
	if err := dictionary.CheckStatus(res.StatusCode(), res.String()); err != nil {
		return nil, err
	}
	return res.Body(), nil
}
