// Package providers wires the dictionary of every supported language.
package providers

import (
	"fmt"
	"log/slog"

	restyv2 "github.com/go-resty/resty/v2"
	"resty.dev/v3"

	"github.com/at-ishikawa/wordcleaner/internal/config"
	"github.com/at-ishikawa/wordcleaner/internal/dictionary"
	"github.com/at-ishikawa/wordcleaner/internal/dictionary/dwds"
	"github.com/at-ishikawa/wordcleaner/internal/dictionary/freedictionary"
	"github.com/at-ishikawa/wordcleaner/internal/dictionary/rapidapi"
	"github.com/at-ishikawa/wordcleaner/internal/dictionary/vandale"
	"github.com/at-ishikawa/wordcleaner/internal/language"
)

const userAgent = "wordcleaner/1.0"

// Set owns the HTTP clients shared by the providers of its registry.
type Set struct {
	Registry   *dictionary.Registry
	httpClient *resty.Client
}

func New(cfg config.DictionariesConfig, logger *slog.Logger) (*Set, error) {
	options := dictionary.Options{
		MaxDefinitionWords: cfg.DefinitionMaxWords,
		Cache:              dictionary.NewFileCache(cfg.CacheDirectory),
	}

	httpClient := resty.New()
	httpClient.SetTimeout(cfg.RequestTimeout)
	httpClient.SetHeader("User-Agent", userAgent)

	wordsAPIClient := restyv2.New()
	wordsAPIClient.SetTimeout(cfg.RequestTimeout)
	wordsAPIClient.SetHeader("User-Agent", userAgent)

	registry := dictionary.NewRegistry(
		vandale.NewProvider(httpClient, cfg.VanDale.BaseURL, options, logger),
		dwds.NewProvider(httpClient, cfg.DWDS.BaseURL, options, logger),
		rapidapi.NewProvider(wordsAPIClient, rapidapi.Config{
			RapidAPIHost: cfg.RapidAPI.Host,
			RapidAPIKey:  cfg.RapidAPI.Key,
			BaseURL:      cfg.RapidAPI.BaseURL,
		}, options, logger),
		freedictionary.NewProvider(httpClient, cfg.FreeDictionary.BaseURL, options, logger),
	)
	if err := registry.Verify(language.Supported); err != nil {
		_ = httpClient.Close()
		return nil, fmt.Errorf("registry.Verify > %w", err)
	}

	return &Set{
		Registry:   registry,
		httpClient: httpClient,
	}, nil
}

type configurable interface {
	Configured() error
}

// Provider resolves the provider of code and checks it has the credentials it needs.
func (s *Set) Provider(code language.Code) (dictionary.Provider, error) {
	provider, err := s.Registry.Resolve(code)
	if err != nil {
		return nil, err
	}
	if c, ok := provider.(configurable); ok {
		if err := c.Configured(); err != nil {
			return nil, fmt.Errorf("%s dictionary > %w", code, err)
		}
	}
	return provider, nil
}

func (s *Set) Close() error {
	return s.httpClient.Close()
}
