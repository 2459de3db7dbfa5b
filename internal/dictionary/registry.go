package dictionary

import (
	"errors"
	"fmt"

	"github.com/at-ishikawa/wordcleaner/internal/language"
)

// ErrProviderNotFound is returned by Resolve for a language without a provider.
var ErrProviderNotFound = errors.New("no dictionary provider registered")

// Registry maps a language to the provider that validates its words.
type Registry struct {
	providers map[language.Code]Provider
}

func NewRegistry(providers ...Provider) *Registry {
	registry := &Registry{providers: make(map[language.Code]Provider, len(providers))}
	for _, provider := range providers {
		registry.Register(provider)
	}
	return registry
}

// Register adds or replaces the provider of provider.Language().
func (r *Registry) Register(provider Provider) {
	if r.providers == nil {
		r.providers = make(map[language.Code]Provider)
	}
	r.providers[provider.Language()] = provider
}

// Resolve returns the provider for code.
func (r *Registry) Resolve(code language.Code) (Provider, error) {
	if provider, ok := r.providers[code]; ok {
		return provider, nil
	}
	return nil, fmt.Errorf("%w for '%s'", ErrProviderNotFound, code)
}

// Verify checks every code has a provider.
func (r *Registry) Verify(codes []language.Code) error {
	var errs []error
	for _, code := range codes {
		if _, err := r.Resolve(code); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
