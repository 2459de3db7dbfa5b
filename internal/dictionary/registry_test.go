package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordcleaner/internal/language"
)

func TestRegistry_Resolve(t *testing.T) {
	dutch := stubProvider{code: language.Dutch}
	german := stubProvider{code: language.German}
	registry := NewRegistry(dutch, german)

	tests := []struct {
		name    string
		code    language.Code
		want    Provider
		wantErr bool
	}{
		{name: "dutch", code: language.Dutch, want: dutch},
		{name: "german", code: language.German, want: german},
		{name: "unregistered", code: language.French, wantErr: true},
		{name: "unknown code", code: language.Code("xx"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := registry.Resolve(tt.code)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrProviderNotFound)
				assert.Contains(t, err.Error(), string(tt.code))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistry_Register(t *testing.T) {
	var registry Registry
	first := stubProvider{code: language.English, validate: func(string) Result { return NotFound("a") }}
	second := stubProvider{code: language.English, validate: func(string) Result { return NotFound("b") }}

	registry.Register(first)
	registry.Register(second)

	got, err := registry.Resolve(language.English)
	require.NoError(t, err)
	assert.Equal(t, "b", got.ValidateWord(t.Context(), "").Word)
}

func TestRegistry_Verify(t *testing.T) {
	registry := NewRegistry(stubProvider{code: language.Dutch}, stubProvider{code: language.English})

	assert.NoError(t, registry.Verify([]language.Code{language.Dutch, language.English}))

	err := registry.Verify(language.Supported)
	assert.ErrorIs(t, err, ErrProviderNotFound)
	assert.Contains(t, err.Error(), "'de'")
	assert.Contains(t, err.Error(), "'fr'")
}
