package rapidapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordcleaner/internal/dictionary"
)

func newTestProvider(baseURL string, config Config) *Provider {
	config.BaseURL = baseURL
	return NewProvider(resty.New(), config, dictionary.Options{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestProvider_ValidateWord(t *testing.T) {
	validConfig := Config{
		RapidAPIHost: "wordsapiv1.p.rapidapi.com",
		RapidAPIKey:  "test-key",
	}

	tests := []struct {
		name              string
		config            Config
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)
		word              string
		want              dictionary.Result
		wantErr           bool
	}{
		{
			name:   "definition of the first result",
			config: validConfig,
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/words/cat", r.URL.Path)
				assert.Equal(t, "wordsapiv1.p.rapidapi.com", r.Header.Get("x-rapidapi-host"))
				assert.Equal(t, "test-key", r.Header.Get("x-rapidapi-key"))
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{
					"word": "cat",
					"pronunciation": {"all": "kæt"},
					"results": [
						{"definition": "feline mammal usually having thick soft fur", "partOfSpeech": "noun"}
					]
				}`))
			},
			word: "CAT",
			want: dictionary.Found("CAT", "feline mammal usually having thick soft fur"),
		},
		{
			name:   "no results",
			config: validConfig,
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"word": "cwm", "results": []}`))
			},
			word: "cwm",
			want: dictionary.NotFound("cwm"),
		},
		{
			name:   "word not found",
			config: validConfig,
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"success": false, "message": "word not found"}`))
			},
			word: "zzyzx",
			want: dictionary.NotFound("zzyzx"),
		},
		{
			name:   "server error is a failure",
			config: validConfig,
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			word:    "cat",
			wantErr: true,
		},
		{
			name:   "missing credentials is a failure",
			config: Config{},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				t.Error("no request is expected without credentials")
			},
			word:    "cat",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.mockServerHandler(t, w, r)
			}))
			defer server.Close()

			provider := newTestProvider(server.URL, tt.config)
			got := provider.ValidateWord(context.Background(), tt.word)

			if tt.wantErr {
				assert.False(t, got.Valid)
				assert.Error(t, got.Err)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProvider_Configured(t *testing.T) {
	provider := newTestProvider("", Config{RapidAPIHost: "host"})
	assert.ErrorIs(t, provider.Configured(), ErrNotConfigured)

	provider = newTestProvider("", Config{RapidAPIHost: "host", RapidAPIKey: "key"})
	require.NoError(t, provider.Configured())
}
