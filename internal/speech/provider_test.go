package speech

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"dictko/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		wantName string
		wantErr  bool
	}{
		{name: "nil config defaults to google", config: nil, wantName: "google"},
		{name: "google", config: &Config{Provider: "google"}, wantName: "google"},
		{name: "openai with key", config: &Config{Provider: "openai", OpenAIKey: "test-key"}, wantName: "openai"},
		{name: "openai without key", config: &Config{Provider: "openai"}, wantErr: true},
		{name: "unknown", config: &Config{Provider: "espeak"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewProvider(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, provider.Name())
		})
	}
}

func TestGoogleProvider_GenerateAudio(t *testing.T) {
	tests := []struct {
		name      string
		slow      bool
		status    int
		body      []byte
		wantSpeed string
		wantErr   bool
	}{
		{name: "normal speed", slow: false, status: http.StatusOK, body: testutil.FakeMP3, wantSpeed: "1"},
		{name: "slow speed", slow: true, status: http.StatusOK, body: testutil.FakeMP3, wantSpeed: "0.3"},
		{name: "upstream error", status: http.StatusTooManyRequests, wantErr: true},
		{name: "empty body", status: http.StatusOK, body: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/translate_tts", r.URL.Path)
				q := r.URL.Query()
				assert.Equal(t, "hello", q.Get("q"))
				assert.Equal(t, "en", q.Get("tl"))
				if tt.wantSpeed != "" {
					assert.Equal(t, tt.wantSpeed, q.Get("ttsspeed"))
				}
				w.Header().Set("Content-Type", "audio/mpeg")
				w.WriteHeader(tt.status)
				_, _ = w.Write(tt.body)
			}))
			defer server.Close()

			out := filepath.Join(t.TempDir(), "out.mp3")
			err := NewGoogleProvider(server.URL).GenerateAudio(context.Background(), "hello", tt.slow, out)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			data, err := os.ReadFile(out)
			require.NoError(t, err)
			assert.Equal(t, testutil.FakeMP3, data)
		})
	}
}

func TestOpenAIProvider_GenerateAudio(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/audio/speech", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hello", req["input"])
		assert.Equal(t, "tts-1", req["model"])
		assert.Equal(t, "mp3", req["response_format"])
		assert.InDelta(t, 0.6, req["speed"], 0.001)

		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write(testutil.FakeMP3)
	}))
	defer server.Close()

	provider, err := NewOpenAIProvider(&Config{OpenAIKey: "test-key", OpenAIURL: server.URL})
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out.mp3")
	require.NoError(t, provider.GenerateAudio(context.Background(), "hello", true, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, testutil.FakeMP3, data)
}
