package translation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMyMemoryBackend_Translate(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		expected  string
		expectErr bool
	}{
		{
			name:     "numeric status",
			status:   http.StatusOK,
			body:     `{"responseData": {"translatedText": "안녕하세요"}, "responseStatus": 200}`,
			expected: "안녕하세요",
		},
		{
			name:     "string status",
			status:   http.StatusOK,
			body:     `{"responseData": {"translatedText": "안녕"}, "responseStatus": "200"}`,
			expected: "안녕",
		},
		{
			name:      "quota exceeded",
			status:    http.StatusOK,
			body:      `{"responseData": {"translatedText": "MYMEMORY WARNING"}, "responseStatus": 429, "responseDetails": "quota"}`,
			expectErr: true,
		},
		{
			name:      "empty translation",
			status:    http.StatusOK,
			body:      `{"responseData": {"translatedText": ""}, "responseStatus": 200}`,
			expectErr: true,
		},
		{
			name:      "http error",
			status:    http.StatusServiceUnavailable,
			body:      ``,
			expectErr: true,
		},
		{
			name:      "not json",
			status:    http.StatusOK,
			body:      `<html>`,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/get", r.URL.Path)
				assert.Equal(t, "hello", r.URL.Query().Get("q"))
				assert.Equal(t, "en|ko", r.URL.Query().Get("langpair"))
				assert.Equal(t, "me@example.com", r.URL.Query().Get("de"))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			backend := NewMyMemoryBackend(server.URL, "me@example.com")

			result, err := backend.Translate(context.Background(), "hello", SourceLang, TargetLang)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestMyMemoryBackend_Name(t *testing.T) {
	assert.Equal(t, "mymemory", NewMyMemoryBackend("", "").Name())
}
