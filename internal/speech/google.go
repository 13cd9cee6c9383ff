package speech

import (
	"context"
	"fmt"
	"os"
	"strings"

	"dictko/internal/domain"

	"github.com/go-resty/resty/v2"
)

// DefaultGoogleURL hosts the Google Translate TTS endpoint
const DefaultGoogleURL = "https://translate.google.com"

// Google Translate TTS speeds
const (
	googleNormalSpeed = "1"
	googleSlowSpeed   = "0.3"
)

// GoogleProvider uses the keyless Google Translate TTS endpoint
type GoogleProvider struct {
	http *resty.Client
}

// NewGoogleProvider creates a Google Translate TTS provider
func NewGoogleProvider(baseURL string) *GoogleProvider {
	if baseURL == "" {
		baseURL = DefaultGoogleURL
	}
	return &GoogleProvider{
		http: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetHeader("User-Agent", "Mozilla/5.0"),
	}
}

// Name returns the provider name
func (p *GoogleProvider) Name() string {
	return "google"
}

// GenerateAudio fetches the MP3 for text in English
func (p *GoogleProvider) GenerateAudio(ctx context.Context, text string, slow bool, outputFile string) error {
	speed := googleNormalSpeed
	if slow {
		speed = googleSlowSpeed
	}

	res, err := p.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"ie":       "UTF-8",
			"client":   "tw-ob",
			"tl":       "en",
			"q":        text,
			"ttsspeed": speed,
		}).
		Get("/translate_tts")
	if err != nil {
		return fmt.Errorf("google tts request: %w: %v", domain.ErrUpstreamUnavailable, err)
	}
	if res.IsError() {
		return fmt.Errorf("google tts status %d: %w", res.StatusCode(), domain.ErrUpstreamUnavailable)
	}

	body := res.Body()
	if len(body) == 0 {
		return fmt.Errorf("no audio data received from google tts")
	}

	if err := os.WriteFile(outputFile, body, 0o600); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	return nil
}
