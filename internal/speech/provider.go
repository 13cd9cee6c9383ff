// Package speech synthesizes English pronunciation audio as MP3.
package speech

import (
	"context"
	"fmt"
)

// Provider defines the interface for text-to-speech backends
type Provider interface {
	// GenerateAudio synthesizes text and writes a complete MP3 to outputFile
	GenerateAudio(ctx context.Context, text string, slow bool, outputFile string) error

	// Name returns the provider name
	Name() string
}

// Config selects and configures a provider
type Config struct {
	Provider  string // "google" or "openai"
	GoogleURL string

	OpenAIKey   string
	OpenAIURL   string
	OpenAIModel string // "tts-1" or "tts-1-hd"
	OpenAIVoice string
}

// DefaultConfig returns the keyless Google provider configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:    "google",
		GoogleURL:   DefaultGoogleURL,
		OpenAIModel: "tts-1",
		OpenAIVoice: "alloy",
	}
}

// NewProvider creates the provider named in config
func NewProvider(config *Config) (Provider, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case "", "google":
		return NewGoogleProvider(config.GoogleURL), nil
	case "openai":
		provider, err := NewOpenAIProvider(config)
		if err != nil {
			return nil, err
		}
		return provider, nil
	default:
		return nil, fmt.Errorf("unknown speech provider: %s", config.Provider)
	}
}
