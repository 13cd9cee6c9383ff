package service

import (
	"context"

	"dictko/internal/domain"
	"dictko/internal/speech"
)

// Dictionary looks up English word entries
type Dictionary interface {
	Lookup(ctx context.Context, word string) (*domain.WordResult, error)
}

// Translator renders English text in Korean. It never fails; on error the
// original text is returned.
type Translator interface {
	Translate(ctx context.Context, text string) string
	TranslateBatch(ctx context.Context, texts []string) []string
}

// Synthesizer produces pronunciation audio for a validated word
type Synthesizer interface {
	Synthesize(ctx context.Context, word string, slow bool) (*speech.Audio, error)
}
