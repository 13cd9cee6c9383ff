package service

import (
	"context"
	"errors"
	"fmt"

	"dictko/internal/domain"
	"dictko/internal/speech"
	"dictko/internal/word"

	"go.uber.org/zap"
)

// Speech speeds accepted by Pronounce
const (
	SpeedNormal = "normal"
	SpeedSlow   = "slow"
)

// ErrUnknownSpeed rejects a speed other than normal or slow
var ErrUnknownSpeed = fmt.Errorf("%w: unknown speed", domain.ErrValidation)

// PronunciationService synthesizes pronunciation audio
type PronunciationService struct {
	synthesizer Synthesizer
	logger      *zap.Logger
}

// NewPronunciationService creates a pronunciation service
func NewPronunciationService(synthesizer Synthesizer, logger *zap.Logger) *PronunciationService {
	return &PronunciationService{
		synthesizer: synthesizer,
		logger:      logger,
	}
}

// ParseSpeed maps "", "normal" and "slow" to the slow flag
func ParseSpeed(speed string) (bool, error) {
	switch speed {
	case "", SpeedNormal:
		return false, nil
	case SpeedSlow:
		return true, nil
	default:
		return false, fmt.Errorf("%w %q", ErrUnknownSpeed, speed)
	}
}

// AudioFilename names the MP3 payload after the word and speed
func AudioFilename(w string, slow bool) string {
	if slow {
		return w + "_slow_pronunciation.mp3"
	}
	return w + "_pronunciation.mp3"
}

// Pronounce validates raw and speed, then synthesizes the word. The caller must
// Close the returned audio.
func (s *PronunciationService) Pronounce(ctx context.Context, raw, speed string) (*speech.Audio, string, error) {
	w, err := word.Parse(raw)
	if err != nil {
		return nil, "", err
	}
	slow, err := ParseSpeed(speed)
	if err != nil {
		return nil, "", err
	}

	audio, err := s.synthesizer.Synthesize(ctx, w, slow)
	if err != nil {
		s.logger.Error("Error generating pronunciation",
			zap.String("word", w),
			zap.Bool("slow", slow),
			zap.Error(err),
		)
		if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrSynthesis) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("%w: %v", domain.ErrSynthesis, err)
	}

	return audio, AudioFilename(w, slow), nil
}
