package speech

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"dictko/internal/domain"
	"dictko/internal/metrics"
	"dictko/internal/word"

	"go.uber.org/zap"
)

const serviceName = "speech"

// Audio is a synthesized MP3 backed by a temporary file.
// Close releases the file and deletes it; it is safe to call more than once.
type Audio struct {
	*os.File
	Size int64
}

// Close closes and removes the backing file
func (a *Audio) Close() error {
	if a == nil || a.File == nil {
		return nil
	}
	name := a.File.Name()
	closeErr := a.File.Close()
	if err := os.Remove(name); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if errors.Is(closeErr, os.ErrClosed) {
		return nil
	}
	return closeErr
}

// Synthesizer validates tokens and produces complete MP3 payloads from a Provider
type Synthesizer struct {
	provider Provider
	timeout  time.Duration
	tempDir  string
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewSynthesizer creates a synthesizer. tempDir may be empty for the OS default.
func NewSynthesizer(provider Provider, timeout time.Duration, tempDir string, m *metrics.Metrics, logger *zap.Logger) *Synthesizer {
	return &Synthesizer{
		provider: provider,
		timeout:  timeout,
		tempDir:  tempDir,
		metrics:  m,
		logger:   logger,
	}
}

// Synthesize produces the pronunciation of w. The token is validated before the
// provider is called. The caller must Close the returned Audio.
func (s *Synthesizer) Synthesize(ctx context.Context, w string, slow bool) (*Audio, error) {
	if err := word.Validate(w); err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp(s.tempDir, "pronounce-*.mp3")
	if err != nil {
		return nil, fmt.Errorf("create temp audio file: %w", err)
	}
	path := tmp.Name()
	_ = tmp.Close()

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	started := time.Now()
	if err := s.provider.GenerateAudio(ctx, w, slow, path); err != nil {
		s.metrics.ObserveUpstream(serviceName, metrics.OutcomeError, started)
		_ = os.Remove(path)
		return nil, fmt.Errorf("%s provider: %w: %v", s.provider.Name(), domain.ErrSynthesis, err)
	}

	f, err := os.Open(path)
	if err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("open synthesized audio: %w", err)
	}

	audio := &Audio{File: f}
	info, err := f.Stat()
	if err != nil {
		_ = audio.Close()
		return nil, fmt.Errorf("stat synthesized audio: %w", err)
	}
	if info.Size() == 0 {
		_ = audio.Close()
		s.metrics.ObserveUpstream(serviceName, metrics.OutcomeError, started)
		return nil, fmt.Errorf("%s provider returned no audio: %w", s.provider.Name(), domain.ErrSynthesis)
	}
	audio.Size = info.Size()

	s.metrics.ObserveUpstream(serviceName, metrics.OutcomeOK, started)
	s.logger.Debug("Pronunciation synthesized",
		zap.String("word", w),
		zap.Bool("slow", slow),
		zap.Int64("bytes", audio.Size),
		zap.Duration("duration", time.Since(started)),
	)
	return audio, nil
}
