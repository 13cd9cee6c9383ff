package translation

import (
	"context"
	"errors"
	"strings"
	"time"

	"dictko/internal/metrics"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const serviceName = "translation"

// Options tunes the adapter
type Options struct {
	// Timeout bounds a single backend call
	Timeout time.Duration
	// Delay is inserted between successive calls of one batch
	Delay time.Duration
	// FailureThreshold consecutive failures open the breaker
	FailureThreshold uint32
	// OpenTimeout is how long the breaker stays open before probing again
	OpenTimeout time.Duration
}

// DefaultOptions returns the production settings
func DefaultOptions() Options {
	return Options{
		Timeout:          5 * time.Second,
		Delay:            100 * time.Millisecond,
		FailureThreshold: 5,
		OpenTimeout:      30 * time.Second,
	}
}

// Adapter turns an unreliable Backend into a translator that never fails
type Adapter struct {
	backend Backend
	opts    Options
	breaker *gobreaker.CircuitBreaker
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewAdapter wraps backend. A nil backend disables translation.
func NewAdapter(backend Backend, opts Options, m *metrics.Metrics, logger *zap.Logger) *Adapter {
	if opts.FailureThreshold == 0 {
		opts.FailureThreshold = DefaultOptions().FailureThreshold
	}
	if opts.OpenTimeout == 0 {
		opts.OpenTimeout = DefaultOptions().OpenTimeout
	}

	threshold := opts.FailureThreshold
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        serviceName,
		MaxRequests: 1,
		Timeout:     opts.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// caller cancellation is not a backend failure
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Translation circuit breaker state changed",
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &Adapter{
		backend: backend,
		opts:    opts,
		breaker: breaker,
		metrics: m,
		logger:  logger,
	}
}

// Translate returns the Korean rendering of text, or text itself on any failure
func (a *Adapter) Translate(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" || a.backend == nil {
		return text
	}

	started := time.Now()
	out, err := a.breaker.Execute(func() (interface{}, error) {
		callCtx := ctx
		if a.opts.Timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, a.opts.Timeout)
			defer cancel()
		}
		return a.backend.Translate(callCtx, text, SourceLang, TargetLang)
	})
	if err != nil {
		outcome := metrics.OutcomeError
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			outcome = metrics.OutcomeSkipped
		}
		a.metrics.ObserveUpstream(serviceName, outcome, started)
		a.logger.Warn("Translation failed, keeping original text",
			zap.String("backend", a.backend.Name()),
			zap.Error(err),
		)
		return text
	}

	translated, _ := out.(string)
	if strings.TrimSpace(translated) == "" {
		a.metrics.ObserveUpstream(serviceName, metrics.OutcomeError, started)
		return text
	}

	a.metrics.ObserveUpstream(serviceName, metrics.OutcomeOK, started)
	return translated
}

// TranslateBatch translates texts in order, pausing between successive backend calls.
// Blank entries are passed through without a call. If ctx is cancelled the remaining
// entries keep their original text.
func (a *Adapter) TranslateBatch(ctx context.Context, texts []string) []string {
	out := make([]string, len(texts))
	copy(out, texts)

	calls := 0
	for i, text := range texts {
		if strings.TrimSpace(text) == "" {
			continue
		}
		if calls > 0 && !a.pause(ctx) {
			return out
		}
		out[i] = a.Translate(ctx, text)
		calls++
	}
	return out
}

// pause waits for the configured delay; false means ctx ended first
func (a *Adapter) pause(ctx context.Context) bool {
	if a.opts.Delay <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(a.opts.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
