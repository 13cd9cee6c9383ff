// Package dictionary fetches English word entries from the free dictionary API.
package dictionary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"dictko/internal/domain"
	"dictko/internal/metrics"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// DefaultBaseURL is the public free dictionary endpoint
const DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

// ErrMalformedResponse is returned when a 200 body cannot be decoded
var ErrMalformedResponse = fmt.Errorf("malformed dictionary response: %w", domain.ErrInternal)

const serviceName = "dictionary"

// Client performs single, uncached, non-retried lookups
type Client struct {
	http    *resty.Client
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewClient creates a dictionary client with a bounded per-request timeout
func NewClient(baseURL string, timeout time.Duration, m *metrics.Metrics, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		http:    httpClient,
		metrics: m,
		logger:  logger,
	}
}

// Lookup fetches and parses the entry for word.
// Outcomes: domain.ErrNotFound, domain.ErrUpstreamUnavailable or ErrMalformedResponse.
func (c *Client) Lookup(ctx context.Context, word string) (*domain.WordResult, error) {
	started := time.Now()

	res, err := c.http.R().
		SetContext(ctx).
		SetPathParam("word", word).
		Get("/{word}")
	if err != nil {
		c.metrics.ObserveUpstream(serviceName, metrics.OutcomeUnavailable, started)
		return nil, fmt.Errorf("dictionary request for %q: %w: %v", word, domain.ErrUpstreamUnavailable, err)
	}

	switch res.StatusCode() {
	case http.StatusOK:
	case http.StatusNotFound:
		c.metrics.ObserveUpstream(serviceName, metrics.OutcomeNotFound, started)
		return nil, fmt.Errorf("dictionary entry for %q: %w", word, domain.ErrNotFound)
	default:
		c.metrics.ObserveUpstream(serviceName, metrics.OutcomeUnavailable, started)
		return nil, fmt.Errorf("dictionary status %d for %q: %w", res.StatusCode(), word, domain.ErrUpstreamUnavailable)
	}

	result, err := parse(word, res.Body())
	if err != nil {
		if errors.Is(err, errEmpty) {
			c.metrics.ObserveUpstream(serviceName, metrics.OutcomeNotFound, started)
			return nil, fmt.Errorf("dictionary entry for %q: %w", word, domain.ErrNotFound)
		}
		c.metrics.ObserveUpstream(serviceName, metrics.OutcomeError, started)
		return nil, err
	}

	c.metrics.ObserveUpstream(serviceName, metrics.OutcomeOK, started)
	c.logger.Debug("Dictionary lookup succeeded",
		zap.String("word", word),
		zap.Int("meanings", len(result.Meanings)),
		zap.Duration("duration", time.Since(started)),
	)
	return result, nil
}

var errEmpty = errors.New("empty dictionary response")

// parse converts the first element of the response into a WordResult
func parse(word string, body []byte) (*domain.WordResult, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, errEmpty
	}

	var entries []entry
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(entries) == 0 {
		return nil, errEmpty
	}

	e := entries[0]
	result := &domain.WordResult{
		Word:     word,
		Phonetic: phoneticText(e),
	}

	for _, m := range e.Meanings {
		meaning := domain.Meaning{PartOfSpeech: m.PartOfSpeech}
		for _, d := range m.Definitions {
			if strings.TrimSpace(d.Definition) == "" {
				continue
			}
			meaning.Definitions = append(meaning.Definitions, domain.Definition{
				PartOfSpeech: m.PartOfSpeech,
				English:      d.Definition,
				Example:      d.Example,
			})
		}
		result.Meanings = append(result.Meanings, meaning)
	}

	return result, nil
}

// phoneticText prefers the top-level phonetic, then the first non-empty phonetics entry
func phoneticText(e entry) string {
	if e.Phonetic != "" {
		return e.Phonetic
	}
	for _, p := range e.Phonetics {
		if p.Text != "" {
			return p.Text
		}
	}
	return ""
}
