package service

import (
	"context"

	"dictko/internal/repository"
)

// RecentSearchLimit caps the recent search listing
const RecentSearchLimit = 10

// HistoryService reads search history
type HistoryService struct {
	history repository.HistoryRepository
}

// NewHistoryService creates a history service. history may be nil.
func NewHistoryService(history repository.HistoryRepository) *HistoryService {
	return &HistoryService{history: history}
}

// Recent returns up to RecentSearchLimit distinct words, most recent first
func (s *HistoryService) Recent(ctx context.Context, clientAddress string) ([]string, error) {
	if s.history == nil {
		return []string{}, nil
	}

	words, err := s.history.RecentWords(ctx, clientAddress, RecentSearchLimit)
	if err != nil {
		return nil, err
	}
	return distinct(words, RecentSearchLimit), nil
}

// distinct keeps the first occurrence of each word, up to limit entries
func distinct(words []string, limit int) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
		if len(out) == limit {
			break
		}
	}
	return out
}
