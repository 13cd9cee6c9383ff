package service

import (
	"context"
	"fmt"

	"dictko/internal/domain"
	"dictko/internal/repository"
	"dictko/internal/word"

	"go.uber.org/zap"
)

// FavoriteService handles favorite words scoped by client address
type FavoriteService struct {
	favorites  repository.FavoriteRepository
	dictionary Dictionary
	translator Translator
	logger     *zap.Logger
}

// NewFavoriteService creates a favorite service. favorites may be nil when
// persistence is disabled; every operation then returns domain.ErrStorageDisabled.
func NewFavoriteService(
	favorites repository.FavoriteRepository,
	dictionary Dictionary,
	translator Translator,
	logger *zap.Logger,
) *FavoriteService {
	return &FavoriteService{
		favorites:  favorites,
		dictionary: dictionary,
		translator: translator,
		logger:     logger,
	}
}

// Enabled reports whether favorites are backed by storage
func (s *FavoriteService) Enabled() bool {
	return s.favorites != nil
}

// Add saves raw as a favorite of the client. Adding the same word twice returns
// domain.ErrAlreadyExists and leaves a single record.
func (s *FavoriteService) Add(ctx context.Context, raw, clientAddress string) (*domain.Favorite, error) {
	w, err := word.Parse(raw)
	if err != nil {
		return nil, err
	}
	if s.favorites == nil {
		return nil, domain.ErrStorageDisabled
	}

	exists, err := s.favorites.FavoriteExists(ctx, w, clientAddress)
	if err != nil {
		return nil, fmt.Errorf("check favorite %q: %w: %v", w, domain.ErrInternal, err)
	}
	if exists {
		return nil, fmt.Errorf("favorite %q: %w", w, domain.ErrAlreadyExists)
	}

	fav := &domain.Favorite{
		Word:          w,
		ClientAddress: clientAddress,
	}

	// The dictionary text is a convenience; the favorite is stored without it
	// when the lookup fails.
	result, err := s.dictionary.Lookup(ctx, w)
	if err != nil {
		s.logger.Warn("Dictionary lookup for favorite failed",
			zap.String("word", w),
			zap.Error(err),
		)
	} else {
		fav.Definition = result.FirstDefinition()
		if fav.Definition != "" {
			fav.KoreanTranslation = s.translator.Translate(ctx, fav.Definition)
		}
	}

	created, err := s.favorites.AddFavorite(ctx, fav)
	if err != nil {
		return nil, fmt.Errorf("save favorite %q: %w: %v", w, domain.ErrInternal, err)
	}
	if !created {
		return nil, fmt.Errorf("favorite %q: %w", w, domain.ErrAlreadyExists)
	}

	s.logger.Info("Favorite added",
		zap.String("word", w),
		zap.Int("id", fav.ID),
	)
	return fav, nil
}

// Remove deletes the client's favorite by id and returns its word.
// Missing or foreign-owned favorites return domain.ErrNotFound.
func (s *FavoriteService) Remove(ctx context.Context, id int, clientAddress string) (string, error) {
	if s.favorites == nil {
		return "", domain.ErrStorageDisabled
	}
	if id <= 0 {
		return "", fmt.Errorf("favorite %d: %w", id, domain.ErrNotFound)
	}

	w, err := s.favorites.RemoveFavorite(ctx, id, clientAddress)
	if err != nil {
		return "", err
	}

	s.logger.Info("Favorite removed",
		zap.String("word", w),
		zap.Int("id", id),
	)
	return w, nil
}

// List returns the client's favorites, newest first
func (s *FavoriteService) List(ctx context.Context, clientAddress string) ([]domain.Favorite, error) {
	if s.favorites == nil {
		return nil, domain.ErrStorageDisabled
	}
	return s.favorites.ListFavorites(ctx, clientAddress)
}
