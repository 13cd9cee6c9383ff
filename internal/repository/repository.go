package repository

import (
	"context"

	"dictko/internal/domain"
)

// HistoryRepository defines search history operations
type HistoryRepository interface {
	AddSearch(ctx context.Context, word, clientAddress string) error
	RecentWords(ctx context.Context, clientAddress string, limit int) ([]string, error)
}

// FavoriteRepository defines favorite word operations
type FavoriteRepository interface {
	FavoriteExists(ctx context.Context, word, clientAddress string) (bool, error)
	// AddFavorite inserts fav and fills its ID and AddedAt. created is false when
	// the (word, client) pair already exists.
	AddFavorite(ctx context.Context, fav *domain.Favorite) (created bool, err error)
	ListFavorites(ctx context.Context, clientAddress string) ([]domain.Favorite, error)
	// RemoveFavorite deletes by id scoped to the owner and returns the removed word.
	// Returns domain.ErrNotFound when nothing matched.
	RemoveFavorite(ctx context.Context, id int, clientAddress string) (string, error)
}
