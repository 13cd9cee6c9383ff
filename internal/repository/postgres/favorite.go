package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dictko/internal/domain"
)

// FavoriteRepo implements repository.FavoriteRepository
type FavoriteRepo struct {
	db *sql.DB
}

// NewFavoriteRepo creates a new favorite word repository
func NewFavoriteRepo(db *sql.DB) *FavoriteRepo {
	return &FavoriteRepo{db: db}
}

// FavoriteExists reports whether the client already saved word
func (r *FavoriteRepo) FavoriteExists(ctx context.Context, word, clientAddress string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM favorite_words WHERE word = $1 AND ip_address = $2)`
	err := r.db.QueryRowContext(ctx, query, word, clientAddress).Scan(&exists)
	return exists, err
}

// AddFavorite inserts a favorite unless (word, ip_address) already exists
func (r *FavoriteRepo) AddFavorite(ctx context.Context, fav *domain.Favorite) (bool, error) {
	query := `
		INSERT INTO favorite_words (word, definition, korean_translation, ip_address)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (word, ip_address) DO NOTHING
		RETURNING id, added_at
	`
	err := r.db.QueryRowContext(ctx, query,
		fav.Word, fav.Definition, fav.KoreanTranslation, fav.ClientAddress,
	).Scan(&fav.ID, &fav.AddedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListFavorites returns the client's favorites, newest first
func (r *FavoriteRepo) ListFavorites(ctx context.Context, clientAddress string) ([]domain.Favorite, error) {
	query := `
		SELECT id, word, definition, korean_translation, added_at, ip_address
		FROM favorite_words
		WHERE ip_address = $1
		ORDER BY added_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, clientAddress)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []domain.Favorite
	for rows.Next() {
		var f domain.Favorite
		if err := rows.Scan(&f.ID, &f.Word, &f.Definition, &f.KoreanTranslation, &f.AddedAt, &f.ClientAddress); err != nil {
			return nil, err
		}
		favorites = append(favorites, f)
	}

	return favorites, rows.Err()
}

// RemoveFavorite deletes the favorite only if it belongs to the client
func (r *FavoriteRepo) RemoveFavorite(ctx context.Context, id int, clientAddress string) (string, error) {
	query := `
		DELETE FROM favorite_words
		WHERE id = $1 AND ip_address = $2
		RETURNING word
	`

	var word string
	err := r.db.QueryRowContext(ctx, query, id, clientAddress).Scan(&word)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("favorite %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return "", err
	}
	return word, nil
}
