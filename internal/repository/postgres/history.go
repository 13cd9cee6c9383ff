package postgres

import (
	"context"
	"database/sql"
)

// HistoryRepo implements repository.HistoryRepository
type HistoryRepo struct {
	db *sql.DB
}

// NewHistoryRepo creates a new search history repository
func NewHistoryRepo(db *sql.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

// AddSearch appends a search history record
func (r *HistoryRepo) AddSearch(ctx context.Context, word, clientAddress string) error {
	query := `
		INSERT INTO search_history (word, ip_address)
		VALUES ($1, $2)
	`
	_, err := r.db.ExecContext(ctx, query, word, clientAddress)
	return err
}

// RecentWords returns distinct words ordered by their latest search, newest first
func (r *HistoryRepo) RecentWords(ctx context.Context, clientAddress string, limit int) ([]string, error) {
	query := `
		SELECT word
		FROM search_history
		WHERE ip_address = $1
		GROUP BY word
		ORDER BY MAX(searched_at) DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, clientAddress, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	words := make([]string, 0, limit)
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		words = append(words, w)
	}

	return words, rows.Err()
}
