package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"dictko/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestFavoriteRepo_FavoriteExists(t *testing.T) {
	for _, exists := range []bool{true, false} {
		t.Run(fmt.Sprintf("exists=%v", exists), func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewFavoriteRepo(db)

			mock.ExpectQuery("SELECT EXISTS").
				WithArgs("hello", "203.0.113.7").
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(exists))

			result, err := repo.FavoriteExists(context.Background(), "hello", "203.0.113.7")

			assert.NoError(t, err)
			assert.Equal(t, exists, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFavoriteRepo_AddFavorite(t *testing.T) {
	addedAt := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		mockRows        *sqlmock.Rows
		mockError       error
		expectedCreated bool
		expectedError   bool
	}{
		{
			name:            "inserted",
			mockRows:        sqlmock.NewRows([]string{"id", "added_at"}).AddRow(42, addedAt),
			expectedCreated: true,
		},
		{
			name:            "conflict leaves one record",
			mockRows:        sqlmock.NewRows([]string{"id", "added_at"}),
			expectedCreated: false,
		},
		{
			name:          "db error",
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewFavoriteRepo(db)

			fav := &domain.Favorite{
				Word:              "hello",
				Definition:        "used as a greeting",
				KoreanTranslation: "인사로 사용됨",
				ClientAddress:     "203.0.113.7",
			}

			expectation := mock.ExpectQuery("INSERT INTO favorite_words .* ON CONFLICT \\(word, ip_address\\) DO NOTHING").
				WithArgs(fav.Word, fav.Definition, fav.KoreanTranslation, fav.ClientAddress)
			if tt.mockError != nil {
				expectation.WillReturnError(tt.mockError)
			} else {
				expectation.WillReturnRows(tt.mockRows)
			}

			created, err := repo.AddFavorite(context.Background(), fav)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedCreated, created)
				if created {
					assert.Equal(t, 42, fav.ID)
					assert.Equal(t, addedAt, fav.AddedAt)
				}
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFavoriteRepo_ListFavorites(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewFavoriteRepo(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "word", "definition", "korean_translation", "added_at", "ip_address"}).
		AddRow(2, "resilient", "able to recover quickly", "빠르게 회복할 수 있는", now, "203.0.113.7").
		AddRow(1, "hello", "used as a greeting", "인사로 사용됨", now.Add(-time.Hour), "203.0.113.7")

	mock.ExpectQuery("SELECT id, word, definition, korean_translation, added_at, ip_address FROM favorite_words WHERE ip_address = \\$1 ORDER BY added_at DESC").
		WithArgs("203.0.113.7").
		WillReturnRows(rows)

	favorites, err := repo.ListFavorites(context.Background(), "203.0.113.7")

	assert.NoError(t, err)
	assert.Len(t, favorites, 2)
	assert.Equal(t, "resilient", favorites[0].Word)
	assert.Equal(t, "hello", favorites[1].Word)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRepo_ListFavorites_ScanError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewFavoriteRepo(db)

	rows := sqlmock.NewRows([]string{"id", "word", "definition", "korean_translation", "added_at", "ip_address"}).
		AddRow("invalid", "hello", "", "", time.Now(), "203.0.113.7")

	mock.ExpectQuery("SELECT id, word").WithArgs("203.0.113.7").WillReturnRows(rows)

	favorites, err := repo.ListFavorites(context.Background(), "203.0.113.7")

	assert.Error(t, err)
	assert.Nil(t, favorites)
}

func TestFavoriteRepo_RemoveFavorite(t *testing.T) {
	tests := []struct {
		name          string
		mockRows      *sqlmock.Rows
		mockError     error
		expectedWord  string
		expectedError error
	}{
		{
			name:         "owner removes",
			mockRows:     sqlmock.NewRows([]string{"word"}).AddRow("hello"),
			expectedWord: "hello",
		},
		{
			name:          "foreign or missing",
			mockRows:      sqlmock.NewRows([]string{"word"}),
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewFavoriteRepo(db)

			mock.ExpectQuery("DELETE FROM favorite_words WHERE id = \\$1 AND ip_address = \\$2 RETURNING word").
				WithArgs(7, "203.0.113.7").
				WillReturnRows(tt.mockRows)

			word, err := repo.RemoveFavorite(context.Background(), 7, "203.0.113.7")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedWord, word)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
