package testutil

import (
	"context"
	"os"

	"dictko/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockHistoryRepository is a mock for HistoryRepository
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) AddSearch(ctx context.Context, word, clientAddress string) error {
	args := m.Called(ctx, word, clientAddress)
	return args.Error(0)
}

func (m *MockHistoryRepository) RecentWords(ctx context.Context, clientAddress string, limit int) ([]string, error) {
	args := m.Called(ctx, clientAddress, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockFavoriteRepository is a mock for FavoriteRepository
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) FavoriteExists(ctx context.Context, word, clientAddress string) (bool, error) {
	args := m.Called(ctx, word, clientAddress)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) AddFavorite(ctx context.Context, fav *domain.Favorite) (bool, error) {
	args := m.Called(ctx, fav)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) ListFavorites(ctx context.Context, clientAddress string) ([]domain.Favorite, error) {
	args := m.Called(ctx, clientAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) RemoveFavorite(ctx context.Context, id int, clientAddress string) (string, error) {
	args := m.Called(ctx, id, clientAddress)
	return args.String(0), args.Error(1)
}

// MockDictionary is a mock for the dictionary client
type MockDictionary struct {
	mock.Mock
}

func (m *MockDictionary) Lookup(ctx context.Context, word string) (*domain.WordResult, error) {
	args := m.Called(ctx, word)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WordResult), args.Error(1)
}

// MockTranslator is a mock for the translation adapter
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, text string) string {
	args := m.Called(ctx, text)
	return args.String(0)
}

func (m *MockTranslator) TranslateBatch(ctx context.Context, texts []string) []string {
	args := m.Called(ctx, texts)
	return args.Get(0).([]string)
}

// MockTranslationBackend is a mock for translation.Backend
type MockTranslationBackend struct {
	mock.Mock
}

func (m *MockTranslationBackend) Translate(ctx context.Context, text, source, target string) (string, error) {
	args := m.Called(ctx, text, source, target)
	return args.String(0), args.Error(1)
}

func (m *MockTranslationBackend) Name() string {
	return "mock"
}

// MockSpeechProvider is a mock for speech.Provider.
// When the expectation returns a nil error and Payload is set, Payload is written to outputFile.
type MockSpeechProvider struct {
	mock.Mock
	Payload []byte
}

func (m *MockSpeechProvider) GenerateAudio(ctx context.Context, text string, slow bool, outputFile string) error {
	args := m.Called(ctx, text, slow, outputFile)
	if err := args.Error(0); err != nil {
		return err
	}
	if m.Payload != nil {
		return os.WriteFile(outputFile, m.Payload, 0o600)
	}
	return nil
}

func (m *MockSpeechProvider) Name() string {
	return "mock"
}
