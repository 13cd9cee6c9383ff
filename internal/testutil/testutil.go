package testutil

import (
	"time"

	"dictko/internal/domain"

	"go.uber.org/zap"
)

// FakeMP3 is a minimal MPEG frame header used as audio payload in tests
var FakeMP3 = []byte{0xFF, 0xFB, 0x90, 0x64, 0x00, 0x00, 0x00, 0x00}

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestResult creates the "resilient" lookup result with one adjective definition
func NewTestResult() *domain.WordResult {
	return &domain.WordResult{
		Word:     "resilient",
		Phonetic: "/rɪˈzɪlɪənt/",
		Meanings: []domain.Meaning{
			{
				PartOfSpeech: "adjective",
				Definitions: []domain.Definition{
					{PartOfSpeech: "adjective", English: "able to recover quickly"},
				},
			},
		},
	}
}

// NewTestFavorite creates a test favorite
func NewTestFavorite(id int, word, clientAddress string) domain.Favorite {
	return domain.Favorite{
		ID:                id,
		Word:              word,
		Definition:        "definition of " + word,
		KoreanTranslation: word + " 정의",
		AddedAt:           time.Now(),
		ClientAddress:     clientAddress,
	}
}
