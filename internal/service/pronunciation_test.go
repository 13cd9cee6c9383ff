package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"dictko/internal/domain"
	"dictko/internal/speech"
	"dictko/internal/testutil"
	"dictko/internal/word"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPronunciationService(t *testing.T, provider *testutil.MockSpeechProvider) *PronunciationService {
	t.Helper()
	synth := speech.NewSynthesizer(provider, time.Second, t.TempDir(), nil, testutil.NewTestLogger())
	return NewPronunciationService(synth, testutil.NewTestLogger())
}

func TestPronunciationService_Pronounce(t *testing.T) {
	tests := []struct {
		name         string
		speed        string
		slow         bool
		expectedName string
	}{
		{name: "default speed", speed: "", slow: false, expectedName: "hello_pronunciation.mp3"},
		{name: "normal speed", speed: "normal", slow: false, expectedName: "hello_pronunciation.mp3"},
		{name: "slow speed", speed: "slow", slow: true, expectedName: "hello_slow_pronunciation.mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &testutil.MockSpeechProvider{Payload: testutil.FakeMP3}
			provider.On("GenerateAudio", mock.Anything, "hello", tt.slow, mock.AnythingOfType("string")).Return(nil)

			svc := newPronunciationService(t, provider)

			audio, name, err := svc.Pronounce(context.Background(), "Hello", tt.speed)
			require.NoError(t, err)
			defer audio.Close()

			assert.Equal(t, tt.expectedName, name)
			data, err := io.ReadAll(audio)
			require.NoError(t, err)
			assert.Equal(t, testutil.FakeMP3, data)
		})
	}
}

func TestPronunciationService_Pronounce_Rejected(t *testing.T) {
	tests := []struct {
		name        string
		word        string
		speed       string
		expectedErr error
	}{
		{name: "invalid characters", word: "hello!!", speed: "slow", expectedErr: word.ErrInvalid},
		{name: "empty word", word: "  ", speed: "", expectedErr: word.ErrEmpty},
		{name: "unknown speed", word: "hello", speed: "fast", expectedErr: ErrUnknownSpeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := new(testutil.MockSpeechProvider)
			svc := newPronunciationService(t, provider)

			audio, _, err := svc.Pronounce(context.Background(), tt.word, tt.speed)

			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Nil(t, audio)
			provider.AssertNotCalled(t, "GenerateAudio", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestPronunciationService_Pronounce_SynthesisError(t *testing.T) {
	provider := new(testutil.MockSpeechProvider)
	provider.On("GenerateAudio", mock.Anything, "hello", false, mock.AnythingOfType("string")).Return(errors.New("tts down"))

	svc := newPronunciationService(t, provider)

	audio, _, err := svc.Pronounce(context.Background(), "hello", "")

	assert.ErrorIs(t, err, domain.ErrSynthesis)
	assert.Nil(t, audio)
}
