package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordResult_FirstDefinition(t *testing.T) {
	tests := []struct {
		name     string
		result   WordResult
		expected string
	}{
		{
			name: "first meaning has definitions",
			result: WordResult{Meanings: []Meaning{
				{PartOfSpeech: "noun", Definitions: []Definition{{English: "a greeting"}, {English: "a call"}}},
			}},
			expected: "a greeting",
		},
		{
			name: "first meaning empty",
			result: WordResult{Meanings: []Meaning{
				{PartOfSpeech: "noun"},
				{PartOfSpeech: "verb", Definitions: []Definition{{English: "to greet"}}},
			}},
			expected: "to greet",
		},
		{
			name:     "no meanings",
			result:   WordResult{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.result.FirstDefinition())
		})
	}
}
