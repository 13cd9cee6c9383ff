package domain

import "time"

// Definition is a single sense of a word with its optional Korean rendering
type Definition struct {
	PartOfSpeech  string
	English       string
	Example       string
	Korean        string
	KoreanExample string
}

// Meaning groups definitions under one part of speech
type Meaning struct {
	PartOfSpeech string
	Definitions  []Definition
}

// WordResult is the display model for one dictionary lookup
type WordResult struct {
	Word     string
	Phonetic string
	Meanings []Meaning
}

// FirstDefinition returns the English text of the first definition, if any
func (r *WordResult) FirstDefinition() string {
	for _, m := range r.Meanings {
		if len(m.Definitions) > 0 {
			return m.Definitions[0].English
		}
	}
	return ""
}

// SearchRecord is one entry of a client's search history
type SearchRecord struct {
	ID            int
	Word          string
	SearchedAt    time.Time
	ClientAddress string
}

// Favorite is a word saved by a client together with its cached definition
type Favorite struct {
	ID                int
	Word              string
	Definition        string
	KoreanTranslation string
	AddedAt           time.Time
	ClientAddress     string
}
