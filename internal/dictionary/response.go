package dictionary

// entry is one element of the dictionary API's list-shaped response
type entry struct {
	Word      string     `json:"word"`
	Phonetic  string     `json:"phonetic"`
	Phonetics []phonetic `json:"phonetics"`
	Meanings  []meaning  `json:"meanings"`
}

type phonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

type meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []definition `json:"definitions"`
}

type definition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example"`
	Synonyms   []string `json:"synonyms"`
	Antonyms   []string `json:"antonyms"`
}
