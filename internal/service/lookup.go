package service

import (
	"context"
	"errors"
	"fmt"

	"dictko/internal/domain"
	"dictko/internal/repository"
	"dictko/internal/word"

	"go.uber.org/zap"
)

// DefaultMaxTranslationsPerGroup caps translated definitions per part of speech
const DefaultMaxTranslationsPerGroup = 3

// Pipeline stage names, used in logs
const (
	StageRecordHistory        = "record_history"
	StageFetchDefinition      = "fetch_definition"
	StageTranslateDefinitions = "translate_definitions"
)

// LookupService runs the word definition pipeline
type LookupService struct {
	history     repository.HistoryRepository
	dictionary  Dictionary
	translator  Translator
	maxPerGroup int
	logger      *zap.Logger
}

// NewLookupService creates a lookup service. history may be nil when persistence is disabled.
func NewLookupService(
	history repository.HistoryRepository,
	dictionary Dictionary,
	translator Translator,
	maxPerGroup int,
	logger *zap.Logger,
) *LookupService {
	if maxPerGroup <= 0 {
		maxPerGroup = DefaultMaxTranslationsPerGroup
	}
	return &LookupService{
		history:     history,
		dictionary:  dictionary,
		translator:  translator,
		maxPerGroup: maxPerGroup,
		logger:      logger,
	}
}

type lookupState struct {
	word   string
	client string
	result *domain.WordResult
}

type stage struct {
	name string
	run  func(ctx context.Context, st *lookupState) error
}

func (s *LookupService) stages() []stage {
	return []stage{
		{name: StageRecordHistory, run: func(ctx context.Context, st *lookupState) error {
			s.RecordHistory(ctx, st.word, st.client)
			return nil
		}},
		{name: StageFetchDefinition, run: func(ctx context.Context, st *lookupState) error {
			result, err := s.FetchDefinition(ctx, st.word)
			st.result = result
			return err
		}},
		{name: StageTranslateDefinitions, run: func(ctx context.Context, st *lookupState) error {
			s.TranslateDefinitions(ctx, st.result)
			return nil
		}},
	}
}

// Lookup validates raw and runs record_history, fetch_definition and
// translate_definitions in order. Invalid input returns domain.ErrValidation
// before any external call.
func (s *LookupService) Lookup(ctx context.Context, raw, clientAddress string) (*domain.WordResult, error) {
	w, err := word.Parse(raw)
	if err != nil {
		return nil, err
	}

	st := &lookupState{word: w, client: clientAddress}
	for _, stg := range s.stages() {
		if err := stg.run(ctx, st); err != nil {
			s.logger.Warn("Lookup pipeline stopped",
				zap.String("stage", stg.name),
				zap.String("word", w),
				zap.Error(err),
			)
			return nil, err
		}
	}

	return st.result, nil
}

// RecordHistory appends a search record. Failures are logged and swallowed.
func (s *LookupService) RecordHistory(ctx context.Context, w, clientAddress string) {
	if s.history == nil {
		return
	}
	if err := s.history.AddSearch(ctx, w, clientAddress); err != nil {
		s.logger.Error("Failed to save search history",
			zap.String("word", w),
			zap.Error(err),
		)
	}
}

// FetchDefinition calls the dictionary and maps unexpected failures to domain.ErrInternal
func (s *LookupService) FetchDefinition(ctx context.Context, w string) (*domain.WordResult, error) {
	result, err := s.dictionary.Lookup(ctx, w)
	if err == nil {
		return result, nil
	}

	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUpstreamUnavailable),
		errors.Is(err, domain.ErrInternal):
		return nil, err
	default:
		return nil, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}
}

// TranslateDefinitions fills Korean fields in place for the first maxPerGroup
// definitions of every meaning, definition text before example. Untranslated text
// leaves the Korean field empty.
func (s *LookupService) TranslateDefinitions(ctx context.Context, result *domain.WordResult) {
	if result == nil {
		return
	}

	var texts []string
	var targets []*string
	for mi := range result.Meanings {
		defs := result.Meanings[mi].Definitions
		for di := 0; di < len(defs) && di < s.maxPerGroup; di++ {
			def := &defs[di]
			texts = append(texts, def.English)
			targets = append(targets, &def.Korean)
			if def.Example != "" {
				texts = append(texts, def.Example)
				targets = append(targets, &def.KoreanExample)
			}
		}
	}
	if len(texts) == 0 {
		return
	}

	translated := s.translator.TranslateBatch(ctx, texts)
	for i, target := range targets {
		if i >= len(translated) {
			break
		}
		if translated[i] != texts[i] {
			*target = translated[i]
		}
	}

	s.logger.Debug("Definitions translated",
		zap.String("word", result.Word),
		zap.Int("texts", len(texts)),
	)
}
