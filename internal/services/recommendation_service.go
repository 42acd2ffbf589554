package services

import (
	"ayurvignana/internal/matcher"
	"ayurvignana/internal/metrics"
	"ayurvignana/internal/models"
)

// RecommendationService answers symptom queries from a fixed knowledge base.
type RecommendationService struct {
	kb *matcher.KnowledgeBase
}

// NewRecommendationService creates a service over kb.
func NewRecommendationService(kb *matcher.KnowledgeBase) *RecommendationService {
	return &RecommendationService{kb: kb}
}

// Recommend matches symptoms against the knowledge base and records which
// keywords were hit. Blank symptoms fail with matcher.ErrEmptyInput.
func (s *RecommendationService) Recommend(symptoms string) ([]models.Remedy, error) {
	res, err := matcher.MatchDetailed(symptoms, s.kb)
	if err != nil {
		return nil, err
	}

	if len(res.Keywords) == 0 {
		metrics.RecordSymptomLookup(models.NoMatchKeyword, models.OutcomeNoMatch)
	}
	for _, k := range res.Keywords {
		metrics.RecordSymptomLookup(k, models.OutcomeMatched)
	}

	return res.Remedies, nil
}

// Suggestions returns the keywords offered as quick-pick chips.
func (s *RecommendationService) Suggestions() []string {
	return s.kb.Keywords()
}
