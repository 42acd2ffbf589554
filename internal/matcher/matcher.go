package matcher

import (
	"errors"
	"strings"

	"ayurvignana/internal/models"
)

// ErrEmptyInput is returned when the symptom text is empty after trimming.
var ErrEmptyInput = errors.New("symptoms must not be empty")

// Result is the outcome of a match, including the keywords that selected each bucket.
type Result struct {
	Keywords []string
	Remedies []models.Remedy
}

// Normalize trims surrounding whitespace and lower-cases text.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Match returns the concatenated remedy buckets of every keyword that occurs
// as a substring of the normalized symptoms, in knowledge base order.
//
// Matching is plain substring containment, not word matching: "skin" matches
// inside "skinny". Buckets are not deduplicated, ranked or scored, so a remedy
// listed under two matched keywords appears twice. No match yields an empty
// slice and a nil error.
func Match(symptoms string, kb *KnowledgeBase) ([]models.Remedy, error) {
	res, err := MatchDetailed(symptoms, kb)
	if err != nil {
		return nil, err
	}
	return res.Remedies, nil
}

// MatchDetailed is Match that also reports which keywords matched.
func MatchDetailed(symptoms string, kb *KnowledgeBase) (Result, error) {
	normalized := Normalize(symptoms)
	if normalized == "" {
		return Result{}, ErrEmptyInput
	}

	res := Result{
		Keywords: []string{},
		Remedies: []models.Remedy{},
	}
	if kb == nil {
		return res, nil
	}

	for _, e := range kb.entries {
		if !e.matches(normalized) {
			continue
		}
		res.Keywords = append(res.Keywords, e.Keyword)
		res.Remedies = append(res.Remedies, e.Remedies...)
	}

	return res, nil
}
