package models

import (
	"strconv"
	"time"
)

// HealthResponse is returned by the API health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// RecommendRequest is the body accepted by the recommend endpoint.
type RecommendRequest struct {
	Symptoms *string `json:"symptoms"`
}

// RecommendResponse lists the remedies matched for a symptom description.
type RecommendResponse struct {
	Recommendations []Remedy `json:"recommendations"`
}

// PredictResponse describes an identified herb.
type PredictResponse struct {
	Name        string  `json:"name"`
	Scientific  string  `json:"scientific"`
	Nature      string  `json:"nature"`
	Dosha       string  `json:"dosha"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// ConfidenceText formats the confidence with one decimal, e.g. "92.4%".
func (p PredictResponse) ConfidenceText() string {
	return strconv.FormatFloat(p.Confidence, 'f', 1, 64) + "%"
}

// Badge returns the accuracy label for the prediction.
func (p PredictResponse) Badge() string {
	return AccuracyBadge(p.Confidence)
}

// PredictNotFoundResponse is returned when the predicted herb has no catalog entry.
type PredictNotFoundResponse struct {
	Status     string  `json:"status"`
	Error      string  `json:"error"`
	Prediction string  `json:"prediction"`
	Confidence float64 `json:"confidence"`
}

// ClassifierStatusResponse reports the latest classifier health probe.
type ClassifierStatusResponse struct {
	Up        bool       `json:"up"`
	Status    string     `json:"status"`
	CheckedAt *time.Time `json:"checked_at,omitempty"`
}
