package models

import (
	"time"

	"github.com/google/uuid"
)

// Herb is a catalog entry returned for an identified image.
type Herb struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	ScientificName     string    `json:"scientific_name"`
	Nature             string    `json:"nature"`   // Warming, Cooling, Neutral
	DoshaCompatibility string    `json:"dosha"`    // e.g. "Vata, Kapha"
	Description        string    `json:"description"`
	Benefits           []string  `json:"benefits"`
	Contraindications  []string  `json:"contraindications"`
	Dosage             string    `json:"dosage"`
	CreatedAt          time.Time `json:"created_at"`
}

// Accuracy badge labels shown next to an identification result.
const (
	AccuracyHigh     = "High Accuracy"
	AccuracyGood     = "Good Accuracy"
	AccuracyModerate = "Moderate Accuracy"
)

// AccuracyBadge maps a 0-100 confidence score to its display label.
func AccuracyBadge(confidence float64) string {
	switch {
	case confidence >= 90:
		return AccuracyHigh
	case confidence >= 80:
		return AccuracyGood
	default:
		return AccuracyModerate
	}
}
