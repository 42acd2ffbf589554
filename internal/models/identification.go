package models

import (
	"time"

	"github.com/google/uuid"
)

// Identification records one classifier prediction for an uploaded image.
type Identification struct {
	ID         uuid.UUID `json:"id"`
	Filename   string    `json:"filename"`
	Label      string    `json:"label"`
	ClassIndex int       `json:"class_index"`
	Confidence float64   `json:"confidence"` // 0-100
	HerbFound  bool      `json:"herb_found"`
	CreatedAt  time.Time `json:"created_at"`
}
