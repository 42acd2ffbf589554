// Package handlers serves the HTML pages and Kubernetes probes.
package handlers

import (
	"context"
	"mime/multipart"

	"ayurvignana/internal/models"
	"ayurvignana/internal/services"
)

// Recommender matches symptom text to remedies.
type Recommender interface {
	Recommend(symptoms string) ([]models.Remedy, error)
	Suggestions() []string
}

// Identifier classifies uploaded herb images.
type Identifier interface {
	Identify(ctx context.Context, file *multipart.FileHeader) (*services.IdentifyResult, error)
}
