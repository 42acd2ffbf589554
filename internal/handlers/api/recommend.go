package api

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"ayurvignana/internal/matcher"
	"ayurvignana/internal/models"
)

// Recommender matches symptom text to remedies.
type Recommender interface {
	Recommend(symptoms string) ([]models.Remedy, error)
}

// RecommendHandler handles symptom recommendations via JSON API.
type RecommendHandler struct {
	svc Recommender
}

// NewRecommendHandler creates a new API recommend handler.
func NewRecommendHandler(svc Recommender) *RecommendHandler {
	return &RecommendHandler{svc: svc}
}

// Recommend returns the remedies for the symptoms in the request body.
func (h *RecommendHandler) Recommend(c fiber.Ctx) error {
	var body models.RecommendRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if body.Symptoms == nil || strings.TrimSpace(*body.Symptoms) == "" {
		return jsonError(c, fiber.StatusBadRequest, "No symptoms provided")
	}

	remedies, err := h.svc.Recommend(*body.Symptoms)
	if err != nil {
		if errors.Is(err, matcher.ErrEmptyInput) {
			return jsonError(c, fiber.StatusBadRequest, "No symptoms provided")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to get recommendations")
	}

	return c.JSON(models.RecommendResponse{Recommendations: remedies})
}
