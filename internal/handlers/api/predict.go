package api

import (
	"context"
	"errors"
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v3"

	"ayurvignana/internal/db"
	"ayurvignana/internal/models"
	"ayurvignana/internal/services"
)

const recentIdentificationsLimit = 20

// Identifier classifies uploaded herb images.
type Identifier interface {
	Identify(ctx context.Context, file *multipart.FileHeader) (*services.IdentifyResult, error)
	Recent(ctx context.Context, limit int) ([]models.Identification, error)
}

// PredictHandler handles herb identification via JSON API.
type PredictHandler struct {
	svc Identifier
}

// NewPredictHandler creates a new API predict handler.
func NewPredictHandler(svc Identifier) *PredictHandler {
	return &PredictHandler{svc: svc}
}

// Predict identifies the herb in the uploaded "image" field.
func (h *PredictHandler) Predict(c fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "No image provided")
	}

	result, err := h.svc.Identify(c.Context(), file)
	if err != nil {
		var imgErr *services.ImageError
		switch {
		case errors.As(err, &imgErr):
			return jsonError(c, fiber.StatusBadRequest, imgErr.Message)
		case errors.Is(err, db.ErrHerbNotFound):
			return c.Status(fiber.StatusNotFound).JSON(models.PredictNotFoundResponse{
				Status:     "error",
				Error:      "Herb details not found in database",
				Prediction: result.Prediction.Label,
				Confidence: result.Prediction.Confidence,
			})
		case errors.Is(err, services.ErrClassifierUnavailable):
			log.Printf("Classifier error: %v", err)
			return jsonError(c, fiber.StatusBadGateway, "classification service unavailable")
		default:
			log.Printf("Identification error: %v", err)
			return jsonError(c, fiber.StatusInternalServerError, "failed to identify herb")
		}
	}

	return c.JSON(result.Response())
}

// Recent returns the latest identifications, newest first.
func (h *PredictHandler) Recent(c fiber.Ctx) error {
	idents, err := h.svc.Recent(c.Context(), recentIdentificationsLimit)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch identifications")
	}

	return jsonSuccess(c, idents)
}
