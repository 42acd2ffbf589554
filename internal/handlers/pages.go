package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v3"

	"ayurvignana/internal/config"
	"ayurvignana/internal/db"
	"ayurvignana/internal/matcher"
	"ayurvignana/internal/models"
	"ayurvignana/internal/services"
	"ayurvignana/internal/validation"
)

// PageHandler renders the symptom and identification pages.
type PageHandler struct {
	rec   Recommender
	ident Identifier
	cfg   *config.Config
}

// NewPageHandler creates a new page handler.
func NewPageHandler(rec Recommender, ident Identifier, cfg *config.Config) *PageHandler {
	return &PageHandler{rec: rec, ident: ident, cfg: cfg}
}

// Index renders the home page with the symptom form and the upload form.
func (h *PageHandler) Index(c fiber.Ctx) error {
	return c.Render("index", MergeBranding(fiber.Map{
		"Suggestions": h.rec.Suggestions(),
	}, h.cfg))
}

// Recommendations renders remedy cards for the symptoms query parameter,
// optionally filtered by the type parameter.
func (h *PageHandler) Recommendations(c fiber.Ctx) error {
	symptoms := c.Query("symptoms", "")
	category := validation.NormalizeCategory(c.Query("type", ""))
	if !validation.ValidateCategory(category) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid remedy type")
	}

	remedies, err := h.rec.Recommend(symptoms)
	if err != nil {
		if errors.Is(err, matcher.ErrEmptyInput) {
			return c.Status(fiber.StatusBadRequest).Render("index", MergeBranding(fiber.Map{
				"Suggestions":  h.rec.Suggestions(),
				"SymptomError": "Please describe your symptoms",
			}, h.cfg))
		}
		return err
	}

	if category == "" {
		category = models.CategoryAll
	}

	return c.Render("recommendations", MergeBranding(fiber.Map{
		"Symptoms":   symptoms,
		"Remedies":   models.FilterRemedies(remedies, category),
		"Total":      len(remedies),
		"Categories": append([]string{models.CategoryAll}, models.Categories(remedies)...),
		"Active":     category,
	}, h.cfg))
}

// Identify classifies the uploaded image and renders the herb card.
func (h *PageHandler) Identify(c fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return h.renderUploadError(c, "No image provided")
	}

	result, err := h.ident.Identify(c.Context(), file)
	if err != nil {
		var imgErr *services.ImageError
		switch {
		case errors.As(err, &imgErr):
			return h.renderUploadError(c, imgErr.Message)
		case errors.Is(err, db.ErrHerbNotFound):
			return c.Status(fiber.StatusNotFound).Render("identification", MergeBranding(fiber.Map{
				"NotFound":   true,
				"Prediction": result.Response(),
			}, h.cfg))
		case errors.Is(err, services.ErrClassifierUnavailable):
			log.Printf("Classifier error: %v", err)
			return fiber.NewError(fiber.StatusBadGateway, "The identification service is unavailable. Please try again later.")
		default:
			return err
		}
	}

	return c.Render("identification", MergeBranding(fiber.Map{
		"Prediction": result.Response(),
		"Herb":       result.Herb,
	}, h.cfg))
}

func (h *PageHandler) renderUploadError(c fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).Render("index", MergeBranding(fiber.Map{
		"Suggestions": h.rec.Suggestions(),
		"UploadError": strings.TrimSpace(message),
	}, h.cfg))
}
