package api

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"ayurvignana/internal/models"
)

// ClassifierStatus reports the latest classifier probe.
type ClassifierStatus interface {
	Status() (up bool, status string, checkedAt time.Time)
}

// HealthHandler serves the API liveness endpoints.
type HealthHandler struct {
	monitor ClassifierStatus
}

// NewHealthHandler creates a new API health handler. monitor may be nil.
func NewHealthHandler(monitor ClassifierStatus) *HealthHandler {
	return &HealthHandler{monitor: monitor}
}

// Health reports that the API process is running. It never depends on the
// classifier or the database.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status:  "healthy",
		Message: "AyurVignana API is running",
	})
}

// Classifier returns the result of the latest background classifier probe.
func (h *HealthHandler) Classifier(c fiber.Ctx) error {
	if h.monitor == nil {
		return jsonError(c, fiber.StatusNotFound, "classifier monitor disabled")
	}

	up, status, checkedAt := h.monitor.Status()
	resp := models.ClassifierStatusResponse{
		Up:     up,
		Status: status,
	}
	if !checkedAt.IsZero() {
		resp.CheckedAt = &checkedAt
	}

	return jsonSuccess(c, resp)
}
