package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/static"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ayurvignana/internal/handlers"
	"ayurvignana/internal/handlers/api"
	"ayurvignana/internal/services"
)

// Dependencies are the collaborators the routes are served by.
type Dependencies struct {
	Recommendations *services.RecommendationService
	Identifications *services.IdentificationService
	Monitor         api.ClassifierStatus // nil disables /api/health/classifier
	DB              handlers.Pinger
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(deps Dependencies) {
	// Initialize handlers
	probeHandler := handlers.NewProbeHandler(deps.DB)
	pageHandler := handlers.NewPageHandler(deps.Recommendations, deps.Identifications, s.Cfg)
	healthAPI := api.NewHealthHandler(deps.Monitor)
	recommendAPI := api.NewRecommendHandler(deps.Recommendations)
	predictAPI := api.NewPredictHandler(deps.Identifications)

	// Kubernetes probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// JSON API
	apiGroup := s.App.Group("/api")
	apiGroup.Get("/health", healthAPI.Health)
	apiGroup.Get("/health/classifier", healthAPI.Classifier)
	apiGroup.Post("/recommend", recommendAPI.Recommend)
	apiGroup.Post("/predict", predictAPI.Predict)
	apiGroup.Get("/identifications", predictAPI.Recent)
	apiGroup.Get("/uploads/*", static.New(s.Cfg.UploadDir))

	// Pages
	s.App.Get("/", pageHandler.Index)
	s.App.Get("/recommendations", pageHandler.Recommendations)
	s.App.Post("/identify", pageHandler.Identify)
}
