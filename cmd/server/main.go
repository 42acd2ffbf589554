package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ayurvignana/internal/classifier"
	"ayurvignana/internal/config"
	"ayurvignana/internal/db"
	"ayurvignana/internal/jobs"
	"ayurvignana/internal/matcher"
	"ayurvignana/internal/metrics"
	"ayurvignana/internal/models"
	"ayurvignana/internal/server"
	"ayurvignana/internal/services"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}

	// Load the symptom knowledge base
	kb, err := matcher.Load(cfg.KnowledgeFile)
	if err != nil {
		log.Fatalf("Failed to load knowledge base: %v", err)
	}
	log.Printf("Knowledge base loaded (%d symptom entries)", kb.Len())

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	if cfg.ShouldSeedHerbs() {
		herbs := herbsFromConfig(yamlCfg.GetHerbs())
		if len(herbs) == 0 {
			herbs = db.DefaultHerbs()
		}
		n, err := database.SeedHerbs(ctx, herbs)
		if err != nil {
			log.Fatalf("Failed to seed herb catalog: %v", err)
		}
		log.Printf("Herb catalog seeded (%d new herbs)", n)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	// Initialize metrics
	metrics.Init(database)

	// Classifier client and background monitor
	classes := yamlCfg.GetClasses()
	client := classifier.NewClient(cfg.ClassifierURL, classes, cfg.ClassifierTimeout)
	log.Printf("Classifier at %s (%d classes)", cfg.ClassifierURL, len(classes))

	monitor := jobs.NewClassifierMonitor(client, cfg.ClassifierCheckInterval)
	go monitor.Start(ctx)

	// Initialize server
	srv := server.New(cfg)
	srv.RegisterRoutes(server.Dependencies{
		Recommendations: services.NewRecommendationService(kb),
		Identifications: services.NewIdentificationService(client, database, cfg.UploadDir, cfg.MaxUploadBytes),
		Monitor:         monitor,
		DB:              database,
	})

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}

func herbsFromConfig(entries []config.HerbConfig) []models.Herb {
	herbs := make([]models.Herb, 0, len(entries))
	for _, e := range entries {
		herbs = append(herbs, models.Herb{
			Name:               e.Name,
			ScientificName:     e.ScientificName,
			Nature:             e.Nature,
			DoshaCompatibility: e.DoshaCompatibility,
			Description:        e.Description,
			Benefits:           e.Benefits,
			Contraindications:  e.Contraindications,
			Dosage:             e.Dosage,
		})
	}
	return herbs
}
