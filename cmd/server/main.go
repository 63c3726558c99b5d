package main

import (
	"fmt"
	"log"

	"taxdoc/internal/config"
	"taxdoc/internal/handler"
	"taxdoc/internal/pipeline"
	"taxdoc/internal/port"
	"taxdoc/internal/repository/postgres"
	"taxdoc/internal/router"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// The processing history is optional; the pipeline itself has no
	// database dependency.
	var history port.ProcessingHistoryRepository
	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		log.Printf("database unavailable, running without processing history: %v", err)
	} else {
		defer db.Close()
		history = postgres.NewHistoryRepo(db)
	}

	processor := pipeline.NewProcessor()

	docH := handler.NewDocumentHandler(processor, history,
		cfg.Pipeline.BatchConcurrency, cfg.Pipeline.MaxBatchSize)
	healthH := handler.NewHealthHandler(db)

	r := router.Setup(cfg, docH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
