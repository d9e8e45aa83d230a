package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"insights-backend/application/usecases"
	"insights-backend/infrastructure/config"
	"insights-backend/infrastructure/di"

	"go.uber.org/zap"
)

// Seeds the entity tables with the built-in sample items and prints the
// run report as JSON.
func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err := di.InitializeContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer container.Logger.Sync()

	items := usecases.DefaultSeedItems()
	container.Logger.Info("Seeding sample data", zap.Int("items", len(items)))

	report := container.Seeder.Run(ctx, items)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		log.Fatalf("Failed to encode report: %v", err)
	}

	if len(report.Errors) > 0 {
		container.Logger.Warn("Seed run finished with errors",
			zap.Int("processed", report.ItemsProcessed),
			zap.Int("errors", len(report.Errors)),
		)
		os.Exit(1)
	}
}
