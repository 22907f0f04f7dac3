// Loads the career and category fixtures. Safe to run more than once:
// existing rows are left untouched.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jfarje/usell-backend/internal/config"
	"github.com/jfarje/usell-backend/internal/db"
	"github.com/jfarje/usell-backend/internal/model"
	"github.com/jfarje/usell-backend/internal/repository"
	"github.com/jfarje/usell-backend/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	conn, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	if err := conn.AutoMigrate(&model.Career{}, &model.Category{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	catalog := service.NewCatalogService(
		repository.NewCareerRepository(conn),
		repository.NewCategoryRepository(conn),
	)
	if err := catalog.SeedCareers(ctx); err != nil {
		return fmt.Errorf("seed careers: %w", err)
	}
	if err := catalog.SeedCategories(ctx); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}

	log.Printf("fixtures loaded")
	return nil
}
