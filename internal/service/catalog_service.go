package service

import (
	"context"

	"github.com/jfarje/usell-backend/internal/model"
	"github.com/jfarje/usell-backend/internal/repository"
	"github.com/jfarje/usell-backend/internal/seed"
)

// CatalogService serves the career and category reference data and loads the
// seed fixtures. Seeding is idempotent: rows already present are left alone.
type CatalogService interface {
	ListCareers(ctx context.Context) ([]model.Career, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	SeedCareers(ctx context.Context) error
	SeedCategories(ctx context.Context) error
}

type catalogService struct {
	careerRepo   repository.CareerRepository
	categoryRepo repository.CategoryRepository
}

func NewCatalogService(careerRepo repository.CareerRepository, categoryRepo repository.CategoryRepository) CatalogService {
	return &catalogService{careerRepo: careerRepo, categoryRepo: categoryRepo}
}

func (s *catalogService) ListCareers(ctx context.Context) ([]model.Career, error) {
	return s.careerRepo.ListAll(ctx)
}

func (s *catalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepo.ListAll(ctx)
}

func (s *catalogService) SeedCareers(ctx context.Context) error {
	for _, name := range seed.CareerNames() {
		if err := s.careerRepo.FirstOrCreate(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

func (s *catalogService) SeedCategories(ctx context.Context) error {
	for _, category := range seed.Categories() {
		c := category
		if err := s.categoryRepo.FirstOrCreate(ctx, &c); err != nil {
			return err
		}
	}
	return nil
}
