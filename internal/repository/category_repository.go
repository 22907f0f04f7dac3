package repository

import (
	"context"

	"github.com/jfarje/usell-backend/internal/model"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	FindByID(ctx context.Context, id uint64) (*model.Category, error)
	FindByName(ctx context.Context, name string) (*model.Category, error)
	ListAll(ctx context.Context) ([]model.Category, error)
	FirstOrCreate(ctx context.Context, category *model.Category) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) FindByID(ctx context.Context, id uint64) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindByName(ctx context.Context, name string) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) ListAll(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) FirstOrCreate(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).
		Where("name = ?", category.Name).
		FirstOrCreate(category).Error
}
