package repository

import (
	"context"

	"github.com/jfarje/usell-backend/internal/model"
	"gorm.io/gorm"
)

type CareerRepository interface {
	FindByName(ctx context.Context, name string) (*model.Career, error)
	ListAll(ctx context.Context) ([]model.Career, error)
	FirstOrCreate(ctx context.Context, name string) error
}

type careerRepository struct {
	db *gorm.DB
}

func NewCareerRepository(db *gorm.DB) CareerRepository {
	return &careerRepository{db: db}
}

func (r *careerRepository) FindByName(ctx context.Context, name string) (*model.Career, error) {
	var career model.Career
	if err := r.db.WithContext(ctx).
		Where("career_name = ?", name).
		First(&career).Error; err != nil {
		return nil, err
	}
	return &career, nil
}

func (r *careerRepository) ListAll(ctx context.Context) ([]model.Career, error) {
	var careers []model.Career
	if err := r.db.WithContext(ctx).Order("id").Find(&careers).Error; err != nil {
		return nil, err
	}
	return careers, nil
}

func (r *careerRepository) FirstOrCreate(ctx context.Context, name string) error {
	career := model.Career{CareerName: name}
	return r.db.WithContext(ctx).
		Where("career_name = ?", name).
		FirstOrCreate(&career).Error
}
