package repository

import (
	"context"

	"github.com/jfarje/usell-backend/internal/model"
	"gorm.io/gorm"
)

type WishPostRepository interface {
	Create(ctx context.Context, wish *model.WishPost) error
	FindByID(ctx context.Context, id uint64) (*model.WishPost, error)
	ListByStudent(ctx context.Context, studentID uint64) ([]model.WishPost, error)
	Delete(ctx context.Context, id uint64) error
	CountByStudent(ctx context.Context, studentID uint64) (int64, error)
}

type wishPostRepository struct {
	db *gorm.DB
}

func NewWishPostRepository(db *gorm.DB) WishPostRepository {
	return &wishPostRepository{db: db}
}

func (r *wishPostRepository) Create(ctx context.Context, wish *model.WishPost) error {
	return r.db.WithContext(ctx).Create(wish).Error
}

func (r *wishPostRepository) FindByID(ctx context.Context, id uint64) (*model.WishPost, error) {
	var wish model.WishPost
	if err := r.db.WithContext(ctx).First(&wish, id).Error; err != nil {
		return nil, err
	}
	return &wish, nil
}

func (r *wishPostRepository) ListByStudent(ctx context.Context, studentID uint64) ([]model.WishPost, error) {
	var wishes []model.WishPost
	if err := r.db.WithContext(ctx).
		Preload("Post.Category").
		Preload("Post.Student.Career").
		Preload("Post.Careers").
		Where("student_id = ?", studentID).
		Order("added_date DESC").
		Find(&wishes).Error; err != nil {
		return nil, err
	}
	return wishes, nil
}

func (r *wishPostRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&model.WishPost{}, id).Error
}

func (r *wishPostRepository) CountByStudent(ctx context.Context, studentID uint64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.WishPost{}).
		Where("student_id = ?", studentID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
