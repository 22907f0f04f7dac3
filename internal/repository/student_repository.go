package repository

import (
	"context"

	"github.com/jfarje/usell-backend/internal/model"
	"gorm.io/gorm"
)

type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	FindByID(ctx context.Context, id uint64) (*model.Student, error)
	ListAll(ctx context.Context) ([]model.Student, error)
	Delete(ctx context.Context, id uint64) error
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) FindByID(ctx context.Context, id uint64) (*model.Student, error) {
	var student model.Student
	if err := r.db.WithContext(ctx).
		Preload("Career").
		First(&student, id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) ListAll(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	if err := r.db.WithContext(ctx).
		Preload("Career").
		Order("id").
		Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&model.Student{}, id).Error
}
