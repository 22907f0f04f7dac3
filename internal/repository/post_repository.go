package repository

import (
	"context"

	"github.com/jfarje/usell-backend/internal/model"
	"gorm.io/gorm"
)

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	FindActiveByID(ctx context.Context, id uint64) (*model.Post, error)
	ListAll(ctx context.Context) ([]model.Post, error)
	ListActiveByStudent(ctx context.Context, studentID uint64) ([]model.Post, error)
	ListByCategory(ctx context.Context, categoryID uint64) ([]model.Post, error)
	ListRecent(ctx context.Context, excludeStudentID uint64, limit int) ([]model.Post, error)
	MarkInProcessIfActive(ctx context.Context, id uint64) (int64, error)
	CountByStudent(ctx context.Context, studentID uint64) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// withViewRelations preloads everything the post view renders.
func (r *postRepository) withViewRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Category").
		Preload("Student.Career").
		Preload("Careers")
}

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) FindActiveByID(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	if err := r.withViewRelations(ctx).
		Where("id = ? AND status = ?", id, model.PostStatusActive).
		First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) ListAll(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	if err := r.withViewRelations(ctx).Order("id").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) ListActiveByStudent(ctx context.Context, studentID uint64) ([]model.Post, error) {
	var posts []model.Post
	if err := r.withViewRelations(ctx).
		Where("student_id = ? AND status = ?", studentID, model.PostStatusActive).
		Order("id").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) ListByCategory(ctx context.Context, categoryID uint64) ([]model.Post, error) {
	var posts []model.Post
	if err := r.withViewRelations(ctx).
		Where("category_id = ?", categoryID).
		Order("id").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ListRecent uses id as the recency surrogate: newest rows first.
func (r *postRepository) ListRecent(ctx context.Context, excludeStudentID uint64, limit int) ([]model.Post, error) {
	var posts []model.Post
	if err := r.withViewRelations(ctx).
		Where("student_id <> ? AND status = ?", excludeStudentID, model.PostStatusActive).
		Order("id DESC").
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// MarkInProcessIfActive flips the status with a conditional update so two
// concurrent purchases of the same post can never both win. Returns the
// number of rows changed (0 or 1).
func (r *postRepository) MarkInProcessIfActive(ctx context.Context, id uint64) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ? AND status = ?", id, model.PostStatusActive).
		Update("status", model.PostStatusInProcess)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *postRepository) CountByStudent(ctx context.Context, studentID uint64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("student_id = ?", studentID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
