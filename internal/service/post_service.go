package service

import (
	"context"
	"errors"

	"github.com/jfarje/usell-backend/internal/model"
	"github.com/jfarje/usell-backend/internal/repository"
	"gorm.io/gorm"
)

// recentPostsLimit caps the /recent_posts feed.
const recentPostsLimit = 50

type PublishInput struct {
	CategoryName string
	StudentID    uint64
	CareerNames  []string
	Name         string
	Price        float64
	Description  string
	ImageURL     string
	Level        int
}

type PostService interface {
	Publish(ctx context.Context, in PublishInput) (*model.Post, error)
	GetActive(ctx context.Context, id uint64) (*model.Post, error)
	ListAll(ctx context.Context) ([]model.Post, error)
	ListActiveByStudent(ctx context.Context, studentID uint64) ([]model.Post, error)
	ListByCategory(ctx context.Context, categoryID uint64) ([]model.Post, error)
	ListRecent(ctx context.Context, studentID uint64) ([]model.Post, error)
}

type postService struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
	studentRepo  repository.StudentRepository
	careerRepo   repository.CareerRepository
}

func NewPostService(
	postRepo repository.PostRepository,
	categoryRepo repository.CategoryRepository,
	studentRepo repository.StudentRepository,
	careerRepo repository.CareerRepository,
) PostService {
	return &postService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		studentRepo:  studentRepo,
		careerRepo:   careerRepo,
	}
}

func (s *postService) Publish(ctx context.Context, in PublishInput) (*model.Post, error) {
	if in.Price < 0 {
		return nil, ErrInvalidPrice
	}

	category, err := s.categoryRepo.FindByName(ctx, in.CategoryName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	student, err := s.studentRepo.FindByID(ctx, in.StudentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	careers := make([]model.Career, 0, len(in.CareerNames))
	for _, name := range in.CareerNames {
		career, err := s.careerRepo.FindByName(ctx, name)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCareerNotFound
			}
			return nil, err
		}
		careers = append(careers, *career)
	}

	post := &model.Post{
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Status:      model.PostStatusActive,
		Level:       in.Level,
		CategoryID:  category.ID,
		Category:    category,
		StudentID:   student.ID,
		Student:     student,
		Careers:     careers,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) GetActive(ctx context.Context, id uint64) (*model.Post, error) {
	post, err := s.postRepo.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotAvailable
		}
		return nil, err
	}
	return post, nil
}

func (s *postService) ListAll(ctx context.Context) ([]model.Post, error) {
	return s.postRepo.ListAll(ctx)
}

func (s *postService) ListActiveByStudent(ctx context.Context, studentID uint64) ([]model.Post, error) {
	return s.postRepo.ListActiveByStudent(ctx, studentID)
}

func (s *postService) ListByCategory(ctx context.Context, categoryID uint64) ([]model.Post, error) {
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return s.postRepo.ListByCategory(ctx, categoryID)
}

// ListRecent returns the newest active posts from every seller except the
// requesting student.
func (s *postService) ListRecent(ctx context.Context, studentID uint64) ([]model.Post, error) {
	return s.postRepo.ListRecent(ctx, studentID, recentPostsLimit)
}
