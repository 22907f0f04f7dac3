package service

import (
	"context"
	"errors"

	"github.com/jfarje/usell-backend/internal/model"
	"github.com/jfarje/usell-backend/internal/repository"
	"gorm.io/gorm"
)

type WishPostService interface {
	Add(ctx context.Context, studentID, postID uint64) (*model.WishPost, error)
	ListByStudent(ctx context.Context, studentID uint64) ([]model.WishPost, error)
	Remove(ctx context.Context, id uint64) error
}

type wishPostService struct {
	wishRepo    repository.WishPostRepository
	studentRepo repository.StudentRepository
	postRepo    repository.PostRepository
}

func NewWishPostService(
	wishRepo repository.WishPostRepository,
	studentRepo repository.StudentRepository,
	postRepo repository.PostRepository,
) WishPostService {
	return &wishPostService{wishRepo: wishRepo, studentRepo: studentRepo, postRepo: postRepo}
}

func (s *wishPostService) Add(ctx context.Context, studentID, postID uint64) (*model.WishPost, error) {
	if _, err := s.studentRepo.FindByID(ctx, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	if _, err := s.postRepo.FindActiveByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotAvailable
		}
		return nil, err
	}

	wish := &model.WishPost{PostID: postID, StudentID: studentID}
	if err := s.wishRepo.Create(ctx, wish); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyWished
		}
		return nil, err
	}
	return wish, nil
}

func (s *wishPostService) ListByStudent(ctx context.Context, studentID uint64) ([]model.WishPost, error) {
	return s.wishRepo.ListByStudent(ctx, studentID)
}

func (s *wishPostService) Remove(ctx context.Context, id uint64) error {
	if _, err := s.wishRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWishNotFound
		}
		return err
	}
	return s.wishRepo.Delete(ctx, id)
}
