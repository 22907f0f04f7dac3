package service

import (
	"context"
	"errors"

	"github.com/jfarje/usell-backend/internal/model"
	"github.com/jfarje/usell-backend/internal/repository"
	"gorm.io/gorm"
)

type RegisterInput struct {
	ID              uint64
	Email           string
	Name            string
	Level           int
	PhoneNumber     string
	CareerName      string
	ProfileImageURL *string
}

type StudentService interface {
	Register(ctx context.Context, in RegisterInput) (*model.Student, error)
	Get(ctx context.Context, id uint64) (*model.Student, error)
	ListAll(ctx context.Context) ([]model.Student, error)
	Delete(ctx context.Context, id uint64) error
}

type studentService struct {
	studentRepo repository.StudentRepository
	careerRepo  repository.CareerRepository
	postRepo    repository.PostRepository
	txRepo      repository.TransactionRepository
	wishRepo    repository.WishPostRepository
}

func NewStudentService(
	studentRepo repository.StudentRepository,
	careerRepo repository.CareerRepository,
	postRepo repository.PostRepository,
	txRepo repository.TransactionRepository,
	wishRepo repository.WishPostRepository,
) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		careerRepo:  careerRepo,
		postRepo:    postRepo,
		txRepo:      txRepo,
		wishRepo:    wishRepo,
	}
}

func (s *studentService) Register(ctx context.Context, in RegisterInput) (*model.Student, error) {
	career, err := s.careerRepo.FindByName(ctx, in.CareerName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCareerNotFound
		}
		return nil, err
	}

	student := &model.Student{
		ID:              in.ID,
		Email:           in.Email,
		Name:            in.Name,
		Level:           in.Level,
		PhoneNumber:     in.PhoneNumber,
		ProfileImageURL: in.ProfileImageURL,
		CareerID:        career.ID,
		Career:          career,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyRegistered
		}
		return nil, err
	}
	return student, nil
}

func (s *studentService) Get(ctx context.Context, id uint64) (*model.Student, error) {
	student, err := s.studentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return student, nil
}

func (s *studentService) ListAll(ctx context.Context) ([]model.Student, error) {
	return s.studentRepo.ListAll(ctx)
}

// Delete refuses to remove a student who still has posts, transactions or
// wish entries. Cascading here would erase purchase history that also
// belongs to the other party.
func (s *studentService) Delete(ctx context.Context, id uint64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	for _, count := range []func(context.Context, uint64) (int64, error){
		s.postRepo.CountByStudent,
		s.txRepo.CountByStudent,
		s.wishRepo.CountByStudent,
	} {
		n, err := count(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrHasDependents
		}
	}
	return s.studentRepo.Delete(ctx, id)
}
