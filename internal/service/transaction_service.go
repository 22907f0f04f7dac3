package service

import (
	"context"
	"errors"

	"github.com/jfarje/usell-backend/internal/model"
	"github.com/jfarje/usell-backend/internal/repository"
	"gorm.io/gorm"
)

type TransactionService interface {
	Purchase(ctx context.Context, studentID, postID uint64) (*model.Transaction, error)
}

type transactionService struct {
	txRepo      repository.TransactionRepository
	studentRepo repository.StudentRepository
}

func NewTransactionService(txRepo repository.TransactionRepository, studentRepo repository.StudentRepository) TransactionService {
	return &transactionService{txRepo: txRepo, studentRepo: studentRepo}
}

// Purchase records studentID buying postID. The post flip and the
// transaction insert happen atomically in the repository; if the post is
// gone or another purchaser got there first, the whole call fails with
// ErrPostNotAvailable and nothing is persisted.
func (s *transactionService) Purchase(ctx context.Context, studentID, postID uint64) (*model.Transaction, error) {
	if _, err := s.studentRepo.FindByID(ctx, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	t, err := s.txRepo.CreateForActivePost(ctx, postID, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotActive) {
			return nil, ErrPostNotAvailable
		}
		return nil, err
	}
	return t, nil
}
