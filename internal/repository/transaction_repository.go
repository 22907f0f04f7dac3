package repository

import (
	"context"
	"errors"

	"github.com/jfarje/usell-backend/internal/model"
	"gorm.io/gorm"
)

// ErrPostNotActive means the conditional status flip matched no row: the post
// does not exist, was already sold, or lost the race to another purchaser.
var ErrPostNotActive = errors.New("post not active")

type TransactionRepository interface {
	CreateForActivePost(ctx context.Context, postID, studentID uint64) (*model.Transaction, error)
	CountByStudent(ctx context.Context, studentID uint64) (int64, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

// CreateForActivePost flips the post to inProcess and inserts the transaction
// row in one store transaction. Exactly one caller can succeed per post: the
// flip is conditional on status = active, and a zero-row update aborts the
// whole thing with ErrPostNotActive.
func (r *transactionRepository) CreateForActivePost(ctx context.Context, postID, studentID uint64) (*model.Transaction, error) {
	t := &model.Transaction{
		PostID:          postID,
		StudentID:       studentID,
		GeneralStatus:   model.TransactionStatusPending,
		SellerStatus:    model.TransactionStatusPending,
		PurchaserStatus: model.TransactionStatusPending,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Post{}).
			Where("id = ? AND status = ?", postID, model.PostStatusActive).
			Update("status", model.PostStatusInProcess)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrPostNotActive
		}
		return tx.Create(t).Error
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *transactionRepository) CountByStudent(ctx context.Context, studentID uint64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Where("student_id = ?", studentID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
