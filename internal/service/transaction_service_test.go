package service

import (
	"context"
	"sync"
	"testing"

	"github.com/jfarje/usell-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPurchaseFixture() (TransactionService, *fakePostRepo, *fakeTransactionRepo) {
	students := newFakeStudentRepo(
		&model.Student{ID: 1, Email: "a@x.com"},
		&model.Student{ID: 2, Email: "b@x.com"},
	)
	posts := newFakePostRepo()
	txs := newFakeTransactionRepo(posts)
	return NewTransactionService(txs, students), posts, txs
}

func TestPurchase(t *testing.T) {
	t.Run("unknown student", func(t *testing.T) {
		svc, posts, _ := newPurchaseFixture()
		require.NoError(t, posts.Create(context.Background(), &model.Post{StudentID: 1, Status: model.PostStatusActive}))
		_, err := svc.Purchase(context.Background(), 99, 1)
		assert.ErrorIs(t, err, ErrStudentNotFound)
	})

	t.Run("post already sold", func(t *testing.T) {
		svc, posts, txs := newPurchaseFixture()
		require.NoError(t, posts.Create(context.Background(), &model.Post{StudentID: 1, Status: model.PostStatusInProcess}))
		_, err := svc.Purchase(context.Background(), 2, 1)
		assert.ErrorIs(t, err, ErrPostNotAvailable)
		assert.Empty(t, txs.created)
	})

	t.Run("flips the post and records pending statuses", func(t *testing.T) {
		svc, posts, txs := newPurchaseFixture()
		require.NoError(t, posts.Create(context.Background(), &model.Post{StudentID: 1, Status: model.PostStatusActive}))

		tx, err := svc.Purchase(context.Background(), 2, 1)
		require.NoError(t, err)
		assert.Equal(t, model.PostStatusInProcess, posts.posts[1].Status)
		assert.Equal(t, model.TransactionStatusPending, tx.GeneralStatus)
		assert.Equal(t, model.TransactionStatusPending, tx.SellerStatus)
		assert.Equal(t, model.TransactionStatusPending, tx.PurchaserStatus)
		require.Len(t, txs.created, 1)
	})
}

// Two concurrent purchases of the same post: exactly one wins, exactly one
// transaction row exists, the loser sees ErrPostNotAvailable.
func TestPurchaseConcurrent(t *testing.T) {
	svc, posts, txs := newPurchaseFixture()
	require.NoError(t, posts.Create(context.Background(), &model.Post{StudentID: 1, Status: model.PostStatusActive}))

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Purchase(context.Background(), uint64(i+1), 1)
		}(i)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case assert.ErrorIs(t, err, ErrPostNotAvailable):
			lost++
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, 1, lost)
	assert.Len(t, txs.created, 1)
	assert.Equal(t, model.PostStatusInProcess, posts.posts[1].Status)
}
