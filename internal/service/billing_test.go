package service

import (
	"context"
	"testing"
	"time"

	"rental-management-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBillingServiceForTest(repo *mockBillingRepo, now time.Time) *billingService {
	return &billingService{
		billingRepo: repo,
		now:         func() time.Time { return now },
	}
}

func TestPayBilling(t *testing.T) {
	now := date("2024-02-01")

	t.Run("Pending billing becomes paid", func(t *testing.T) {
		repo := new(mockBillingRepo)
		svc := newBillingServiceForTest(repo, now)

		pending := &domain.Billing{ID: 3, Status: domain.BillingStatusPending, AmountCents: 5000}
		paid := &domain.Billing{ID: 3, Status: domain.BillingStatusPaid, AmountCents: 5000, PaymentDate: &now}
		repo.On("GetByID", mock.Anything, int64(3)).Return(pending, nil).Once()
		repo.On("MarkPaid", mock.Anything, int64(3), now).Return(true, nil)
		repo.On("GetByID", mock.Anything, int64(3)).Return(paid, nil).Once()

		got, err := svc.PayBilling(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, domain.BillingStatusPaid, got.Status)
		repo.AssertExpectations(t)
	})

	t.Run("Second pay attempt fails", func(t *testing.T) {
		repo := new(mockBillingRepo)
		svc := newBillingServiceForTest(repo, now)

		paid := &domain.Billing{ID: 3, Status: domain.BillingStatusPaid}
		repo.On("GetByID", mock.Anything, int64(3)).Return(paid, nil)
		repo.On("MarkPaid", mock.Anything, int64(3), now).Return(false, nil)

		_, err := svc.PayBilling(context.Background(), 3)
		assert.ErrorIs(t, err, domain.ErrAlreadyPaid)
	})

	t.Run("Unknown billing", func(t *testing.T) {
		repo := new(mockBillingRepo)
		svc := newBillingServiceForTest(repo, now)
		repo.On("GetByID", mock.Anything, int64(9)).Return(nil, domain.ErrBillingNotFound)

		_, err := svc.PayBilling(context.Background(), 9)
		assert.ErrorIs(t, err, domain.ErrBillingNotFound)
		repo.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDeleteBilling(t *testing.T) {
	t.Run("Paid billing is immutable", func(t *testing.T) {
		repo := new(mockBillingRepo)
		svc := newBillingServiceForTest(repo, date("2024-02-01"))
		repo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Billing{ID: 3, Status: domain.BillingStatusPaid}, nil)

		err := svc.DeleteBilling(context.Background(), 3)
		assert.ErrorIs(t, err, domain.ErrAlreadyPaid)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Pending billing is deleted", func(t *testing.T) {
		repo := new(mockBillingRepo)
		svc := newBillingServiceForTest(repo, date("2024-02-01"))
		repo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Billing{ID: 3, Status: domain.BillingStatusPending}, nil)
		repo.On("Delete", mock.Anything, int64(3)).Return(nil)

		require.NoError(t, svc.DeleteBilling(context.Background(), 3))
		repo.AssertExpectations(t)
	})
}

func TestMarkOverdueBillings(t *testing.T) {
	repo := new(mockBillingRepo)
	svc := newBillingServiceForTest(repo, date("2024-02-01"))
	asOf := date("2024-02-01")
	repo.On("MarkOverdue", mock.Anything, asOf).Return(int64(4), nil)

	count, err := svc.MarkOverdueBillings(context.Background(), asOf)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}
