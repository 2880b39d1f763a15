package postgres

import (
	"context"
	"testing"
	"time"

	"rental-management-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillingRepository_MarkPaid(t *testing.T) {
	paidAt := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Pending billing transitions", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE billings SET status = \$1, payment_date = \$2, updated_on = \$3 WHERE id = \$4 AND status <> \$1`).
			WithArgs("paid", paidAt, sqlmock.AnyArg(), int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewBillingRepository(db)
		paid, err := repo.MarkPaid(context.Background(), 3, paidAt)
		require.NoError(t, err)
		assert.True(t, paid)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Already paid billing is untouched", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE billings SET status`).
			WithArgs("paid", paidAt, sqlmock.AnyArg(), int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewBillingRepository(db)
		paid, err := repo.MarkPaid(context.Background(), 3, paidAt)
		require.NoError(t, err)
		assert.False(t, paid)
	})
}

func TestBillingRepository_MarkOverdue(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cutoff := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(`UPDATE billings SET status = \$1, updated_on = \$2 WHERE status = \$3 AND due_date < \$4`).
		WithArgs("overdue", sqlmock.AnyArg(), "pending", cutoff).
		WillReturnResult(sqlmock.NewResult(0, 4))

	repo := NewBillingRepository(db)
	count, err := repo.MarkOverdue(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBillingRepository_Delete(t *testing.T) {
	t.Run("Missing row maps to not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM billings WHERE id = \$1`).
			WithArgs(int64(9)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewBillingRepository(db)
		err = repo.Delete(context.Background(), 9)
		assert.ErrorIs(t, err, domain.ErrBillingNotFound)
	})
}
