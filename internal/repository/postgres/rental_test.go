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

func returnFixture() (*domain.Rental, *domain.Billing, []int64) {
	returned := []int64{11, 12}
	qty := int32(2)
	rental := &domain.Rental{
		ID:               7,
		ItemID:           1,
		Quantity:         1,
		InventoryUnitIDs: []int64{13},
		Status:           domain.RentalStatusActive,
	}
	billing := &domain.Billing{
		RentalID:         7,
		AmountCents:      20000,
		DueDate:          time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		Status:           domain.BillingStatusPending,
		ReturnedQuantity: &qty,
		ReturnedUnitIDs:  returned,
	}
	return rental, billing, returned
}

func TestRentalRepository_ApplyReturn(t *testing.T) {
	t.Run("Matching snapshot commits everything", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rental, billing, returned := returnFixture()

		mock.ExpectBegin()
		// The rental row only updates when it still carries the snapshot
		// quantity (remaining 1 + returned 2) and is still active.
		mock.ExpectExec(`UPDATE rentals SET quantity`).
			WithArgs(int32(1), sqlmock.AnyArg(), "active", sqlmock.AnyArg(), int64(7), "active", int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO billings`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))
		mock.ExpectExec(`UPDATE inventory_units SET status = 'available'`).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`UPDATE items SET quantity = quantity \+ \$1`).
			WithArgs(int32(2), sqlmock.AnyArg(), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		repo := NewRentalRepository(db)
		require.NoError(t, repo.ApplyReturn(context.Background(), rental, billing, returned))
		assert.Equal(t, int64(42), billing.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Stale snapshot rolls back with a conflict", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rental, billing, returned := returnFixture()

		// Another return landed first, so the guarded update matches no row
		// and nothing else in the transaction may run.
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE rentals SET quantity`).
			WithArgs(int32(1), sqlmock.AnyArg(), "active", sqlmock.AnyArg(), int64(7), "active", int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		repo := NewRentalRepository(db)
		err = repo.ApplyReturn(context.Background(), rental, billing, returned)
		assert.ErrorIs(t, err, domain.ErrConcurrentUpdate)
		assert.Zero(t, billing.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRentalRepository_Cancel(t *testing.T) {
	t.Run("Only an active rental can be cancelled", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE rentals SET status = \$1`).
			WithArgs("cancelled", sqlmock.AnyArg(), int64(7), "active").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		repo := NewRentalRepository(db)
		rental := &domain.Rental{ID: 7, ItemID: 1, Status: domain.RentalStatusActive, InventoryUnitIDs: []int64{11}}
		err = repo.Cancel(context.Background(), rental)
		assert.ErrorIs(t, err, domain.ErrConcurrentUpdate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
