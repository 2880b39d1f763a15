package postgres

import (
	"context"
	"testing"

	"rental-management-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryUnitRepository_Allocate(t *testing.T) {
	t.Run("Oldest available units are picked", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id FROM inventory_units`).
			WithArgs(int64(1), int32(2)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)).AddRow(int64(12)))
		mock.ExpectExec(`UPDATE inventory_units SET status = 'rented'`).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		repo := NewInventoryUnitRepository(db)
		ids, err := repo.Allocate(context.Background(), 1, 2)
		require.NoError(t, err)
		assert.Equal(t, []int64{11, 12}, ids)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Short stock rolls back with the available count", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id FROM inventory_units`).
			WithArgs(int64(1), int32(3)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))
		mock.ExpectQuery(`SELECT quantity FROM items WHERE id = \$1`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"quantity"}).AddRow(int32(5)))
		mock.ExpectRollback()

		repo := NewInventoryUnitRepository(db)
		_, err = repo.Allocate(context.Background(), 1, 3)

		var insufficient *domain.InsufficientInventoryError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, int32(3), insufficient.Requested)
		assert.Equal(t, int32(1), insufficient.Available)
		assert.Equal(t, int32(5), insufficient.Total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestInventoryUnitRepository_BulkCreate(t *testing.T) {
	t.Run("Zero count is a no-op", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewInventoryUnitRepository(db)
		require.NoError(t, repo.BulkCreate(context.Background(), 1, 0))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Inserts one row per unit", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`INSERT INTO inventory_units`).
			WithArgs(int64(1), sqlmock.AnyArg(), int32(4)).
			WillReturnResult(sqlmock.NewResult(0, 4))

		repo := NewInventoryUnitRepository(db)
		require.NoError(t, repo.BulkCreate(context.Background(), 1, 4))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
