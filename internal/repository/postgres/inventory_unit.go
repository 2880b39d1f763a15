package postgres

import (
	"context"
	"database/sql"
	"time"

	"rental-management-backend/internal/domain"
	"rental-management-backend/internal/repository"

	"github.com/lib/pq"
)

type inventoryUnitRepository struct {
	db *sql.DB
}

func NewInventoryUnitRepository(db *sql.DB) repository.InventoryUnitRepository {
	return &inventoryUnitRepository{db: db}
}

func (r *inventoryUnitRepository) BulkCreate(ctx context.Context, itemID int64, count int32) error {
	if count <= 0 {
		return nil
	}
	query := `INSERT INTO inventory_units (item_id, status, date_added, created_on)
	          SELECT $1, 'available', $2, $2 FROM generate_series(1, $3)`
	_, err := r.db.ExecContext(ctx, query, itemID, time.Now(), count)
	return err
}

func (r *inventoryUnitRepository) Allocate(ctx context.Context, itemID int64, count int32) ([]int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	ids, err := allocateUnitsTx(ctx, tx, itemID, count)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *inventoryUnitRepository) Release(ctx context.Context, unitIDs []int64) error {
	if len(unitIDs) == 0 {
		return nil
	}
	_, err := r.db.ExecContext(ctx, `UPDATE inventory_units SET status = 'available' WHERE id = ANY($1)`, pq.Array(unitIDs))
	return err
}

func (r *inventoryUnitRepository) ListByItem(ctx context.Context, itemID int64) ([]domain.InventoryUnit, error) {
	query := `SELECT id, item_id, status, date_added, created_on
	          FROM inventory_units WHERE item_id = $1 ORDER BY date_added ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, query, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []domain.InventoryUnit
	for rows.Next() {
		var u domain.InventoryUnit
		if err := rows.Scan(&u.ID, &u.ItemID, &u.Status, &u.DateAdded, &u.CreatedOn); err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

// allocateUnitsTx picks the count oldest available units for the item and
// flips them to rented, all inside the caller's transaction. The row locks
// guarantee no two concurrent allocations can reserve the same unit.
func allocateUnitsTx(ctx context.Context, tx *sql.Tx, itemID int64, count int32) ([]int64, error) {
	query := `SELECT id FROM inventory_units
	          WHERE item_id = $1 AND status = 'available'
	          ORDER BY date_added ASC, id ASC
	          LIMIT $2
	          FOR UPDATE`
	rows, err := tx.QueryContext(ctx, query, itemID, count)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if int32(len(ids)) < count {
		var total int32
		if err := tx.QueryRowContext(ctx, `SELECT quantity FROM items WHERE id = $1`, itemID).Scan(&total); err != nil {
			total = int32(len(ids))
		}
		return nil, &domain.InsufficientInventoryError{
			ItemID:    itemID,
			Requested: count,
			Available: int32(len(ids)),
			Total:     total,
		}
	}

	if _, err := tx.ExecContext(ctx, `UPDATE inventory_units SET status = 'rented' WHERE id = ANY($1)`, pq.Array(ids)); err != nil {
		return nil, err
	}
	return ids, nil
}

// releaseUnitsTx sets the units back to available inside the caller's
// transaction. Releasing an already-available unit is a no-op.
func releaseUnitsTx(ctx context.Context, tx *sql.Tx, unitIDs []int64) error {
	if len(unitIDs) == 0 {
		return nil
	}
	_, err := tx.ExecContext(ctx, `UPDATE inventory_units SET status = 'available' WHERE id = ANY($1)`, pq.Array(unitIDs))
	return err
}
