package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rental-management-backend/internal/domain"
	"rental-management-backend/internal/repository"

	"github.com/lib/pq"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) CreateWithAllocation(ctx context.Context, rental *domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Lock the item row first so concurrent rentals of the same item
	// serialize and cannot both pass the availability check.
	var itemQuantity int32
	err = tx.QueryRowContext(ctx, `SELECT quantity FROM items WHERE id = $1 FOR UPDATE`, rental.ItemID).Scan(&itemQuantity)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrItemNotFound
	}
	if err != nil {
		return err
	}

	unitIDs, err := allocateUnitsTx(ctx, tx, rental.ItemID, rental.Quantity)
	if err != nil {
		return err
	}

	now := time.Now()
	if _, err := tx.ExecContext(ctx,
		`UPDATE items SET quantity = quantity - $1, updated_on = $2 WHERE id = $3`,
		rental.Quantity, now, rental.ItemID); err != nil {
		return err
	}

	query := `INSERT INTO rentals (item_id, customer_id, quantity, inventory_unit_ids, start_date, end_date, deposit_amount_cents, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
	          RETURNING id`
	err = tx.QueryRowContext(ctx, query,
		rental.ItemID, rental.CustomerID, rental.Quantity, pq.Array(unitIDs),
		rental.StartDate, rental.EndDate, rental.DepositAmountCents, rental.Status, now,
	).Scan(&rental.ID)
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	rental.InventoryUnitIDs = unitIDs
	rental.CreatedOn = now
	rental.UpdatedOn = now
	return nil
}

const rentalSelectColumns = `
	r.id, r.item_id, r.customer_id, r.quantity, r.inventory_unit_ids,
	r.start_date, r.end_date, r.deposit_amount_cents, r.status, r.created_on, r.updated_on,
	i.id, i.name, i.description, i.category, i.status, i.monthly_rate_cents, i.quantity, i.created_on, i.updated_on,
	c.id, c.first_name, c.last_name, c.email, c.phone, c.address, c.created_on, c.updated_on`

func scanRental(scanner interface{ Scan(...any) error }) (*domain.Rental, error) {
	var rt domain.Rental
	var item domain.Item
	var customer domain.Customer
	err := scanner.Scan(
		&rt.ID, &rt.ItemID, &rt.CustomerID, &rt.Quantity, pq.Array(&rt.InventoryUnitIDs),
		&rt.StartDate, &rt.EndDate, &rt.DepositAmountCents, &rt.Status, &rt.CreatedOn, &rt.UpdatedOn,
		&item.ID, &item.Name, &item.Description, &item.Category, &item.Status,
		&item.MonthlyRateCents, &item.Quantity, &item.CreatedOn, &item.UpdatedOn,
		&customer.ID, &customer.FirstName, &customer.LastName, &customer.Email,
		&customer.Phone, &customer.Address, &customer.CreatedOn, &customer.UpdatedOn,
	)
	if err != nil {
		return nil, err
	}
	rt.Item = &item
	rt.Customer = &customer
	return &rt, nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	query := `SELECT ` + rentalSelectColumns + `
	          FROM rentals r
	          JOIN items i ON i.id = r.item_id
	          JOIN customers c ON c.id = r.customer_id
	          WHERE r.id = $1`
	rental, err := scanRental(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRentalNotFound
	}
	if err != nil {
		return nil, err
	}
	return rental, nil
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalSelectColumns + `
	          FROM rentals r
	          JOIN items i ON i.id = r.item_id
	          JOIN customers c ON c.id = r.customer_id
	          ORDER BY r.created_on DESC, r.id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rental, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rental)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) ApplyReturn(ctx context.Context, rental *domain.Rental, billing *domain.Billing, returnedUnitIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Optimistic guard: the update only lands if the row still matches the
	// snapshot the caller computed from. Two concurrent returns of the same
	// rental would otherwise both bill the same unit prefix.
	priorQuantity := rental.Quantity + int32(len(returnedUnitIDs))
	now := time.Now()
	res, err := tx.ExecContext(ctx,
		`UPDATE rentals SET quantity = $1, inventory_unit_ids = $2, status = $3, updated_on = $4
		 WHERE id = $5 AND status = $6 AND quantity = $7`,
		rental.Quantity, pq.Array(rental.InventoryUnitIDs), rental.Status, now,
		rental.ID, domain.RentalStatusActive, priorQuantity)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return domain.ErrConcurrentUpdate
	}

	query := `INSERT INTO billings (rental_id, amount_cents, due_date, status, returned_quantity, returned_unit_ids, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
	          RETURNING id`
	err = tx.QueryRowContext(ctx, query,
		billing.RentalID, billing.AmountCents, billing.DueDate, billing.Status,
		billing.ReturnedQuantity, pq.Array(billing.ReturnedUnitIDs), now,
	).Scan(&billing.ID)
	if err != nil {
		return err
	}

	if err := releaseUnitsTx(ctx, tx, returnedUnitIDs); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE items SET quantity = quantity + $1, updated_on = $2 WHERE id = $3`,
		int32(len(returnedUnitIDs)), now, rental.ItemID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	rental.UpdatedOn = now
	billing.CreatedOn = now
	billing.UpdatedOn = now
	return nil
}

func (r *rentalRepository) UpdateEndDate(ctx context.Context, id int64, endDate time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE rentals SET end_date = $1, updated_on = $2 WHERE id = $3`,
		endDate, time.Now(), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrRentalNotFound
	}
	return nil
}

func (r *rentalRepository) Cancel(ctx context.Context, rental *domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Same optimistic guard as ApplyReturn: a rental that was returned or
	// cancelled in the meantime must not release its units twice.
	now := time.Now()
	res, err := tx.ExecContext(ctx,
		`UPDATE rentals SET status = $1, updated_on = $2 WHERE id = $3 AND status = $4`,
		domain.RentalStatusCancelled, now, rental.ID, domain.RentalStatusActive)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return domain.ErrConcurrentUpdate
	}

	if err := releaseUnitsTx(ctx, tx, rental.InventoryUnitIDs); err != nil {
		return err
	}

	if len(rental.InventoryUnitIDs) > 0 {
		if _, err := tx.ExecContext(ctx,
			`UPDATE items SET quantity = quantity + $1, updated_on = $2 WHERE id = $3`,
			int32(len(rental.InventoryUnitIDs)), now, rental.ItemID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	rental.Status = domain.RentalStatusCancelled
	rental.UpdatedOn = now
	return nil
}

func (r *rentalRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM billings WHERE rental_id = $1`, id); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return domain.ErrRentalNotFound
	}

	return tx.Commit()
}
