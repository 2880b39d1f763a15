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

type billingRepository struct {
	db *sql.DB
}

func NewBillingRepository(db *sql.DB) repository.BillingRepository {
	return &billingRepository{db: db}
}

const billingSelectColumns = `
	b.id, b.rental_id, b.amount_cents, b.due_date, b.status,
	b.payment_date, b.returned_quantity, b.returned_unit_ids, b.created_on, b.updated_on,
	r.id, r.item_id, r.customer_id, r.quantity, r.start_date, r.end_date, r.status,
	c.id, c.first_name, c.last_name, c.email, c.phone, c.address`

func scanBilling(scanner interface{ Scan(...any) error }) (*domain.Billing, error) {
	var b domain.Billing
	var rental domain.Rental
	var customer domain.Customer
	err := scanner.Scan(
		&b.ID, &b.RentalID, &b.AmountCents, &b.DueDate, &b.Status,
		&b.PaymentDate, &b.ReturnedQuantity, pq.Array(&b.ReturnedUnitIDs), &b.CreatedOn, &b.UpdatedOn,
		&rental.ID, &rental.ItemID, &rental.CustomerID, &rental.Quantity,
		&rental.StartDate, &rental.EndDate, &rental.Status,
		&customer.ID, &customer.FirstName, &customer.LastName, &customer.Email,
		&customer.Phone, &customer.Address,
	)
	if err != nil {
		return nil, err
	}
	rental.Customer = &customer
	b.Rental = &rental
	return &b, nil
}

func (r *billingRepository) GetByID(ctx context.Context, id int64) (*domain.Billing, error) {
	query := `SELECT ` + billingSelectColumns + `
	          FROM billings b
	          JOIN rentals r ON r.id = b.rental_id
	          JOIN customers c ON c.id = r.customer_id
	          WHERE b.id = $1`
	billing, err := scanBilling(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBillingNotFound
	}
	if err != nil {
		return nil, err
	}
	return billing, nil
}

func (r *billingRepository) List(ctx context.Context) ([]domain.Billing, error) {
	query := `SELECT ` + billingSelectColumns + `
	          FROM billings b
	          JOIN rentals r ON r.id = b.rental_id
	          JOIN customers c ON c.id = r.customer_id
	          ORDER BY b.created_on DESC, b.id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var billings []domain.Billing
	for rows.Next() {
		billing, err := scanBilling(rows)
		if err != nil {
			return nil, err
		}
		billings = append(billings, *billing)
	}
	return billings, rows.Err()
}

func (r *billingRepository) MarkPaid(ctx context.Context, id int64, paidAt time.Time) (bool, error) {
	// Single check-and-set so a concurrent duplicate pay loses cleanly.
	res, err := r.db.ExecContext(ctx,
		`UPDATE billings SET status = $1, payment_date = $2, updated_on = $3 WHERE id = $4 AND status <> $1`,
		domain.BillingStatusPaid, paidAt, time.Now(), id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *billingRepository) MarkOverdue(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE billings SET status = $1, updated_on = $2 WHERE status = $3 AND due_date < $4`,
		domain.BillingStatusOverdue, time.Now(), domain.BillingStatusPending, before)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *billingRepository) ListPendingDueBefore(ctx context.Context, cutoff time.Time) ([]domain.Billing, error) {
	query := `SELECT ` + billingSelectColumns + `
	          FROM billings b
	          JOIN rentals r ON r.id = b.rental_id
	          JOIN customers c ON c.id = r.customer_id
	          WHERE b.status = $1 AND b.due_date < $2
	          ORDER BY b.due_date ASC, b.id ASC`
	rows, err := r.db.QueryContext(ctx, query, domain.BillingStatusPending, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var billings []domain.Billing
	for rows.Next() {
		billing, err := scanBilling(rows)
		if err != nil {
			return nil, err
		}
		billings = append(billings, *billing)
	}
	return billings, rows.Err()
}

func (r *billingRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM billings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrBillingNotFound
	}
	return nil
}
