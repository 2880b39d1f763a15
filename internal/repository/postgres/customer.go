package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rental-management-backend/internal/domain"
	"rental-management-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	now := time.Now()
	query := `INSERT INTO customers (first_name, last_name, email, phone, address, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $6)
	          RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		customer.FirstName, customer.LastName, customer.Email,
		customer.Phone, customer.Address, now,
	).Scan(&customer.ID)
	if err != nil {
		return err
	}
	customer.CreatedOn = now
	customer.UpdatedOn = now
	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	query := `SELECT id, first_name, last_name, email, COALESCE(phone, ''), COALESCE(address, ''), created_on, updated_on
	          FROM customers WHERE id = $1`
	var customer domain.Customer
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&customer.ID, &customer.FirstName, &customer.LastName, &customer.Email,
		&customer.Phone, &customer.Address, &customer.CreatedOn, &customer.UpdatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	now := time.Now()
	res, err := r.db.ExecContext(ctx,
		`UPDATE customers SET first_name = $1, last_name = $2, email = $3, phone = $4, address = $5, updated_on = $6 WHERE id = $7`,
		customer.FirstName, customer.LastName, customer.Email,
		customer.Phone, customer.Address, now, customer.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrCustomerNotFound
	}
	customer.UpdatedOn = now
	return nil
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT id, first_name, last_name, email, COALESCE(phone, ''), COALESCE(address, ''), created_on, updated_on
	          FROM customers ORDER BY last_name ASC, first_name ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var customer domain.Customer
		if err := rows.Scan(
			&customer.ID, &customer.FirstName, &customer.LastName, &customer.Email,
			&customer.Phone, &customer.Address, &customer.CreatedOn, &customer.UpdatedOn,
		); err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, rows.Err()
}

func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}
