package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rental-management-backend/internal/domain"
	"rental-management-backend/internal/repository"
)

type itemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *domain.Item) error {
	now := time.Now()
	query := `INSERT INTO items (name, description, category, status, monthly_rate_cents, quantity, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
	          RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		item.Name, item.Description, item.Category, item.Status,
		item.MonthlyRateCents, item.Quantity, now,
	).Scan(&item.ID)
	if err != nil {
		return err
	}
	item.CreatedOn = now
	item.UpdatedOn = now
	return nil
}

func (r *itemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	query := `SELECT id, name, COALESCE(description, ''), COALESCE(category, ''), status, monthly_rate_cents, quantity, created_on, updated_on
	          FROM items WHERE id = $1`
	var item domain.Item
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Name, &item.Description, &item.Category, &item.Status,
		&item.MonthlyRateCents, &item.Quantity, &item.CreatedOn, &item.UpdatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) Update(ctx context.Context, item *domain.Item) error {
	now := time.Now()
	res, err := r.db.ExecContext(ctx,
		`UPDATE items SET name = $1, description = $2, category = $3, status = $4, monthly_rate_cents = $5, quantity = $6, updated_on = $7 WHERE id = $8`,
		item.Name, item.Description, item.Category, item.Status,
		item.MonthlyRateCents, item.Quantity, now, item.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrItemNotFound
	}
	item.UpdatedOn = now
	return nil
}

func (r *itemRepository) List(ctx context.Context) ([]domain.Item, error) {
	query := `SELECT id, name, COALESCE(description, ''), COALESCE(category, ''), status, monthly_rate_cents, quantity, created_on, updated_on
	          FROM items ORDER BY name ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Description, &item.Category, &item.Status,
			&item.MonthlyRateCents, &item.Quantity, &item.CreatedOn, &item.UpdatedOn,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *itemRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM billings WHERE rental_id IN (SELECT id FROM rentals WHERE item_id = $1)`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM rentals WHERE item_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM inventory_units WHERE item_id = $1`, id); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return domain.ErrItemNotFound
	}

	return tx.Commit()
}
