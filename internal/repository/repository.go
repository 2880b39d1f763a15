package repository

import (
	"context"
	"time"

	"rental-management-backend/internal/domain"
)

type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	List(ctx context.Context) ([]domain.Item, error)
	// Delete removes the item together with its inventory units, rentals
	// and their billings in one transaction.
	Delete(ctx context.Context, id int64) error
}

type InventoryUnitRepository interface {
	// BulkCreate appends count available units with date_added = now.
	BulkCreate(ctx context.Context, itemID int64, count int32) error
	// Allocate selects the count oldest available units (date_added ASC,
	// id ASC), marks them rented, and returns their IDs in allocation
	// order. Short stock fails with InsufficientInventoryError and
	// commits nothing.
	Allocate(ctx context.Context, itemID int64, count int32) ([]int64, error)
	// Release sets the units back to available regardless of current
	// state; releasing an already-available unit is a no-op.
	Release(ctx context.Context, unitIDs []int64) error
	ListByItem(ctx context.Context, itemID int64) ([]domain.InventoryUnit, error)
}

type RentalRepository interface {
	// CreateWithAllocation atomically allocates rental.Quantity units FIFO,
	// decrements the item aggregate quantity, and inserts the rental.
	// On success rental.ID and rental.InventoryUnitIDs are populated.
	CreateWithAllocation(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	List(ctx context.Context) ([]domain.Rental, error)
	// ApplyReturn atomically persists one return event: the updated rental
	// (quantity, remaining unit list, status), the new billing record, the
	// unit release, and the item aggregate increment.
	ApplyReturn(ctx context.Context, rental *domain.Rental, billing *domain.Billing, returnedUnitIDs []int64) error
	UpdateEndDate(ctx context.Context, id int64, endDate time.Time) error
	// Cancel marks the rental cancelled, releasing its assigned units and
	// restoring the item aggregate quantity in the same transaction.
	Cancel(ctx context.Context, rental *domain.Rental) error
	// Delete removes the rental and its billings.
	Delete(ctx context.Context, id int64) error
}

// BillingRepository reads and transitions billing records. Billings are only
// ever created inside RentalRepository.ApplyReturn, so there is no Create.
type BillingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Billing, error)
	List(ctx context.Context) ([]domain.Billing, error)
	// MarkPaid performs the pending->paid transition as a single
	// check-and-set; it reports false when the billing was already paid.
	MarkPaid(ctx context.Context, id int64, paidAt time.Time) (bool, error)
	// MarkOverdue flips every pending billing whose due date is strictly
	// before the cutoff to overdue, returning the number affected.
	MarkOverdue(ctx context.Context, before time.Time) (int64, error)
	ListPendingDueBefore(ctx context.Context, cutoff time.Time) ([]domain.Billing, error)
	Delete(ctx context.Context, id int64) error
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	List(ctx context.Context) ([]domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
