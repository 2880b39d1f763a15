package service

import (
	"context"
	"time"

	"rental-management-backend/internal/domain"
)

type ItemService interface {
	CreateItem(ctx context.Context, item *domain.Item) (*domain.Item, error)
	GetItem(ctx context.Context, id int64) (*domain.Item, []domain.InventoryUnit, error)
	UpdateItem(ctx context.Context, item *domain.Item) (*domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
}

type RentalService interface {
	CreateRental(ctx context.Context, rental *domain.Rental) (*domain.Rental, error)
	GetRental(ctx context.Context, id int64) (*domain.Rental, error)
	ListRentals(ctx context.Context) ([]domain.Rental, error)
	// ReturnUnits processes a full or partial return: it splits off the
	// returned units, bills the prorated charge, and completes the rental
	// when nothing remains out. A zero quantity returns everything still
	// out; a zero returnDate means "now".
	ReturnUnits(ctx context.Context, rentalID int64, quantity int32, returnDate time.Time) (*domain.Billing, error)
	// EstimateCharge projects the charge for returning everything on
	// returnDate without persisting anything. A zero returnDate means the
	// rental's end date.
	EstimateCharge(ctx context.Context, rentalID int64, returnDate time.Time) (*domain.Billing, error)
	ExtendRental(ctx context.Context, rentalID int64, newEndDate time.Time) (*domain.Rental, error)
	CancelRental(ctx context.Context, rentalID int64) (*domain.Rental, error)
	DeleteRental(ctx context.Context, rentalID int64) error
}

type BillingService interface {
	GetBilling(ctx context.Context, id int64) (*domain.Billing, error)
	ListBillings(ctx context.Context) ([]domain.Billing, error)
	PayBilling(ctx context.Context, id int64) (*domain.Billing, error)
	DeleteBilling(ctx context.Context, id int64) error
	// MarkOverdueBillings flips pending billings due before asOf to overdue
	// and returns how many were flipped.
	MarkOverdueBillings(ctx context.Context, asOf time.Time) (int64, error)
}

type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*domain.User, string, string, error) // user, access, refresh
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
}

type EmailService interface {
	SendBillReminder(ctx context.Context, toEmail, toName string, billing *domain.Billing) error
}
