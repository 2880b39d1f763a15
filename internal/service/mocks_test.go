package service

import (
	"context"
	"time"

	"rental-management-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) Create(ctx context.Context, item *domain.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockItemRepo) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if item, ok := args.Get(0).(*domain.Item); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) Update(ctx context.Context, item *domain.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockItemRepo) List(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if items, ok := args.Get(0).([]domain.Item); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockUnitRepo struct{ mock.Mock }

func (m *mockUnitRepo) BulkCreate(ctx context.Context, itemID int64, count int32) error {
	return m.Called(ctx, itemID, count).Error(0)
}

func (m *mockUnitRepo) Allocate(ctx context.Context, itemID int64, count int32) ([]int64, error) {
	args := m.Called(ctx, itemID, count)
	if ids, ok := args.Get(0).([]int64); ok {
		return ids, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUnitRepo) Release(ctx context.Context, unitIDs []int64) error {
	return m.Called(ctx, unitIDs).Error(0)
}

func (m *mockUnitRepo) ListByItem(ctx context.Context, itemID int64) ([]domain.InventoryUnit, error) {
	args := m.Called(ctx, itemID)
	if units, ok := args.Get(0).([]domain.InventoryUnit); ok {
		return units, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockRentalRepo struct{ mock.Mock }

func (m *mockRentalRepo) CreateWithAllocation(ctx context.Context, rental *domain.Rental) error {
	return m.Called(ctx, rental).Error(0)
}

func (m *mockRentalRepo) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if rental, ok := args.Get(0).(*domain.Rental); ok {
		return rental, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRentalRepo) List(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	if rentals, ok := args.Get(0).([]domain.Rental); ok {
		return rentals, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRentalRepo) ApplyReturn(ctx context.Context, rental *domain.Rental, billing *domain.Billing, returnedUnitIDs []int64) error {
	return m.Called(ctx, rental, billing, returnedUnitIDs).Error(0)
}

func (m *mockRentalRepo) UpdateEndDate(ctx context.Context, id int64, endDate time.Time) error {
	return m.Called(ctx, id, endDate).Error(0)
}

func (m *mockRentalRepo) Cancel(ctx context.Context, rental *domain.Rental) error {
	return m.Called(ctx, rental).Error(0)
}

func (m *mockRentalRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockBillingRepo struct{ mock.Mock }

func (m *mockBillingRepo) GetByID(ctx context.Context, id int64) (*domain.Billing, error) {
	args := m.Called(ctx, id)
	if billing, ok := args.Get(0).(*domain.Billing); ok {
		return billing, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBillingRepo) List(ctx context.Context) ([]domain.Billing, error) {
	args := m.Called(ctx)
	if billings, ok := args.Get(0).([]domain.Billing); ok {
		return billings, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBillingRepo) MarkPaid(ctx context.Context, id int64, paidAt time.Time) (bool, error) {
	args := m.Called(ctx, id, paidAt)
	return args.Bool(0), args.Error(1)
}

func (m *mockBillingRepo) MarkOverdue(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBillingRepo) ListPendingDueBefore(ctx context.Context, cutoff time.Time) ([]domain.Billing, error) {
	args := m.Called(ctx, cutoff)
	if billings, ok := args.Get(0).([]domain.Billing); ok {
		return billings, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBillingRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockCustomerRepo struct{ mock.Mock }

func (m *mockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *mockCustomerRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if customer, ok := args.Get(0).(*domain.Customer); ok {
		return customer, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *mockCustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if customers, ok := args.Get(0).([]domain.Customer); ok {
		return customers, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCustomerRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]domain.User); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}
