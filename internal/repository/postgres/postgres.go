package postgres

import (
	"database/sql"

	"rental-management-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ItemRepository
	repository.InventoryUnitRepository
	repository.RentalRepository
	repository.BillingRepository
	repository.CustomerRepository
	repository.UserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                      db,
		ItemRepository:          NewItemRepository(db),
		InventoryUnitRepository: NewInventoryUnitRepository(db),
		RentalRepository:        NewRentalRepository(db),
		BillingRepository:       NewBillingRepository(db),
		CustomerRepository:      NewCustomerRepository(db),
		UserRepository:          NewUserRepository(db),
	}
}
