package domain

import "time"

type ItemStatus string

const (
	ItemStatusAvailable   ItemStatus = "available"
	ItemStatusRented      ItemStatus = "rented"
	ItemStatusMaintenance ItemStatus = "maintenance"
)

// Item represents a rentable catalog good. Quantity mirrors the number of
// non-retired inventory units and is adjusted inside the same transaction
// as every allocation/release.
type Item struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description,omitempty"`
	Category         string     `json:"category,omitempty"`
	Status           ItemStatus `json:"status"`
	MonthlyRateCents int64      `json:"monthly_rate_cents"`
	Quantity         int32      `json:"quantity"`
	CreatedOn        time.Time  `json:"created_on"`
	UpdatedOn        time.Time  `json:"updated_on"`
}

type UnitStatus string

const (
	UnitStatusAvailable   UnitStatus = "available"
	UnitStatusRented      UnitStatus = "rented"
	UnitStatusMaintenance UnitStatus = "maintenance"
)

// InventoryUnit is one physical instance of an Item. DateAdded is the FIFO
// sort key for allocation; ties are broken by ascending ID.
type InventoryUnit struct {
	ID        int64      `json:"id"`
	ItemID    int64      `json:"item_id"`
	Status    UnitStatus `json:"status"`
	DateAdded time.Time  `json:"date_added"`
	CreatedOn time.Time  `json:"created_on"`
}
