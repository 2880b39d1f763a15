package domain

import "time"

type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "active"
	RentalStatusCompleted RentalStatus = "completed"
	RentalStatusCancelled RentalStatus = "cancelled"
)

// Rental leases a quantity of units of one Item to one Customer.
// InventoryUnitIDs is the ordered list of currently-assigned units; partial
// returns always take the prefix, so the oldest-allocated units go back
// first. Invariant: len(InventoryUnitIDs) == Quantity.
type Rental struct {
	ID                 int64        `json:"id"`
	ItemID             int64        `json:"item_id"`
	CustomerID         int64        `json:"customer_id"`
	Quantity           int32        `json:"quantity"`
	InventoryUnitIDs   []int64      `json:"inventory_unit_ids"`
	StartDate          time.Time    `json:"start_date"`
	EndDate            time.Time    `json:"end_date"`
	DepositAmountCents int64        `json:"deposit_amount_cents"`
	Status             RentalStatus `json:"status"`
	CreatedOn          time.Time    `json:"created_on"`
	UpdatedOn          time.Time    `json:"updated_on"`

	// Populated on detail/list fetches.
	Item     *Item     `json:"item,omitempty"`
	Customer *Customer `json:"customer,omitempty"`
}
