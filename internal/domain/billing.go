package domain

import "time"

type BillingStatus string

const (
	BillingStatusPending BillingStatus = "pending"
	BillingStatusPaid    BillingStatus = "paid"
	BillingStatusOverdue BillingStatus = "overdue"
)

// Billing is one charge event tied to a Rental. A nil ReturnedQuantity marks
// an estimation projection rather than an actual return; estimations are
// never persisted. A billing is immutable once paid.
type Billing struct {
	ID               int64         `json:"id"`
	RentalID         int64         `json:"rental_id"`
	AmountCents      int64         `json:"amount_cents"`
	DueDate          time.Time     `json:"due_date"`
	Status           BillingStatus `json:"status"`
	PaymentDate      *time.Time    `json:"payment_date,omitempty"`
	ReturnedQuantity *int32        `json:"returned_quantity,omitempty"`
	ReturnedUnitIDs  []int64       `json:"returned_unit_ids,omitempty"`
	CreatedOn        time.Time     `json:"created_on"`
	UpdatedOn        time.Time     `json:"updated_on"`

	Rental *Rental `json:"rental,omitempty"`
}
