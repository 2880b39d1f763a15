package domain

import (
	"errors"
	"fmt"
)

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrRentalNotFound   = errors.New("rental not found")
	ErrBillingNotFound  = errors.New("billing not found")
	ErrUserNotFound     = errors.New("user not found")

	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidState     = errors.New("invalid state")
	ErrAlreadyPaid      = errors.New("billing is already paid")
	ErrConcurrentUpdate = errors.New("record was modified concurrently, retry")
)

// InsufficientInventoryError reports a failed allocation. Available carries
// the count of units actually free so callers can display it.
type InsufficientInventoryError struct {
	ItemID    int64
	Requested int32
	Available int32
	Total     int32
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("insufficient inventory units: only %d physically available out of total %d", e.Available, e.Total)
}

// IsClientError reports whether err is a validation or business-rule failure
// that should map to a 4xx response rather than a server fault.
func IsClientError(err error) bool {
	var insufficient *InsufficientInventoryError
	switch {
	case errors.As(err, &insufficient):
		return true
	case errors.Is(err, ErrInvalidQuantity),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrInvalidState),
		errors.Is(err, ErrAlreadyPaid):
		return true
	}
	return false
}

// IsNotFound reports whether err is one of the entity-absent sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrItemNotFound) ||
		errors.Is(err, ErrCustomerNotFound) ||
		errors.Is(err, ErrRentalNotFound) ||
		errors.Is(err, ErrBillingNotFound) ||
		errors.Is(err, ErrUserNotFound)
}
