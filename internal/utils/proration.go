package utils

import (
	"fmt"
	"math"
	"time"
)

// HalfMonths is a count of billable half-month units. Month fractions only
// ever come in steps of 0.5, so keeping them as integer halves lets all
// monetary arithmetic stay in exact integer cents.
type HalfMonths int32

// Months returns the whole-month part of the fraction.
func (h HalfMonths) Months() int32 {
	return int32(h) / 2
}

// IsHalf reports whether the fraction has a trailing half month.
func (h HalfMonths) IsHalf() bool {
	return h%2 == 1
}

// AmountCents computes quantity * monthlyRateCents * h/2 in integer cents,
// rounding a leftover half cent up.
func (h HalfMonths) AmountCents(monthlyRateCents int64, quantity int32) int64 {
	total := int64(quantity) * monthlyRateCents * int64(h)
	return (total + 1) / 2
}

// String renders the fraction as "2" or "2.5" for logs and API responses.
func (h HalfMonths) String() string {
	if h.IsHalf() {
		return fmt.Sprintf("%d.5", h.Months())
	}
	return fmt.Sprintf("%d", h.Months())
}

// MonthsRented calculates the months to charge for a rental based on the
// return date.
//
// Every calendar month boundary crossed between startDate and returnDate
// counts as a full month; the return month itself is bucketed by its
// day-of-month:
//   - day < 5:   no charge
//   - day <= 15: half month
//   - day > 15:  full month
//
// A return date before the start date charges nothing.
func MonthsRented(startDate, returnDate time.Time) HalfMonths {
	if returnDate.Before(startDate) {
		return 0
	}

	months := (returnDate.Year()-startDate.Year())*12 + int(returnDate.Month()) - int(startDate.Month())

	halves := 0
	day := returnDate.Day()
	switch {
	case day < 5:
		halves = 0
	case day <= 15:
		halves = 1
	default:
		halves = 2
	}

	total := months*2 + halves
	if total < 0 {
		return 0
	}
	return HalfMonths(total)
}

// MonthsRentedPastDue calculates the months to charge when assessing a
// return against a due date.
//
// Every month from the start month up to the due month counts as a full
// month; the overdue excess is bucketed by elapsed days past the due date
// (ceiling of the interval):
//   - within 7 days:        no charge
//   - within 8 to 15 days:  half month
//   - beyond 15 days:       full month
//
// Lateness is measured in elapsed days rather than calendar position, since
// that is how customers experience being late.
func MonthsRentedPastDue(startDate, returnDate, dueDate time.Time) HalfMonths {
	if returnDate.Before(startDate) {
		return 0
	}

	months := (dueDate.Year()-startDate.Year())*12 + int(dueDate.Month()) - int(startDate.Month())

	diffDays := int(math.Ceil(returnDate.Sub(dueDate).Hours() / 24))

	halves := 0
	switch {
	case diffDays <= 7:
		halves = 0
	case diffDays <= 15:
		halves = 1
	default:
		halves = 2
	}

	total := months*2 + halves
	if total < 0 {
		return 0
	}
	return HalfMonths(total)
}
