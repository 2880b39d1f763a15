package service

import (
	"context"
	"fmt"
	"time"

	"rental-management-backend/internal/domain"
	"rental-management-backend/internal/logger"
	"rental-management-backend/internal/repository"
	"rental-management-backend/internal/utils"
)

type rentalService struct {
	rentalRepo   repository.RentalRepository
	itemRepo     repository.ItemRepository
	customerRepo repository.CustomerRepository
	// termDays is the rental term applied when a rental is created without
	// an explicit end date.
	termDays int
	now      func() time.Time
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	itemRepo repository.ItemRepository,
	customerRepo repository.CustomerRepository,
	defaultTermDays int,
) RentalService {
	return &rentalService{
		rentalRepo:   rentalRepo,
		itemRepo:     itemRepo,
		customerRepo: customerRepo,
		termDays:     defaultTermDays,
		now:          time.Now,
	}
}

func (s *rentalService) CreateRental(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
	if rental.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidQuantity)
	}

	customer, err := s.customerRepo.GetByID(ctx, rental.CustomerID)
	if err != nil {
		return nil, err
	}
	item, err := s.itemRepo.GetByID(ctx, rental.ItemID)
	if err != nil {
		return nil, err
	}

	if rental.StartDate.IsZero() {
		rental.StartDate = s.now()
	}
	if rental.EndDate.IsZero() {
		rental.EndDate = rental.StartDate.AddDate(0, 0, s.termDays)
	}
	if rental.EndDate.Before(rental.StartDate) {
		return nil, fmt.Errorf("%w: end date precedes start date", domain.ErrInvalidDate)
	}
	if rental.DepositAmountCents == 0 {
		rental.DepositAmountCents = item.MonthlyRateCents * int64(rental.Quantity)
	}
	rental.Status = domain.RentalStatusActive

	if err := s.rentalRepo.CreateWithAllocation(ctx, rental); err != nil {
		return nil, err
	}

	rental.Item = item
	rental.Customer = customer
	logger.InfoContext(ctx, "rental created",
		"rental_id", rental.ID,
		"item_id", rental.ItemID,
		"customer_id", rental.CustomerID,
		"quantity", rental.Quantity,
		"units", rental.InventoryUnitIDs,
	)
	return rental, nil
}

func (s *rentalService) GetRental(ctx context.Context, id int64) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, id)
}

func (s *rentalService) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.rentalRepo.List(ctx)
}

func (s *rentalService) ReturnUnits(ctx context.Context, rentalID int64, quantity int32, returnDate time.Time) (*domain.Billing, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.Status != domain.RentalStatusActive {
		return nil, fmt.Errorf("%w: rental is %s", domain.ErrInvalidState, rental.Status)
	}
	// Zero means "return everything still out".
	if quantity == 0 {
		quantity = rental.Quantity
	}
	if quantity < 0 || quantity > rental.Quantity {
		return nil, fmt.Errorf("%w: %d units requested, %d out", domain.ErrInvalidQuantity, quantity, rental.Quantity)
	}
	if returnDate.IsZero() {
		returnDate = s.now()
	}

	months := utils.MonthsRented(rental.StartDate, returnDate)
	amountCents := months.AmountCents(rental.Item.MonthlyRateCents, quantity)

	if returnDate.After(rental.EndDate) {
		// Late return: also evaluate the charge against the agreed end
		// date so discrepancies between the two readings are visible.
		pastDue := utils.MonthsRentedPastDue(rental.StartDate, returnDate, rental.EndDate)
		logger.InfoContext(ctx, "late return charge comparison",
			"rental_id", rental.ID,
			"months_by_return_date", months.String(),
			"months_by_due_date", pastDue.String(),
			"charged_cents", amountCents,
			"due_date_variant_cents", pastDue.AmountCents(rental.Item.MonthlyRateCents, quantity),
		)
	}

	// Returns always take the oldest-allocated units first.
	returned := append([]int64(nil), rental.InventoryUnitIDs[:quantity]...)
	rental.InventoryUnitIDs = rental.InventoryUnitIDs[quantity:]
	rental.Quantity -= quantity
	if rental.Quantity == 0 {
		rental.Status = domain.RentalStatusCompleted
	}

	returnedQty := quantity
	billing := &domain.Billing{
		RentalID:         rental.ID,
		AmountCents:      amountCents,
		DueDate:          returnDate,
		Status:           domain.BillingStatusPending,
		ReturnedQuantity: &returnedQty,
		ReturnedUnitIDs:  returned,
	}

	if err := s.rentalRepo.ApplyReturn(ctx, rental, billing, returned); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "units returned",
		"rental_id", rental.ID,
		"returned_quantity", quantity,
		"remaining_quantity", rental.Quantity,
		"months_charged", months.String(),
		"amount_cents", amountCents,
		"billing_id", billing.ID,
	)
	billing.Rental = rental
	return billing, nil
}

func (s *rentalService) EstimateCharge(ctx context.Context, rentalID int64, returnDate time.Time) (*domain.Billing, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.Status != domain.RentalStatusActive {
		return nil, fmt.Errorf("%w: rental is %s", domain.ErrInvalidState, rental.Status)
	}
	// Without an explicit date, project the charge at the agreed end of the
	// rental term.
	if returnDate.IsZero() {
		returnDate = rental.EndDate
	}

	months := utils.MonthsRented(rental.StartDate, returnDate)

	// Projection only: ReturnedQuantity stays nil and nothing is written.
	return &domain.Billing{
		RentalID:    rental.ID,
		AmountCents: months.AmountCents(rental.Item.MonthlyRateCents, rental.Quantity),
		DueDate:     returnDate,
		Status:      domain.BillingStatusPending,
		Rental:      rental,
	}, nil
}

func (s *rentalService) ExtendRental(ctx context.Context, rentalID int64, newEndDate time.Time) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.Status != domain.RentalStatusActive {
		return nil, fmt.Errorf("%w: rental is %s", domain.ErrInvalidState, rental.Status)
	}
	if !newEndDate.After(rental.EndDate) {
		return nil, fmt.Errorf("%w: new end date must be after the current one", domain.ErrInvalidDate)
	}

	if err := s.rentalRepo.UpdateEndDate(ctx, rentalID, newEndDate); err != nil {
		return nil, err
	}
	rental.EndDate = newEndDate
	return rental, nil
}

func (s *rentalService) CancelRental(ctx context.Context, rentalID int64) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.Status != domain.RentalStatusActive {
		return nil, fmt.Errorf("%w: rental is %s", domain.ErrInvalidState, rental.Status)
	}

	if err := s.rentalRepo.Cancel(ctx, rental); err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "rental cancelled", "rental_id", rental.ID)
	return rental, nil
}

func (s *rentalService) DeleteRental(ctx context.Context, rentalID int64) error {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return err
	}
	// Deleting an active rental would strand its rented units.
	if rental.Status == domain.RentalStatusActive {
		return fmt.Errorf("%w: active rental must be returned or cancelled first", domain.ErrInvalidState)
	}
	return s.rentalRepo.Delete(ctx, rentalID)
}
