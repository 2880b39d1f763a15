package service

import (
	"context"
	"time"

	"rental-management-backend/internal/domain"
	"rental-management-backend/internal/logger"
	"rental-management-backend/internal/repository"
)

type billingService struct {
	billingRepo repository.BillingRepository
	now         func() time.Time
}

func NewBillingService(billingRepo repository.BillingRepository) BillingService {
	return &billingService{
		billingRepo: billingRepo,
		now:         time.Now,
	}
}

func (s *billingService) GetBilling(ctx context.Context, id int64) (*domain.Billing, error) {
	return s.billingRepo.GetByID(ctx, id)
}

func (s *billingService) ListBillings(ctx context.Context) ([]domain.Billing, error) {
	return s.billingRepo.List(ctx)
}

func (s *billingService) PayBilling(ctx context.Context, id int64) (*domain.Billing, error) {
	// Look it up first so an unknown ID surfaces as not-found rather than
	// as a failed state transition.
	if _, err := s.billingRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	paid, err := s.billingRepo.MarkPaid(ctx, id, s.now())
	if err != nil {
		return nil, err
	}
	if !paid {
		return nil, domain.ErrAlreadyPaid
	}

	billing, err := s.billingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "billing paid", "billing_id", billing.ID, "amount_cents", billing.AmountCents)
	return billing, nil
}

func (s *billingService) DeleteBilling(ctx context.Context, id int64) error {
	billing, err := s.billingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if billing.Status == domain.BillingStatusPaid {
		return domain.ErrAlreadyPaid
	}
	return s.billingRepo.Delete(ctx, id)
}

func (s *billingService) MarkOverdueBillings(ctx context.Context, asOf time.Time) (int64, error) {
	count, err := s.billingRepo.MarkOverdue(ctx, asOf)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logger.InfoContext(ctx, "billings marked overdue", "count", count, "as_of", asOf)
	}
	return count, nil
}
