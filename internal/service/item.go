package service

import (
	"context"
	"fmt"

	"rental-management-backend/internal/domain"
	"rental-management-backend/internal/repository"
)

type itemService struct {
	itemRepo repository.ItemRepository
	unitRepo repository.InventoryUnitRepository
}

func NewItemService(itemRepo repository.ItemRepository, unitRepo repository.InventoryUnitRepository) ItemService {
	return &itemService{
		itemRepo: itemRepo,
		unitRepo: unitRepo,
	}
}

func (s *itemService) CreateItem(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	if item.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", domain.ErrInvalidQuantity)
	}
	if item.Status == "" {
		item.Status = domain.ItemStatusAvailable
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	// Seed one physical unit per quantity so allocation has something to
	// hand out.
	if err := s.unitRepo.BulkCreate(ctx, item.ID, item.Quantity); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) GetItem(ctx context.Context, id int64) (*domain.Item, []domain.InventoryUnit, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	units, err := s.unitRepo.ListByItem(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return item, units, nil
}

func (s *itemService) UpdateItem(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	existing, err := s.itemRepo.GetByID(ctx, item.ID)
	if err != nil {
		return nil, err
	}

	// Raising the quantity mints new units; lowering it would orphan
	// physical units, which only a delete may do.
	diff := item.Quantity - existing.Quantity
	if diff < 0 {
		return nil, fmt.Errorf("%w: quantity cannot be reduced below current stock", domain.ErrInvalidQuantity)
	}
	if diff > 0 {
		if err := s.unitRepo.BulkCreate(ctx, item.ID, diff); err != nil {
			return nil, err
		}
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.itemRepo.List(ctx)
}

func (s *itemService) DeleteItem(ctx context.Context, id int64) error {
	return s.itemRepo.Delete(ctx, id)
}
