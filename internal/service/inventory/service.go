package service

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/Vivekjangir90/mobile-repair-shop/internal/model"
	"github.com/Vivekjangir90/mobile-repair-shop/internal/platform/logger"
)

type ProductRepository interface {
	UpdateStock(ctx context.Context, id string, quantity int64) error
}

type AppState interface {
	Snapshot() model.Snapshot
	Refresh(ctx context.Context) error
}

type service struct {
	repo           ProductRepository
	state          AppState
	writeDBTimeout time.Duration
}

func NewInventoryService(
	repo ProductRepository,
	state AppState,
	writeDBTimeout time.Duration,
) *service {
	return &service{repo: repo, state: state, writeDBTimeout: writeDBTimeout}
}

func (s *service) Overview(ctx context.Context) (*model.InventoryOverview, error) {
	out := Overview(s.state.Snapshot().Products)
	return &out, nil
}

// UpdateStock replaces the on-hand quantity of a product.
func (s *service) UpdateStock(ctx context.Context, productID string, quantity int64) error {
	const op = "inventory.service.UpdateStock"
	log := logger.With(
		logger.String("product_id", productID),
		logger.Int64("quantity", quantity),
	)

	if quantity < 0 {
		log.Error(ctx, "validation: negative quantity")
		return fmt.Errorf("%s: %w: quantity must not be negative", op, model.ErrValidation)
	}

	wCtx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	if err := s.repo.UpdateStock(wCtx, productID, quantity); err != nil {
		log.Error(ctx, "repository update stock", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.state.Refresh(ctx); err != nil {
		log.Warn(ctx, "state refresh after stock update", logger.ErrorF(err))
	}

	return nil
}

// Overview splits the catalog by category and flags low stock. An
// accessory is low-stock only when both the quantity and the alert
// threshold are set and quantity <= threshold.
func Overview(products []*model.Product) model.InventoryOverview {
	accessories := lo.Filter(products, func(p *model.Product, _ int) bool {
		return p.Category == model.CategoryAccessory
	})
	services := lo.Filter(products, func(p *model.Product, _ int) bool {
		return p.Category == model.CategoryService
	})
	lowStock := lo.Filter(accessories, func(p *model.Product, _ int) bool {
		return p.LowStock()
	})

	return model.InventoryOverview{
		Accessories: accessories,
		Services:    services,
		LowStock:    lowStock,
	}
}
