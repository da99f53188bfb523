package repository

import (
	"context"

	"github.com/samber/lo"

	"github.com/Vivekjangir90/mobile-repair-shop/internal/model"
)

type BatchCreator interface {
	CreateBatch(ctx context.Context, products []*model.Product) error
	Count(ctx context.Context) (int64, error)
}

// SeedCatalog inserts the fixed shop catalog: four repair services and
// four stocked accessories. It is a no-op when products already exist.
func SeedCatalog(ctx context.Context, c BatchCreator) error {
	n, err := c.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	products := []*model.Product{
		{
			Name:              "Screen Replacement",
			Category:          model.CategoryService,
			DefaultPriceCents: 200000,
			CurrentPriceCents: 200000,
		},
		{
			Name:              "Battery Replacement",
			Category:          model.CategoryService,
			DefaultPriceCents: 150000,
			CurrentPriceCents: 150000,
		},
		{
			Name:              "Software Repair",
			Category:          model.CategoryService,
			DefaultPriceCents: 50000,
			CurrentPriceCents: 50000,
		},
		{
			Name:              "Charging Port Repair",
			Category:          model.CategoryService,
			DefaultPriceCents: 80000,
			CurrentPriceCents: 80000,
		},
		{
			Name:              "Mobile Charger",
			Category:          model.CategoryAccessory,
			DefaultPriceCents: 30000,
			CurrentPriceCents: 30000,
			StockQuantity:     lo.ToPtr[int64](50),
			LowStockAlert:     lo.ToPtr[int64](10),
		},
		{
			Name:              "USB Cable",
			Category:          model.CategoryAccessory,
			DefaultPriceCents: 15000,
			CurrentPriceCents: 15000,
			StockQuantity:     lo.ToPtr[int64](100),
			LowStockAlert:     lo.ToPtr[int64](20),
		},
		{
			Name:              "Mobile Case",
			Category:          model.CategoryAccessory,
			DefaultPriceCents: 20000,
			CurrentPriceCents: 20000,
			StockQuantity:     lo.ToPtr[int64](75),
			LowStockAlert:     lo.ToPtr[int64](15),
		},
		{
			Name:              "Screen Guard",
			Category:          model.CategoryAccessory,
			DefaultPriceCents: 10000,
			CurrentPriceCents: 10000,
			StockQuantity:     lo.ToPtr[int64](120),
			LowStockAlert:     lo.ToPtr[int64](25),
		},
	}

	return c.CreateBatch(ctx, products)
}
