package repository

import (
	"github.com/Vivekjangir90/mobile-repair-shop/internal/model"
)

func EntityToModel(e *ProductEntity) *model.Product {
	if e == nil {
		return nil
	}

	return &model.Product{
		ID:                e.ID,
		Name:              e.Name,
		Category:          e.Category,
		DefaultPriceCents: e.DefaultPriceCents,
		CurrentPriceCents: e.CurrentPriceCents,
		StockQuantity:     e.StockQuantity,
		LowStockAlert:     e.LowStockAlert,
	}
}

func EntityFromModel(p *model.Product) *ProductEntity {
	if p == nil {
		return nil
	}

	return &ProductEntity{
		ID:                p.ID,
		Name:              p.Name,
		Category:          p.Category,
		DefaultPriceCents: p.DefaultPriceCents,
		CurrentPriceCents: p.CurrentPriceCents,
		StockQuantity:     p.StockQuantity,
		LowStockAlert:     p.LowStockAlert,
	}
}
