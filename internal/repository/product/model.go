package repository

import (
	"github.com/Vivekjangir90/mobile-repair-shop/internal/model"
)

type ProductEntity struct {
	ID                string                `bson:"_id"`
	Name              string                `bson:"name"`
	Category          model.ProductCategory `bson:"category"`
	DefaultPriceCents int64                 `bson:"default_price_cents"`
	CurrentPriceCents int64                 `bson:"current_price_cents"`
	StockQuantity     *int64                `bson:"stock_quantity,omitempty"`
	LowStockAlert     *int64                `bson:"low_stock_alert,omitempty"`
}
