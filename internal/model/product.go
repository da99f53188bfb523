package model

type ProductCategory string

const (
	CategoryAccessory ProductCategory = "accessory"
	CategoryService   ProductCategory = "service"
)

type Product struct {
	// Opaque identifier assigned by the repository on create.
	ID string
	// Item or service name.
	Name     string
	Category ProductCategory
	// Catalog price and the possibly overridden active price.
	DefaultPriceCents int64
	CurrentPriceCents int64
	// Stock bookkeeping, accessories only. nil means the field was
	// never set for this product.
	StockQuantity *int64
	LowStockAlert *int64
}

// LowStock reports whether the product should be flagged on the
// inventory view. Products without a stock quantity or threshold are
// never flagged.
func (p *Product) LowStock() bool {
	if p.StockQuantity == nil || p.LowStockAlert == nil {
		return false
	}
	return *p.StockQuantity <= *p.LowStockAlert
}

// InventoryOverview is the derived inventory-section payload.
type InventoryOverview struct {
	Accessories []*Product
	Services    []*Product
	LowStock    []*Product
}
