package entity

import (
	"time"

	"floradesk/internal/errors"
)

// ProductStatus is the catalog visibility state of a product.
type ProductStatus string

const (
	// ProductStatusActive means the product is purchasable.
	ProductStatusActive ProductStatus = "active"
	// ProductStatusInactive hides the product without touching stock.
	ProductStatusInactive ProductStatus = "inactive"
	// ProductStatusOutOfStock is forced whenever stock reaches zero.
	ProductStatusOutOfStock ProductStatus = "out_of_stock"
)

// IsValid checks if the ProductStatus is a valid value.
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusActive, ProductStatusInactive, ProductStatusOutOfStock:
		return true
	default:
		return false
	}
}

// ProductCategories enumerates the accepted product categories.
var ProductCategories = []string{
	"Bouquet", "Arrangement", "Single Flower", "Wedding",
	"Funeral", "Event", "Gift Set", "Other",
}

// IsValidProductCategory reports whether category is one of ProductCategories.
func IsValidProductCategory(category string) bool {
	for _, c := range ProductCategories {
		if c == category {
			return true
		}
	}

	return false
}

// Product is a physical catalog item with tracked stock.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Category    string
	Stock       int
	Status      ProductStatus
	CreatedBy   Actor // Who authored the record; its role gates staff edits.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ResolveProductStatus returns the status that keeps the stock/status
// invariant: zero stock always reads out_of_stock, and positive stock can
// never read out_of_stock (it falls back to active). Any other requested
// status is kept as-is.
func ResolveProductStatus(stock int, requested ProductStatus) ProductStatus {
	if stock <= 0 {
		return ProductStatusOutOfStock
	}
	if requested == ProductStatusOutOfStock {
		return ProductStatusActive
	}

	return requested
}

// SetStock updates the stock count and re-derives the status so the
// stock/status invariant holds on every persisted state.
func (p *Product) SetStock(stock int) {
	p.Stock = stock
	p.Status = ResolveProductStatus(stock, p.Status)
}

// SetStatus applies a requested status, rejecting unknown values and
// correcting requests that would violate the stock/status invariant.
func (p *Product) SetStatus(status ProductStatus) error {
	if !status.IsValid() {
		return errors.Errorf("invalid product status: %q", status)
	}
	p.Status = ResolveProductStatus(p.Stock, status)

	return nil
}
