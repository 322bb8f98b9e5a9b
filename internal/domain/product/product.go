package product

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product is a catalog item. Stock is the only field mutated by the engine,
// and only through order commit.
type Product struct {
	id          string
	name        string
	description string
	stock       int64
	basePrice   decimal.Decimal
}

// New validates and creates a Product.
func New(id, name, description string, stock int64, basePrice decimal.Decimal) (Product, error) {
	if id == "" {
		return Product{}, fmt.Errorf("product id is required")
	}
	if name == "" {
		return Product{}, fmt.Errorf("product name is required")
	}
	if stock < 0 {
		return Product{}, fmt.Errorf("product stock must not be negative, got %d", stock)
	}
	if basePrice.IsNegative() {
		return Product{}, fmt.Errorf("product base price must not be negative, got %s", basePrice)
	}

	return Product{
		id:          id,
		name:        name,
		description: description,
		stock:       stock,
		basePrice:   basePrice,
	}, nil
}

// Reconstruct creates a Product without validation (storage hydration).
func Reconstruct(id, name, description string, stock int64, basePrice decimal.Decimal) Product {
	return Product{
		id:          id,
		name:        name,
		description: description,
		stock:       stock,
		basePrice:   basePrice,
	}
}

// ID returns the product id.
func (p Product) ID() string { return p.id }

// Name returns the product name.
func (p Product) Name() string { return p.name }

// Description returns the product description.
func (p Product) Description() string { return p.description }

// Stock returns the units on hand.
func (p Product) Stock() int64 { return p.stock }

// BasePrice returns the undiscounted unit price.
func (p Product) BasePrice() decimal.Decimal { return p.basePrice }

// HasStock reports whether at least quantity units are on hand.
func (p Product) HasStock(quantity int64) bool {
	return p.stock >= quantity
}
