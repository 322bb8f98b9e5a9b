package product

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	domprod "github.com/kailas-cloud/storefront/internal/domain/product"
)

// productToHash converts a domain Product to a map for HSET.
func productToHash(p domprod.Product) map[string]string {
	return map[string]string{
		"id":          p.ID(),
		"name":        p.Name(),
		"description": p.Description(),
		"stock":       strconv.FormatInt(p.Stock(), 10),
		"base_price":  p.BasePrice().String(),
	}
}

// productFromHash hydrates a domain Product from an HGETALL result map.
func productFromHash(m map[string]string) (domprod.Product, error) {
	stock, err := strconv.ParseInt(m["stock"], 10, 64)
	if err != nil {
		return domprod.Product{}, fmt.Errorf("invalid stock: %w", err)
	}

	basePrice, err := decimal.NewFromString(m["base_price"])
	if err != nil {
		return domprod.Product{}, fmt.Errorf("invalid base_price: %w", err)
	}

	return domprod.Reconstruct(m["id"], m["name"], m["description"], stock, basePrice), nil
}
