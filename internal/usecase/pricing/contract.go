package pricing

import (
	"context"

	domcust "github.com/kailas-cloud/storefront/internal/domain/customer"
	domorder "github.com/kailas-cloud/storefront/internal/domain/order"
	domprod "github.com/kailas-cloud/storefront/internal/domain/product"
	dompricing "github.com/kailas-cloud/storefront/internal/domain/pricing"
)

// ProductReader reads products for quoting and stock validation.
type ProductReader interface {
	Get(ctx context.Context, id string) (domprod.Product, error)
}

// StockWriter mutates stock levels at order commit.
type StockWriter interface {
	// ReduceStock decrements each product's stock unconditionally, as one
	// atomic unit. No floor check; callers validate first.
	ReduceStock(ctx context.Context, quantities map[string]int64) error
	// ReserveStock checks every line and decrements all-or-nothing.
	ReserveStock(ctx context.Context, quantities map[string]int64) error
}

// CustomerReader reads customers for quoting.
type CustomerReader interface {
	Get(ctx context.Context, id string) (domcust.Customer, error)
}

// RuleReader reads the active rules for a customer class.
type RuleReader interface {
	ListActive(ctx context.Context, customerType domcust.Type) ([]dompricing.Rule, error)
}

// OrderWriter persists orders.
type OrderWriter interface {
	Create(ctx context.Context, o domorder.Order) (domorder.Order, error)
	Get(ctx context.Context, id string) (domorder.Order, error)
	UpdateStatus(ctx context.Context, id string, status domorder.Status) (domorder.Order, error)
}
