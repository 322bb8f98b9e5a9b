package catalog

import (
	"context"

	domcust "github.com/kailas-cloud/storefront/internal/domain/customer"
	dompricing "github.com/kailas-cloud/storefront/internal/domain/pricing"
	domprod "github.com/kailas-cloud/storefront/internal/domain/product"
)

// ProductStore persists products.
type ProductStore interface {
	Upsert(ctx context.Context, p domprod.Product) error
	Get(ctx context.Context, id string) (domprod.Product, error)
}

// CustomerStore persists customers.
type CustomerStore interface {
	Upsert(ctx context.Context, c domcust.Customer) error
	Get(ctx context.Context, id string) (domcust.Customer, error)
}

// RuleStore persists pricing rules.
type RuleStore interface {
	Upsert(ctx context.Context, r dompricing.Rule) error
	Get(ctx context.Context, id string) (dompricing.Rule, error)
}
