package search

import (
	"context"

	domprod "github.com/kailas-cloud/storefront/internal/domain/product"
)

// ProductLister reads the catalog for scoring. List returns products in
// catalog order (sorted by id); entries that fail to hydrate are skipped
// by the repository, not surfaced here.
type ProductLister interface {
	List(ctx context.Context) ([]domprod.Product, error)
}
