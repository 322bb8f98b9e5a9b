package product

import (
	"context"
	"fmt"
	"sort"

	"github.com/kailas-cloud/storefront/internal/db"
	"github.com/kailas-cloud/storefront/internal/domain"
	domprod "github.com/kailas-cloud/storefront/internal/domain/product"
)

// stockField is the hash field the Lua delta scripts operate on.
const stockField = "stock"

// store is the consumer interface for products (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
	HIncrByMulti(ctx context.Context, field string, deltas []db.HashDelta) error
	HDecrByMultiChecked(ctx context.Context, field string, decs []db.HashDelta) (string, error)
}

// Repo implements product persistence over hash storage.
type Repo struct {
	store store
}

// New creates a product repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Upsert stores a product hash.
func (r *Repo) Upsert(ctx context.Context, p domprod.Product) error {
	if err := r.store.HSet(ctx, productKey(p.ID()), productToHash(p)); err != nil {
		return fmt.Errorf("hset product %s: %w", p.ID(), err)
	}
	return nil
}

// Get retrieves a product by id.
func (r *Repo) Get(ctx context.Context, id string) (domprod.Product, error) {
	m, err := r.store.HGetAll(ctx, productKey(id))
	if err != nil {
		return domprod.Product{}, fmt.Errorf("hgetall product %s: %w", id, err)
	}
	if len(m) == 0 {
		return domprod.Product{}, domain.ErrProductNotFound
	}
	return productFromHash(m)
}

// List returns the whole catalog sorted by product id (the catalog order the
// search engine falls back to). Hashes that fail to hydrate are skipped so a
// single corrupt record cannot take down a search.
func (r *Repo) List(ctx context.Context) ([]domprod.Product, error) {
	keys, err := r.store.Scan(ctx, productKey("*"))
	if err != nil {
		return nil, fmt.Errorf("scan products: %w", err)
	}
	if len(keys) == 0 {
		return []domprod.Product{}, nil
	}

	results, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall multi products: %w", err)
	}

	products := make([]domprod.Product, 0, len(results))
	for _, m := range results {
		if len(m) == 0 {
			continue
		}
		p, err := productFromHash(m)
		if err != nil {
			continue
		}
		products = append(products, p)
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].ID() < products[j].ID()
	})

	return products, nil
}

// ReduceStock decrements stock for every line as one atomic unit.
// No floor check of its own: callers validate first (documented contract).
func (r *Repo) ReduceStock(ctx context.Context, quantities map[string]int64) error {
	deltas := stockDeltas(quantities, -1)
	if err := r.store.HIncrByMulti(ctx, stockField, deltas); err != nil {
		return fmt.Errorf("reduce stock: %w", err)
	}
	return nil
}

// ReserveStock checks then decrements every line in a single server-side
// script; the whole batch is rejected when any line is short.
func (r *Repo) ReserveStock(ctx context.Context, quantities map[string]int64) error {
	deltas := stockDeltas(quantities, 1)
	failed, err := r.store.HDecrByMultiChecked(ctx, stockField, deltas)
	if err != nil {
		return fmt.Errorf("reserve stock: %w", err)
	}
	if failed != "" {
		return domain.NewInsufficientStock(productIDFromKey(failed))
	}
	return nil
}

// stockDeltas builds deltas in deterministic (sorted) product id order.
func stockDeltas(quantities map[string]int64, sign int64) []db.HashDelta {
	ids := make([]string, 0, len(quantities))
	for id := range quantities {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	deltas := make([]db.HashDelta, len(ids))
	for i, id := range ids {
		deltas[i] = db.HashDelta{Key: productKey(id), Delta: sign * quantities[id]}
	}
	return deltas
}

// Key pattern: storefront:product:{id}

func productKey(id string) string {
	return fmt.Sprintf("%sproduct:%s", domain.KeyPrefix, id)
}

func productIDFromKey(key string) string {
	prefix := productKey("")
	if len(key) > len(prefix) && key[:len(prefix)] == prefix {
		return key[len(prefix):]
	}
	return key
}
