package order

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kailas-cloud/storefront/internal/domain"
	domorder "github.com/kailas-cloud/storefront/internal/domain/order"
)

// store is the consumer interface for orders (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
}

// Repo implements order persistence over hash storage. Order lines are
// serialized as a JSON field inside the hash; they are immutable snapshots
// and never queried individually.
type Repo struct {
	store store
}

// New creates an order repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Create assigns a fresh id and persists the order. Returns the stored copy.
func (r *Repo) Create(ctx context.Context, o domorder.Order) (domorder.Order, error) {
	o = o.WithID(uuid.NewString())

	fields, err := orderToHash(o)
	if err != nil {
		return domorder.Order{}, fmt.Errorf("encode order: %w", err)
	}
	if err := r.store.HSet(ctx, orderKey(o.ID()), fields); err != nil {
		return domorder.Order{}, fmt.Errorf("hset order %s: %w", o.ID(), err)
	}
	return o, nil
}

// Get retrieves an order by id.
func (r *Repo) Get(ctx context.Context, id string) (domorder.Order, error) {
	m, err := r.store.HGetAll(ctx, orderKey(id))
	if err != nil {
		return domorder.Order{}, fmt.Errorf("hgetall order %s: %w", id, err)
	}
	if len(m) == 0 {
		return domorder.Order{}, domain.ErrOrderNotFound
	}
	o, err := orderFromHash(m)
	if err != nil {
		return domorder.Order{}, fmt.Errorf("hydrate order %s: %w", id, err)
	}
	return o, nil
}

// UpdateStatus moves an existing order to the given state.
func (r *Repo) UpdateStatus(ctx context.Context, id string, status domorder.Status) (domorder.Order, error) {
	o, err := r.Get(ctx, id)
	if err != nil {
		return domorder.Order{}, err
	}

	o = o.WithStatus(status)
	if err := r.store.HSet(ctx, orderKey(id), map[string]string{"status": string(status)}); err != nil {
		return domorder.Order{}, fmt.Errorf("hset order status %s: %w", id, err)
	}
	return o, nil
}

func orderKey(id string) string {
	return fmt.Sprintf("%sorder:%s", domain.KeyPrefix, id)
}
