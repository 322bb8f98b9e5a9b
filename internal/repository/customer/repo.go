package customer

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/storefront/internal/db"
	"github.com/kailas-cloud/storefront/internal/domain"
	domcust "github.com/kailas-cloud/storefront/internal/domain/customer"
)

// store is the consumer interface for customers (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Get(ctx context.Context, key string) ([]byte, error)
	SetNX(ctx context.Context, key string, value []byte) (bool, error)
}

// Repo implements customer persistence over hash storage with an email
// uniqueness index.
type Repo struct {
	store store
}

// New creates a customer repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Upsert stores a customer, claiming the email index key first.
// A second customer claiming the same email is rejected with ErrDuplicateEmail.
func (r *Repo) Upsert(ctx context.Context, c domcust.Customer) error {
	claimed, err := r.store.SetNX(ctx, emailKey(c.Email()), []byte(c.ID()))
	if err != nil {
		return fmt.Errorf("claim email %s: %w", c.Email(), err)
	}
	if !claimed {
		owner, err := r.store.Get(ctx, emailKey(c.Email()))
		if err != nil && !errors.Is(err, db.ErrKeyNotFound) {
			return fmt.Errorf("read email owner %s: %w", c.Email(), err)
		}
		if !bytes.Equal(owner, []byte(c.ID())) {
			return fmt.Errorf("email %s: %w", c.Email(), domain.ErrDuplicateEmail)
		}
	}

	if err := r.store.HSet(ctx, customerKey(c.ID()), customerToHash(c)); err != nil {
		return fmt.Errorf("hset customer %s: %w", c.ID(), err)
	}
	return nil
}

// Get retrieves a customer by id.
func (r *Repo) Get(ctx context.Context, id string) (domcust.Customer, error) {
	m, err := r.store.HGetAll(ctx, customerKey(id))
	if err != nil {
		return domcust.Customer{}, fmt.Errorf("hgetall customer %s: %w", id, err)
	}
	if len(m) == 0 {
		return domcust.Customer{}, domain.ErrCustomerNotFound
	}
	return customerFromHash(m), nil
}

// Key patterns: storefront:customer:{id}, storefront:email:{email}

func customerKey(id string) string {
	return fmt.Sprintf("%scustomer:%s", domain.KeyPrefix, id)
}

func emailKey(email string) string {
	return fmt.Sprintf("%semail:%s", domain.KeyPrefix, email)
}
