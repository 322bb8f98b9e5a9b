package catalog

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kailas-cloud/storefront/internal/domain"
	domcust "github.com/kailas-cloud/storefront/internal/domain/customer"
	dompricing "github.com/kailas-cloud/storefront/internal/domain/pricing"
	domprod "github.com/kailas-cloud/storefront/internal/domain/product"
)

// Service is the catalog administration surface: validated writes and reads
// for products, customers, and pricing rules.
type Service struct {
	products  ProductStore
	customers CustomerStore
	rules     RuleStore
}

// New creates a catalog service.
func New(products ProductStore, customers CustomerStore, rules RuleStore) *Service {
	return &Service{products: products, customers: customers, rules: rules}
}

// UpsertProduct validates and stores a product.
func (s *Service) UpsertProduct(
	ctx context.Context, id, name, description string, stock int64, basePrice decimal.Decimal,
) (domprod.Product, error) {
	p, err := domprod.New(id, name, description, stock, basePrice)
	if err != nil {
		return domprod.Product{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	if err := s.products.Upsert(ctx, p); err != nil {
		return domprod.Product{}, err
	}
	return p, nil
}

// GetProduct retrieves a product by id.
func (s *Service) GetProduct(ctx context.Context, id string) (domprod.Product, error) {
	return s.products.Get(ctx, id)
}

// UpsertCustomer validates and stores a customer. The email uniqueness check
// lives in the repository, which owns the index key.
func (s *Service) UpsertCustomer(
	ctx context.Context, id, name, email, customerType string,
) (domcust.Customer, error) {
	ct, err := domcust.ParseType(customerType)
	if err != nil {
		return domcust.Customer{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	c, err := domcust.New(id, name, email, ct)
	if err != nil {
		return domcust.Customer{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	if err := s.customers.Upsert(ctx, c); err != nil {
		return domcust.Customer{}, err
	}
	return c, nil
}

// GetCustomer retrieves a customer by id.
func (s *Service) GetCustomer(ctx context.Context, id string) (domcust.Customer, error) {
	return s.customers.Get(ctx, id)
}

// UpsertRule validates and stores a pricing rule.
func (s *Service) UpsertRule(
	ctx context.Context, id, customerType string, discountPercentage decimal.Decimal,
	minimumOrderAmount *decimal.Decimal, active bool, description string,
) (dompricing.Rule, error) {
	ct, err := domcust.ParseType(customerType)
	if err != nil {
		return dompricing.Rule{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	r, err := dompricing.New(id, ct, discountPercentage, minimumOrderAmount, active, description)
	if err != nil {
		return dompricing.Rule{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	if err := s.rules.Upsert(ctx, r); err != nil {
		return dompricing.Rule{}, err
	}
	return r, nil
}

// GetRule retrieves a pricing rule by id.
func (s *Service) GetRule(ctx context.Context, id string) (dompricing.Rule, error) {
	return s.rules.Get(ctx, id)
}
