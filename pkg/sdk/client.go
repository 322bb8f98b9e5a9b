package storefront

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kailas-cloud/storefront/internal/db"
	dbRedis "github.com/kailas-cloud/storefront/internal/db/redis"
	domcust "github.com/kailas-cloud/storefront/internal/domain/customer"
	domorder "github.com/kailas-cloud/storefront/internal/domain/order"
	dompricing "github.com/kailas-cloud/storefront/internal/domain/pricing"
	domprod "github.com/kailas-cloud/storefront/internal/domain/product"
	"github.com/kailas-cloud/storefront/internal/domain/quote"
	logpkg "github.com/kailas-cloud/storefront/internal/logger"
	customerrepo "github.com/kailas-cloud/storefront/internal/repository/customer"
	orderrepo "github.com/kailas-cloud/storefront/internal/repository/order"
	productrepo "github.com/kailas-cloud/storefront/internal/repository/product"
	rulerepo "github.com/kailas-cloud/storefront/internal/repository/rule"
	cataloguc "github.com/kailas-cloud/storefront/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/storefront/internal/usecase/health"
	pricinguc "github.com/kailas-cloud/storefront/internal/usecase/pricing"
	searchuc "github.com/kailas-cloud/storefront/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal interfaces so tests can swap the wired services.
type pricingUseCase interface {
	GenerateQuote(ctx context.Context, customerID string, quantities map[string]int64) (quote.Quote, error)
	PlaceOrder(ctx context.Context, customerID string, quantities map[string]int64) (domorder.Order, error)
	GetOrder(ctx context.Context, id string) (domorder.Order, error)
	UpdateOrderStatus(ctx context.Context, id, status string) (domorder.Order, error)
}

type searchUseCase interface {
	Search(ctx context.Context, query string, maxResults int) ([]domprod.Product, error)
	Suggestions(ctx context.Context, partial string, maxSuggestions int) ([]string, error)
	RelatedTerms(ctx context.Context, query string) ([]string, error)
	Categories(ctx context.Context) []string
}

type catalogUseCase interface {
	UpsertProduct(ctx context.Context, id, name, description string, stock int64, basePrice decimal.Decimal) (domprod.Product, error)
	GetProduct(ctx context.Context, id string) (domprod.Product, error)
	UpsertCustomer(ctx context.Context, id, name, email, customerType string) (domcust.Customer, error)
	GetCustomer(ctx context.Context, id string) (domcust.Customer, error)
	UpsertRule(ctx context.Context, id, customerType string, discountPercentage decimal.Decimal, minimumOrderAmount *decimal.Decimal, active bool, description string) (dompricing.Rule, error)
	GetRule(ctx context.Context, id string) (dompricing.Rule, error)
}

// Client is the storefront SDK entry point.
type Client struct {
	store      db.Store
	pricingSvc pricingUseCase
	searchSvc  searchUseCase
	catalogSvc catalogUseCase
	healthSvc  *healthuc.Service
	logCtx     func(context.Context) context.Context
}

// New creates a storefront Client and connects to the catalog store.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("storefront: database address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("storefront: create redis store: %w", err)
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("storefront: database not ready: %w", err)
	}

	return wireClient(store, cfg), nil
}

func wireClient(store db.Store, cfg *clientConfig) *Client {
	products := productrepo.New(store)
	customers := customerrepo.New(store)
	rules := rulerepo.New(store)
	orders := orderrepo.New(store)

	return &Client{
		store:      store,
		pricingSvc: pricinguc.New(products, products, customers, rules, orders, cfg.atomicReserve),
		searchSvc:  searchuc.New(products),
		catalogSvc: cataloguc.New(products, customers, rules),
		healthSvc:  healthuc.New(store),
		logCtx:     wireLogCtx(cfg),
	}
}

// wireLogCtx attaches the configured logger to each request context so the
// services' contextual logging works the same as behind the HTTP server.
func wireLogCtx(cfg *clientConfig) func(context.Context) context.Context {
	if cfg.logger == nil {
		return func(ctx context.Context) context.Context { return ctx }
	}
	l := cfg.logger
	return func(ctx context.Context) context.Context {
		return logpkg.ContextWithLogger(ctx, l)
	}
}

// Close releases the underlying store connection.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// GenerateQuote prices a prospective order without touching stock.
func (c *Client) GenerateQuote(
	ctx context.Context, customerID string, quantities map[string]int64,
) (quote.Quote, error) {
	return c.pricingSvc.GenerateQuote(c.logCtx(ctx), customerID, quantities)
}

// PlaceOrder validates stock, commits the order, and decrements stock.
func (c *Client) PlaceOrder(
	ctx context.Context, customerID string, quantities map[string]int64,
) (domorder.Order, error) {
	return c.pricingSvc.PlaceOrder(c.logCtx(ctx), customerID, quantities)
}

// GetOrder retrieves a persisted order.
func (c *Client) GetOrder(ctx context.Context, id string) (domorder.Order, error) {
	return c.pricingSvc.GetOrder(c.logCtx(ctx), id)
}

// UpdateOrderStatus moves an order to a new lifecycle state.
func (c *Client) UpdateOrderStatus(ctx context.Context, id, status string) (domorder.Order, error) {
	return c.pricingSvc.UpdateOrderStatus(c.logCtx(ctx), id, status)
}

// SearchProducts ranks the catalog against a free-text query.
func (c *Client) SearchProducts(
	ctx context.Context, query string, maxResults int,
) ([]domprod.Product, error) {
	return c.searchSvc.Search(c.logCtx(ctx), query, maxResults)
}

// Suggestions returns autocomplete candidates for a partial query.
func (c *Client) Suggestions(
	ctx context.Context, partial string, maxSuggestions int,
) ([]string, error) {
	return c.searchSvc.Suggestions(c.logCtx(ctx), partial, maxSuggestions)
}

// RelatedTerms expands a query through the synonym and category tables.
func (c *Client) RelatedTerms(ctx context.Context, query string) ([]string, error) {
	return c.searchSvc.RelatedTerms(c.logCtx(ctx), query)
}

// Categories returns the static category names.
func (c *Client) Categories(ctx context.Context) []string {
	return c.searchSvc.Categories(c.logCtx(ctx))
}

// UpsertProduct validates and stores a product.
func (c *Client) UpsertProduct(
	ctx context.Context, id, name, description string, stock int64, basePrice decimal.Decimal,
) (domprod.Product, error) {
	return c.catalogSvc.UpsertProduct(c.logCtx(ctx), id, name, description, stock, basePrice)
}

// GetProduct retrieves a product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (domprod.Product, error) {
	return c.catalogSvc.GetProduct(c.logCtx(ctx), id)
}

// UpsertCustomer validates and stores a customer.
func (c *Client) UpsertCustomer(
	ctx context.Context, id, name, email, customerType string,
) (domcust.Customer, error) {
	return c.catalogSvc.UpsertCustomer(c.logCtx(ctx), id, name, email, customerType)
}

// GetCustomer retrieves a customer by id.
func (c *Client) GetCustomer(ctx context.Context, id string) (domcust.Customer, error) {
	return c.catalogSvc.GetCustomer(c.logCtx(ctx), id)
}

// UpsertRule validates and stores a pricing rule.
func (c *Client) UpsertRule(
	ctx context.Context, id, customerType string, discountPercentage decimal.Decimal,
	minimumOrderAmount *decimal.Decimal, active bool, description string,
) (dompricing.Rule, error) {
	return c.catalogSvc.UpsertRule(
		c.logCtx(ctx), id, customerType, discountPercentage, minimumOrderAmount, active, description)
}

// GetRule retrieves a pricing rule by id.
func (c *Client) GetRule(ctx context.Context, id string) (dompricing.Rule, error) {
	return c.catalogSvc.GetRule(c.logCtx(ctx), id)
}

// Health reports catalog store connectivity.
func (c *Client) Health(ctx context.Context) healthuc.Report {
	return c.healthSvc.Check(c.logCtx(ctx))
}
