package storefront

import (
	"context"

	"github.com/shopspring/decimal"

	domcust "github.com/kailas-cloud/storefront/internal/domain/customer"
	domorder "github.com/kailas-cloud/storefront/internal/domain/order"
	dompricing "github.com/kailas-cloud/storefront/internal/domain/pricing"
	domprod "github.com/kailas-cloud/storefront/internal/domain/product"
	"github.com/kailas-cloud/storefront/internal/domain/quote"
)

// --- pricingUseCase mock ---

type mockPricingUC struct {
	generateQuoteFn     func(ctx context.Context, customerID string, quantities map[string]int64) (quote.Quote, error)
	placeOrderFn        func(ctx context.Context, customerID string, quantities map[string]int64) (domorder.Order, error)
	getOrderFn          func(ctx context.Context, id string) (domorder.Order, error)
	updateOrderStatusFn func(ctx context.Context, id, status string) (domorder.Order, error)
}

func (m *mockPricingUC) GenerateQuote(
	ctx context.Context, customerID string, quantities map[string]int64,
) (quote.Quote, error) {
	return m.generateQuoteFn(ctx, customerID, quantities)
}

func (m *mockPricingUC) PlaceOrder(
	ctx context.Context, customerID string, quantities map[string]int64,
) (domorder.Order, error) {
	return m.placeOrderFn(ctx, customerID, quantities)
}

func (m *mockPricingUC) GetOrder(ctx context.Context, id string) (domorder.Order, error) {
	return m.getOrderFn(ctx, id)
}

func (m *mockPricingUC) UpdateOrderStatus(ctx context.Context, id, status string) (domorder.Order, error) {
	return m.updateOrderStatusFn(ctx, id, status)
}

// --- searchUseCase mock ---

type mockSearchUC struct {
	searchFn       func(ctx context.Context, query string, maxResults int) ([]domprod.Product, error)
	suggestionsFn  func(ctx context.Context, partial string, maxSuggestions int) ([]string, error)
	relatedTermsFn func(ctx context.Context, query string) ([]string, error)
	categoriesFn   func(ctx context.Context) []string
}

func (m *mockSearchUC) Search(ctx context.Context, query string, maxResults int) ([]domprod.Product, error) {
	return m.searchFn(ctx, query, maxResults)
}

func (m *mockSearchUC) Suggestions(ctx context.Context, partial string, maxSuggestions int) ([]string, error) {
	return m.suggestionsFn(ctx, partial, maxSuggestions)
}

func (m *mockSearchUC) RelatedTerms(ctx context.Context, query string) ([]string, error) {
	return m.relatedTermsFn(ctx, query)
}

func (m *mockSearchUC) Categories(ctx context.Context) []string {
	return m.categoriesFn(ctx)
}

// --- catalogUseCase mock ---

type mockCatalogUC struct {
	upsertProductFn  func(ctx context.Context, id, name, description string, stock int64, basePrice decimal.Decimal) (domprod.Product, error)
	getProductFn     func(ctx context.Context, id string) (domprod.Product, error)
	upsertCustomerFn func(ctx context.Context, id, name, email, customerType string) (domcust.Customer, error)
	getCustomerFn    func(ctx context.Context, id string) (domcust.Customer, error)
	upsertRuleFn     func(ctx context.Context, id, customerType string, discountPercentage decimal.Decimal, minimumOrderAmount *decimal.Decimal, active bool, description string) (dompricing.Rule, error)
	getRuleFn        func(ctx context.Context, id string) (dompricing.Rule, error)
}

func (m *mockCatalogUC) UpsertProduct(
	ctx context.Context, id, name, description string, stock int64, basePrice decimal.Decimal,
) (domprod.Product, error) {
	return m.upsertProductFn(ctx, id, name, description, stock, basePrice)
}

func (m *mockCatalogUC) GetProduct(ctx context.Context, id string) (domprod.Product, error) {
	return m.getProductFn(ctx, id)
}

func (m *mockCatalogUC) UpsertCustomer(
	ctx context.Context, id, name, email, customerType string,
) (domcust.Customer, error) {
	return m.upsertCustomerFn(ctx, id, name, email, customerType)
}

func (m *mockCatalogUC) GetCustomer(ctx context.Context, id string) (domcust.Customer, error) {
	return m.getCustomerFn(ctx, id)
}

func (m *mockCatalogUC) UpsertRule(
	ctx context.Context, id, customerType string, discountPercentage decimal.Decimal,
	minimumOrderAmount *decimal.Decimal, active bool, description string,
) (dompricing.Rule, error) {
	return m.upsertRuleFn(ctx, id, customerType, discountPercentage, minimumOrderAmount, active, description)
}

func (m *mockCatalogUC) GetRule(ctx context.Context, id string) (dompricing.Rule, error) {
	return m.getRuleFn(ctx, id)
}
