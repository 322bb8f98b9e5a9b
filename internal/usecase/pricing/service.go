package pricing

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/kailas-cloud/storefront/internal/domain"
	domcust "github.com/kailas-cloud/storefront/internal/domain/customer"
	domorder "github.com/kailas-cloud/storefront/internal/domain/order"
	dompricing "github.com/kailas-cloud/storefront/internal/domain/pricing"
	domprod "github.com/kailas-cloud/storefront/internal/domain/product"
	"github.com/kailas-cloud/storefront/internal/domain/quote"
	"github.com/kailas-cloud/storefront/internal/logger"
	"github.com/kailas-cloud/storefront/internal/metrics"
)

// Service is the pricing engine: unit price calculation, quote generation,
// stock validation, and order commit. Stateless; every pricing decision
// reads the rule set fresh.
type Service struct {
	products      ProductReader
	stock         StockWriter
	customers     CustomerReader
	rules         RuleReader
	orders        OrderWriter
	atomicReserve bool
}

// New creates a pricing service. atomicReserve switches order placement from
// the default validate/reduce pair to the checked all-or-nothing decrement.
func New(
	products ProductReader, stock StockWriter, customers CustomerReader,
	rules RuleReader, orders OrderWriter, atomicReserve bool,
) *Service {
	return &Service{
		products:      products,
		stock:         stock,
		customers:     customers,
		rules:         rules,
		orders:        orders,
		atomicReserve: atomicReserve,
	}
}

// CalculatePrice returns the unit price for a product and customer class.
// Retail customers always pay the base price; wholesale customers get the
// best applicable rule for orderAmount = basePrice x quantity. Quantity
// affects rule eligibility only, never the per-unit shape of the discount.
// The result is exact, not rounded; rounding happens when a quote line is
// materialized.
func (s *Service) CalculatePrice(
	ctx context.Context, p domprod.Product, customerType domcust.Type, quantity int64,
) (decimal.Decimal, error) {
	if customerType == domcust.Retail {
		return p.BasePrice(), nil
	}

	rules, err := s.rules.ListActive(ctx, customerType)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("list rules: %w", err)
	}
	return unitPrice(p, customerType, quantity, rules), nil
}

// unitPrice applies the best rule from an already-fetched rule set.
func unitPrice(
	p domprod.Product, customerType domcust.Type, quantity int64, rules []dompricing.Rule,
) decimal.Decimal {
	if customerType == domcust.Retail {
		return p.BasePrice()
	}
	orderAmount := p.BasePrice().Mul(decimal.NewFromInt(quantity))
	best, found := dompricing.Best(rules, customerType, orderAmount)
	if !found {
		return p.BasePrice()
	}
	return best.Apply(p.BasePrice())
}

// GenerateQuote prices a prospective order for a customer. Each line is a
// snapshot check against current stock; nothing is reserved or mutated.
func (s *Service) GenerateQuote(
	ctx context.Context, customerID string, quantities map[string]int64,
) (quote.Quote, error) {
	c, err := s.customers.Get(ctx, customerID)
	if err != nil {
		return quote.Quote{}, fmt.Errorf("get customer %s: %w", customerID, err)
	}
	return s.generateQuote(ctx, c, quantities)
}

func (s *Service) generateQuote(
	ctx context.Context, c domcust.Customer, quantities map[string]int64,
) (quote.Quote, error) {
	if len(quantities) == 0 {
		return quote.Quote{}, fmt.Errorf("%w: quote requires at least one line", domain.ErrValidation)
	}

	rules, err := s.rules.ListActive(ctx, c.CustomerType())
	if err != nil {
		return quote.Quote{}, fmt.Errorf("list rules: %w", err)
	}

	items := make([]quote.Item, 0, len(quantities))
	for _, id := range sortedIDs(quantities) {
		qty := quantities[id]
		if qty <= 0 {
			return quote.Quote{}, fmt.Errorf("%w: quantity for product %s must be positive", domain.ErrValidation, id)
		}

		p, err := s.products.Get(ctx, id)
		if errors.Is(err, domain.ErrProductNotFound) {
			return quote.Quote{}, domain.NewInsufficientStock(id)
		}
		if err != nil {
			return quote.Quote{}, fmt.Errorf("get product %s: %w", id, err)
		}
		if !p.HasStock(qty) {
			return quote.Quote{}, domain.NewInsufficientStock(id)
		}

		discounted := unitPrice(p, c.CustomerType(), qty, rules)
		items = append(items, quote.NewItem(p.ID(), p.Name(), qty, p.BasePrice(), discounted))
	}

	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.LineTotal())
	}

	// Second pass at the order level: re-select the best rule against the
	// subtotal. The flat discount applies only when the selected rule
	// declares a minimum order amount, so the same gated rule can discount
	// twice. That stacking is the documented contract of this engine.
	additional := decimal.Zero
	if best, found := dompricing.Best(rules, c.CustomerType(), subtotal); found && best.HasMinimum() {
		additional = subtotal.Mul(best.DiscountPercentage().Div(decimal.NewFromInt(100)))
	}

	metrics.QuotesGeneratedTotal.Inc()
	return quote.New(c.ID(), c.CustomerType(), items, additional), nil
}

// ValidateStockAvailability reports whether every requested product exists
// with at least the requested stock. Pure read; the answer can be stale by
// the time the caller acts on it.
func (s *Service) ValidateStockAvailability(
	ctx context.Context, quantities map[string]int64,
) (bool, error) {
	short, err := s.findShortLine(ctx, quantities)
	if err != nil {
		return false, err
	}
	return short == "", nil
}

// findShortLine returns the first product id (in sorted order) that is
// missing or short of stock, or "" when all lines are satisfiable.
func (s *Service) findShortLine(
	ctx context.Context, quantities map[string]int64,
) (string, error) {
	for _, id := range sortedIDs(quantities) {
		p, err := s.products.Get(ctx, id)
		if errors.Is(err, domain.ErrProductNotFound) {
			return id, nil
		}
		if err != nil {
			return "", fmt.Errorf("get product %s: %w", id, err)
		}
		if !p.HasStock(quantities[id]) {
			return id, nil
		}
	}
	return "", nil
}

// ReduceStock decrements every line's stock as one atomic unit. There is no
// floor check here; a caller that skips validation can drive stock negative.
func (s *Service) ReduceStock(ctx context.Context, quantities map[string]int64) error {
	return s.stock.ReduceStock(ctx, quantities)
}

// ReserveStock validates and decrements every line in a single checked
// operation, rejecting the whole batch if any line is short.
func (s *Service) ReserveStock(ctx context.Context, quantities map[string]int64) error {
	return s.stock.ReserveStock(ctx, quantities)
}

// CreateOrder prices the request and persists a Confirmed order. It does not
// touch stock; PlaceOrder wraps it with the stock protocol.
func (s *Service) CreateOrder(
	ctx context.Context, customerID string, quantities map[string]int64,
) (domorder.Order, error) {
	c, err := s.customers.Get(ctx, customerID)
	if err != nil {
		return domorder.Order{}, fmt.Errorf("get customer %s: %w", customerID, err)
	}

	q, err := s.generateQuote(ctx, c, quantities)
	if err != nil {
		return domorder.Order{}, err
	}

	o := domorder.FromQuote(q)
	created, err := s.orders.Create(ctx, o)
	if err != nil {
		return domorder.Order{}, fmt.Errorf("persist order: %w", err)
	}

	metrics.OrdersCreatedTotal.WithLabelValues(string(c.CustomerType())).Inc()
	return created, nil
}

// PlaceOrder runs the full commit protocol around CreateOrder.
//
// Default path: validate stock, create the order, then reduce stock. The
// validate and reduce steps are separate commands, so two concurrent orders
// can both pass validation and oversell; see ReserveStock for the checked
// alternative. A reduce failure after the order is persisted leaves the
// order referencing un-decremented stock, which is surfaced as
// ErrStockConflict and never swallowed.
//
// Atomic path (atomicReserve): reserve stock all-or-nothing, then create.
func (s *Service) PlaceOrder(
	ctx context.Context, customerID string, quantities map[string]int64,
) (domorder.Order, error) {
	if s.atomicReserve {
		if err := s.stock.ReserveStock(ctx, quantities); err != nil {
			return domorder.Order{}, err
		}
		return s.CreateOrder(ctx, customerID, quantities)
	}

	short, err := s.findShortLine(ctx, quantities)
	if err != nil {
		return domorder.Order{}, err
	}
	if short != "" {
		return domorder.Order{}, domain.NewInsufficientStock(short)
	}

	o, err := s.CreateOrder(ctx, customerID, quantities)
	if err != nil {
		return domorder.Order{}, err
	}

	if err := s.stock.ReduceStock(ctx, quantities); err != nil {
		metrics.OrderConflictsTotal.Inc()
		logger.FromContext(ctx).Error("Stock reduction failed after order commit",
			zap.String("order_id", o.ID()),
			zap.Error(err),
		)
		return domorder.Order{}, fmt.Errorf("order %s: %w: %w", o.ID(), domain.ErrStockConflict, err)
	}
	return o, nil
}

// GetOrder retrieves a persisted order.
func (s *Service) GetOrder(ctx context.Context, id string) (domorder.Order, error) {
	return s.orders.Get(ctx, id)
}

// UpdateOrderStatus parses and applies a lifecycle state to an order.
func (s *Service) UpdateOrderStatus(
	ctx context.Context, id, status string,
) (domorder.Order, error) {
	st, err := domorder.ParseStatus(status)
	if err != nil {
		return domorder.Order{}, fmt.Errorf("%w: %w", domain.ErrInvalidOrderStatus, err)
	}
	return s.orders.UpdateStatus(ctx, id, st)
}

// sortedIDs returns the map keys in sorted order so line processing and
// error attribution are deterministic.
func sortedIDs(quantities map[string]int64) []string {
	ids := make([]string, 0, len(quantities))
	for id := range quantities {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
