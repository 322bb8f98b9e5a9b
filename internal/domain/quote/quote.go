package quote

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kailas-cloud/storefront/internal/domain"
	"github.com/kailas-cloud/storefront/internal/domain/customer"
)

// Item is a priced quote line. All monetary fields are snapshots taken at
// generation time; later catalog or rule changes never alter them.
type Item struct {
	productID       string
	productName     string
	quantity        int64
	basePrice       decimal.Decimal
	discountedPrice decimal.Decimal
	discountAmount  decimal.Decimal
	lineTotal       decimal.Decimal
}

// NewItem materializes a quote line from a unit price computation.
// The discounted unit price is rounded per the money policy before the
// derived amounts are computed, so line totals are exact multiples of the
// price a client sees.
func NewItem(
	productID, productName string, quantity int64,
	basePrice, discountedUnitPrice decimal.Decimal,
) Item {
	qty := decimal.NewFromInt(quantity)
	discounted := domain.RoundMoney(discountedUnitPrice)

	return Item{
		productID:       productID,
		productName:     productName,
		quantity:        quantity,
		basePrice:       basePrice,
		discountedPrice: discounted,
		discountAmount:  domain.RoundMoney(basePrice.Sub(discounted).Mul(qty)),
		lineTotal:       discounted.Mul(qty),
	}
}

// ProductID returns the product id.
func (i Item) ProductID() string { return i.productID }

// ProductName returns the product name snapshot.
func (i Item) ProductName() string { return i.productName }

// Quantity returns the requested quantity.
func (i Item) Quantity() int64 { return i.quantity }

// BasePrice returns the undiscounted unit price snapshot.
func (i Item) BasePrice() decimal.Decimal { return i.basePrice }

// DiscountedPrice returns the rounded discounted unit price.
func (i Item) DiscountedPrice() decimal.Decimal { return i.discountedPrice }

// DiscountAmount returns (basePrice - discountedPrice) x quantity.
func (i Item) DiscountAmount() decimal.Decimal { return i.discountAmount }

// LineTotal returns discountedPrice x quantity.
func (i Item) LineTotal() decimal.Decimal { return i.lineTotal }

// Quote is a transient pricing computation for a prospective order.
// Never persisted; safe to discard.
type Quote struct {
	customerID         string
	customerType       customer.Type
	items              []Item
	subtotal           decimal.Decimal
	additionalDiscount decimal.Decimal
	total              decimal.Decimal
	generatedAt        time.Time
}

// New aggregates quote lines. subtotal is the sum of line totals;
// additionalDiscount is the order-level flat discount (zero when none
// applied); total = subtotal - additionalDiscount.
func New(
	customerID string, customerType customer.Type,
	items []Item, additionalDiscount decimal.Decimal,
) Quote {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.lineTotal)
	}
	additionalDiscount = domain.RoundMoney(additionalDiscount)

	return Quote{
		customerID:         customerID,
		customerType:       customerType,
		items:              items,
		subtotal:           subtotal,
		additionalDiscount: additionalDiscount,
		total:              subtotal.Sub(additionalDiscount),
		generatedAt:        time.Now().UTC(),
	}
}

// CustomerID returns the customer id.
func (q Quote) CustomerID() string { return q.customerID }

// CustomerType returns the customer class the quote was priced for.
func (q Quote) CustomerType() customer.Type { return q.customerType }

// Items returns the priced lines.
func (q Quote) Items() []Item { return q.items }

// Subtotal returns the sum of line totals before the order-level discount.
func (q Quote) Subtotal() decimal.Decimal { return q.subtotal }

// AdditionalDiscount returns the order-level flat discount.
func (q Quote) AdditionalDiscount() decimal.Decimal { return q.additionalDiscount }

// Total returns subtotal minus the order-level discount.
func (q Quote) Total() decimal.Decimal { return q.total }

// GeneratedAt returns the quote generation timestamp.
func (q Quote) GeneratedAt() time.Time { return q.generatedAt }
