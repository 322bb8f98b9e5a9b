package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kailas-cloud/storefront/internal/domain/customer"
)

var oneHundred = decimal.NewFromInt(100)

// Rule is a discount rule for a customer class. Multiple rules may target the
// same class; at most one is selected per pricing decision (see Best).
type Rule struct {
	id                 string
	customerType       customer.Type
	discountPercentage decimal.Decimal
	minimumOrderAmount *decimal.Decimal
	active             bool
	description        string
}

// New validates and creates a Rule. minimumOrderAmount may be nil (no gate).
func New(
	id string, customerType customer.Type, discountPercentage decimal.Decimal,
	minimumOrderAmount *decimal.Decimal, active bool, description string,
) (Rule, error) {
	if id == "" {
		return Rule{}, fmt.Errorf("rule id is required")
	}
	if !customerType.IsValid() {
		return Rule{}, fmt.Errorf("invalid customer type: %q", customerType)
	}
	if discountPercentage.IsNegative() || discountPercentage.GreaterThan(oneHundred) {
		return Rule{}, fmt.Errorf("discount percentage must be between 0 and 100, got %s", discountPercentage)
	}
	if minimumOrderAmount != nil && minimumOrderAmount.IsNegative() {
		return Rule{}, fmt.Errorf("minimum order amount must not be negative, got %s", minimumOrderAmount)
	}

	return Rule{
		id:                 id,
		customerType:       customerType,
		discountPercentage: discountPercentage,
		minimumOrderAmount: minimumOrderAmount,
		active:             active,
		description:        description,
	}, nil
}

// Reconstruct creates a Rule without validation (storage hydration).
func Reconstruct(
	id string, customerType customer.Type, discountPercentage decimal.Decimal,
	minimumOrderAmount *decimal.Decimal, active bool, description string,
) Rule {
	return Rule{
		id:                 id,
		customerType:       customerType,
		discountPercentage: discountPercentage,
		minimumOrderAmount: minimumOrderAmount,
		active:             active,
		description:        description,
	}
}

// ID returns the rule id.
func (r Rule) ID() string { return r.id }

// CustomerType returns the customer class the rule targets.
func (r Rule) CustomerType() customer.Type { return r.customerType }

// DiscountPercentage returns the discount in percent (0-100).
func (r Rule) DiscountPercentage() decimal.Decimal { return r.discountPercentage }

// MinimumOrderAmount returns the order amount gate, or nil when unset.
func (r Rule) MinimumOrderAmount() *decimal.Decimal { return r.minimumOrderAmount }

// HasMinimum reports whether the rule declares an order amount gate.
func (r Rule) HasMinimum() bool { return r.minimumOrderAmount != nil }

// Active returns the activation flag.
func (r Rule) Active() bool { return r.active }

// Description returns the human-readable description.
func (r Rule) Description() string { return r.description }

// EligibleFor reports whether the rule applies to the given customer class
// and order amount: active, type match, and minimum (if any) met.
func (r Rule) EligibleFor(customerType customer.Type, orderAmount decimal.Decimal) bool {
	if !r.active || r.customerType != customerType {
		return false
	}
	if r.minimumOrderAmount != nil && orderAmount.LessThan(*r.minimumOrderAmount) {
		return false
	}
	return true
}

// DiscountFactor returns the unit price multiplier (1 - discount/100).
func (r Rule) DiscountFactor() decimal.Decimal {
	return decimal.NewFromInt(1).Sub(r.discountPercentage.Div(oneHundred))
}

// Apply returns the discounted unit price for a base price (exact, unrounded).
func (r Rule) Apply(basePrice decimal.Decimal) decimal.Decimal {
	return basePrice.Mul(r.DiscountFactor())
}

// Best selects the single applicable rule for a pricing decision: among
// eligible candidates, the one with the highest discount percentage wins.
// That tie-break is business policy, not an implementation detail. Returns
// false when no rule qualifies.
func Best(rules []Rule, customerType customer.Type, orderAmount decimal.Decimal) (Rule, bool) {
	var best Rule
	found := false
	for _, r := range rules {
		if !r.EligibleFor(customerType, orderAmount) {
			continue
		}
		if !found || r.discountPercentage.GreaterThan(best.discountPercentage) {
			best = r
			found = true
		}
	}
	return best, found
}
