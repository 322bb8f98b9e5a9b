package rule

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/kailas-cloud/storefront/internal/domain/customer"
	"github.com/kailas-cloud/storefront/internal/domain/pricing"
)

// ruleToHash converts a domain Rule to a map for HSET. The minimum order
// amount field is present only when the rule declares one.
func ruleToHash(r pricing.Rule) map[string]string {
	m := map[string]string{
		"id":                  r.ID(),
		"customer_type":       string(r.CustomerType()),
		"discount_percentage": r.DiscountPercentage().String(),
		"active":              strconv.FormatBool(r.Active()),
		"description":         r.Description(),
	}
	if min := r.MinimumOrderAmount(); min != nil {
		m["minimum_order_amount"] = min.String()
	}
	return m
}

// ruleFromHash hydrates a domain Rule from an HGETALL result map.
func ruleFromHash(m map[string]string) (pricing.Rule, error) {
	pct, err := decimal.NewFromString(m["discount_percentage"])
	if err != nil {
		return pricing.Rule{}, fmt.Errorf("parse discount_percentage: %w", err)
	}

	var minimum *decimal.Decimal
	if raw, ok := m["minimum_order_amount"]; ok && raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			return pricing.Rule{}, fmt.Errorf("parse minimum_order_amount: %w", err)
		}
		minimum = &min
	}

	active, err := strconv.ParseBool(m["active"])
	if err != nil {
		return pricing.Rule{}, fmt.Errorf("parse active: %w", err)
	}

	return pricing.Reconstruct(
		m["id"], customer.Type(m["customer_type"]), pct, minimum, active, m["description"],
	), nil
}
