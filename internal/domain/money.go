package domain

import "github.com/shopspring/decimal"

// MoneyScale is the number of decimal places for monetary amounts.
const MoneyScale = 2

// RoundMoney applies the service-wide rounding policy: 2 decimal places,
// round half-up. Applied when an amount is materialized into a quote or
// order; intermediate pricing math stays exact.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale)
}
