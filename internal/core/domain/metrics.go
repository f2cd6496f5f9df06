package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// CTR returns clicks/impressions as a percentage rounded to two decimals.
// Zero impressions yield 0.
func CTR(clicks, impressions int64) float64 {
	if impressions <= 0 {
		return 0
	}
	return round(float64(clicks)/float64(impressions)*100, 2)
}

// VotePercentages returns the yes and no shares of the total as whole
// percentages. Each side is rounded on its own, so the two may sum to 99 or
// 101.
func VotePercentages(yes, no int64) (yesPct, noPct int) {
	total := yes + no
	if total <= 0 {
		return 0, 0
	}
	yesPct = int(math.Round(float64(yes) / float64(total) * 100))
	noPct = int(math.Round(float64(no) / float64(total) * 100))
	return yesPct, noPct
}

var hundred = decimal.NewFromInt(100)

// PercentOfSupply returns qty/supply*100 rounded to six decimals. It returns
// nil when either operand is unknown and zero when supply is zero.
func PercentOfSupply(qty, supply *decimal.Decimal) *decimal.Decimal {
	if qty == nil || supply == nil {
		return nil
	}
	if supply.IsZero() {
		z := decimal.Zero
		return &z
	}
	p := qty.Div(*supply).Mul(hundred).Round(6)
	return &p
}

// RemainingBudget is budget-spent clamped at zero.
func RemainingBudget(budget, spent decimal.Decimal) decimal.Decimal {
	r := budget.Sub(spent)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
