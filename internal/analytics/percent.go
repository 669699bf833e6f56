package analytics

import "github.com/shopspring/decimal"

// Percent returns num/den*100, or 0 when den is not positive.
func Percent(num, den decimal.Decimal) float64 {
	if !den.IsPositive() {
		return 0
	}
	return num.Div(den).Mul(hundred).InexactFloat64()
}

// CountPercent returns part/total*100, or 0 when total is 0.
func CountPercent(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// GrowthPercent returns (current-prior)/prior*100. A prior of zero has no
// meaningful growth and yields 0 rather than an infinity.
func GrowthPercent(current, prior decimal.Decimal) float64 {
	if !prior.IsPositive() {
		return 0
	}
	return current.Sub(prior).Div(prior).Mul(hundred).InexactFloat64()
}
