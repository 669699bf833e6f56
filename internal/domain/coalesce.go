package domain

import "github.com/shopspring/decimal"

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// DecimalOrDefault returns the first valid value, or the fallback.
func DecimalOrDefault(fallback decimal.Decimal, vals ...decimal.NullDecimal) decimal.Decimal {
	for _, v := range vals {
		if v.Valid {
			return v.Decimal
		}
	}
	return fallback
}
