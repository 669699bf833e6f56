package domain

import "github.com/shopspring/decimal"

const (
	DefaultHourlyRate  = 45
	DefaultOverdueDays = 30
	DefaultCurrency    = "EUR"
)

// Settings holds the process-wide values the analytics depend on.
// CustomTasks is opaque here; it only round-trips through storage.
type Settings struct {
	DefaultHourlyRate decimal.Decimal
	OverdueDays       int
	Currency          string
	CustomTasks       []string
}

// DefaultSettings returns Settings with the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		DefaultHourlyRate: decimal.NewFromInt(DefaultHourlyRate),
		OverdueDays:       DefaultOverdueDays,
		Currency:          DefaultCurrency,
	}
}
