package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/fieldbook/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatHours(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"7", "7h"},
		{"7.25", "7.25h"},
		{"7.333333", "7.33h"},
		{"0", "0h"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatHours(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "630.00 EUR", FormatMoney(decimal.NewFromInt(630), "EUR"))
	assert.Equal(t, "12.35 CHF", FormatMoney(decimal.RequireFromString("12.345"), "CHF"))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "77.8%", FormatPercent(77.7777))
	assert.Equal(t, "0.0%", FormatPercent(0))
}

func TestFormatGrowth_Signed(t *testing.T) {
	assert.Contains(t, FormatGrowth(100), "+100.0%")
	assert.Contains(t, FormatGrowth(-25), "-25.0%")
	assert.Contains(t, FormatGrowth(0), "+0.0%")
}

func TestFormatSignedHours(t *testing.T) {
	assert.Equal(t, "+0.8h", FormatSignedHours(decimal.RequireFromString("0.8")))
	assert.Equal(t, "-1.5h", FormatSignedHours(decimal.RequireFromString("-1.5")))
	assert.Equal(t, "0h", FormatSignedHours(decimal.Zero))
}

func TestHumanDate(t *testing.T) {
	assert.Equal(t, "Tue Jun 10, 2025", HumanDate(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)))
}

func TestPills(t *testing.T) {
	assert.Contains(t, StatusPill(domain.ProjectActive), "Active")
	assert.Contains(t, StatusPill(domain.ProjectArchived), "Archived")
	assert.Contains(t, KindBadge(domain.VisitBlank), "blank")
	assert.Contains(t, KindBadge(domain.VisitLinked), "linked")
	assert.Contains(t, InvoicedPill(true), "invoiced")
	assert.Contains(t, InvoicedPill(false), "pending")
}

func TestTruncID(t *testing.T) {
	assert.Contains(t, TruncID("550e8400-e29b-41d4-a716-446655440000"), "550e8400")
	assert.NotContains(t, TruncID("550e8400-e29b-41d4-a716-446655440000"), "e29b")
}
