package analytics

import (
	"testing"

	"github.com/alexanderramin/fieldbook/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	w := decimal.RequireFromString(want)
	if !w.Equal(got) {
		assert.Fail(t, "decimal mismatch: want "+w.String()+", got "+got.String(), msgAndArgs...)
	}
}

func normalized(records ...*domain.VisitRecord) []Visit {
	visits, _ := NormalizeVisits(records)
	return visits
}

var defaultRate = decimal.NewFromInt(domain.DefaultHourlyRate)
