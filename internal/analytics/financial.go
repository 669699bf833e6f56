package analytics

import (
	"time"

	"github.com/alexanderramin/fieldbook/internal/domain"
	"github.com/shopspring/decimal"
)

// Cost is TotalHours x crew size x hourly rate, using defaultRate when the
// visit has no rate of its own.
func Cost(v Visit, defaultRate decimal.Decimal) decimal.Decimal {
	return v.TeamHours().Mul(v.Record.RateOr(defaultRate))
}

// PersonCost is the labour cost share of one listed person on the visit.
// Summed over the crew it equals Cost.
func PersonCost(v Visit, defaultRate decimal.Decimal) decimal.Decimal {
	return v.TotalHours.Mul(v.Record.RateOr(defaultRate))
}

// FinancialSummary holds the money figures of a set of visits.
type FinancialSummary struct {
	VisitCount     int
	InvoicedCount  int
	TotalCost      decimal.Decimal
	InvoicedAmount decimal.Decimal
	PendingAmount  decimal.Decimal
	// InvoicingRatePercent is count based; ValueInvoicingRatePercent weighs
	// visits by cost.
	InvoicingRatePercent      float64
	ValueInvoicingRatePercent float64
}

// SummarizeFinancials totals cost and invoicing over visits.
func SummarizeFinancials(visits []Visit, defaultRate decimal.Decimal) FinancialSummary {
	s := FinancialSummary{
		TotalCost:      decimal.Zero,
		InvoicedAmount: decimal.Zero,
	}
	for _, v := range visits {
		cost := Cost(v, defaultRate)
		s.VisitCount++
		s.TotalCost = s.TotalCost.Add(cost)
		if v.Record.Invoiced {
			s.InvoicedCount++
			s.InvoicedAmount = s.InvoicedAmount.Add(cost)
		}
	}
	s.PendingAmount = s.TotalCost.Sub(s.InvoicedAmount)
	s.InvoicingRatePercent = InvoicingRate(s.InvoicedCount, s.VisitCount)
	s.ValueInvoicingRatePercent = Percent(s.InvoicedAmount, s.TotalCost)
	return s
}

// InvoicingRate is the percentage of invoiced visits, 0 for no visits.
func InvoicingRate(invoicedCount, totalCount int) float64 {
	return CountPercent(invoicedCount, totalCount)
}

// DaysSince counts calendar days from date to now.
func DaysSince(date, now time.Time) int {
	from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// IsOverdue reports whether an uninvoiced visit is older than overdueDays.
// A non-positive overdueDays falls back to the default threshold.
func IsOverdue(r *domain.VisitRecord, now time.Time, overdueDays int) bool {
	if overdueDays <= 0 {
		overdueDays = domain.DefaultOverdueDays
	}
	return !r.Invoiced && DaysSince(r.Date, now) > overdueDays
}

// OverdueSummary counts uninvoiced visits past the threshold.
type OverdueSummary struct {
	Count      int
	Amount     decimal.Decimal
	OldestDays int
}

// SummarizeOverdue totals the overdue visits as of now.
func SummarizeOverdue(visits []Visit, now time.Time, overdueDays int, defaultRate decimal.Decimal) OverdueSummary {
	s := OverdueSummary{Amount: decimal.Zero}
	for _, v := range visits {
		if !IsOverdue(v.Record, now, overdueDays) {
			continue
		}
		s.Count++
		s.Amount = s.Amount.Add(Cost(v, defaultRate))
		if d := DaysSince(v.Record.Date, now); d > s.OldestDays {
			s.OldestDays = d
		}
	}
	return s
}
