package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/fieldbook/internal/analytics"
	"github.com/alexanderramin/fieldbook/internal/contract"
	"github.com/alexanderramin/fieldbook/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sampleDashboard() contract.Dashboard {
	return contract.Dashboard{
		GeneratedAt: time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC),
		Currency:    "EUR",
		Totals: contract.PeriodReport{
			PeriodKey: "all", VisitCount: 5, InvalidCount: 1,
			TotalHours: decimal.NewFromInt(16), TeamHours: decimal.NewFromInt(28),
			TotalCost: decimal.NewFromInt(1260), InvoicingRatePercent: 40,
		},
		Week: contract.PeriodComparison{
			Kind:               domain.PeriodWeek,
			Current:            contract.PeriodReport{PeriodKey: "2025-W24", TeamHours: decimal.NewFromInt(8)},
			Prior:              contract.PeriodReport{PeriodKey: "2025-W23", TeamHours: decimal.NewFromInt(4)},
			HoursGrowthPercent: 100,
		},
		BreakdownKey: "all",
		Personnel: []contract.DimensionBreakdown{
			{Dimension: domain.DimensionPersonnel, DimensionID: "Ana", Label: "Ana", Hours: decimal.NewFromInt(12), VisitCount: 3},
		},
		Months: []contract.HoursGroup{
			{Key: "2025-05", VisitCount: 1, Hours: decimal.NewFromInt(4), TeamHours: decimal.NewFromInt(4)},
			{Key: "2025-06", VisitCount: 4, Hours: decimal.NewFromInt(12), TeamHours: decimal.NewFromInt(24)},
		},
		Deviations: []contract.ProjectDeviationSummary{
			{ProjectName: "Park", VisitCount: 3, Classification: domain.DeviationBehind, DeviationHours: decimal.RequireFromString("-1.5")},
		},
		Overdue:  analytics.OverdueSummary{Count: 1, Amount: decimal.NewFromInt(180), OldestDays: 41},
		Warnings: []contract.Warning{{VisitID: "v-1234567890", Code: analytics.IssueInvertedRange}},
	}
}

func TestFormatDashboard_Sections(t *testing.T) {
	SetPlain(true)
	out := FormatDashboard(sampleDashboard())

	assert.Contains(t, out, "DASHBOARD 2025-06-11")
	assert.Contains(t, out, "TOTALS")
	assert.Contains(t, out, "1260.00 EUR")
	assert.Contains(t, out, "2025-W24")
	assert.Contains(t, out, "+100.0%")
	assert.Contains(t, out, "1 visits")
	assert.Contains(t, out, "oldest 41d")
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "MONTHS")
	assert.Contains(t, out, "2025-05")
	assert.Contains(t, out, "BEHIND")
	assert.Contains(t, out, "-1.5h")
	assert.Contains(t, out, "WARNINGS (1)")
	assert.Contains(t, out, "end time is before arrival")
}

func TestFormatDashboard_EmptyBreakdowns(t *testing.T) {
	SetPlain(true)
	out := FormatDashboard(contract.Dashboard{Currency: "EUR", BreakdownKey: "2025-W24"})
	assert.Contains(t, out, "No visits in scope.")
	assert.Contains(t, out, "Nothing overdue.")
	assert.NotContains(t, out, "WARNINGS")
	assert.NotContains(t, out, "MONTHS")
}

func TestFormatComparison(t *testing.T) {
	SetPlain(true)
	out := FormatComparison(sampleDashboard().Week, "EUR")
	assert.Contains(t, out, "WEEK COMPARISON")
	assert.Contains(t, out, "2025-W23")
	assert.Contains(t, out, "+100.0%")
}

func TestFormatDeviation(t *testing.T) {
	SetPlain(true)
	resp := &contract.DeviationResponse{
		Project: &domain.Project{Name: "Park", VisitDuration: decimal.NewFromInt(10)},
		Deviation: contract.DeviationResult{
			VisitCount:           4,
			AverageHoursPerVisit: decimal.RequireFromString("9.2"),
			DeviationHours:       decimal.RequireFromString("0.8"),
			Classification:       domain.DeviationWithinTolerance,
		},
		Progress: contract.AnnualProgress{Year: 2025, PlannedVisits: 24, CompletedVisits: 3, VisitProgressPct: 12.5},
	}

	out := FormatDeviation(resp)
	assert.Contains(t, out, "PARK")
	assert.Contains(t, out, "WITHIN TOLERANCE")
	assert.Contains(t, out, "9.2h")
	assert.Contains(t, out, "+0.8h")
	assert.Contains(t, out, "3 / 24")
}
