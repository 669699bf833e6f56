package analytics

import (
	"time"

	"github.com/alexanderramin/fieldbook/internal/domain"
)

// Snapshot is the immutable input of a dashboard build.
type Snapshot struct {
	Projects []*domain.Project
	Teams    []*domain.Team
	Visits   []*domain.VisitRecord
	Settings domain.Settings
}

// DashboardOptions controls a dashboard build. Now anchors the period
// windows and the overdue check. Breakdowns covers the per-dimension views;
// nil means all visits in the snapshot.
type DashboardOptions struct {
	Now        time.Time
	Breakdowns *Window
}

// Dashboard is the full set of derived values shown on the dashboard and
// written to exports.
type Dashboard struct {
	GeneratedAt time.Time
	Currency    string

	Totals PeriodReport
	Week   PeriodComparison
	Month  PeriodComparison
	Year   PeriodComparison

	BreakdownKey string
	Teams        []DimensionBreakdown
	Personnel    []DimensionBreakdown
	Projects     []DimensionBreakdown

	Linked PeriodReport
	Blank  PeriodReport

	// Months holds the team hours of each month of the current year.
	Months []HoursGroup

	Deviations []ProjectDeviationSummary
	Overdue    OverdueSummary
	Warnings   []Warning
}

// BuildDashboard derives every dashboard figure from snap.
func BuildDashboard(snap Snapshot, opts DashboardOptions) Dashboard {
	rate := snap.Settings.DefaultHourlyRate
	ix := NewIndex(snap.Projects, snap.Teams)

	visits, warnings := NormalizeVisits(snap.Visits)
	warnings = append(warnings, ix.CheckReferences(visits)...)

	scoped := visits
	breakdownKey := "all"
	if opts.Breakdowns != nil {
		scoped = FilterWindow(visits, *opts.Breakdowns)
		breakdownKey = opts.Breakdowns.Key
	}

	linked, blank := CategoryReports(visits, rate)

	return Dashboard{
		GeneratedAt:  opts.Now,
		Currency:     snap.Settings.Currency,
		Totals:       SummarizePeriod("all", visits, rate),
		Week:         ComparePeriods(visits, opts.Now, domain.PeriodWeek, rate),
		Month:        ComparePeriods(visits, opts.Now, domain.PeriodMonth, rate),
		Year:         ComparePeriods(visits, opts.Now, domain.PeriodYear, rate),
		BreakdownKey: breakdownKey,
		Teams:        BreakdownByTeam(scoped, ix, rate),
		Personnel:    BreakdownByPersonnel(scoped, rate),
		Projects:     BreakdownByProject(scoped, ix, rate),
		Linked:       linked,
		Blank:        blank,
		Months:       PeriodHours(FilterWindow(visits, WindowAt(opts.Now, domain.PeriodYear)), domain.PeriodMonth),
		Deviations:   DeviationSummaries(snap.Projects, visits),
		Overdue:      SummarizeOverdue(visits, opts.Now, snap.Settings.OverdueDays, rate),
		Warnings:     warnings,
	}
}
