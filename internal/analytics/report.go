package analytics

import (
	"time"

	"github.com/alexanderramin/fieldbook/internal/domain"
	"github.com/shopspring/decimal"
)

// PeriodReport summarizes the hours and money of one set of visits.
// TotalHours sums visit durations; TeamHours multiplies each by its crew.
type PeriodReport struct {
	PeriodKey            string
	TotalHours           decimal.Decimal
	TeamHours            decimal.Decimal
	TotalCost            decimal.Decimal
	InvoicedAmount       decimal.Decimal
	PendingAmount        decimal.Decimal
	InvoicingRatePercent float64
	VisitCount           int
	InvalidCount         int
}

// SummarizePeriod builds a PeriodReport over visits. Invalid entries add no
// hours but are counted as visits.
func SummarizePeriod(key string, visits []Visit, defaultRate decimal.Decimal) PeriodReport {
	hours := TotalHours(visits)
	fin := SummarizeFinancials(visits, defaultRate)
	r := PeriodReport{
		PeriodKey:            key,
		TotalHours:           hours.Hours,
		TeamHours:            hours.TeamHours,
		TotalCost:            fin.TotalCost,
		InvoicedAmount:       fin.InvoicedAmount,
		PendingAmount:        fin.PendingAmount,
		InvoicingRatePercent: fin.InvoicingRatePercent,
		VisitCount:           hours.VisitCount,
	}
	for _, v := range visits {
		if !v.Valid {
			r.InvalidCount++
		}
	}
	return r
}

// PeriodComparison sets the period containing now against the one before.
// Growth is measured on team hours, cost and visit count.
type PeriodComparison struct {
	Kind               domain.PeriodKind
	Current            PeriodReport
	Prior              PeriodReport
	HoursGrowthPercent float64
	CostGrowthPercent  float64
	VisitGrowthPercent float64
}

// ComparePeriods builds the current-vs-prior comparison for kind.
func ComparePeriods(visits []Visit, now time.Time, kind domain.PeriodKind, defaultRate decimal.Decimal) PeriodComparison {
	cur := WindowAt(now, kind)
	prev := cur.Prior()
	c := PeriodComparison{
		Kind:    cur.Kind,
		Current: SummarizePeriod(cur.Key, FilterWindow(visits, cur), defaultRate),
		Prior:   SummarizePeriod(prev.Key, FilterWindow(visits, prev), defaultRate),
	}
	c.HoursGrowthPercent = GrowthPercent(c.Current.TeamHours, c.Prior.TeamHours)
	c.CostGrowthPercent = GrowthPercent(c.Current.TotalCost, c.Prior.TotalCost)
	c.VisitGrowthPercent = GrowthPercent(
		decimal.NewFromInt(int64(c.Current.VisitCount)),
		decimal.NewFromInt(int64(c.Prior.VisitCount)),
	)
	return c
}

// DimensionBreakdown is one ranked row of a per-team, per-person or
// per-project view.
type DimensionBreakdown struct {
	Dimension            domain.Dimension
	DimensionID          string
	Label                string
	Hours                decimal.Decimal
	Cost                 decimal.Decimal
	InvoicingRatePercent float64
	VisitCount           int
}

type breakdownSpec struct {
	dimension domain.Dimension
	keys      KeyFunc
	hours     func(HoursGroup) decimal.Decimal
	cost      func(Visit) decimal.Decimal
	label     func(key string) string
}

func buildBreakdown(visits []Visit, spec breakdownSpec) []DimensionBreakdown {
	groups := GroupHours(visits, spec.keys)
	RankGroups(groups, spec.hours)

	pos := make(map[string]int, len(groups))
	rows := make([]DimensionBreakdown, len(groups))
	for i, g := range groups {
		pos[g.Key] = i
		rows[i] = DimensionBreakdown{
			Dimension:            spec.dimension,
			DimensionID:          g.Key,
			Label:                spec.label(g.Key),
			Hours:                spec.hours(g),
			Cost:                 decimal.Zero,
			InvoicingRatePercent: InvoicingRate(g.InvoicedCount, g.VisitCount),
			VisitCount:           g.VisitCount,
		}
	}
	for _, v := range visits {
		for _, k := range spec.keys(v) {
			rows[pos[k]].Cost = rows[pos[k]].Cost.Add(spec.cost(v))
		}
	}
	return rows
}

// BreakdownByTeam ranks teams by team hours. Blank visits and visits with a
// dangling project reference are left out.
func BreakdownByTeam(visits []Visit, ix Index, defaultRate decimal.Decimal) []DimensionBreakdown {
	return buildBreakdown(visits, breakdownSpec{
		dimension: domain.DimensionTeam,
		keys:      ByTeam(ix),
		hours:     groupTeamHours,
		cost:      func(v Visit) decimal.Decimal { return Cost(v, defaultRate) },
		label:     ix.TeamName,
	})
}

// BreakdownByPersonnel ranks people by the hours credited to them; every
// listed person gets the visit's full TotalHours and their own cost share.
func BreakdownByPersonnel(visits []Visit, defaultRate decimal.Decimal) []DimensionBreakdown {
	return buildBreakdown(visits, breakdownSpec{
		dimension: domain.DimensionPersonnel,
		keys:      ByPersonnel(),
		hours:     groupHours,
		cost:      func(v Visit) decimal.Decimal { return PersonCost(v, defaultRate) },
		label:     func(key string) string { return key },
	})
}

// BreakdownByProject ranks projects by team hours spent on site.
func BreakdownByProject(visits []Visit, ix Index, defaultRate decimal.Decimal) []DimensionBreakdown {
	return buildBreakdown(visits, breakdownSpec{
		dimension: domain.DimensionProject,
		keys:      ByProject(ix),
		hours:     groupTeamHours,
		cost:      func(v Visit) decimal.Decimal { return Cost(v, defaultRate) },
		label:     ix.ProjectName,
	})
}

// CategoryReports summarizes project-linked and blank visits separately,
// under the same rules.
func CategoryReports(visits []Visit, defaultRate decimal.Decimal) (linked, blank PeriodReport) {
	l, b := SplitByKind(visits)
	return SummarizePeriod(string(domain.VisitLinked), l, defaultRate),
		SummarizePeriod(string(domain.VisitBlank), b, defaultRate)
}

// ProjectDeviationSummary is the per-project deviation row of a dashboard.
type ProjectDeviationSummary struct {
	ProjectID            string
	ProjectName          string
	VisitCount           int
	AverageHoursPerVisit decimal.Decimal
	DeviationHours       decimal.Decimal
	Classification       domain.DeviationClass
}

// DeviationSummaries computes one summary per project in project order.
// Visits are bucketed in one pass so the cost is linear in the visit count.
func DeviationSummaries(projects []*domain.Project, visits []Visit) []ProjectDeviationSummary {
	accs := make(map[string]*DeviationAccumulator, len(projects))
	for _, p := range projects {
		accs[p.ID] = &DeviationAccumulator{}
	}
	for _, v := range visits {
		if v.Record.IsBlank() {
			continue
		}
		if acc, ok := accs[v.Record.ProjectID]; ok {
			acc.Add(v)
		}
	}
	out := make([]ProjectDeviationSummary, 0, len(projects))
	for _, p := range projects {
		res := accs[p.ID].Result(p.VisitDuration)
		out = append(out, ProjectDeviationSummary{
			ProjectID:            p.ID,
			ProjectName:          p.Name,
			VisitCount:           res.VisitCount,
			AverageHoursPerVisit: res.AverageHoursPerVisit,
			DeviationHours:       res.DeviationHours,
			Classification:       res.Classification,
		})
	}
	return out
}
