package analytics

import (
	"errors"

	"github.com/alexanderramin/fieldbook/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrNilProject is returned when a deviation is requested without a project.
var ErrNilProject = errors.New("deviation analysis requires a project")

// toleranceRatio is the share of the contractual duration within which a
// deviation is still acceptable, in either direction.
var toleranceRatio = decimal.RequireFromString("0.10")

// DeviationResult compares the historical average visit length with the
// contractual one. DeviationHours is planned minus actual: positive means
// visits finish faster than planned.
type DeviationResult struct {
	VisitCount           int
	AverageHoursPerVisit decimal.Decimal
	DeviationHours       decimal.Decimal
	Classification       domain.DeviationClass
}

// Classify buckets a deviation against the contractual visit duration.
func Classify(deviation, visitDuration decimal.Decimal) domain.DeviationClass {
	if deviation.IsZero() {
		return domain.DeviationNone
	}
	if deviation.Abs().LessThanOrEqual(visitDuration.Mul(toleranceRatio)) {
		return domain.DeviationWithinTolerance
	}
	if deviation.IsPositive() {
		return domain.DeviationAhead
	}
	return domain.DeviationBehind
}

// DeviationAccumulator keeps the running count and hour sum of a project's
// visits. Sums are exact, so adding then removing a visit leaves the
// accumulator identical to one built without it.
type DeviationAccumulator struct {
	count int
	sum   decimal.Decimal
}

func (a *DeviationAccumulator) Add(v Visit) {
	a.count++
	a.sum = a.sum.Add(v.TotalHours)
}

func (a *DeviationAccumulator) Remove(v Visit) {
	if a.count == 0 {
		return
	}
	a.count--
	a.sum = a.sum.Sub(v.TotalHours)
}

// Result computes the deviation for the accumulated visits.
func (a *DeviationAccumulator) Result(visitDuration decimal.Decimal) DeviationResult {
	if a.count == 0 {
		return DeviationResult{
			AverageHoursPerVisit: decimal.Zero,
			DeviationHours:       decimal.Zero,
			Classification:       domain.DeviationNoHistory,
		}
	}
	avg := a.sum.Div(decimal.NewFromInt(int64(a.count)))
	dev := visitDuration.Sub(avg)
	return DeviationResult{
		VisitCount:           a.count,
		AverageHoursPerVisit: avg,
		DeviationHours:       dev,
		Classification:       Classify(dev, visitDuration),
	}
}

// AnalyzeDeviation computes a project's deviation over its visits. Visits
// of other projects, blank visits and the visit with excludeID (the one
// being edited, if any) are skipped. Each visit's own TotalHours is used,
// not team hours.
func AnalyzeDeviation(p *domain.Project, visits []Visit, excludeID string) (DeviationResult, error) {
	if p == nil {
		return DeviationResult{}, ErrNilProject
	}
	var acc DeviationAccumulator
	for _, v := range visits {
		if v.Record.IsBlank() || v.Record.ProjectID != p.ID {
			continue
		}
		if excludeID != "" && v.Record.ID == excludeID {
			continue
		}
		acc.Add(v)
	}
	return acc.Result(p.VisitDuration), nil
}

// AnnualProgress tracks a project's calendar year against its plan.
type AnnualProgress struct {
	Year             int
	PlannedVisits    int
	CompletedVisits  int
	VisitProgressPct float64
	PlannedHours     decimal.Decimal
	ActualHours      decimal.Decimal
	HoursProgressPct float64
}

// AnalyzeAnnualProgress counts the project's visits dated in year and sums
// their TotalHours against AnnualVisits and AnnualTotalHours.
func AnalyzeAnnualProgress(p *domain.Project, visits []Visit, year int) (AnnualProgress, error) {
	if p == nil {
		return AnnualProgress{}, ErrNilProject
	}
	progress := AnnualProgress{
		Year:          year,
		PlannedVisits: p.AnnualVisits,
		PlannedHours:  p.AnnualTotalHours,
		ActualHours:   decimal.Zero,
	}
	for _, v := range visits {
		if v.Record.IsBlank() || v.Record.ProjectID != p.ID || v.Record.Date.Year() != year {
			continue
		}
		progress.CompletedVisits++
		progress.ActualHours = progress.ActualHours.Add(v.TotalHours)
	}
	progress.VisitProgressPct = CountPercent(progress.CompletedVisits, progress.PlannedVisits)
	progress.HoursProgressPct = Percent(progress.ActualHours, progress.PlannedHours)
	return progress, nil
}
