package app

import (
	"time"

	"github.com/alexanderramin/fieldbook/internal/analytics"
	"github.com/alexanderramin/fieldbook/internal/domain"
)

type (
	PeriodReport            = analytics.PeriodReport
	PeriodComparison        = analytics.PeriodComparison
	DimensionBreakdown      = analytics.DimensionBreakdown
	HoursGroup              = analytics.HoursGroup
	ProjectDeviationSummary = analytics.ProjectDeviationSummary
	Dashboard               = analytics.Dashboard
	Warning                 = analytics.Warning
)

// BreakdownAll scopes dashboard breakdowns to every visit on record.
const BreakdownAll = "all"

type DashboardRequest struct {
	Now *time.Time
	// BreakdownPeriod is "all" or a period kind; breakdowns then cover the
	// current period of that kind.
	BreakdownPeriod string
	// NoCache bypasses the report cache for this request.
	NoCache bool
}

func NewDashboardRequest() DashboardRequest {
	return DashboardRequest{BreakdownPeriod: BreakdownAll}
}

type DashboardResponse struct {
	Dashboard Dashboard
	CacheHit  bool
}

type ComparisonRequest struct {
	Now  *time.Time
	Kind string
}

func NewComparisonRequest(kind domain.PeriodKind) ComparisonRequest {
	return ComparisonRequest{Kind: string(kind)}
}

type ComparisonResponse struct {
	Comparison PeriodComparison
	Currency   string
}

type ReportErrorCode string

const (
	ReportErrInvalidPeriod  ReportErrorCode = "INVALID_PERIOD"
	ReportErrUnknownProject ReportErrorCode = "UNKNOWN_PROJECT"
	ReportErrDataIntegrity  ReportErrorCode = "DATA_INTEGRITY"
)

type ReportError struct {
	Code    ReportErrorCode
	Message string
}

func (e *ReportError) Error() string {
	return string(e.Code) + ": " + e.Message
}
