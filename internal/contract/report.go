package contract

import "github.com/alexanderramin/fieldbook/internal/app"

type PeriodReport = app.PeriodReport

type PeriodComparison = app.PeriodComparison

type DimensionBreakdown = app.DimensionBreakdown

type HoursGroup = app.HoursGroup

type ProjectDeviationSummary = app.ProjectDeviationSummary

type Dashboard = app.Dashboard

type Warning = app.Warning

const BreakdownAll = app.BreakdownAll

type DashboardRequest = app.DashboardRequest

func NewDashboardRequest() DashboardRequest {
	return app.NewDashboardRequest()
}

type DashboardResponse = app.DashboardResponse

type ComparisonRequest = app.ComparisonRequest

var NewComparisonRequest = app.NewComparisonRequest

type ComparisonResponse = app.ComparisonResponse

type ReportErrorCode = app.ReportErrorCode

const (
	ReportErrInvalidPeriod  ReportErrorCode = app.ReportErrInvalidPeriod
	ReportErrUnknownProject ReportErrorCode = app.ReportErrUnknownProject
	ReportErrDataIntegrity  ReportErrorCode = app.ReportErrDataIntegrity
)

type ReportError = app.ReportError
