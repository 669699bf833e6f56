package app

import (
	"time"

	"github.com/alexanderramin/fieldbook/internal/analytics"
	"github.com/alexanderramin/fieldbook/internal/domain"
)

type (
	DeviationResult = analytics.DeviationResult
	AnnualProgress  = analytics.AnnualProgress
)

type DeviationRequest struct {
	ProjectID string
	// ExcludeVisitID leaves out the visit being edited.
	ExcludeVisitID string
	// Year selects the annual progress year; zero means the year of Now.
	Year int
	Now  *time.Time
}

type DeviationResponse struct {
	Project   *domain.Project
	Deviation DeviationResult
	Progress  AnnualProgress
}
