package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/fieldbook/internal/analytics"
	"github.com/alexanderramin/fieldbook/internal/app"
	"github.com/alexanderramin/fieldbook/internal/repository"
)

type deviationService struct {
	projects repository.ProjectRepo
	visits   repository.VisitRepo
	observer UseCaseObserver
}

func NewDeviationService(projects repository.ProjectRepo, visits repository.VisitRepo, observers ...UseCaseObserver) DeviationService {
	return &deviationService{
		projects: projects,
		visits:   visits,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *deviationService) ForProject(ctx context.Context, req app.DeviationRequest) (resp *app.DeviationResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project": req.ProjectID}
	defer observe(ctx, s.observer, "project-deviation", startedAt, &err, fields)

	now := startedAt
	if req.Now != nil {
		now = *req.Now
	}
	year := req.Year
	if year == 0 {
		year = now.Year()
	}

	p, err := s.projects.GetByID(ctx, req.ProjectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &app.ReportError{Code: app.ReportErrUnknownProject, Message: fmt.Sprintf("project %q not found", req.ProjectID)}
		}
		return nil, fmt.Errorf("loading project: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, &app.ReportError{Code: app.ReportErrDataIntegrity, Message: fmt.Sprintf("project %q: %v", p.ID, err)}
	}

	records, err := s.visits.ListByProject(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("loading visits: %w", err)
	}
	visits, _ := analytics.NormalizeVisits(records)
	fields["visit_count"] = len(visits)

	dev, err := analytics.AnalyzeDeviation(p, visits, req.ExcludeVisitID)
	if err != nil {
		return nil, err
	}
	progress, err := analytics.AnalyzeAnnualProgress(p, visits, year)
	if err != nil {
		return nil, err
	}
	fields["classification"] = string(dev.Classification)

	return &app.DeviationResponse{Project: p, Deviation: dev, Progress: progress}, nil
}
