package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/fieldbook/internal/analytics"
	"github.com/alexanderramin/fieldbook/internal/app"
	"github.com/alexanderramin/fieldbook/internal/domain"
	"github.com/alexanderramin/fieldbook/internal/repository"
)

type reportService struct {
	projects repository.ProjectRepo
	teams    repository.TeamRepo
	visits   repository.VisitRepo
	settings SettingsService
	cache    *ReportCache
	observer UseCaseObserver
}

func NewReportService(
	projects repository.ProjectRepo,
	teams repository.TeamRepo,
	visits repository.VisitRepo,
	settings SettingsService,
	cache *ReportCache,
	observers ...UseCaseObserver,
) ReportService {
	return &reportService{
		projects: projects,
		teams:    teams,
		visits:   visits,
		settings: settings,
		cache:    cache,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *reportService) Dashboard(ctx context.Context, req app.DashboardRequest) (resp *app.DashboardResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"breakdown": req.BreakdownPeriod}
	defer observe(ctx, s.observer, "dashboard", startedAt, &err, fields)

	now := startedAt
	if req.Now != nil {
		now = *req.Now
	}

	breakdown := req.BreakdownPeriod
	if breakdown == "" {
		breakdown = app.BreakdownAll
	}
	var window *analytics.Window
	if breakdown != app.BreakdownAll {
		if !domain.ValidPeriodKinds[breakdown] {
			return nil, invalidPeriod(breakdown)
		}
		w := analytics.WindowAt(now, domain.PeriodKind(breakdown))
		window = &w
	}

	day := now.Format("2006-01-02")
	if !req.NoCache {
		if d, ok := s.cache.Get(day, breakdown); ok {
			fields["cache_hit"] = true
			d.GeneratedAt = now
			return &app.DashboardResponse{Dashboard: d, CacheHit: true}, nil
		}
	}
	fields["cache_hit"] = false

	version := s.cache.Version()
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	d := analytics.BuildDashboard(snap, analytics.DashboardOptions{Now: now, Breakdowns: window})
	fields["visit_count"] = len(snap.Visits)
	fields["warnings"] = len(d.Warnings)

	s.cache.Put(version, day, breakdown, d)
	return &app.DashboardResponse{Dashboard: d}, nil
}

func (s *reportService) Compare(ctx context.Context, req app.ComparisonRequest) (resp *app.ComparisonResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"kind": req.Kind}
	defer observe(ctx, s.observer, "compare-periods", startedAt, &err, fields)

	if !domain.ValidPeriodKinds[req.Kind] {
		return nil, invalidPeriod(req.Kind)
	}
	now := startedAt
	if req.Now != nil {
		now = *req.Now
	}

	st, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.visits.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading visits: %w", err)
	}
	visits, _ := analytics.NormalizeVisits(records)
	fields["visit_count"] = len(visits)

	return &app.ComparisonResponse{
		Comparison: analytics.ComparePeriods(visits, now, domain.PeriodKind(req.Kind), st.DefaultHourlyRate),
		Currency:   st.Currency,
	}, nil
}

// snapshot loads everything a dashboard is derived from. Archived projects
// are included so their visit history still resolves.
func (s *reportService) snapshot(ctx context.Context) (analytics.Snapshot, error) {
	st, err := s.settings.Get(ctx)
	if err != nil {
		return analytics.Snapshot{}, err
	}
	projects, err := s.projects.List(ctx, true)
	if err != nil {
		return analytics.Snapshot{}, fmt.Errorf("loading projects: %w", err)
	}
	teams, err := s.teams.List(ctx)
	if err != nil {
		return analytics.Snapshot{}, fmt.Errorf("loading teams: %w", err)
	}
	visits, err := s.visits.ListAll(ctx)
	if err != nil {
		return analytics.Snapshot{}, fmt.Errorf("loading visits: %w", err)
	}
	return analytics.Snapshot{Projects: projects, Teams: teams, Visits: visits, Settings: *st}, nil
}

func invalidPeriod(kind string) *app.ReportError {
	return &app.ReportError{
		Code:    app.ReportErrInvalidPeriod,
		Message: fmt.Sprintf("unknown period %q (want week, month or year)", kind),
	}
}
