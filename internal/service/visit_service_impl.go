package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/fieldbook/internal/analytics"
	"github.com/alexanderramin/fieldbook/internal/db"
	"github.com/alexanderramin/fieldbook/internal/domain"
	"github.com/alexanderramin/fieldbook/internal/repository"
	"github.com/google/uuid"
)

type visitService struct {
	visits    repository.VisitRepo
	projects  repository.ProjectRepo
	personnel repository.PersonnelRepo
	uow       db.UnitOfWork
	cache     *ReportCache
	observer  UseCaseObserver
}

func NewVisitService(
	visits repository.VisitRepo,
	projects repository.ProjectRepo,
	personnel repository.PersonnelRepo,
	uow db.UnitOfWork,
	cache *ReportCache,
	observers ...UseCaseObserver,
) VisitService {
	return &visitService{
		visits:    visits,
		projects:  projects,
		personnel: personnel,
		uow:       uow,
		cache:     cache,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *visitService) Create(ctx context.Context, v *domain.VisitRecord) (warnings []analytics.Warning, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"kind": string(v.Kind)}
	defer observe(ctx, s.observer, "create-visit", startedAt, &err, fields)

	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	v.CreatedAt = startedAt
	v.UpdatedAt = startedAt

	warnings, err = s.prepare(ctx, v)
	if err != nil {
		return nil, err
	}
	fields["warnings"] = len(warnings)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteVisitRepo(tx).Create(ctx, v); err != nil {
			return err
		}
		return repository.NewSQLitePersonnelRepo(tx).Remember(ctx, v.Personnel, startedAt)
	})
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate()
	return warnings, nil
}

func (s *visitService) Update(ctx context.Context, v *domain.VisitRecord) (warnings []analytics.Warning, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"visit": v.ID}
	defer observe(ctx, s.observer, "update-visit", startedAt, &err, fields)

	v.UpdatedAt = startedAt
	warnings, err = s.prepare(ctx, v)
	if err != nil {
		return nil, err
	}
	fields["warnings"] = len(warnings)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteVisitRepo(tx).Update(ctx, v); err != nil {
			return err
		}
		return repository.NewSQLitePersonnelRepo(tx).Remember(ctx, v.Personnel, startedAt)
	})
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate()
	return warnings, nil
}

// prepare validates v, normalizes its personnel and refreshes the cached
// total hours. Time-entry problems come back as warnings.
func (s *visitService) prepare(ctx context.Context, v *domain.VisitRecord) ([]analytics.Warning, error) {
	if v.Kind == "" {
		v.Kind = domain.VisitLinked
		if v.ProjectID == "" {
			v.Kind = domain.VisitBlank
		}
	}
	if err := v.CheckKind(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidVisit, err)
	}
	if v.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidVisit)
	}
	if v.HourlyRate.Valid && v.HourlyRate.Decimal.IsNegative() {
		return nil, fmt.Errorf("%w: hourly rate must not be negative", ErrInvalidVisit)
	}

	v.Personnel = domain.NormalizePersonnel(v.Personnel)
	if len(v.Personnel) == 0 {
		return nil, ErrNoPersonnel
	}

	if !v.IsBlank() {
		if _, err := s.projects.GetByID(ctx, v.ProjectID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrUnknownProject, v.ProjectID)
			}
			return nil, fmt.Errorf("checking project: %w", err)
		}
	}

	entry := analytics.Normalize(v.TimeTracking)
	v.TimeTracking.TotalHours = entry.TotalHours

	var warnings []analytics.Warning
	for _, code := range entry.Issues {
		warnings = append(warnings, analytics.Warning{VisitID: v.ID, Code: code})
	}
	return warnings, nil
}

func (s *visitService) GetByID(ctx context.Context, id string) (*domain.VisitRecord, error) {
	return s.visits.GetByID(ctx, id)
}

func (s *visitService) ListByProject(ctx context.Context, projectID string) ([]*domain.VisitRecord, error) {
	return s.visits.ListByProject(ctx, projectID)
}

func (s *visitService) ListAll(ctx context.Context) ([]*domain.VisitRecord, error) {
	return s.visits.ListAll(ctx)
}

func (s *visitService) MarkInvoiced(ctx context.Context, id string) error {
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteVisitRepo(tx)
		v, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if v.Invoiced {
			return nil
		}
		v.MarkInvoiced(time.Now().UTC())
		return repo.Update(ctx, v)
	})
	if err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}

func (s *visitService) Delete(ctx context.Context, id string) error {
	if err := s.visits.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}

func (s *visitService) PersonnelNames(ctx context.Context) ([]string, error) {
	return s.personnel.ListNames(ctx)
}
