package service

import (
	"context"

	"github.com/alexanderramin/fieldbook/internal/analytics"
	"github.com/alexanderramin/fieldbook/internal/app"
	"github.com/alexanderramin/fieldbook/internal/domain"
)

type TeamService interface {
	Create(ctx context.Context, name string) (*domain.Team, error)
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	List(ctx context.Context) ([]*domain.Team, error)
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Archive(ctx context.Context, id string) error
	Unarchive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string, force bool) error
}

type VisitService interface {
	// Create and Update return the time-entry problems found on the saved
	// visit. They never block the save.
	Create(ctx context.Context, v *domain.VisitRecord) ([]analytics.Warning, error)
	Update(ctx context.Context, v *domain.VisitRecord) ([]analytics.Warning, error)
	GetByID(ctx context.Context, id string) (*domain.VisitRecord, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.VisitRecord, error)
	ListAll(ctx context.Context) ([]*domain.VisitRecord, error)
	MarkInvoiced(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	PersonnelNames(ctx context.Context) ([]string, error)
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, s *domain.Settings) error
	// Seed stores s unless settings were already saved.
	Seed(ctx context.Context, s *domain.Settings) error
}

type DeviationService interface {
	app.DeviationUseCase
}

type ReportService interface {
	app.DashboardUseCase
	app.ComparisonUseCase
}
