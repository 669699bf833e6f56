package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/fieldbook/internal/domain"
)

type TeamRepo interface {
	Create(ctx context.Context, t *domain.Team) error
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	List(ctx context.Context) ([]*domain.Team, error)
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Archive(ctx context.Context, id string) error
	Unarchive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type VisitRepo interface {
	Create(ctx context.Context, v *domain.VisitRecord) error
	GetByID(ctx context.Context, id string) (*domain.VisitRecord, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.VisitRecord, error)
	ListAll(ctx context.Context) ([]*domain.VisitRecord, error)
	CountByProject(ctx context.Context, projectID string) (int, error)
	Update(ctx context.Context, v *domain.VisitRecord) error
	Delete(ctx context.Context, id string) error
}

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Upsert(ctx context.Context, s *domain.Settings) error
	// Seed stores s only when no settings row exists yet.
	Seed(ctx context.Context, s *domain.Settings) error
}

// PersonnelRepo remembers the names entered on visits so they can be offered
// again.
type PersonnelRepo interface {
	ListNames(ctx context.Context) ([]string, error)
	Remember(ctx context.Context, names []string, at time.Time) error
}
