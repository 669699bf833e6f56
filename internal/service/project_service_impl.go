package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/fieldbook/internal/domain"
	"github.com/alexanderramin/fieldbook/internal/repository"
	"github.com/google/uuid"
)

type projectService struct {
	projects repository.ProjectRepo
	teams    repository.TeamRepo
	visits   repository.VisitRepo
	cache    *ReportCache
}

func NewProjectService(
	projects repository.ProjectRepo,
	teams repository.TeamRepo,
	visits repository.VisitRepo,
	cache *ReportCache,
) ProjectService {
	return &projectService{projects: projects, teams: teams, visits: visits, cache: cache}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if err := s.validate(ctx, p); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = domain.ProjectActive
	}
	if err := s.projects.Create(ctx, p); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context, includeArchived bool) ([]*domain.Project, error) {
	return s.projects.List(ctx, includeArchived)
}

func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	if err := s.validate(ctx, p); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	if err := s.projects.Update(ctx, p); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}

func (s *projectService) Archive(ctx context.Context, id string) error {
	if err := s.projects.Archive(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}

func (s *projectService) Unarchive(ctx context.Context, id string) error {
	if err := s.projects.Unarchive(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}

// Delete removes an archived project. Without force, a project that is still
// active or still has visits on record is refused; forcing leaves those
// visits pointing at a missing project.
func (s *projectService) Delete(ctx context.Context, id string, force bool) error {
	if !force {
		p, err := s.projects.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p.Status != domain.ProjectArchived {
			return fmt.Errorf("project must be archived before deletion (use --force to override)")
		}
		n, err := s.visits.CountByProject(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("project has %d visits on record (use --force to override)", n)
		}
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}

func (s *projectService) validate(ctx context.Context, p *domain.Project) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.TeamID == "" {
		return nil
	}
	if _, err := s.teams.GetByID(ctx, p.TeamID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrUnknownTeam, p.TeamID)
		}
		return fmt.Errorf("checking team: %w", err)
	}
	return nil
}
