package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/fieldbook/internal/domain"
	"github.com/alexanderramin/fieldbook/internal/repository"
	"github.com/google/uuid"
)

type teamService struct {
	teams repository.TeamRepo
	cache *ReportCache
}

func NewTeamService(teams repository.TeamRepo, cache *ReportCache) TeamService {
	return &teamService{teams: teams, cache: cache}
}

func (s *teamService) Create(ctx context.Context, name string) (*domain.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("team name is required")
	}
	t := &domain.Team{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.teams.Create(ctx, t); err != nil {
		return nil, err
	}
	s.cache.Invalidate()
	return t, nil
}

func (s *teamService) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	return s.teams.GetByID(ctx, id)
}

func (s *teamService) List(ctx context.Context) ([]*domain.Team, error) {
	return s.teams.List(ctx)
}

func (s *teamService) Rename(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("team name is required")
	}
	if err := s.teams.Rename(ctx, id, name); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}

// Delete removes the team. Its projects stay, without a team.
func (s *teamService) Delete(ctx context.Context, id string) error {
	if err := s.teams.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}
