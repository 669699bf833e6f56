package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/fieldbook/internal/domain"
	"github.com/alexanderramin/fieldbook/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
	cache    *ReportCache
}

func NewSettingsService(settings repository.SettingsRepo, cache *ReportCache) SettingsService {
	return &settingsService{settings: settings, cache: cache}
}

// Get returns the stored settings, or the built-in defaults when none were
// saved yet.
func (s *settingsService) Get(ctx context.Context) (*domain.Settings, error) {
	st, err := s.settings.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		d := domain.DefaultSettings()
		return &d, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	return st, nil
}

func (s *settingsService) Update(ctx context.Context, st *domain.Settings) error {
	if err := validateSettings(st); err != nil {
		return err
	}
	if err := s.settings.Upsert(ctx, st); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}

func (s *settingsService) Seed(ctx context.Context, st *domain.Settings) error {
	if err := validateSettings(st); err != nil {
		return err
	}
	return s.settings.Seed(ctx, st)
}

func validateSettings(st *domain.Settings) error {
	if st.DefaultHourlyRate.IsNegative() {
		return fmt.Errorf("%w: default hourly rate must not be negative", ErrInvalidSettings)
	}
	if st.OverdueDays <= 0 {
		return fmt.Errorf("%w: overdue days must be positive, got %d", ErrInvalidSettings, st.OverdueDays)
	}
	st.Currency = strings.ToUpper(strings.TrimSpace(st.Currency))
	if st.Currency == "" {
		st.Currency = domain.DefaultCurrency
	}
	return nil
}
