package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/fieldbook/internal/db"
	"github.com/alexanderramin/fieldbook/internal/domain"
)

// SQLiteSettingsRepo stores the single settings row.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT default_hourly_rate, overdue_days, currency, custom_tasks FROM settings WHERE id = 'default'`)

	var s domain.Settings
	var tasks string
	err := row.Scan(&s.DefaultHourlyRate, &s.OverdueDays, &s.Currency, &tasks)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("settings: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning settings: %w", err)
	}
	if err := json.Unmarshal([]byte(tasks), &s.CustomTasks); err != nil {
		return nil, fmt.Errorf("decoding custom tasks: %w", err)
	}
	return &s, nil
}

func (r *SQLiteSettingsRepo) Upsert(ctx context.Context, s *domain.Settings) error {
	return r.write(ctx, `INSERT OR REPLACE`, s)
}

func (r *SQLiteSettingsRepo) Seed(ctx context.Context, s *domain.Settings) error {
	return r.write(ctx, `INSERT OR IGNORE`, s)
}

func (r *SQLiteSettingsRepo) write(ctx context.Context, verb string, s *domain.Settings) error {
	tasks, err := toJSON(s.CustomTasks, "[]")
	if err != nil {
		return fmt.Errorf("encoding custom tasks: %w", err)
	}
	query := verb + ` INTO settings (id, default_hourly_rate, overdue_days, currency, custom_tasks)
		VALUES ('default', ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, s.DefaultHourlyRate, s.OverdueDays, s.Currency, tasks); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}
