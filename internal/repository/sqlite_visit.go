package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/fieldbook/internal/db"
	"github.com/alexanderramin/fieldbook/internal/domain"
)

// SQLiteVisitRepo implements VisitRepo using a SQLite database.
type SQLiteVisitRepo struct {
	db db.DBTX
}

func NewSQLiteVisitRepo(conn db.DBTX) *SQLiteVisitRepo {
	return &SQLiteVisitRepo{db: conn}
}

const visitColumns = `id, kind, project_id, date, personnel,
	departure_time, arrival_time, end_time, break_duration, total_hours,
	hourly_rate, invoiced, invoiced_at, tasks_performed, notes, created_at, updated_at`

func (r *SQLiteVisitRepo) Create(ctx context.Context, v *domain.VisitRecord) error {
	args, err := visitArgs(v)
	if err != nil {
		return err
	}
	query := `INSERT INTO visits (` + visitColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, append([]any{v.ID}, args...)...); err != nil {
		return fmt.Errorf("inserting visit: %w", err)
	}
	return nil
}

func (r *SQLiteVisitRepo) GetByID(ctx context.Context, id string) (*domain.VisitRecord, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+visitColumns+` FROM visits WHERE id = ?`, id)
	v, err := scanVisit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("visit %s: %w", id, ErrNotFound)
	}
	return v, err
}

func (r *SQLiteVisitRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.VisitRecord, error) {
	return r.list(ctx,
		`SELECT `+visitColumns+` FROM visits
		 WHERE project_id = ? AND kind = 'linked' AND id NOT LIKE ?
		 ORDER BY date, created_at, id`,
		projectID, db.LegacyBlankPrefix+"%")
}

// ListAll returns every visit ordered by date, then creation time.
func (r *SQLiteVisitRepo) ListAll(ctx context.Context) ([]*domain.VisitRecord, error) {
	return r.list(ctx, `SELECT `+visitColumns+` FROM visits ORDER BY date, created_at, id`)
}

func (r *SQLiteVisitRepo) CountByProject(ctx context.Context, projectID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM visits WHERE project_id = ? AND kind = 'linked' AND id NOT LIKE ?`,
		projectID, db.LegacyBlankPrefix+"%").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting visits: %w", err)
	}
	return n, nil
}

func (r *SQLiteVisitRepo) Update(ctx context.Context, v *domain.VisitRecord) error {
	args, err := visitArgs(v)
	if err != nil {
		return err
	}
	query := `UPDATE visits SET kind = ?, project_id = ?, date = ?, personnel = ?,
		departure_time = ?, arrival_time = ?, end_time = ?, break_duration = ?, total_hours = ?,
		hourly_rate = ?, invoiced = ?, invoiced_at = ?, tasks_performed = ?, notes = ?,
		created_at = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, append(args, v.ID)...)
	if err != nil {
		return fmt.Errorf("updating visit: %w", err)
	}
	return requireAffected(res, "visit", v.ID)
}

func (r *SQLiteVisitRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM visits WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting visit: %w", err)
	}
	return requireAffected(res, "visit", id)
}

func (r *SQLiteVisitRepo) list(ctx context.Context, query string, args ...any) ([]*domain.VisitRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing visits: %w", err)
	}
	defer rows.Close()

	var visits []*domain.VisitRecord
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, err
		}
		visits = append(visits, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating visits: %w", err)
	}
	return visits, nil
}

// visitArgs returns every column value after id, in visitColumns order.
func visitArgs(v *domain.VisitRecord) ([]any, error) {
	personnel, err := toJSON(v.Personnel, "[]")
	if err != nil {
		return nil, fmt.Errorf("encoding personnel: %w", err)
	}
	tasks, err := toJSON(v.TasksPerformed, "{}")
	if err != nil {
		return nil, fmt.Errorf("encoding tasks performed: %w", err)
	}
	tt := v.TimeTracking
	return []any{
		string(v.Kind),
		nullableString(v.ProjectID),
		v.Date.Format(dateLayout),
		personnel,
		tt.DepartureTime,
		tt.ArrivalTime,
		tt.EndTime,
		tt.BreakDuration,
		tt.TotalHours,
		v.HourlyRate,
		boolToInt(v.Invoiced),
		nullableTimeToString(v.InvoicedAt, time.RFC3339),
		tasks,
		v.Notes,
		v.CreatedAt.Format(time.RFC3339),
		v.UpdatedAt.Format(time.RFC3339),
	}, nil
}

func scanVisit(s rowScanner) (*domain.VisitRecord, error) {
	var v domain.VisitRecord
	var kind, date, personnel, tasks, created, updated string
	var projectID, invoicedAt sql.NullString
	var invoiced int

	err := s.Scan(
		&v.ID, &kind, &projectID, &date, &personnel,
		&v.TimeTracking.DepartureTime, &v.TimeTracking.ArrivalTime,
		&v.TimeTracking.EndTime, &v.TimeTracking.BreakDuration, &v.TimeTracking.TotalHours,
		&v.HourlyRate, &invoiced, &invoicedAt, &tasks, &v.Notes, &created, &updated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning visit: %w", err)
	}

	v.Kind = domain.VisitKind(kind)
	v.ProjectID = projectID.String
	if strings.HasPrefix(v.ID, db.LegacyBlankPrefix) {
		v.Kind = domain.VisitBlank
		v.ProjectID = ""
	}

	if v.Date, err = time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("parsing visit date: %w", err)
	}
	if err := json.Unmarshal([]byte(personnel), &v.Personnel); err != nil {
		return nil, fmt.Errorf("decoding personnel of visit %s: %w", v.ID, err)
	}
	if err := json.Unmarshal([]byte(tasks), &v.TasksPerformed); err != nil {
		return nil, fmt.Errorf("decoding tasks of visit %s: %w", v.ID, err)
	}
	v.Invoiced = intToBool(invoiced)
	v.InvoicedAt = parseNullableTime(invoicedAt, time.RFC3339)
	if v.CreatedAt, v.UpdatedAt, err = parseTimestamps(created, updated); err != nil {
		return nil, err
	}
	return &v, nil
}
