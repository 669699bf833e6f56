package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/fieldbook/internal/db"
	"github.com/alexanderramin/fieldbook/internal/domain"
)

// SQLitePersonnelRepo keeps the remembered personnel names.
type SQLitePersonnelRepo struct {
	db db.DBTX
}

func NewSQLitePersonnelRepo(conn db.DBTX) *SQLitePersonnelRepo {
	return &SQLitePersonnelRepo{db: conn}
}

// ListNames returns the remembered names, most recently used first.
func (r *SQLitePersonnelRepo) ListNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name FROM personnel_names ORDER BY last_used DESC, name COLLATE NOCASE`)
	if err != nil {
		return nil, fmt.Errorf("listing personnel names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scanning personnel name: %w", err)
		}
		names = append(names, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating personnel names: %w", err)
	}
	return names, nil
}

// Remember records names as used at the given time. The first stored
// spelling of a name is kept.
func (r *SQLitePersonnelRepo) Remember(ctx context.Context, names []string, at time.Time) error {
	stamp := at.UTC().Format(time.RFC3339)
	for _, n := range domain.NormalizePersonnel(names) {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO personnel_names (name, last_used) VALUES (?, ?)
			 ON CONFLICT(name) DO UPDATE SET last_used = MAX(last_used, excluded.last_used)`,
			n, stamp)
		if err != nil {
			return fmt.Errorf("remembering %q: %w", n, err)
		}
	}
	return nil
}
