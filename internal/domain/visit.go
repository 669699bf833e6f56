package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TimeTracking holds the raw clock fields entered for a visit.
// BreakDuration is either decimal hours ("0.75") or a clock value ("00:45").
// TotalHours is a cached derivation; the analytics never read it.
type TimeTracking struct {
	DepartureTime string
	ArrivalTime   string
	EndTime       string
	BreakDuration string
	TotalHours    decimal.Decimal
}

// VisitRecord is one occurrence of work performed by a crew on a given date.
type VisitRecord struct {
	ID        string
	Kind      VisitKind
	ProjectID string // empty for blank visits
	Date      time.Time
	Personnel []string

	TimeTracking TimeTracking
	HourlyRate   decimal.NullDecimal

	Invoiced   bool
	InvoicedAt *time.Time

	TasksPerformed map[string]any
	Notes          string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlank reports whether the visit is not tied to a contracted project.
func (v *VisitRecord) IsBlank() bool {
	return v.Kind == VisitBlank
}

// PersonnelMultiplier is the crew size used to convert per-person hours into
// team hours. Names are counted after NormalizePersonnel; an empty crew counts
// as one person so hours are not lost.
func (v *VisitRecord) PersonnelMultiplier() int {
	if n := len(NormalizePersonnel(v.Personnel)); n > 0 {
		return n
	}
	return 1
}

// RateOr returns the visit's hourly rate, or fallback when none is set.
func (v *VisitRecord) RateOr(fallback decimal.Decimal) decimal.Decimal {
	return DecimalOrDefault(fallback, v.HourlyRate)
}

// CheckKind verifies the discriminant agrees with ProjectID.
func (v *VisitRecord) CheckKind() error {
	switch v.Kind {
	case VisitLinked:
		if v.ProjectID == "" {
			return fmt.Errorf("linked visit requires a project")
		}
	case VisitBlank:
		if v.ProjectID != "" {
			return fmt.Errorf("blank visit must not reference project %q", v.ProjectID)
		}
	default:
		return fmt.Errorf("unknown visit kind %q", v.Kind)
	}
	return nil
}

// MarkInvoiced flags the visit as invoiced at the given time.
func (v *VisitRecord) MarkInvoiced(now time.Time) {
	if v.Invoiced {
		return
	}
	v.Invoiced = true
	v.InvoicedAt = &now
	v.UpdatedAt = now
}

// NormalizePersonnel trims names, drops empties and removes case-insensitive
// duplicates while keeping the first spelling and the original order.
func NormalizePersonnel(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		key := strings.ToLower(n)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, n)
	}
	return out
}
