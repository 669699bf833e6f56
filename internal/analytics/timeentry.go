// Package analytics turns visit records into hour totals, contractual
// deviation classes and financial/productivity reports. Every function here
// is pure: inputs are read-only snapshots and outputs are new values.
package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/fieldbook/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	sixty   = decimal.NewFromInt(60)
	hundred = decimal.NewFromInt(100)
)

// TimeEntry is the normalized worked duration of one visit.
// Invalid entries carry zero hours but still count as visits.
type TimeEntry struct {
	TotalHours decimal.Decimal
	Valid      bool
	Issues     []IssueCode
}

func (e *TimeEntry) flag(code IssueCode) {
	e.Issues = append(e.Issues, code)
	if code.invalidating() {
		e.Valid = false
	}
}

// ParseClock converts "HH:MM" (or "H:MM") into minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parsing clock value %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// BreakMinutes converts a break given as decimal hours ("0.75", "1,5") or
// as a clock value ("00:45") into minutes. Empty means no break.
func BreakMinutes(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	if strings.Contains(s, ":") {
		m, err := ParseClock(s)
		if err != nil {
			return decimal.Zero, err
		}
		return decimal.NewFromInt(int64(m)), nil
	}
	h, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing break %q: %w", s, err)
	}
	if h.IsNegative() {
		return decimal.Zero, fmt.Errorf("break %q is negative", s)
	}
	return h.Mul(sixty), nil
}

// BreakHours is BreakMinutes expressed in decimal hours.
func BreakHours(s string) (decimal.Decimal, error) {
	m, err := BreakMinutes(s)
	if err != nil {
		return decimal.Zero, err
	}
	return m.Div(sixty), nil
}

// Normalize derives worked hours as end - arrival - break.
// DepartureTime is only syntax-checked; it never enters the formula.
func Normalize(tt domain.TimeTracking) TimeEntry {
	entry := TimeEntry{TotalHours: decimal.Zero, Valid: true}

	if strings.TrimSpace(tt.DepartureTime) != "" {
		if _, err := ParseClock(tt.DepartureTime); err != nil {
			entry.flag(IssueDepartureMalformed)
		}
	}

	arrival, err := ParseClock(tt.ArrivalTime)
	if err != nil {
		entry.flag(IssueArrivalMalformed)
	}
	end, err := ParseClock(tt.EndTime)
	if err != nil {
		entry.flag(IssueEndMalformed)
	}
	breakMin, err := BreakMinutes(tt.BreakDuration)
	if err != nil {
		entry.flag(IssueBreakMalformed)
	}
	if !entry.Valid {
		return entry
	}

	if end < arrival {
		entry.flag(IssueInvertedRange)
		return entry
	}

	worked := decimal.NewFromInt(int64(end - arrival)).Sub(breakMin)
	if worked.IsNegative() {
		entry.flag(IssueBreakExceedsSpan)
		return entry
	}
	entry.TotalHours = worked.Div(sixty)
	return entry
}

// Visit is a record paired with its normalized entry. The record is shared
// with the caller's snapshot and must not be modified. Personnel is the
// cleaned crew list every per-person and crew-multiplied figure reads.
type Visit struct {
	Record     *domain.VisitRecord
	Personnel  []string
	TotalHours decimal.Decimal
	Valid      bool
}

// Crew is the personnel multiplier. An empty crew counts as one person.
func (v Visit) Crew() int {
	if len(v.Personnel) == 0 {
		return 1
	}
	return len(v.Personnel)
}

// TeamHours is TotalHours multiplied by the crew size.
func (v Visit) TeamHours() decimal.Decimal {
	return v.TotalHours.Mul(decimal.NewFromInt(int64(v.Crew())))
}

// NormalizeVisits normalizes every record in order. Nothing is dropped:
// problems are reported as warnings alongside the result.
func NormalizeVisits(records []*domain.VisitRecord) ([]Visit, []Warning) {
	visits := make([]Visit, 0, len(records))
	var warnings []Warning
	for _, r := range records {
		entry := Normalize(r.TimeTracking)
		for _, code := range entry.Issues {
			warnings = append(warnings, Warning{VisitID: r.ID, Code: code})
		}
		crew := domain.NormalizePersonnel(r.Personnel)
		if len(crew) == 0 {
			warnings = append(warnings, Warning{VisitID: r.ID, Code: IssueMissingPersonnel, Detail: "counted as one person"})
		}
		visits = append(visits, Visit{Record: r, Personnel: crew, TotalHours: entry.TotalHours, Valid: entry.Valid})
	}
	return visits, warnings
}
