package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/fieldbook/internal/domain"
)

// PeriodKey returns the calendar bucket of a visit date: "2025-W07" for ISO
// weeks (Monday start), "2025-02" for months and "2025" for years. The date's
// own calendar fields are used, never a timezone conversion.
func PeriodKey(date time.Time, kind domain.PeriodKind) string {
	switch kind {
	case domain.PeriodWeek:
		y, w := date.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", y, w)
	case domain.PeriodMonth:
		return fmt.Sprintf("%04d-%02d", date.Year(), int(date.Month()))
	default:
		return fmt.Sprintf("%04d", date.Year())
	}
}

// Window is a half-open calendar range [Start, End) of one period.
type Window struct {
	Kind  domain.PeriodKind
	Key   string
	Start time.Time
	End   time.Time
}

// civilDate drops the clock part of t, keeping its calendar date in loc.
func civilDate(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// WindowAt returns the period of the given kind that contains now.
func WindowAt(now time.Time, kind domain.PeriodKind) Window {
	day := civilDate(now, now.Location())
	var start, end time.Time
	switch kind {
	case domain.PeriodWeek:
		offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
		start = day.AddDate(0, 0, -offset)
		end = start.AddDate(0, 0, 7)
	case domain.PeriodMonth:
		start = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		end = start.AddDate(0, 1, 0)
	default:
		kind = domain.PeriodYear
		start = time.Date(day.Year(), 1, 1, 0, 0, 0, 0, day.Location())
		end = start.AddDate(1, 0, 0)
	}
	return Window{Kind: kind, Key: PeriodKey(start, kind), Start: start, End: end}
}

// Prior returns the period immediately before w.
func (w Window) Prior() Window {
	return WindowAt(w.Start.AddDate(0, 0, -1), w.Kind)
}

// Contains reports whether the calendar date of t falls inside w.
func (w Window) Contains(t time.Time) bool {
	d := civilDate(t, w.Start.Location())
	return !d.Before(w.Start) && d.Before(w.End)
}

// FilterWindow returns the visits whose date falls inside w, in input order.
func FilterWindow(visits []Visit, w Window) []Visit {
	var out []Visit
	for _, v := range visits {
		if w.Contains(v.Record.Date) {
			out = append(out, v)
		}
	}
	return out
}

// PeriodHours groups visits into calendar buckets of kind, oldest first.
func PeriodHours(visits []Visit, kind domain.PeriodKind) []HoursGroup {
	groups := GroupHours(visits, ByPeriod(kind))
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
	return groups
}
