package analytics

import (
	"github.com/alexanderramin/fieldbook/internal/domain"
	"github.com/shopspring/decimal"
)

// Index resolves project and team references for a snapshot.
type Index struct {
	projects map[string]*domain.Project
	teams    map[string]*domain.Team
}

// NewIndex builds lookup tables over the given snapshot slices.
func NewIndex(projects []*domain.Project, teams []*domain.Team) Index {
	ix := Index{
		projects: make(map[string]*domain.Project, len(projects)),
		teams:    make(map[string]*domain.Team, len(teams)),
	}
	for _, p := range projects {
		ix.projects[p.ID] = p
	}
	for _, t := range teams {
		ix.teams[t.ID] = t
	}
	return ix
}

// Project returns the project a linked visit points at. Blank visits and
// dangling references resolve to false.
func (ix Index) Project(v Visit) (*domain.Project, bool) {
	if v.Record.IsBlank() || v.Record.ProjectID == "" {
		return nil, false
	}
	p, ok := ix.projects[v.Record.ProjectID]
	return p, ok
}

// TeamName returns the team's display name, falling back to its ID.
func (ix Index) TeamName(id string) string {
	if t, ok := ix.teams[id]; ok {
		return domain.CoalesceStr(t.Name, id)
	}
	return id
}

// ProjectName returns the project's display name, falling back to its ID.
func (ix Index) ProjectName(id string) string {
	if p, ok := ix.projects[id]; ok {
		return domain.CoalesceStr(p.Name, id)
	}
	return id
}

// CheckReferences reports linked visits whose project is not in the snapshot.
func (ix Index) CheckReferences(visits []Visit) []Warning {
	var warnings []Warning
	for _, v := range visits {
		if v.Record.IsBlank() {
			continue
		}
		if _, ok := ix.Project(v); !ok {
			warnings = append(warnings, Warning{
				VisitID: v.Record.ID,
				Code:    IssueUnknownProject,
				Detail:  v.Record.ProjectID,
			})
		}
	}
	return warnings
}

// KeyFunc maps a visit to the group keys it is credited to. A visit may
// belong to several groups (one per person) or none.
type KeyFunc func(v Visit) []string

// ByProject groups linked visits by project. Blank visits and dangling
// references belong to no group.
func ByProject(ix Index) KeyFunc {
	return func(v Visit) []string {
		p, ok := ix.Project(v)
		if !ok {
			return nil
		}
		return []string{p.ID}
	}
}

// ByTeam groups linked visits by the team owning their project.
func ByTeam(ix Index) KeyFunc {
	return func(v Visit) []string {
		p, ok := ix.Project(v)
		if !ok || p.TeamID == "" {
			return nil
		}
		return []string{p.TeamID}
	}
}

// ByPersonnel credits a visit to every listed person.
func ByPersonnel() KeyFunc {
	return func(v Visit) []string {
		return v.Personnel
	}
}

// ByPeriod groups visits by calendar week, month or year.
func ByPeriod(kind domain.PeriodKind) KeyFunc {
	return func(v Visit) []string {
		return []string{PeriodKey(v.Record.Date, kind)}
	}
}

// HoursGroup is the hour total credited to one key.
//
// Hours sums each visit's TotalHours: a person credited on a 4h visit gets 4h
// whatever the crew size. TeamHours sums the crew-multiplied hours of the same
// visits. The two are distinct metrics.
type HoursGroup struct {
	Key        string
	Hours      decimal.Decimal
	TeamHours  decimal.Decimal
	VisitCount int
	// InvoicedCount counts the group's visits already invoiced.
	InvoicedCount int
}

func (g *HoursGroup) add(v Visit) {
	g.Hours = g.Hours.Add(v.TotalHours)
	g.TeamHours = g.TeamHours.Add(v.TeamHours())
	g.VisitCount++
	if v.Record.Invoiced {
		g.InvoicedCount++
	}
}

// GroupHours sums hours per key. Groups appear in the order their key is
// first seen in visits, so the output is fully determined by the input order.
func GroupHours(visits []Visit, keys KeyFunc) []HoursGroup {
	pos := make(map[string]int)
	var groups []HoursGroup
	for _, v := range visits {
		for _, k := range keys(v) {
			i, ok := pos[k]
			if !ok {
				i = len(groups)
				pos[k] = i
				groups = append(groups, HoursGroup{Key: k, Hours: decimal.Zero, TeamHours: decimal.Zero})
			}
			groups[i].add(v)
		}
	}
	return groups
}

// TotalHours is the ungrouped company-wide total. Blank visits and dangling
// project references are included.
func TotalHours(visits []Visit) HoursGroup {
	total := HoursGroup{Hours: decimal.Zero, TeamHours: decimal.Zero}
	for _, v := range visits {
		total.add(v)
	}
	return total
}

// SplitByKind separates project-linked visits from blank visits.
func SplitByKind(visits []Visit) (linked, blank []Visit) {
	for _, v := range visits {
		if v.Record.IsBlank() {
			blank = append(blank, v)
		} else {
			linked = append(linked, v)
		}
	}
	return linked, blank
}
