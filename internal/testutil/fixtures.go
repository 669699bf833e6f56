package testutil

import (
	"time"

	"github.com/alexanderramin/fieldbook/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultVisitDate is the date given to visits built without WithDate.
var DefaultVisitDate = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

func NewTestTeam(name string) *domain.Team {
	return &domain.Team{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}

// Project options
type ProjectOption func(*domain.Project)

func WithTeam(teamID string) ProjectOption {
	return func(p *domain.Project) {
		p.TeamID = teamID
	}
}

func WithVisitDuration(hours string) ProjectOption {
	return func(p *domain.Project) {
		p.VisitDuration = decimal.RequireFromString(hours)
	}
}

func WithAnnualPlan(visits int, hours string) ProjectOption {
	return func(p *domain.Project) {
		p.AnnualVisits = visits
		p.AnnualTotalHours = decimal.RequireFromString(hours)
	}
}

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:               uuid.New().String(),
		Name:             name,
		VisitDuration:    decimal.NewFromInt(4),
		AnnualVisits:     24,
		AnnualTotalHours: decimal.NewFromInt(96),
		Status:           domain.ProjectActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Visit options
type VisitOption func(*domain.VisitRecord)

// AsBlank turns the visit into an unlinked visit.
func AsBlank() VisitOption {
	return func(v *domain.VisitRecord) {
		v.Kind = domain.VisitBlank
		v.ProjectID = ""
	}
}

func WithDate(d time.Time) VisitOption {
	return func(v *domain.VisitRecord) {
		v.Date = d
	}
}

func WithPersonnel(names ...string) VisitOption {
	return func(v *domain.VisitRecord) {
		v.Personnel = names
	}
}

func WithTimes(arrival, end string) VisitOption {
	return func(v *domain.VisitRecord) {
		v.TimeTracking.ArrivalTime = arrival
		v.TimeTracking.EndTime = end
	}
}

func WithDeparture(t string) VisitOption {
	return func(v *domain.VisitRecord) {
		v.TimeTracking.DepartureTime = t
	}
}

func WithBreak(b string) VisitOption {
	return func(v *domain.VisitRecord) {
		v.TimeTracking.BreakDuration = b
	}
}

func WithRate(rate string) VisitOption {
	return func(v *domain.VisitRecord) {
		v.HourlyRate = decimal.NewNullDecimal(decimal.RequireFromString(rate))
	}
}

func WithInvoiced() VisitOption {
	return func(v *domain.VisitRecord) {
		v.Invoiced = true
	}
}

func WithNotes(n string) VisitOption {
	return func(v *domain.VisitRecord) {
		v.Notes = n
	}
}

// NewTestVisit builds an 8:00-12:00 single-person visit without a break.
// An empty projectID yields a blank visit.
func NewTestVisit(projectID string, opts ...VisitOption) *domain.VisitRecord {
	now := time.Now().UTC()
	v := &domain.VisitRecord{
		ID:        uuid.New().String(),
		Kind:      domain.VisitLinked,
		ProjectID: projectID,
		Date:      DefaultVisitDate,
		Personnel: []string{"Ana"},
		TimeTracking: domain.TimeTracking{
			DepartureTime: "07:30",
			ArrivalTime:   "08:00",
			EndTime:       "12:00",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if projectID == "" {
		v.Kind = domain.VisitBlank
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}
