package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Project is a contracted site serviced by one team.
type Project struct {
	ID      string
	Name    string
	Address string
	TeamID  string

	// Contract
	VisitDuration    decimal.Decimal // hours per visit
	AnnualVisits     int
	AnnualTotalHours decimal.Decimal

	Status     ProjectStatus
	ArchivedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks the fields the contract figures depend on.
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("project name is required")
	}
	if p.VisitDuration.IsNegative() {
		return fmt.Errorf("visit duration must not be negative, got %s", p.VisitDuration)
	}
	if p.AnnualVisits < 0 {
		return fmt.Errorf("annual visits must not be negative, got %d", p.AnnualVisits)
	}
	if p.AnnualTotalHours.IsNegative() {
		return fmt.Errorf("annual total hours must not be negative, got %s", p.AnnualTotalHours)
	}
	return nil
}

// DisplayID returns the first 8 characters of ID for display.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}

// Team is a crew that services a set of projects.
type Team struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
