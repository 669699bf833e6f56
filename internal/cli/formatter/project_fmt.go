package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fieldbook/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// FormatTeamList renders teams with their project counts.
func FormatTeamList(teams []*domain.Team, projectCounts map[string]int) string {
	headers := []string{"ID", "NAME", "PROJECTS"}
	rows := make([][]string, 0, len(teams))
	for _, t := range teams {
		rows = append(rows, []string{TruncID(t.ID), Bold(t.Name), fmt.Sprintf("%d", projectCounts[t.ID])})
	}
	return RenderBox("Teams", RenderTable(headers, rows, 2))
}

// FormatProjectList renders a styled project list inside a bordered box.
// teamNames maps team IDs to display names.
func FormatProjectList(projects []*domain.Project, teamNames map[string]string) string {
	headers := []string{"ID", "NAME", "TEAM", "VISIT", "PLAN", "STATUS"}
	rows := make([][]string, 0, len(projects))

	for _, p := range projects {
		team := Dim("--")
		if name, ok := teamNames[p.TeamID]; ok {
			team = StylePurple.Render(name)
		}
		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(p.Name),
			team,
			FormatHours(p.VisitDuration),
			fmt.Sprintf("%d× / %s", p.AnnualVisits, FormatHours(p.AnnualTotalHours)),
			StatusPill(p.Status),
		})
	}

	return RenderBox("Projects", RenderTable(headers, rows, 3))
}

// ProjectInspectData holds what the project inspect card shows.
type ProjectInspectData struct {
	Project  *domain.Project
	TeamName string
	Visits   []*domain.VisitRecord
}

// FormatProjectInspect renders the project's contract next to its recent visits.
func FormatProjectInspect(data ProjectInspectData) string {
	left := buildContractPanel(data.Project, data.TeamName)
	right := buildRecentVisitsPanel(data.Visits, 8)
	return RenderBox("", lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right))
}

func buildContractPanel(p *domain.Project, teamName string) string {
	var b strings.Builder
	b.WriteString(StyleBold.Render(p.Name) + "\n")
	if p.Address != "" {
		b.WriteString(Dim(p.Address) + "\n")
	}
	b.WriteString("\n")

	if teamName == "" {
		teamName = "--"
	}
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("STATUS  "), StatusPill(p.Status))
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("ID      "), TruncID(p.ID))
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("TEAM    "), StyleFg.Render(teamName))
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("VISIT   "), StyleFg.Render(FormatHours(p.VisitDuration)))
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("VISITS/Y"), StyleFg.Render(fmt.Sprintf("%d", p.AnnualVisits)))
	fmt.Fprintf(&b, "%s  %s", StyleDim.Render("HOURS/Y "), StyleFg.Render(FormatHours(p.AnnualTotalHours)))
	return b.String()
}

func buildRecentVisitsPanel(visits []*domain.VisitRecord, limit int) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render("RECENT VISITS") + "\n")
	if len(visits) == 0 {
		b.WriteString(Dim("No visits recorded."))
		return b.String()
	}
	// Visits arrive oldest first.
	start := max(len(visits)-limit, 0)
	for i := len(visits) - 1; i >= start; i-- {
		v := visits[i]
		fmt.Fprintf(&b, "%s  %s  %s\n",
			StyleFg.Render(v.Date.Format("2006-01-02")),
			FormatHours(v.TimeTracking.TotalHours),
			Dim(strings.Join(v.Personnel, ", ")))
	}
	return strings.TrimRight(b.String(), "\n")
}
