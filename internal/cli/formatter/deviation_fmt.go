package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fieldbook/internal/contract"
)

const progressBarWidth = 12

// FormatDeviation renders one project's deviation and annual progress.
func FormatDeviation(resp *contract.DeviationResponse) string {
	var b strings.Builder
	dev := resp.Deviation
	p := resp.Progress

	fmt.Fprintf(&b, "%s\n\n", DeviationIndicator(dev.Classification))
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("PLANNED "), StyleFg.Render(FormatHours(resp.Project.VisitDuration)))
	fmt.Fprintf(&b, "%s  %s %s\n", StyleDim.Render("AVERAGE "),
		StyleFg.Render(FormatHours(dev.AverageHoursPerVisit)),
		Dim(fmt.Sprintf("over %d visits", dev.VisitCount)))
	fmt.Fprintf(&b, "%s  %s\n\n", StyleDim.Render("DEVIATE "),
		DeviationColor(dev.Classification).Render(FormatSignedHours(dev.DeviationHours)))

	fmt.Fprintf(&b, "%s\n", Header(fmt.Sprintf("%d plan", p.Year)))
	fmt.Fprintf(&b, "%s  %s %s\n", StyleDim.Render("VISITS"),
		RenderProgress(p.VisitProgressPct, progressBarWidth),
		Dim(fmt.Sprintf("%d / %d", p.CompletedVisits, p.PlannedVisits)))
	fmt.Fprintf(&b, "%s  %s %s", StyleDim.Render("HOURS "),
		RenderProgress(p.HoursProgressPct, progressBarWidth),
		Dim(fmt.Sprintf("%s / %s", FormatHours(p.ActualHours), FormatHours(p.PlannedHours))))

	return RenderBox(resp.Project.Name, b.String())
}

// FormatDeviationSummaries renders the per-project deviation table.
func FormatDeviationSummaries(items []contract.ProjectDeviationSummary) string {
	headers := []string{"PROJECT", "VISITS", "AVG", "DEVIATION", "CLASS"}
	rows := make([][]string, 0, len(items))
	for _, s := range items {
		rows = append(rows, []string{
			Bold(s.ProjectName),
			fmt.Sprintf("%d", s.VisitCount),
			FormatHours(s.AverageHoursPerVisit),
			FormatSignedHours(s.DeviationHours),
			DeviationIndicator(s.Classification),
		})
	}
	return RenderTable(headers, rows, 1, 2, 3)
}
