package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/fieldbook/internal/analytics"
	"github.com/alexanderramin/fieldbook/internal/domain"
)

// FormatVisitList renders visits in a table. projectNames maps project IDs
// to names; unknown IDs show as a dimmed short ID.
func FormatVisitList(visits []*domain.VisitRecord, projectNames map[string]string) string {
	headers := []string{"ID", "DATE", "PROJECT", "CREW", "HOURS", "STATUS"}
	rows := make([][]string, 0, len(visits))
	for _, v := range visits {
		rows = append(rows, []string{
			TruncID(v.ID),
			v.Date.Format("2006-01-02"),
			projectLabel(v, projectNames),
			strings.Join(v.Personnel, ", "),
			FormatHours(v.TimeTracking.TotalHours),
			InvoicedPill(v.Invoiced),
		})
	}
	return RenderBox("Visits", RenderTable(headers, rows, 4))
}

func projectLabel(v *domain.VisitRecord, projectNames map[string]string) string {
	if v.IsBlank() {
		return KindBadge(v.Kind)
	}
	if name, ok := projectNames[v.ProjectID]; ok {
		return name
	}
	return TruncID(v.ProjectID) + StyleRed.Render(" ?")
}

// FormatVisitDetail renders every stored field of a visit.
func FormatVisitDetail(v *domain.VisitRecord, projectName, currency string) string {
	var b strings.Builder
	row := func(label, value string) {
		fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render(fmt.Sprintf("%-9s", label)), value)
	}

	row("ID", TruncID(v.ID))
	row("KIND", KindBadge(v.Kind))
	if !v.IsBlank() {
		if projectName == "" {
			projectName = v.ProjectID
		}
		row("PROJECT", StyleFg.Render(projectName))
	}
	row("DATE", StyleFg.Render(HumanDate(v.Date)))
	row("CREW", StyleFg.Render(strings.Join(v.Personnel, ", ")))

	tt := v.TimeTracking
	row("TIMES", StyleFg.Render(fmt.Sprintf("depart %s  arrive %s  end %s  break %s",
		orDash(tt.DepartureTime), orDash(tt.ArrivalTime), orDash(tt.EndTime), orDash(tt.BreakDuration))))
	row("HOURS", Bold(FormatHours(tt.TotalHours)))

	rate := Dim("default")
	if v.HourlyRate.Valid {
		rate = StyleFg.Render(FormatMoney(v.HourlyRate.Decimal, currency) + "/h")
	}
	row("RATE", rate)
	row("INVOICE", InvoicedPill(v.Invoiced))
	if v.InvoicedAt != nil {
		row("", Dim(v.InvoicedAt.Format("2006-01-02 15:04")))
	}

	if len(v.TasksPerformed) > 0 {
		keys := make([]string, 0, len(v.TasksPerformed))
		for k := range v.TasksPerformed {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", k, v.TasksPerformed[k]))
		}
		row("TASKS", StyleFg.Render(strings.Join(parts, " ")))
	}
	if v.Notes != "" {
		row("NOTES", StyleFg.Render(v.Notes))
	}

	return RenderBox("Visit", strings.TrimRight(b.String(), "\n"))
}

// FormatWarnings lists data-quality warnings, one per line.
func FormatWarnings(warnings []analytics.Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	var b strings.Builder
	for _, w := range warnings {
		fmt.Fprintf(&b, "%s %s %s\n", StyleYellow.Render("!"), TruncID(w.VisitID), warningText(w))
	}
	return b.String()
}

func warningText(w analytics.Warning) string {
	var text string
	switch w.Code {
	case analytics.IssueArrivalMalformed:
		text = "arrival time is not HH:MM"
	case analytics.IssueEndMalformed:
		text = "end time is not HH:MM"
	case analytics.IssueBreakMalformed:
		text = "break is neither hours nor HH:MM"
	case analytics.IssueDepartureMalformed:
		text = "departure time is not HH:MM"
	case analytics.IssueInvertedRange:
		text = "end time is before arrival, counted as 0h"
	case analytics.IssueBreakExceedsSpan:
		text = "break is longer than the visit, counted as 0h"
	case analytics.IssueMissingPersonnel:
		text = "no personnel recorded"
	case analytics.IssueUnknownProject:
		text = "references a missing project"
	default:
		text = string(w.Code)
	}
	if w.Detail != "" {
		text += " (" + w.Detail + ")"
	}
	return text
}

// FormatPersonnelNames renders remembered names, most recent first.
func FormatPersonnelNames(names []string) string {
	if len(names) == 0 {
		return Dim("No personnel recorded yet.")
	}
	return Header("Personnel") + "\n" + strings.Join(names, "\n")
}

func orDash(s string) string {
	if s == "" {
		return "--"
	}
	return s
}
