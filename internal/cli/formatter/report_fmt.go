package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fieldbook/internal/contract"
)

// FormatDashboard renders the dashboard as stacked sections.
func FormatDashboard(d contract.Dashboard) string {
	var b strings.Builder
	cur := d.Currency

	b.WriteString(Header("Totals") + "\n")
	b.WriteString(periodTable([]string{"ALL", "LINKED", "BLANK"},
		[]contract.PeriodReport{d.Totals, d.Linked, d.Blank}, cur))

	b.WriteString("\n" + Header("Periods") + "\n")
	b.WriteString(comparisonTable([]contract.PeriodComparison{d.Week, d.Month, d.Year}))

	b.WriteString("\n" + Header("Overdue") + "\n")
	if d.Overdue.Count == 0 {
		b.WriteString(StyleGreen.Render("Nothing overdue.") + "\n")
	} else {
		fmt.Fprintf(&b, "%s  %s  %s\n",
			StyleRed.Render(fmt.Sprintf("%d visits", d.Overdue.Count)),
			Bold(FormatMoney(d.Overdue.Amount, cur)),
			Dim(fmt.Sprintf("oldest %dd", d.Overdue.OldestDays)))
	}

	scope := d.BreakdownKey
	for _, sec := range []struct {
		title string
		rows  []contract.DimensionBreakdown
	}{
		{"Teams", d.Teams},
		{"Personnel", d.Personnel},
		{"Projects", d.Projects},
	} {
		b.WriteString("\n" + Header(sec.title+" · "+scope) + "\n")
		b.WriteString(FormatBreakdown(sec.rows, cur))
	}

	if len(d.Months) > 0 {
		b.WriteString("\n" + Header("Months") + "\n")
		b.WriteString(FormatPeriodHours(d.Months))
	}

	if len(d.Deviations) > 0 {
		b.WriteString("\n" + Header("Deviation") + "\n")
		b.WriteString(FormatDeviationSummaries(d.Deviations))
	}

	if len(d.Warnings) > 0 {
		b.WriteString("\n" + Header(fmt.Sprintf("Warnings (%d)", len(d.Warnings))) + "\n")
		b.WriteString(FormatWarnings(d.Warnings))
	}

	return RenderBox("Dashboard "+d.GeneratedAt.Format("2006-01-02"), strings.TrimRight(b.String(), "\n"))
}

func periodTable(labels []string, reports []contract.PeriodReport, currency string) string {
	headers := []string{"", "VISITS", "INVALID", "HOURS", "TEAM H", "COST", "INVOICED", "PENDING", "RATE"}
	rows := make([][]string, 0, len(reports))
	for i, r := range reports {
		rows = append(rows, []string{
			Bold(labels[i]),
			fmt.Sprintf("%d", r.VisitCount),
			fmt.Sprintf("%d", r.InvalidCount),
			FormatHours(r.TotalHours),
			FormatHours(r.TeamHours),
			FormatMoney(r.TotalCost, currency),
			FormatMoney(r.InvoicedAmount, currency),
			FormatMoney(r.PendingAmount, currency),
			FormatPercent(r.InvoicingRatePercent),
		})
	}
	return RenderTable(headers, rows, 1, 2, 3, 4, 5, 6, 7, 8)
}

func comparisonTable(comparisons []contract.PeriodComparison) string {
	headers := []string{"PERIOD", "TEAM H", "PRIOR", "HOURS Δ", "COST Δ", "VISITS Δ"}
	rows := make([][]string, 0, len(comparisons))
	for _, c := range comparisons {
		rows = append(rows, []string{
			Bold(c.Current.PeriodKey),
			FormatHours(c.Current.TeamHours),
			Dim(FormatHours(c.Prior.TeamHours)),
			FormatGrowth(c.HoursGrowthPercent),
			FormatGrowth(c.CostGrowthPercent),
			FormatGrowth(c.VisitGrowthPercent),
		})
	}
	return RenderTable(headers, rows, 1, 2, 3, 4, 5)
}

// FormatComparison renders one current-versus-prior comparison.
func FormatComparison(c contract.PeriodComparison, currency string) string {
	var b strings.Builder
	b.WriteString(periodTable([]string{c.Current.PeriodKey, c.Prior.PeriodKey},
		[]contract.PeriodReport{c.Current, c.Prior}, currency))
	fmt.Fprintf(&b, "\n%s %s   %s %s   %s %s",
		Dim("hours"), FormatGrowth(c.HoursGrowthPercent),
		Dim("cost"), FormatGrowth(c.CostGrowthPercent),
		Dim("visits"), FormatGrowth(c.VisitGrowthPercent))
	return RenderBox(string(c.Kind)+" comparison", b.String())
}

// FormatBreakdown renders ranked breakdown rows.
func FormatBreakdown(rows []contract.DimensionBreakdown, currency string) string {
	if len(rows) == 0 {
		return Dim("No visits in scope.") + "\n"
	}
	headers := []string{"#", "NAME", "VISITS", "HOURS", "COST", "INVOICED"}
	out := make([][]string, 0, len(rows))
	for i, r := range rows {
		out = append(out, []string{
			Dim(fmt.Sprintf("%d", i+1)),
			Bold(r.Label),
			fmt.Sprintf("%d", r.VisitCount),
			FormatHours(r.Hours),
			FormatMoney(r.Cost, currency),
			FormatPercent(r.InvoicingRatePercent),
		})
	}
	return RenderTable(headers, out, 0, 2, 3, 4, 5)
}

// FormatPeriodHours renders one row per calendar bucket.
func FormatPeriodHours(groups []contract.HoursGroup) string {
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{
			Bold(g.Key),
			fmt.Sprintf("%d", g.VisitCount),
			FormatHours(g.Hours),
			FormatHours(g.TeamHours),
		})
	}
	return RenderTable([]string{"PERIOD", "VISITS", "HOURS", "TEAM H"}, rows, 1, 2, 3)
}
