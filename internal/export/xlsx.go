// Package export renders dashboards as spreadsheets.
package export

import (
	"fmt"
	"io"

	"github.com/alexanderramin/fieldbook/internal/analytics"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	SheetSummary    = "Summary"
	SheetTeams      = "Teams"
	SheetPersonnel  = "Personnel"
	SheetProjects   = "Projects"
	SheetMonths     = "Months"
	SheetDeviations = "Deviations"
)

var (
	periodHeader    = []any{"Period", "Visits", "Invalid", "Hours", "Team hours", "Cost", "Invoiced", "Pending", "Invoiced %"}
	breakdownHeader = []any{"ID", "Label", "Visits", "Hours", "Cost", "Invoiced %"}
	monthHeader     = []any{"Month", "Visits", "Hours", "Team hours"}
	deviationHeader = []any{"Project ID", "Project", "Visits", "Avg hours", "Deviation", "Class"}
)

// WriteDashboard writes d as an xlsx workbook with one sheet per section.
func WriteDashboard(w io.Writer, d analytics.Dashboard) error {
	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	sheets := []struct {
		name string
		rows [][]any
	}{
		{SheetSummary, summaryRows(d)},
		{SheetTeams, breakdownRows(d.Teams)},
		{SheetPersonnel, breakdownRows(d.Personnel)},
		{SheetProjects, breakdownRows(d.Projects)},
		{SheetMonths, monthRows(d.Months)},
		{SheetDeviations, deviationRows(d.Deviations)},
	}
	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return fmt.Errorf("renaming sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("creating sheet %s: %w", s.name, err)
		}
		if err := writeRows(f, s.name, s.rows, header); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}
	if len(rows) == 0 {
		return nil
	}
	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("styling %s header: %w", sheet, err)
	}
	return f.SetColWidth(sheet, "A", "B", 20)
}

func summaryRows(d analytics.Dashboard) [][]any {
	rows := [][]any{
		periodHeader,
		periodRow("Total", d.Totals),
		periodRow("Linked", d.Linked),
		periodRow("Blank", d.Blank),
	}
	for _, c := range []analytics.PeriodComparison{d.Week, d.Month, d.Year} {
		rows = append(rows, periodRow(c.Current.PeriodKey, c.Current), periodRow(c.Prior.PeriodKey, c.Prior))
	}
	rows = append(rows,
		[]any{},
		[]any{"Currency", d.Currency},
		[]any{"Generated", d.GeneratedAt.Format("2006-01-02 15:04")},
		[]any{"Overdue visits", d.Overdue.Count},
		[]any{"Overdue amount", num(d.Overdue.Amount)},
		[]any{"Warnings", len(d.Warnings)},
	)
	return rows
}

func periodRow(label string, r analytics.PeriodReport) []any {
	return []any{
		label, r.VisitCount, r.InvalidCount,
		num(r.TotalHours), num(r.TeamHours), num(r.TotalCost),
		num(r.InvoicedAmount), num(r.PendingAmount), r.InvoicingRatePercent,
	}
}

func breakdownRows(items []analytics.DimensionBreakdown) [][]any {
	rows := [][]any{breakdownHeader}
	for _, b := range items {
		rows = append(rows, []any{b.DimensionID, b.Label, b.VisitCount, num(b.Hours), num(b.Cost), b.InvoicingRatePercent})
	}
	return rows
}

func deviationRows(items []analytics.ProjectDeviationSummary) [][]any {
	rows := [][]any{deviationHeader}
	for _, s := range items {
		rows = append(rows, []any{
			s.ProjectID, s.ProjectName, s.VisitCount,
			num(s.AverageHoursPerVisit), num(s.DeviationHours), string(s.Classification),
		})
	}
	return rows
}

func num(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func monthRows(groups []analytics.HoursGroup) [][]any {
	rows := [][]any{monthHeader}
	for _, g := range groups {
		rows = append(rows, []any{g.Key, g.VisitCount, num(g.Hours), num(g.TeamHours)})
	}
	return rows
}
