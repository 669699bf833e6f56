package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/fieldbook/internal/cli/formatter"
	"github.com/alexanderramin/fieldbook/internal/contract"
	"github.com/alexanderramin/fieldbook/internal/domain"
	"github.com/alexanderramin/fieldbook/internal/export"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Hours, costs and invoicing reports",
	}

	cmd.AddCommand(
		newReportDashboardCmd(app),
		newReportCompareCmd(app),
		newReportExportCmd(app),
	)

	return cmd
}

func newReportDashboardCmd(app *App) *cobra.Command {
	var breakdown string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show totals, period growth, breakdowns and overdue invoices",
	}
	asOf := addAsOfFlag(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		req := contract.NewDashboardRequest()
		req.BreakdownPeriod = breakdown
		req.Now = asOf()
		req.NoCache = noCache

		resp, err := app.Reports.Dashboard(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDashboard(resp.Dashboard))
		return nil
	}

	periodVar(cmd.Flags(), &breakdown, "breakdown", contract.BreakdownAll, true, "Breakdown scope: all, week, month or year")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Recompute even if a cached dashboard exists")

	return cmd
}

func newReportCompareCmd(app *App) *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the current period with the one before",
	}
	asOf := addAsOfFlag(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		req := contract.NewComparisonRequest(domain.PeriodKind(period))
		req.Now = asOf()

		resp, err := app.Reports.Compare(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatComparison(resp.Comparison, resp.Currency))
		return nil
	}

	periodVar(cmd.Flags(), &period, "period", string(domain.PeriodWeek), false, "Period: week, month or year")

	return cmd
}

func newReportExportCmd(app *App) *cobra.Command {
	var breakdown string

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Write the dashboard to an .xlsx workbook",
		Args:  cobra.ExactArgs(1),
	}
	asOf := addAsOfFlag(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		req := contract.NewDashboardRequest()
		req.BreakdownPeriod = breakdown
		req.Now = asOf()

		resp, err := app.Reports.Dashboard(cmd.Context(), req)
		if err != nil {
			return err
		}

		f, err := os.Create(args[0])
		if err != nil {
			return fmt.Errorf("creating %s: %w", args[0], err)
		}
		if err := export.WriteDashboard(f, resp.Dashboard); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing %s: %w", args[0], err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported dashboard to %s\n", args[0])
		return nil
	}

	periodVar(cmd.Flags(), &breakdown, "breakdown", contract.BreakdownAll, true, "Breakdown scope: all, week, month or year")

	return cmd
}
