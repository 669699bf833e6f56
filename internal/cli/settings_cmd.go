package cli

import (
	"fmt"

	"github.com/alexanderramin/fieldbook/internal/cli/formatter"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Default rate, overdue threshold and currency",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.Settings.Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(),
				formatter.FormatSettings(st.DefaultHourlyRate.String(), st.Currency, st.OverdueDays, st.CustomTasks))
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var rate decimal.Decimal
	var overdueDays int
	var currency string
	var tasks []string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}

			fs := cmd.Flags()
			if !fs.Changed("rate") && !fs.Changed("overdue-days") && !fs.Changed("currency") && !fs.Changed("tasks") {
				return fmt.Errorf("nothing to change (see --help)")
			}
			if fs.Changed("rate") {
				st.DefaultHourlyRate = rate
			}
			if fs.Changed("overdue-days") {
				st.OverdueDays = overdueDays
			}
			if fs.Changed("currency") {
				st.Currency = currency
			}
			if fs.Changed("tasks") {
				st.CustomTasks = tasks
			}

			if err := app.Settings.Update(ctx, st); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Settings saved.")
			return nil
		},
	}

	decimalVar(cmd.Flags(), &rate, "rate", decimal.Zero, "Default hourly rate")
	cmd.Flags().IntVar(&overdueDays, "overdue-days", 0, "Days after which an uninvoiced visit is overdue")
	cmd.Flags().StringVar(&currency, "currency", "", "Currency code, e.g. EUR")
	cmd.Flags().StringSliceVar(&tasks, "tasks", nil, "Custom task names, comma separated")

	return cmd
}
