package cli

import (
	"fmt"

	"github.com/alexanderramin/fieldbook/internal/cli/formatter"
	"github.com/alexanderramin/fieldbook/internal/contract"
	"github.com/spf13/cobra"
)

func newDeviationCmd(app *App) *cobra.Command {
	var exclude string
	var year int

	cmd := &cobra.Command{
		Use:   "deviation PROJECT",
		Short: "Compare a project's average visit length with its contract",
		Args:  cobra.ExactArgs(1),
	}
	asOf := addAsOfFlag(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		projectID, err := resolveProjectID(ctx, app, args[0])
		if err != nil {
			return err
		}

		req := contract.DeviationRequest{ProjectID: projectID, Year: year, Now: asOf()}
		if exclude != "" {
			visitID, err := resolveVisitID(ctx, app, exclude)
			if err != nil {
				return err
			}
			req.ExcludeVisitID = visitID
		}

		resp, err := app.Deviation.ForProject(ctx, req)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDeviation(resp))
		return nil
	}

	cmd.Flags().StringVar(&exclude, "exclude", "", "Leave this visit out (the one being edited)")
	cmd.Flags().IntVar(&year, "year", 0, "Annual plan year (default current year)")

	return cmd
}
