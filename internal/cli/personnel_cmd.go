package cli

import (
	"fmt"

	"github.com/alexanderramin/fieldbook/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPersonnelCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "personnel",
		Short: "Remembered personnel names",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List personnel names, most recently used first",
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := app.Visits.PersonnelNames(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPersonnelNames(names))
			return nil
		},
	})

	return cmd
}
