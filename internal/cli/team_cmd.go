package cli

import (
	"fmt"

	"github.com/alexanderramin/fieldbook/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTeamCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage crews",
	}

	cmd.AddCommand(
		newTeamAddCmd(app),
		newTeamListCmd(app),
		newTeamRenameCmd(app),
		newTeamRemoveCmd(app),
	)

	return cmd
}

func newTeamAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME",
		Short: "Create a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.Teams.Create(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created team %s [%s]\n", t.Name, shortID(t.ID))
			return nil
		},
	}
}

func newTeamListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			teams, err := app.Teams.List(ctx)
			if err != nil {
				return err
			}
			if len(teams) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No teams found.")
				return nil
			}

			projects, err := app.Projects.List(ctx, false)
			if err != nil {
				return err
			}
			counts := make(map[string]int)
			for _, p := range projects {
				counts[p.TeamID]++
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTeamList(teams, counts))
			return nil
		},
	}
}

func newTeamRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename ID NAME",
		Short: "Rename a team",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			teamID, err := resolveTeamID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Teams.Rename(ctx, teamID, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed team %s to %s\n", shortID(teamID), args[1])
			return nil
		},
	}
}

func newTeamRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a team; its projects are kept without a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			teamID, err := resolveTeamID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Teams.Delete(ctx, teamID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed team %s\n", shortID(teamID))
			return nil
		},
	}
}
