package cli

import (
	"fmt"

	"github.com/alexanderramin/fieldbook/internal/cli/formatter"
	"github.com/alexanderramin/fieldbook/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage contracted projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectInspectCmd(app),
		newProjectUpdateCmd(app),
		newProjectArchiveCmd(app),
		newProjectUnarchiveCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

// projectFlags are the editable contract fields shared by add and update.
type projectFlags struct {
	name, address, team string
	duration            decimal.Decimal
	annualVisits        int
	annualHours         decimal.Decimal
}

func (f *projectFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.name, "name", "", "Project name")
	fs.StringVar(&f.address, "address", "", "Site address")
	fs.StringVar(&f.team, "team", "", "Team ID or name (empty clears)")
	decimalVar(fs, &f.duration, "duration", decimal.Zero, "Contractual hours per visit")
	fs.IntVar(&f.annualVisits, "annual-visits", 0, "Planned visits per year")
	decimalVar(fs, &f.annualHours, "annual-hours", decimal.Zero, "Planned hours per year")
}

// apply copies the flags the user set onto p.
func (f *projectFlags) apply(cmd *cobra.Command, app *App, p *domain.Project) error {
	fs := cmd.Flags()
	if fs.Changed("name") {
		p.Name = f.name
	}
	if fs.Changed("address") {
		p.Address = f.address
	}
	if fs.Changed("team") {
		p.TeamID = ""
		if f.team != "" {
			id, err := resolveTeamID(cmd.Context(), app, f.team)
			if err != nil {
				return err
			}
			p.TeamID = id
		}
	}
	if fs.Changed("duration") {
		p.VisitDuration = f.duration
	}
	if fs.Changed("annual-visits") {
		p.AnnualVisits = f.annualVisits
	}
	if fs.Changed("annual-hours") {
		p.AnnualTotalHours = f.annualHours
	}
	return nil
}

func newProjectAddCmd(app *App) *cobra.Command {
	var flags projectFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Project{
				VisitDuration:    decimal.Zero,
				AnnualTotalHours: decimal.Zero,
			}
			if err := flags.apply(cmd, app, p); err != nil {
				return err
			}
			if err := app.Projects.Create(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created project %s [%s]\n", p.Name, p.DisplayID())
			return nil
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("duration")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projects, err := app.Projects.List(ctx, all)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No projects found.")
				return nil
			}
			names, err := teamNames(ctx, app)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectList(projects, names))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived projects")

	return cmd
}

func newProjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show a project's contract and recent visits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}
			visits, err := app.Visits.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}

			data := formatter.ProjectInspectData{Project: p, Visits: visits}
			if p.TeamID != "" {
				if t, err := app.Teams.GetByID(ctx, p.TeamID); err == nil {
					data.TeamName = t.Name
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectInspect(data))
			return nil
		},
	}
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	var flags projectFlags

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, app, p); err != nil {
				return err
			}
			if err := app.Projects.Update(ctx, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated project %s [%s]\n", p.Name, p.DisplayID())
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func newProjectArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive ID",
		Short: "Archive a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Archive(ctx, projectID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Archived project %s\n", shortID(projectID))
			return nil
		},
	}
}

func newProjectUnarchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unarchive ID",
		Short: "Unarchive a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Unarchive(ctx, projectID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unarchived project %s\n", shortID(projectID))
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an archived project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(ctx, projectID, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed project %s\n", shortID(projectID))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Remove even if active or visits reference it")

	return cmd
}
