package cli

import (
	"github.com/alexanderramin/fieldbook/internal/cli/formatter"
	"github.com/alexanderramin/fieldbook/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Teams     service.TeamService
	Projects  service.ProjectService
	Visits    service.VisitService
	Settings  service.SettingsService
	Deviation service.DeviationService
	Reports   service.ReportService
}

// NewRootCmd creates the top-level "fieldbook" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var noColor bool

	root := &cobra.Command{
		Use:           "fieldbook",
		Short:         "Visit log and analytics for landscaping crews",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				formatter.SetPlain(true)
			}
		},
	}

	// --config is read by main before the App exists; it is declared here so
	// cobra accepts it.
	root.PersistentFlags().String("config", "", "Config file (default ~/.fieldbook/config.yaml)")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")

	root.AddCommand(
		newTeamCmd(app),
		newProjectCmd(app),
		newVisitCmd(app),
		newPersonnelCmd(app),
		newDeviationCmd(app),
		newReportCmd(app),
		newSettingsCmd(app),
	)

	return root
}
