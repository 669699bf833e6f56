package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/fieldbook/internal/cli/formatter"
	"github.com/alexanderramin/fieldbook/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newVisitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "visit",
		Short: "Record and manage visits",
	}

	cmd.AddCommand(
		newVisitAddCmd(app),
		newVisitListCmd(app),
		newVisitShowCmd(app),
		newVisitUpdateCmd(app),
		newVisitInvoiceCmd(app),
		newVisitRemoveCmd(app),
	)

	return cmd
}

// visitFlags are the editable visit fields shared by add and update.
type visitFlags struct {
	project   string
	date      time.Time
	crew      []string
	departure string
	arrival   string
	end       string
	breakDur  string
	rate      decimal.Decimal
	invoiced  bool
	tasks     map[string]string
	notes     string
}

func (f *visitFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.project, "project", "", "Project ID or name (empty records a blank visit)")
	dateVar(fs, &f.date, "date", "Visit date (YYYY-MM-DD, default today)")
	fs.StringSliceVar(&f.crew, "crew", nil, "Personnel names, comma separated")
	fs.StringVar(&f.departure, "depart", "", "Departure time (HH:MM)")
	fs.StringVar(&f.arrival, "arrive", "", "Arrival on site (HH:MM)")
	fs.StringVar(&f.end, "end", "", "End of work (HH:MM)")
	fs.StringVar(&f.breakDur, "break", "", "Break as hours (0.75) or HH:MM (00:45)")
	decimalVar(fs, &f.rate, "rate", decimal.Zero, "Hourly rate for this visit (default from settings)")
	fs.BoolVar(&f.invoiced, "invoiced", false, "Mark the visit as invoiced")
	fs.StringToStringVar(&f.tasks, "task", nil, "Task performed, key=value (repeatable)")
	fs.StringVar(&f.notes, "notes", "", "Free-form notes")
}

// apply copies the flags the user set onto v.
func (f *visitFlags) apply(cmd *cobra.Command, app *App, v *domain.VisitRecord) error {
	fs := cmd.Flags()
	if fs.Changed("project") {
		v.ProjectID = ""
		v.Kind = domain.VisitBlank
		if f.project != "" {
			id, err := resolveProjectID(cmd.Context(), app, f.project)
			if err != nil {
				return err
			}
			v.ProjectID = id
			v.Kind = domain.VisitLinked
		}
	}
	if fs.Changed("date") {
		v.Date = f.date
	}
	if fs.Changed("crew") {
		v.Personnel = f.crew
	}
	if fs.Changed("depart") {
		v.TimeTracking.DepartureTime = f.departure
	}
	if fs.Changed("arrive") {
		v.TimeTracking.ArrivalTime = f.arrival
	}
	if fs.Changed("end") {
		v.TimeTracking.EndTime = f.end
	}
	if fs.Changed("break") {
		v.TimeTracking.BreakDuration = f.breakDur
	}
	if fs.Changed("rate") {
		v.HourlyRate = decimal.NewNullDecimal(f.rate)
	}
	if fs.Changed("invoiced") {
		if f.invoiced {
			v.MarkInvoiced(time.Now().UTC())
		} else {
			v.Invoiced = false
			v.InvoicedAt = nil
		}
	}
	if fs.Changed("task") {
		v.TasksPerformed = make(map[string]any, len(f.tasks))
		for k, val := range f.tasks {
			v.TasksPerformed[k] = val
		}
	}
	if fs.Changed("notes") {
		v.Notes = f.notes
	}
	return nil
}

func newVisitAddCmd(app *App) *cobra.Command {
	var flags visitFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a visit",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			v := &domain.VisitRecord{
				Kind: domain.VisitBlank,
				Date: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
			}
			if err := flags.apply(cmd, app, v); err != nil {
				return err
			}

			warnings, err := app.Visits.Create(cmd.Context(), v)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Recorded %s visit %s on %s: %s\n",
				v.Kind, shortID(v.ID), v.Date.Format(dateLayout), formatter.FormatHours(v.TimeTracking.TotalHours))
			fmt.Fprint(out, formatter.FormatWarnings(warnings))
			return nil
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("crew")
	_ = cmd.MarkFlagRequired("arrive")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newVisitListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List visits",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var visits []*domain.VisitRecord
			var err error
			if project != "" {
				projectID, rerr := resolveProjectID(ctx, app, project)
				if rerr != nil {
					return rerr
				}
				visits, err = app.Visits.ListByProject(ctx, projectID)
			} else {
				visits, err = app.Visits.ListAll(ctx)
			}
			if err != nil {
				return err
			}
			if len(visits) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No visits found.")
				return nil
			}

			names, err := projectNames(ctx, app)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatVisitList(visits, names))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Only visits of this project")

	return cmd
}

func newVisitShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a visit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			visitID, err := resolveVisitID(ctx, app, args[0])
			if err != nil {
				return err
			}
			v, err := app.Visits.GetByID(ctx, visitID)
			if err != nil {
				return err
			}
			st, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}

			projectName := ""
			if !v.IsBlank() {
				if p, err := app.Projects.GetByID(ctx, v.ProjectID); err == nil {
					projectName = p.Name
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatVisitDetail(v, projectName, st.Currency))
			return nil
		},
	}
}

func newVisitUpdateCmd(app *App) *cobra.Command {
	var flags visitFlags

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Edit a visit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			visitID, err := resolveVisitID(ctx, app, args[0])
			if err != nil {
				return err
			}
			v, err := app.Visits.GetByID(ctx, visitID)
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, app, v); err != nil {
				return err
			}

			warnings, err := app.Visits.Update(ctx, v)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Updated visit %s: %s\n", shortID(v.ID), formatter.FormatHours(v.TimeTracking.TotalHours))
			fmt.Fprint(out, formatter.FormatWarnings(warnings))
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func newVisitInvoiceCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "invoice ID...",
		Short: "Mark visits as invoiced",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			for _, arg := range args {
				visitID, err := resolveVisitID(ctx, app, arg)
				if err != nil {
					return err
				}
				if err := app.Visits.MarkInvoiced(ctx, visitID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Invoiced visit %s\n", shortID(visitID))
			}
			return nil
		},
	}
}

func newVisitRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a visit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			visitID, err := resolveVisitID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Visits.Delete(ctx, visitID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed visit %s\n", shortID(visitID))
			return nil
		},
	}
}
