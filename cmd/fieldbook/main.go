package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexanderramin/fieldbook/internal/cli"
	"github.com/alexanderramin/fieldbook/internal/cli/formatter"
	"github.com/alexanderramin/fieldbook/internal/config"
	"github.com/alexanderramin/fieldbook/internal/db"
	"github.com/alexanderramin/fieldbook/internal/domain"
	"github.com/alexanderramin/fieldbook/internal/repository"
	"github.com/alexanderramin/fieldbook/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// configPath picks --config out of the arguments before cobra runs, since
// the database must be open before the command tree is built.
func configPath(args []string) string {
	fs := pflag.NewFlagSet("fieldbook", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {}
	path := fs.String("config", "", "")
	_ = fs.Parse(args)
	return *path
}

func run() error {
	cfg, err := config.Load(configPath(os.Args[1:]))
	if err != nil {
		return err
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		formatter.SetPlain(true)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	teamRepo := repository.NewSQLiteTeamRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	visitRepo := repository.NewSQLiteVisitRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	personnelRepo := repository.NewSQLitePersonnelRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogCalls {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	// Wire services
	cache := service.NewReportCache()
	settingsSvc := service.NewSettingsService(settingsRepo, cache)
	if err := seedSettings(ctx, settingsSvc, cfg); err != nil {
		return err
	}

	app := &cli.App{
		Teams:     service.NewTeamService(teamRepo, cache),
		Projects:  service.NewProjectService(projectRepo, teamRepo, visitRepo, cache),
		Visits:    service.NewVisitService(visitRepo, projectRepo, personnelRepo, uow, cache, observers...),
		Settings:  settingsSvc,
		Deviation: service.NewDeviationService(projectRepo, visitRepo, observers...),
		Reports:   service.NewReportService(projectRepo, teamRepo, visitRepo, settingsSvc, cache, observers...),
	}

	// Execute root command
	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

// seedSettings stores the configured defaults on first run. Settings saved
// later through the CLI take precedence.
func seedSettings(ctx context.Context, svc service.SettingsService, cfg *config.Config) error {
	rate, err := cfg.HourlyRate()
	if err != nil {
		return err
	}
	st := domain.DefaultSettings()
	st.DefaultHourlyRate = rate
	st.OverdueDays = cfg.OverdueDays
	st.Currency = cfg.Currency
	if err := svc.Seed(ctx, &st); err != nil {
		return fmt.Errorf("seeding settings: %w", err)
	}
	return nil
}
