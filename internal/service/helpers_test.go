package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/fieldbook/internal/db"
	"github.com/alexanderramin/fieldbook/internal/domain"
	"github.com/alexanderramin/fieldbook/internal/repository"
	"github.com/alexanderramin/fieldbook/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db         *sql.DB
	cache      *ReportCache
	teamRepo   *repository.SQLiteTeamRepo
	projRepo   *repository.SQLiteProjectRepo
	visitRepo  *repository.SQLiteVisitRepo
	peopleRepo *repository.SQLitePersonnelRepo

	teams     TeamService
	projects  ProjectService
	visits    VisitService
	settings  SettingsService
	deviation DeviationService
	reports   ReportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithUoW(t, nil)
}

// newTestEnvWithUoW builds the services over one in-memory database. A nil
// uow uses the real SQLite unit of work.
func newTestEnvWithUoW(t *testing.T, uow func(*sql.DB) db.UnitOfWork) *testEnv {
	t.Helper()
	conn := testutil.NewTestDB(t)
	e := &testEnv{
		db:         conn,
		cache:      NewReportCache(),
		teamRepo:   repository.NewSQLiteTeamRepo(conn),
		projRepo:   repository.NewSQLiteProjectRepo(conn),
		visitRepo:  repository.NewSQLiteVisitRepo(conn),
		peopleRepo: repository.NewSQLitePersonnelRepo(conn),
	}
	u := testutil.NewTestUoW(conn)
	if uow != nil {
		u = uow(conn)
	}
	e.teams = NewTeamService(e.teamRepo, e.cache)
	e.projects = NewProjectService(e.projRepo, e.teamRepo, e.visitRepo, e.cache)
	e.visits = NewVisitService(e.visitRepo, e.projRepo, e.peopleRepo, u, e.cache)
	e.settings = NewSettingsService(repository.NewSQLiteSettingsRepo(conn), e.cache)
	e.deviation = NewDeviationService(e.projRepo, e.visitRepo)
	e.reports = NewReportService(e.projRepo, e.teamRepo, e.visitRepo, e.settings, e.cache)
	return e
}

func (e *testEnv) mustProject(t *testing.T, name string, opts ...testutil.ProjectOption) *domain.Project {
	t.Helper()
	p := testutil.NewTestProject(name, opts...)
	require.NoError(t, e.projects.Create(context.Background(), p))
	return p
}

func (e *testEnv) mustVisit(t *testing.T, projectID string, opts ...testutil.VisitOption) *domain.VisitRecord {
	t.Helper()
	v := testutil.NewTestVisit(projectID, opts...)
	_, err := e.visits.Create(context.Background(), v)
	require.NoError(t, err)
	return v
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
