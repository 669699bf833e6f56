package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/fieldbook/internal/app"
	"github.com/alexanderramin/fieldbook/internal/domain"
	"github.com/alexanderramin/fieldbook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviationService_AverageMatchesPlan(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.mustProject(t, "Park", testutil.WithVisitDuration("5"))

	env.mustVisit(t, p.ID, testutil.WithTimes("08:00", "12:00"))
	env.mustVisit(t, p.ID, testutil.WithTimes("08:00", "14:00"), testutil.WithPersonnel("Ana", "Ben"))
	env.mustVisit(t, p.ID, testutil.WithTimes("08:00", "13:00"))

	resp, err := env.deviation.ForProject(ctx, app.DeviationRequest{ProjectID: p.ID, Year: 2025})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Deviation.VisitCount)
	assert.Equal(t, "5", resp.Deviation.AverageHoursPerVisit.String())
	assert.Equal(t, domain.DeviationNone, resp.Deviation.Classification)
	assert.Equal(t, 3, resp.Progress.CompletedVisits)
	assert.InDelta(t, 12.5, resp.Progress.VisitProgressPct, 0.001)
}

func TestDeviationService_ExcludesEditedVisit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.mustProject(t, "Park", testutil.WithVisitDuration("5"))

	env.mustVisit(t, p.ID, testutil.WithTimes("08:00", "12:00"))
	env.mustVisit(t, p.ID, testutil.WithTimes("08:00", "13:00"))
	edited := env.mustVisit(t, p.ID, testutil.WithTimes("08:00", "18:00"))

	resp, err := env.deviation.ForProject(ctx, app.DeviationRequest{ProjectID: p.ID, ExcludeVisitID: edited.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Deviation.VisitCount)
	assert.Equal(t, "4.5", resp.Deviation.AverageHoursPerVisit.String())
}

func TestDeviationService_NoHistory(t *testing.T) {
	env := newTestEnv(t)
	p := env.mustProject(t, "Park")

	resp, err := env.deviation.ForProject(context.Background(), app.DeviationRequest{ProjectID: p.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.DeviationNoHistory, resp.Deviation.Classification)
}

func TestDeviationService_UnknownProject(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.deviation.ForProject(context.Background(), app.DeviationRequest{ProjectID: "ghost"})
	require.Error(t, err)

	var reportErr *app.ReportError
	require.True(t, errors.As(err, &reportErr))
	assert.Equal(t, app.ReportErrUnknownProject, reportErr.Code)
	assert.Contains(t, err.Error(), "UNKNOWN_PROJECT")
}

func TestDeviationService_CorruptProjectRow(t *testing.T) {
	env := newTestEnv(t)
	p := env.mustProject(t, "Park")
	_, err := env.db.Exec(`UPDATE projects SET visit_duration = '-3' WHERE id = ?`, p.ID)
	require.NoError(t, err)

	_, err = env.deviation.ForProject(context.Background(), app.DeviationRequest{ProjectID: p.ID})
	require.Error(t, err)

	var reportErr *app.ReportError
	require.True(t, errors.As(err, &reportErr))
	assert.Equal(t, app.ReportErrDataIntegrity, reportErr.Code)
	assert.Contains(t, err.Error(), "visit duration")
}
