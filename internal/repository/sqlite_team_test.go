package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/fieldbook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamRepo_CreateGetList(t *testing.T) {
	repo := NewSQLiteTeamRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	south := testutil.NewTestTeam("South")
	north := testutil.NewTestTeam("north")
	require.NoError(t, repo.Create(ctx, south))
	require.NoError(t, repo.Create(ctx, north))

	got, err := repo.GetByID(ctx, south.ID)
	require.NoError(t, err)
	assert.Equal(t, "South", got.Name)

	teams, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "north", teams[0].Name, "listing is case-insensitive by name")
}

func TestTeamRepo_NameIsUnique(t *testing.T) {
	repo := NewSQLiteTeamRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestTeam("North")))
	assert.Error(t, repo.Create(ctx, testutil.NewTestTeam("NORTH")))
}

func TestTeamRepo_RenameAndDelete(t *testing.T) {
	repo := NewSQLiteTeamRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	team := testutil.NewTestTeam("North")
	require.NoError(t, repo.Create(ctx, team))
	require.NoError(t, repo.Rename(ctx, team.ID, "Nord"))

	got, err := repo.GetByID(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nord", got.Name)

	require.NoError(t, repo.Delete(ctx, team.ID))
	_, err = repo.GetByID(ctx, team.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTeamRepo_MissingRowsReportNotFound(t *testing.T) {
	repo := NewSQLiteTeamRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	assert.ErrorIs(t, repo.Rename(ctx, "nope", "x"), ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "nope"), ErrNotFound)
}
