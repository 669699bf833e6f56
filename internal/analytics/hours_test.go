package analytics

import (
	"testing"
	"time"

	"github.com/alexanderramin/fieldbook/internal/domain"
	"github.com/alexanderramin/fieldbook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hoursFixture struct {
	north, south *domain.Team
	park, quay   *domain.Project
	ix           Index
}

func newHoursFixture() hoursFixture {
	north := testutil.NewTestTeam("North")
	south := testutil.NewTestTeam("South")
	park := testutil.NewTestProject("Park", testutil.WithTeam(north.ID))
	quay := testutil.NewTestProject("Quay", testutil.WithTeam(south.ID))
	return hoursFixture{
		north: north, south: south,
		park: park, quay: quay,
		ix: NewIndex([]*domain.Project{park, quay}, []*domain.Team{north, south}),
	}
}

func TestGroupHours_PersonnelAttribution(t *testing.T) {
	f := newHoursFixture()
	v := testutil.NewTestVisit(f.park.ID, testutil.WithPersonnel("A", "B", "C"))
	visits := normalized(v)

	people := GroupHours(visits, ByPersonnel())
	require.Len(t, people, 3)
	for i, name := range []string{"A", "B", "C"} {
		assert.Equal(t, name, people[i].Key)
		assertDecimal(t, "4", people[i].Hours, "person=%s", name)
	}

	teams := GroupHours(visits, ByTeam(f.ix))
	require.Len(t, teams, 1)
	assert.Equal(t, f.north.ID, teams[0].Key)
	assertDecimal(t, "4", teams[0].Hours)
	assertDecimal(t, "12", teams[0].TeamHours)
}

func TestGroupHours_PersonnelDuplicatesCreditedOnce(t *testing.T) {
	f := newHoursFixture()
	v := testutil.NewTestVisit(f.park.ID, testutil.WithPersonnel("Ana", "ana ", "Ben"))
	people := GroupHours(normalized(v), ByPersonnel())
	require.Len(t, people, 2)
	assert.Equal(t, "Ana", people[0].Key)
	assert.Equal(t, 1, people[0].VisitCount)
}

func TestGroupHours_FirstSeenOrder(t *testing.T) {
	f := newHoursFixture()
	visits := normalized(
		testutil.NewTestVisit(f.quay.ID),
		testutil.NewTestVisit(f.park.ID),
		testutil.NewTestVisit(f.quay.ID),
	)
	groups := GroupHours(visits, ByProject(f.ix))
	require.Len(t, groups, 2)
	assert.Equal(t, f.quay.ID, groups[0].Key)
	assert.Equal(t, 2, groups[0].VisitCount)
	assertDecimal(t, "8", groups[0].Hours)
	assert.Equal(t, f.park.ID, groups[1].Key)
}

func TestGroupHours_Idempotent(t *testing.T) {
	f := newHoursFixture()
	visits := normalized(
		testutil.NewTestVisit(f.park.ID, testutil.WithPersonnel("A", "B")),
		testutil.NewTestVisit(f.quay.ID, testutil.WithBreak("0.5")),
		testutil.NewTestVisit("", testutil.WithPersonnel("C")),
		testutil.NewTestVisit(f.park.ID, testutil.WithTimes("13:00", "17:45")),
	)
	for _, keys := range []KeyFunc{ByProject(f.ix), ByTeam(f.ix), ByPersonnel(), ByPeriod(domain.PeriodMonth)} {
		first := GroupHours(visits, keys)
		second := GroupHours(visits, keys)
		assert.Equal(t, first, second)
	}
}

func TestGroupHours_BlankAndDanglingExcludedFromProjectViews(t *testing.T) {
	f := newHoursFixture()
	blank := testutil.NewTestVisit("")
	dangling := testutil.NewTestVisit("gone")
	linked := testutil.NewTestVisit(f.park.ID)
	visits := normalized(blank, dangling, linked)

	projects := GroupHours(visits, ByProject(f.ix))
	require.Len(t, projects, 1)
	assert.Equal(t, f.park.ID, projects[0].Key)

	teams := GroupHours(visits, ByTeam(f.ix))
	require.Len(t, teams, 1)

	total := TotalHours(visits)
	assert.Equal(t, 3, total.VisitCount)
	assertDecimal(t, "12", total.Hours)

	warnings := f.ix.CheckReferences(visits)
	require.Len(t, warnings, 1)
	assert.Equal(t, dangling.ID, warnings[0].VisitID)
	assert.Equal(t, IssueUnknownProject, warnings[0].Code)
	assert.Equal(t, "gone", warnings[0].Detail)
}

func TestTotalHours_InvalidEntriesCountedWithZeroHours(t *testing.T) {
	visits := normalized(
		testutil.NewTestVisit("p1"),
		testutil.NewTestVisit("p1", testutil.WithTimes("12:00", "08:00")),
	)
	total := TotalHours(visits)
	assert.Equal(t, 2, total.VisitCount)
	assertDecimal(t, "4", total.Hours)
}

func TestSplitByKind(t *testing.T) {
	a := testutil.NewTestVisit("p1")
	b := testutil.NewTestVisit("")
	c := testutil.NewTestVisit("p2")
	linked, blank := SplitByKind(normalized(a, b, c))
	require.Len(t, linked, 2)
	require.Len(t, blank, 1)
	assert.Equal(t, b.ID, blank[0].Record.ID)
}

func TestIndexNamesFallBackToID(t *testing.T) {
	f := newHoursFixture()
	assert.Equal(t, "North", f.ix.TeamName(f.north.ID))
	assert.Equal(t, "unknown", f.ix.TeamName("unknown"))
	assert.Equal(t, "Park", f.ix.ProjectName(f.park.ID))
	assert.Equal(t, "x", f.ix.ProjectName("x"))

	unnamed := testutil.NewTestTeam("")
	ix := NewIndex(nil, []*domain.Team{unnamed})
	assert.Equal(t, unnamed.ID, ix.TeamName(unnamed.ID))
}

func TestRankGroups_StableOnTies(t *testing.T) {
	f := newHoursFixture()
	visits := normalized(
		testutil.NewTestVisit(f.quay.ID, testutil.WithPersonnel("Zed")),
		testutil.NewTestVisit(f.park.ID, testutil.WithPersonnel("Ana")),
		testutil.NewTestVisit(f.park.ID, testutil.WithPersonnel("Bob"), testutil.WithTimes("08:00", "16:00")),
	)
	people := GroupHours(visits, ByPersonnel())
	RankGroups(people, groupHours)
	require.Len(t, people, 3)
	assert.Equal(t, []string{"Bob", "Zed", "Ana"}, []string{people[0].Key, people[1].Key, people[2].Key})
}

func TestRankGroups_ByTeamHours(t *testing.T) {
	f := newHoursFixture()
	visits := normalized(
		testutil.NewTestVisit(f.park.ID, testutil.WithPersonnel("Ana"), testutil.WithTimes("08:00", "14:00")),
		testutil.NewTestVisit(f.quay.ID, testutil.WithPersonnel("Ben", "Cleo")),
	)
	teams := GroupHours(visits, ByTeam(f.ix))
	RankGroups(teams, groupTeamHours)
	require.Len(t, teams, 2)
	assert.Equal(t, f.south.ID, teams[0].Key, "8 team hours outrank 6")
}

func TestPeriodHours_Chronological(t *testing.T) {
	visits := normalized(
		testutil.NewTestVisit("p1", testutil.WithDate(time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC))),
		testutil.NewTestVisit("p1", testutil.WithDate(time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)), testutil.WithPersonnel("Ana", "Ben")),
		testutil.NewTestVisit("p1", testutil.WithDate(time.Date(2025, 7, 9, 0, 0, 0, 0, time.UTC)), testutil.WithInvoiced()),
	)
	months := PeriodHours(visits, domain.PeriodMonth)
	require.Len(t, months, 2)
	assert.Equal(t, "2025-05", months[0].Key)
	assertDecimal(t, "8", months[0].TeamHours)
	assert.Equal(t, "2025-07", months[1].Key)
	assert.Equal(t, 2, months[1].VisitCount)
	assert.Equal(t, 1, months[1].InvoicedCount)
}
