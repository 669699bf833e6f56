package analytics

import (
	"testing"

	"github.com/alexanderramin/fieldbook/internal/domain"
	"github.com/alexanderramin/fieldbook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"08:00", 480},
		{"8:05", 485},
		{" 16:30 ", 990},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		require.NoError(t, err, "input=%q", tc.in)
		assert.Equal(t, tc.want, got, "input=%q", tc.in)
	}
}

func TestParseClock_Rejects(t *testing.T) {
	for _, in := range []string{"", "24:00", "08:5", "8h00", "12:60", "abc"} {
		_, err := ParseClock(in)
		assert.Error(t, err, "input=%q", in)
	}
}

func TestBreakHours_Formats(t *testing.T) {
	cases := map[string]string{
		"":      "0",
		"1":     "1",
		"0.75":  "0.75",
		"0,5":   "0.5",
		"01:30": "1.5",
		"00:45": "0.75",
	}
	for in, want := range cases {
		got, err := BreakHours(in)
		require.NoError(t, err, "input=%q", in)
		assertDecimal(t, want, got, "input=%q", in)
	}
}

func TestBreakHours_RejectsNegativeAndGarbage(t *testing.T) {
	_, err := BreakHours("-1")
	assert.Error(t, err)
	_, err = BreakHours("lunch")
	assert.Error(t, err)
}

func TestNormalize_StandardDay(t *testing.T) {
	entry := Normalize(domain.TimeTracking{ArrivalTime: "08:00", EndTime: "16:00", BreakDuration: "1.0"})
	assert.True(t, entry.Valid)
	assert.Empty(t, entry.Issues)
	assertDecimal(t, "7", entry.TotalHours)
}

func TestNormalize_ClockBreak(t *testing.T) {
	entry := Normalize(domain.TimeTracking{ArrivalTime: "08:00", EndTime: "16:00", BreakDuration: "00:45"})
	assert.True(t, entry.Valid)
	assertDecimal(t, "7.25", entry.TotalHours)
}

func TestNormalize_InvertedRange(t *testing.T) {
	entry := Normalize(domain.TimeTracking{ArrivalTime: "16:00", EndTime: "08:00"})
	assert.False(t, entry.Valid)
	assert.True(t, entry.TotalHours.IsZero())
	assert.Equal(t, []IssueCode{IssueInvertedRange}, entry.Issues)
}

func TestNormalize_MalformedValuesZeroTheEntry(t *testing.T) {
	cases := []struct {
		tt   domain.TimeTracking
		code IssueCode
	}{
		{domain.TimeTracking{ArrivalTime: "8h", EndTime: "16:00"}, IssueArrivalMalformed},
		{domain.TimeTracking{ArrivalTime: "08:00", EndTime: ""}, IssueEndMalformed},
		{domain.TimeTracking{ArrivalTime: "08:00", EndTime: "16:00", BreakDuration: "soon"}, IssueBreakMalformed},
		{domain.TimeTracking{ArrivalTime: "08:00", EndTime: "16:00", BreakDuration: "-0.5"}, IssueBreakMalformed},
	}
	for _, tc := range cases {
		entry := Normalize(tc.tt)
		assert.False(t, entry.Valid, "code=%s", tc.code)
		assert.True(t, entry.TotalHours.IsZero(), "code=%s", tc.code)
		assert.Contains(t, entry.Issues, tc.code)
	}
}

func TestNormalize_BreakLongerThanSpanClampsToZero(t *testing.T) {
	entry := Normalize(domain.TimeTracking{ArrivalTime: "08:00", EndTime: "09:00", BreakDuration: "2"})
	assert.True(t, entry.Valid, "clamping is not a data-entry error")
	assert.True(t, entry.TotalHours.IsZero())
	assert.Equal(t, []IssueCode{IssueBreakExceedsSpan}, entry.Issues)
}

func TestNormalize_DepartureDoesNotAffectHours(t *testing.T) {
	base := domain.TimeTracking{ArrivalTime: "08:00", EndTime: "16:00", BreakDuration: "1"}

	early := base
	early.DepartureTime = "05:00"
	late := base
	late.DepartureTime = "07:59"

	assertDecimal(t, "7", Normalize(early).TotalHours)
	assertDecimal(t, "7", Normalize(late).TotalHours)

	bad := base
	bad.DepartureTime = "later"
	entry := Normalize(bad)
	assert.True(t, entry.Valid)
	assertDecimal(t, "7", entry.TotalHours)
	assert.Equal(t, []IssueCode{IssueDepartureMalformed}, entry.Issues)
}

func TestVisit_TeamHoursUsesPersonnelMultiplier(t *testing.T) {
	rec := testutil.NewTestVisit("p1",
		testutil.WithTimes("08:00", "16:00"),
		testutil.WithBreak("1.0"),
		testutil.WithPersonnel("Ana", "Ben"),
	)
	visits := normalized(rec)
	require.Len(t, visits, 1)
	assertDecimal(t, "7", visits[0].TotalHours)
	assertDecimal(t, "14", visits[0].TeamHours())
}

func TestNormalizeVisits_KeepsInvalidAndWarns(t *testing.T) {
	good := testutil.NewTestVisit("p1")
	inverted := testutil.NewTestVisit("p1", testutil.WithTimes("16:00", "08:00"))
	lonely := testutil.NewTestVisit("p1", testutil.WithPersonnel())

	visits, warnings := NormalizeVisits([]*domain.VisitRecord{good, inverted, lonely})
	require.Len(t, visits, 3, "invalid visits must not be dropped")
	assert.True(t, visits[0].Valid)
	assert.False(t, visits[1].Valid)
	assert.True(t, visits[1].TotalHours.IsZero())

	require.Len(t, warnings, 2)
	assert.Equal(t, Warning{VisitID: inverted.ID, Code: IssueInvertedRange}, warnings[0])
	assert.Equal(t, lonely.ID, warnings[1].VisitID)
	assert.Equal(t, IssueMissingPersonnel, warnings[1].Code)
	assertDecimal(t, "4", visits[2].TeamHours(), "missing personnel counts as one person")
}


func TestNormalizeVisits_CleansCrewBeforeCounting(t *testing.T) {
	rec := testutil.NewTestVisit("p1", testutil.WithPersonnel("Ann", "ann", " "))
	visits, warnings := NormalizeVisits([]*domain.VisitRecord{rec})
	require.Len(t, visits, 1)
	assert.Empty(t, warnings)
	assert.Equal(t, []string{"Ann"}, visits[0].Personnel)
	assert.Equal(t, 1, visits[0].Crew())
	assertDecimal(t, "4", visits[0].TeamHours())
}

func TestNormalizeVisits_BlankNamesCountAsMissing(t *testing.T) {
	rec := testutil.NewTestVisit("p1", testutil.WithPersonnel(" ", ""))
	visits, warnings := NormalizeVisits([]*domain.VisitRecord{rec})
	require.Len(t, warnings, 1)
	assert.Equal(t, IssueMissingPersonnel, warnings[0].Code)
	assert.Equal(t, 1, visits[0].Crew())
}
