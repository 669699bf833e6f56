package domain

type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectArchived ProjectStatus = "archived"
)

// VisitKind discriminates visits tied to a contracted project from blank
// (unlinked) visits.
type VisitKind string

const (
	VisitLinked VisitKind = "linked"
	VisitBlank  VisitKind = "blank"
)

type DeviationClass string

const (
	DeviationNoHistory       DeviationClass = "no_history"
	DeviationNone            DeviationClass = "no_deviation"
	DeviationWithinTolerance DeviationClass = "within_tolerance"
	DeviationAhead           DeviationClass = "ahead"
	DeviationBehind          DeviationClass = "behind"
)

type PeriodKind string

const (
	PeriodWeek  PeriodKind = "week"
	PeriodMonth PeriodKind = "month"
	PeriodYear  PeriodKind = "year"
)

// ValidPeriodKinds is the canonical set of accepted period strings.
var ValidPeriodKinds = map[string]bool{
	"week": true, "month": true, "year": true,
}

type Dimension string

const (
	DimensionTeam      Dimension = "team"
	DimensionPersonnel Dimension = "personnel"
	DimensionProject   Dimension = "project"
)
