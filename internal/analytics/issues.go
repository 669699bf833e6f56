package analytics

// IssueCode identifies a recoverable data-quality problem found while
// normalizing or aggregating visits.
type IssueCode string

const (
	IssueArrivalMalformed   IssueCode = "arrival_malformed"
	IssueEndMalformed       IssueCode = "end_malformed"
	IssueBreakMalformed     IssueCode = "break_malformed"
	IssueDepartureMalformed IssueCode = "departure_malformed"
	IssueInvertedRange      IssueCode = "inverted_range"
	IssueBreakExceedsSpan   IssueCode = "break_exceeds_span"
	IssueMissingPersonnel   IssueCode = "missing_personnel"
	IssueUnknownProject     IssueCode = "unknown_project"
)

// invalidating reports whether the issue zeroes the entry's hours.
func (c IssueCode) invalidating() bool {
	switch c {
	case IssueArrivalMalformed, IssueEndMalformed, IssueBreakMalformed, IssueInvertedRange:
		return true
	default:
		return false
	}
}

// Warning ties an issue to the visit it was found on.
type Warning struct {
	VisitID string
	Code    IssueCode
	Detail  string
}

func (w Warning) String() string {
	if w.Detail == "" {
		return w.VisitID + ": " + string(w.Code)
	}
	return w.VisitID + ": " + string(w.Code) + " (" + w.Detail + ")"
}
