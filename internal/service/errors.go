package service

import "errors"

var (
	// ErrNoPersonnel rejects a visit saved without anyone on the crew.
	ErrNoPersonnel = errors.New("visit needs at least one person")
	// ErrUnknownProject rejects a linked visit whose project does not exist.
	ErrUnknownProject = errors.New("unknown project")
	// ErrUnknownTeam rejects a project assigned to a team that does not exist.
	ErrUnknownTeam = errors.New("unknown team")
	// ErrInvalidVisit wraps kind, date and rate problems found on save.
	ErrInvalidVisit = errors.New("invalid visit")
	// ErrInvalidSettings wraps out-of-range settings values.
	ErrInvalidSettings = errors.New("invalid settings")
)
