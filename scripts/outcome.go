package scripts

import "go.starlark.net/starlark"

type OutcomeKind int

const (
	// OutcomeNone: executed but nothing to display. Distinct from an
	// explicit None value.
	OutcomeNone OutcomeKind = iota
	OutcomeValue
	OutcomeError
	OutcomeTimeout
)

// Outcome is the tagged result of executing one statement. Failures
// are ordinary outcomes, never propagated as Go errors, so one broken
// statement cannot abort the rest of a pass.
type Outcome struct {
	Kind  OutcomeKind
	Value starlark.Value
	Err   string
}
