// Package store holds the in-memory, cross-referential data layer:
// the identity directory and session, the section registry with its
// course-section link table and schedules, the course catalog, and the
// per-user calendar, quiz and profile collections. Stores reference
// each other through narrow injected interfaces so each can be tested
// with a stub identity.
package store

// Outcome reports what a mutating operation did. Missing records are
// never errors at this layer; callers that need to surface them map
// OutcomeNotFound to their own failure type.
type Outcome int

const (
	// OutcomeApplied means the mutation changed state.
	OutcomeApplied Outcome = iota
	// OutcomeUnchanged means the operation was a deliberate no-op,
	// e.g. re-linking an existing pair or removing an absent schedule.
	OutcomeUnchanged
	// OutcomeNotFound means the target record does not exist.
	OutcomeNotFound
)

// String implements fmt.Stringer for logs and test output.
func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}
