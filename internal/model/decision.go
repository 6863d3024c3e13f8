package model

// Action is the planned or applied outcome for a single group member.
type Action int

const (
	// Keep marks the surviving copy of a group.
	Keep Action = iota
	// Delete marks a copy for removal (or simulated removal under dry run).
	Delete
	// Skip marks a copy left untouched because no deletion was authorized
	// or the operator abstained.
	Skip
	// Failed marks a copy whose removal was attempted and failed.
	Failed
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case Keep:
		return "keep"
	case Delete:
		return "delete"
	case Skip:
		return "skip"
	case Failed:
		return "failed"
	}

	return "unknown"
}

// Policy selects how the planner chooses the copy to keep. It is fixed for
// the whole run.
type Policy int

const (
	// PolicyAutomatic keeps the first-discovered copy mechanically.
	PolicyAutomatic Policy = iota
	// PolicyManual asks the operator which copy to keep per group.
	PolicyManual
)

// Decision is one outcome for one group member. Decisions are produced by the
// planner (or derived from a removal failure), never mutated afterwards, and
// always carry the owning group's fingerprint and full membership for audit.
type Decision struct {
	Action      Action
	Path        Path
	Fingerprint Fingerprint
	Group       []Path

	// Simulated is set on Delete decisions recorded under dry run.
	Simulated bool
	// Cause holds the removal error for Failed decisions.
	Cause error
}

// JoinedGroup renders the decision's full group membership for the audit log.
func (d Decision) JoinedGroup() string {
	return DuplicateGroup{Members: d.Group}.JoinedMembers()
}
