package model

import "strings"

// DuplicateGroup pairs a content fingerprint with the files sharing it.
// Member order is discovery order; it is the tie-break for "keep the first"
// in automatic mode and is otherwise not significant.
type DuplicateGroup struct {
	Fingerprint Fingerprint
	Members     []Path
}

// JoinedMembers renders the full membership as a comma-joined list for the
// audit log.
func (g DuplicateGroup) JoinedMembers() string {
	parts := make([]string, 0, len(g.Members))
	for _, member := range g.Members {
		parts = append(parts, string(member))
	}

	return strings.Join(parts, ", ")
}

// ScopePartition splits a group's membership into members that live inside at
// least one authorized deletion root (eligible) and everything else. Both
// slices preserve group order.
type ScopePartition struct {
	Eligible   []Path
	Ineligible []Path
}
