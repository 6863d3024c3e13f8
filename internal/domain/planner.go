package domain

import (
	"dupesweep.dev/pkg/dupesweep/internal/adapter"
	m "dupesweep.dev/pkg/dupesweep/internal/model"
)

// Plan computes the deletion decisions for one duplicate group. The Keep
// decision, when one exists, is always first in the returned slice so the
// audit log reads top-to-bottom per group.
//
// The hard invariant enforced here: content must never become entirely
// unrecoverable. Manual mode delegates that judgment to the operator per
// group; automatic mode enforces it mechanically by only electing a keeper
// when every copy is inside the authorized scope.
func Plan(group m.DuplicateGroup, partition m.ScopePartition, policy m.Policy, prompt adapter.KeepPrompter) []m.Decision {
	// No authorized directory contains a copy; nothing is deletable.
	if len(partition.Eligible) == 0 {
		return skipAll(group, group.Members)
	}

	if policy == m.PolicyManual {
		return planManual(group, partition, prompt)
	}

	return planAutomatic(group, partition)
}

func planManual(group m.DuplicateGroup, partition m.ScopePartition, prompt adapter.KeepPrompter) []m.Decision {
	keep := prompt.SelectKeep(group.Fingerprint, partition.Eligible)
	if keep < 1 || keep > len(partition.Eligible) {
		// Abstained (0) or out of range: leave the whole eligible set alone.
		return skipAll(group, partition.Eligible)
	}

	decisions := []m.Decision{decision(m.Keep, partition.Eligible[keep-1], group)}

	for i, member := range partition.Eligible {
		if i == keep-1 {
			continue
		}

		decisions = append(decisions, decision(m.Delete, member, group))
	}

	return decisions
}

func planAutomatic(group m.DuplicateGroup, partition m.ScopePartition) []m.Decision {
	deletable := partition.Eligible

	var decisions []m.Decision

	if len(partition.Ineligible) == 0 {
		// Every copy lives inside the authorized scope, so one of them must
		// survive: keep the first by discovery order.
		decisions = append(decisions, decision(m.Keep, deletable[0], group))
		deletable = deletable[1:]
	}

	// Otherwise an untouched copy outside the authorized scope already
	// guarantees survival and every eligible member is deletable.
	for _, member := range deletable {
		decisions = append(decisions, decision(m.Delete, member, group))
	}

	return decisions
}

func skipAll(group m.DuplicateGroup, members []m.Path) []m.Decision {
	decisions := make([]m.Decision, 0, len(members))
	for _, member := range members {
		decisions = append(decisions, decision(m.Skip, member, group))
	}

	return decisions
}

func decision(action m.Action, path m.Path, group m.DuplicateGroup) m.Decision {
	return m.Decision{
		Action:      action,
		Path:        path,
		Fingerprint: group.Fingerprint,
		Group:       group.Members,
	}
}
