// Package domain holds the duplicate-grouping and deletion-decision logic.
package domain

import (
	"sort"

	m "dupesweep.dev/pkg/dupesweep/internal/model"
)

// FingerprintIndex accumulates file paths keyed by content fingerprint during
// the scan phase. It is owned exclusively by the workflow; concurrent writers
// must serialize their Add calls.
type FingerprintIndex struct {
	groups map[m.Fingerprint][]m.Path
}

// NewFingerprintIndex returns an empty index.
func NewFingerprintIndex() *FingerprintIndex {
	return &FingerprintIndex{groups: make(map[m.Fingerprint][]m.Path)}
}

// Add appends path to the group keyed by fingerprint, creating the group if
// absent. Insertion order within a group is preserved. Paths with an empty
// fingerprint are dropped: a failed fingerprint must never land under an
// empty key.
func (idx *FingerprintIndex) Add(path m.Path, fingerprint m.Fingerprint) {
	if fingerprint == "" {
		return
	}

	idx.groups[fingerprint] = append(idx.groups[fingerprint], path)
}

// Len reports the number of indexed paths.
func (idx *FingerprintIndex) Len() int {
	total := 0
	for _, members := range idx.groups {
		total += len(members)
	}

	return total
}

// Groups returns every group with at least two members, sorted by fingerprint
// so that runs over the same tree produce the same audit log order.
func (idx *FingerprintIndex) Groups() []m.DuplicateGroup {
	groups := make([]m.DuplicateGroup, 0, len(idx.groups))

	for fingerprint, members := range idx.groups {
		if len(members) < 2 {
			continue
		}

		groups = append(groups, m.DuplicateGroup{Fingerprint: fingerprint, Members: members})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Fingerprint < groups[j].Fingerprint
	})

	return groups
}
