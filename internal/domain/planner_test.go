package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	m "dupesweep.dev/pkg/dupesweep/internal/model"
)

// stubPrompter answers every SelectKeep call with a fixed choice.
type stubPrompter struct {
	choice     int
	called     bool
	candidates []m.Path
}

func (s *stubPrompter) SelectKeep(_ m.Fingerprint, candidates []m.Path) int {
	s.called = true
	s.candidates = candidates

	return s.choice
}

func actions(decisions []m.Decision) map[m.Path]m.Action {
	out := make(map[m.Path]m.Action, len(decisions))
	for _, d := range decisions {
		out[d.Path] = d.Action
	}

	return out
}

func TestPlan_AutomaticStrictSubsetDeletesAllEligible(t *testing.T) {
	// One copy survives outside the authorized scope, so every authorized
	// copy is deletable and no keeper is elected.
	group := m.DuplicateGroup{
		Fingerprint: "abcd",
		Members:     []m.Path{"/keep/A.txt", "/del/B.txt"},
	}
	partition := m.ScopePartition{
		Eligible:   []m.Path{"/del/B.txt"},
		Ineligible: []m.Path{"/keep/A.txt"},
	}

	decisions := Plan(group, partition, m.PolicyAutomatic, nil)

	require.Len(t, decisions, 1)
	require.Equal(t, m.Delete, decisions[0].Action)
	require.Equal(t, m.Path("/del/B.txt"), decisions[0].Path)
}

func TestPlan_AutomaticWholeGroupKeepsFirst(t *testing.T) {
	group := m.DuplicateGroup{
		Fingerprint: "abcd",
		Members:     []m.Path{"/del/A.txt", "/del/B.txt", "/del/C.txt"},
	}
	partition := m.ScopePartition{Eligible: group.Members}

	decisions := Plan(group, partition, m.PolicyAutomatic, nil)

	require.Len(t, decisions, 3)
	require.Equal(t, m.Keep, decisions[0].Action)
	require.Equal(t, m.Path("/del/A.txt"), decisions[0].Path)
	require.Equal(t, m.Delete, decisions[1].Action)
	require.Equal(t, m.Delete, decisions[2].Action)
}

func TestPlan_ManualSelectionKeepsChosen(t *testing.T) {
	group := m.DuplicateGroup{
		Fingerprint: "abcd",
		Members:     []m.Path{"/del/A.txt", "/del/B.txt", "/del/C.txt"},
	}
	partition := m.ScopePartition{Eligible: group.Members}
	prompt := &stubPrompter{choice: 2}

	decisions := Plan(group, partition, m.PolicyManual, prompt)

	require.True(t, prompt.called)
	require.Equal(t, partition.Eligible, prompt.candidates)

	require.Equal(t, m.Keep, decisions[0].Action)
	require.Equal(t, m.Path("/del/B.txt"), decisions[0].Path)

	got := actions(decisions)
	require.Equal(t, m.Delete, got["/del/A.txt"])
	require.Equal(t, m.Delete, got["/del/C.txt"])
}

func TestPlan_NoEligibleMembersSkipsWholeGroup(t *testing.T) {
	group := m.DuplicateGroup{
		Fingerprint: "abcd",
		Members:     []m.Path{"/keep/A.txt", "/keep/B.txt"},
	}
	partition := m.ScopePartition{Ineligible: group.Members}

	decisions := Plan(group, partition, m.PolicyAutomatic, nil)

	require.Len(t, decisions, 2)
	for _, d := range decisions {
		require.Equal(t, m.Skip, d.Action)
	}
}

func TestPlan_ManualAbstainSkipsEligible(t *testing.T) {
	group := m.DuplicateGroup{
		Fingerprint: "abcd",
		Members:     []m.Path{"/del/A.txt", "/del/B.txt", "/keep/C.txt"},
	}
	partition := m.ScopePartition{
		Eligible:   []m.Path{"/del/A.txt", "/del/B.txt"},
		Ineligible: []m.Path{"/keep/C.txt"},
	}
	prompt := &stubPrompter{choice: 0}

	decisions := Plan(group, partition, m.PolicyManual, prompt)

	require.Len(t, decisions, 2)
	for _, d := range decisions {
		require.Equal(t, m.Skip, d.Action)
	}
}

func TestPlan_ManualOutOfRangeIsAbstain(t *testing.T) {
	group := m.DuplicateGroup{
		Fingerprint: "abcd",
		Members:     []m.Path{"/del/A.txt", "/del/B.txt"},
	}
	partition := m.ScopePartition{Eligible: group.Members}
	prompt := &stubPrompter{choice: 7}

	decisions := Plan(group, partition, m.PolicyManual, prompt)

	for _, d := range decisions {
		require.Equal(t, m.Skip, d.Action)
	}
}

func TestPlan_DecisionsCarryGroupForAudit(t *testing.T) {
	group := m.DuplicateGroup{
		Fingerprint: "abcd",
		Members:     []m.Path{"/del/A.txt", "/del/B.txt"},
	}
	partition := m.ScopePartition{Eligible: group.Members}

	decisions := Plan(group, partition, m.PolicyAutomatic, nil)

	for _, d := range decisions {
		require.Equal(t, m.Fingerprint("abcd"), d.Fingerprint)
		require.Equal(t, group.Members, d.Group)
	}
}

func TestPlan_AtMostOneKeepPerGroup(t *testing.T) {
	cases := []struct {
		name      string
		partition m.ScopePartition
		policy    m.Policy
		prompt    *stubPrompter
	}{
		{
			name:      "automatic whole group",
			partition: m.ScopePartition{Eligible: []m.Path{"/del/A", "/del/B", "/del/C"}},
			policy:    m.PolicyAutomatic,
		},
		{
			name: "automatic strict subset",
			partition: m.ScopePartition{
				Eligible:   []m.Path{"/del/A", "/del/B"},
				Ineligible: []m.Path{"/keep/C"},
			},
			policy: m.PolicyAutomatic,
		},
		{
			name:      "manual valid choice",
			partition: m.ScopePartition{Eligible: []m.Path{"/del/A", "/del/B", "/del/C"}},
			policy:    m.PolicyManual,
			prompt:    &stubPrompter{choice: 3},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			members := append(append([]m.Path{}, tc.partition.Eligible...), tc.partition.Ineligible...)
			group := m.DuplicateGroup{Fingerprint: "abcd", Members: members}

			var prompt stubPrompter
			if tc.prompt != nil {
				prompt = *tc.prompt
			}

			decisions := Plan(group, tc.partition, tc.policy, &prompt)

			keeps := 0
			for _, d := range decisions {
				if d.Action == m.Keep {
					keeps++
				}
			}

			require.LessOrEqual(t, keeps, 1)
		})
	}
}
