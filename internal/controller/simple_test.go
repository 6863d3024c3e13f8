package controller

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "dupesweep.dev/pkg/dupesweep/internal/model"
)

func newBufferedUI() (*SimpleUI, *bytes.Buffer) {
	cmd := &cobra.Command{}
	out := &bytes.Buffer{}
	cmd.SetOut(out)

	return NewSimpleUI(cmd), out
}

func TestNewSimpleUITo_WritesToGivenStream(t *testing.T) {
	out := &bytes.Buffer{}
	ui := NewSimpleUITo(out)

	ui.Infof("scanning %d roots", 2)

	assert.Equal(t, "scanning 2 roots\n", out.String())
}

func TestSimpleUI_ScanProgress(t *testing.T) {
	ui, out := newBufferedUI()

	ui.StartScan(m.AlgorithmSHA256, 10)
	ui.ScanProgress(5, 10, 30*time.Second)
	ui.FinishScan()

	rendered := out.String()
	assert.Contains(t, rendered, "sha256")
	assert.Contains(t, rendered, "5/10")
	assert.Contains(t, rendered, "(50%)")
	assert.Contains(t, rendered, "Elapsed: 0h,00m,30s")
	assert.Contains(t, rendered, "Estimated Total: 0h,01m,00s")
}

func TestSimpleUI_WarnfPrefixesWarning(t *testing.T) {
	ui, out := newBufferedUI()

	ui.Warnf("directory not found: %s", "/gone")

	assert.Equal(t, "warning: directory not found: /gone\n", out.String())
}

func TestSimpleUI_DisplayGroups(t *testing.T) {
	ui, out := newBufferedUI()

	ui.DisplayGroups([]m.DuplicateGroup{
		{Fingerprint: "abcd1234efgh5678", Members: []m.Path{"/a/one.txt", "/b/one.txt"}},
	})

	rendered := out.String()
	assert.Contains(t, rendered, "abcd1234efgh")
	assert.Contains(t, rendered, "/a/one.txt")
	assert.Contains(t, rendered, "/b/one.txt")
	assert.Contains(t, rendered, "Groups 1")
	assert.Contains(t, rendered, "Files 2")
}

func TestSimpleUI_DisplayGroupsEmpty(t *testing.T) {
	ui, out := newBufferedUI()

	ui.DisplayGroups(nil)

	assert.Equal(t, "No duplicates found.\n", out.String())
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	ui, out := newBufferedUI()

	ui.DisplaySummary(m.SessionReport{
		FilesScanned:       12,
		FilesFingerprinted: 11,
		FingerprintErrors:  1,
		DuplicateGroups:    3,
		FilesRemoved:       4,
		Skipped:            2,
	}, "/tmp/log_20250101120000.txt")

	rendered := out.String()
	assert.Contains(t, rendered, "Files scanned")
	assert.Contains(t, rendered, "12")
	assert.Contains(t, rendered, "4 Dup Files processed.")
	assert.Contains(t, rendered, "Done. Check /tmp/log_20250101120000.txt for details.")
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "0h,00m,00s"},
		{59 * time.Second, "0h,00m,59s"},
		{61 * time.Second, "0h,01m,01s"},
		{3*time.Hour + 4*time.Minute + 5*time.Second, "3h,04m,05s"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, formatDuration(tc.in))
	}
}

func TestShortFingerprint(t *testing.T) {
	require.Equal(t, "abcd", shortFingerprint("abcd"))
	require.Equal(t, "0123456789ab", shortFingerprint("0123456789abcdef"))
}
