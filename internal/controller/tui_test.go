package controller

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "dupesweep.dev/pkg/dupesweep/internal/model"
)

func TestScanModel_ProgressUpdatesView(t *testing.T) {
	model := newScanModel(m.AlgorithmSHA256, 100)

	updated, cmd := model.Update(scanProgressMsg{done: 25, total: 100, elapsed: 10 * time.Second})
	require.NotNil(t, cmd)

	scan, ok := updated.(scanModel)
	require.True(t, ok)

	view := scan.View()
	assert.Contains(t, view, "sha256")
	assert.Contains(t, view, "25/100 files")
	assert.Contains(t, view, "Elapsed: 0h,00m,10s")
	assert.Contains(t, view, "Estimated Total: 0h,00m,40s")
}

func TestScanModel_FinishQuitsAndClearsView(t *testing.T) {
	model := newScanModel(m.AlgorithmMD5, 10)

	updated, cmd := model.Update(scanFinishedMsg{})
	require.NotNil(t, cmd)

	scan, ok := updated.(scanModel)
	require.True(t, ok)
	assert.True(t, scan.finished)
	assert.Empty(t, scan.View())
}

func TestScanModel_WindowSizeAdjustsBar(t *testing.T) {
	model := newScanModel(m.AlgorithmSHA256, 10)

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 60, Height: 20})

	scan, ok := updated.(scanModel)
	require.True(t, ok)
	assert.Equal(t, 56, scan.bar.Width)
}

func TestTUI_WarnfWithoutProgramPrintsPlainLine(t *testing.T) {
	var out bytes.Buffer

	tui := NewTUI(&out)
	tui.Warnf("cannot fingerprint %s", "/x.txt")

	assert.Contains(t, out.String(), "cannot fingerprint /x.txt")
}

func TestTUI_DisplaySummaryPointsAtLog(t *testing.T) {
	var out bytes.Buffer

	tui := NewTUI(&out)
	tui.DisplaySummary(m.SessionReport{FilesRemoved: 3}, "/tmp/log_20250101120000.txt")

	rendered := out.String()
	assert.Contains(t, rendered, "3 Dup Files processed.")
	assert.Contains(t, rendered, "/tmp/log_20250101120000.txt")
}
