// Package controller provides output adapters for displaying scan progress
// and run results.
package controller

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	m "dupesweep.dev/pkg/dupesweep/internal/model"
)

// UI abstracts run-time output so the workflow can drive either a plain
// printer or a live TUI without knowing which is attached.
type UI interface {
	// StartScan announces the fingerprinting phase over total files.
	StartScan(algorithm m.Algorithm, total int)

	// ScanProgress reports fingerprinting progress. May be called from
	// multiple worker goroutines.
	ScanProgress(done, total int, elapsed time.Duration)

	// FinishScan ends the fingerprinting phase display.
	FinishScan()

	// Warnf surfaces a non-fatal condition inline.
	Warnf(format string, args ...any)

	// Infof prints an informational line.
	Infof(format string, args ...any)

	// DisplayGroups renders the duplicate groups found by a scan.
	DisplayGroups(groups []m.DuplicateGroup)

	// DisplaySummary renders the end-of-run counters and the audit log
	// location.
	DisplaySummary(report m.SessionReport, logPath m.Path)
}

// NewUI selects the TUI when attached to a terminal and the plain printer
// otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}

// formatDuration renders a duration as h,mm,ss for the progress line.
func formatDuration(d time.Duration) string {
	seconds := int(d.Seconds())
	h := seconds / 3600
	min := (seconds % 3600) / 60
	sec := seconds % 60

	return formatHMS(h, min, sec)
}
