package controller

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "dupesweep.dev/pkg/dupesweep/internal/model"
)

// SimpleUI implements UI with plain text written through the cobra command's
// output stream. Progress is a single rewritten line, matching non-TTY and
// piped usage.
type SimpleUI struct {
	out io.Writer
	mu  sync.Mutex

	scanning bool
}

// NewSimpleUI creates a SimpleUI bound to cmd's output.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{out: cmd.OutOrStdout()}
}

// NewSimpleUITo creates a SimpleUI writing to out. Commands whose stdout
// carries a machine-readable document use this to keep progress and warnings
// on stderr.
func NewSimpleUITo(out io.Writer) *SimpleUI {
	return &SimpleUI{out: out}
}

// StartScan prints the fingerprinting phase header.
func (s *SimpleUI) StartScan(algorithm m.Algorithm, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scanning = true
	s.printf("Calculating %s fingerprints for %d files\n", algorithm, total)
}

// ScanProgress rewrites the progress line with counts, elapsed time and the
// estimated total.
func (s *SimpleUI) ScanProgress(done, total int, elapsed time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if total == 0 {
		return
	}

	percent := done * 100 / total

	estimated := elapsed
	if done > 0 {
		estimated = elapsed * time.Duration(total) / time.Duration(done)
	}

	s.printf("Fingerprinting: %d/%d (%d%%) Elapsed: %s Estimated Total: %s\r",
		done, total, percent, formatDuration(elapsed), formatDuration(estimated))
}

// FinishScan terminates the progress line.
func (s *SimpleUI) FinishScan() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.scanning {
		s.printf("\n")
		s.scanning = false
	}
}

// Warnf prints a warning line.
func (s *SimpleUI) Warnf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.printf("warning: "+format+"\n", args...)
}

// Infof prints an informational line.
func (s *SimpleUI) Infof(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.printf(format+"\n", args...)
}

// DisplayGroups renders the duplicate groups as a table.
func (s *SimpleUI) DisplayGroups(groups []m.DuplicateGroup) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(groups) == 0 {
		s.printf("No duplicates found.\n")
		return
	}

	s.printf("\n%s", renderGroupsTable(groups))
}

// DisplaySummary renders the end-of-run counters and points at the audit log.
func (s *SimpleUI) DisplaySummary(report m.SessionReport, logPath m.Path) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.printf("\n%s", renderSummaryTable(report))
	s.printf("%d Dup Files processed.\nDone. Check %s for details.\n", report.FilesRemoved, logPath)
}

func (s *SimpleUI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func renderGroupsTable(groups []m.DuplicateGroup) string {
	var buffer bytes.Buffer

	table := tablewriter.NewWriter(&buffer)
	table.SetHeader([]string{"Hash", "File"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	files := 0

	for _, group := range groups {
		for _, member := range group.Members {
			table.Append([]string{shortFingerprint(group.Fingerprint), string(member)})

			files++
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Groups %d", len(groups)),
		fmt.Sprintf("Files %d", files),
	})

	table.Render()

	return buffer.String()
}

func renderSummaryTable(report m.SessionReport) string {
	var buffer bytes.Buffer

	table := tablewriter.NewWriter(&buffer)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	rows := [][]string{
		{"Files scanned", fmt.Sprintf("%d", report.FilesScanned)},
		{"Files fingerprinted", fmt.Sprintf("%d", report.FilesFingerprinted)},
		{"Fingerprint errors", fmt.Sprintf("%d", report.FingerprintErrors)},
		{"Duplicate groups", fmt.Sprintf("%d", report.DuplicateGroups)},
		{"Files removed", fmt.Sprintf("%d", report.FilesRemoved)},
		{"Removals simulated", fmt.Sprintf("%d", report.SimulatedRemovals)},
		{"Skipped", fmt.Sprintf("%d", report.Skipped)},
		{"Failures", fmt.Sprintf("%d", report.Failures)},
	}
	for _, row := range rows {
		table.Append(row)
	}

	table.Render()

	return buffer.String()
}

// shortFingerprint truncates a fingerprint for table display; the audit log
// always carries the full form.
func shortFingerprint(fp m.Fingerprint) string {
	const width = 12
	if len(fp) <= width {
		return string(fp)
	}

	return string(fp[:width])
}

func formatHMS(h, min, sec int) string {
	return fmt.Sprintf("%dh,%02dm,%02ds", h, min, sec)
}
