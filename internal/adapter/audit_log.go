package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	m "dupesweep.dev/pkg/dupesweep/internal/model"
)

// AuditLog is the durable, append-only record of every deletion decision made
// during one run. It is opened once per run and never reopened mid-run; each
// record is one whole line, so an interrupted run leaves a valid partial
// trail.
type AuditLog interface {
	// Record appends one line for the decision.
	Record(decision m.Decision) error

	// Path reports where the log lives so the summary can point at it.
	Path() m.Path

	Close() error
}

// AuditLogFactory opens the audit log for a run. Injected into the workflow
// so tests can capture records in memory.
type AuditLogFactory func(dir m.Path, algorithm m.Algorithm, roots []m.Path) (AuditLog, error)

type fileAuditLog struct {
	file *os.File
	path m.Path
}

// NewFileAuditLog creates `log_<YYYYMMDDHHMMSS>.txt` under dir and writes the
// run header. It satisfies AuditLogFactory.
func NewFileAuditLog(dir m.Path, algorithm m.Algorithm, roots []m.Path) (AuditLog, error) {
	now := time.Now()
	path := filepath.Join(string(dir), "log_"+now.Format("20060102150405")+".txt")

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}

	log := &fileAuditLog{file: file, path: m.Path(path)}
	if err := log.writeHeader(now, algorithm, roots); err != nil {
		_ = file.Close()
		return nil, err
	}

	return log, nil
}

func (l *fileAuditLog) writeHeader(now time.Time, algorithm m.Algorithm, roots []m.Path) error {
	fmt.Fprintf(l.file, "Log for the duplicate deletion script\n")
	fmt.Fprintf(l.file, "Date: %s\n", now.Format(time.DateTime))
	fmt.Fprintf(l.file, "Using algorithm: %s\n", algorithm)
	fmt.Fprintf(l.file, "Directories:\n")

	for _, root := range roots {
		fmt.Fprintf(l.file, "- %s\n", root)
	}

	_, err := fmt.Fprintf(l.file, "-------------------\n")

	return err
}

// Record writes the decision in its canonical line format.
func (l *fileAuditLog) Record(decision m.Decision) error {
	_, err := fmt.Fprint(l.file, FormatDecision(decision))

	return err
}

// Path returns the log file location.
func (l *fileAuditLog) Path() m.Path {
	return l.path
}

// Close flushes and closes the underlying file.
func (l *fileAuditLog) Close() error {
	return l.file.Close()
}

// FormatDecision renders one decision as its audit line, newline included.
// The shapes are fixed; the summary and tests rely on them verbatim.
func FormatDecision(d m.Decision) string {
	switch d.Action {
	case m.Keep:
		return fmt.Sprintf("Kept %s (Hash: %s, Duplicates: %s)\n", d.Path, d.Fingerprint, d.JoinedGroup())
	case m.Delete:
		if d.Simulated {
			return fmt.Sprintf("DRY run: Would delete %s (Hash: %s, Duplicates: %s)\n", d.Path, d.Fingerprint, d.JoinedGroup())
		}

		return fmt.Sprintf("Deleted %s (Hash: %s, Duplicates: %s)\n", d.Path, d.Fingerprint, d.JoinedGroup())
	case m.Skip:
		return fmt.Sprintf("Skipped %s (Hash: %s, Duplicates: %s)\n", d.Path, d.Fingerprint, d.JoinedGroup())
	case m.Failed:
		return fmt.Sprintf("Failed to delete %s - %v\n", d.Path, d.Cause)
	}

	return fmt.Sprintf("Unknown action for %s\n", d.Path)
}
