package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"dupesweep.dev/pkg/dupesweep/internal/adapter"
	"dupesweep.dev/pkg/dupesweep/internal/controller"
	m "dupesweep.dev/pkg/dupesweep/internal/model"
)

// ScanArgs contains the arguments for the scan/grouping phase.
type ScanArgs struct {
	Roots   []m.Path
	Workers int
}

// RunArgs contains the arguments for a full deduplication run.
type RunArgs struct {
	ScanArgs

	// DeleteRoots are the directories the operator authorized for removal.
	DeleteRoots []m.Path
	Policy      m.Policy
	DryRun      bool

	// AuditDir is where the per-run audit log file is created.
	AuditDir m.Path
}

// Workflow drives the whole pipeline: enumerate, fingerprint, group,
// partition, plan, apply, record.
type Workflow interface {
	// Scan fingerprints everything under the roots and returns the duplicate
	// groups without touching any file.
	Scan(ctx context.Context, args ScanArgs) ([]m.DuplicateGroup, m.SessionReport, error)

	// Run executes the full pipeline including deletion decisions.
	Run(ctx context.Context, args RunArgs) (m.SessionReport, error)
}

type workflow struct {
	fs      adapter.ScanFS
	fp      adapter.Fingerprinter
	prompt  adapter.KeepPrompter
	ui      controller.UI
	openLog adapter.AuditLogFactory
}

// NewWorkflow creates a Workflow with the provided collaborators.
func NewWorkflow(
	fs adapter.ScanFS,
	fp adapter.Fingerprinter,
	prompt adapter.KeepPrompter,
	ui controller.UI,
	openLog adapter.AuditLogFactory,
) Workflow {
	return &workflow{
		fs:      fs,
		fp:      fp,
		prompt:  prompt,
		ui:      ui,
		openLog: openLog,
	}
}

// Scan builds the fingerprint index over the scan roots and returns every
// group with at least two members.
func (w *workflow) Scan(ctx context.Context, args ScanArgs) ([]m.DuplicateGroup, m.SessionReport, error) {
	var report m.SessionReport

	if len(args.Roots) == 0 {
		return nil, report, errors.New("at least one directory must be specified")
	}

	index, err := w.buildIndex(ctx, args, &report)
	if err != nil {
		return nil, report, err
	}

	groups := index.Groups()
	report.DuplicateGroups = len(groups)

	return groups, report, nil
}

// Run scans, then walks every duplicate group through partition, planning
// and application. The decision phase is strictly sequential so the audit
// log keeps its per-group ordering.
func (w *workflow) Run(ctx context.Context, args RunArgs) (m.SessionReport, error) {
	if len(args.DeleteRoots) == 0 {
		return m.SessionReport{}, errors.New("at least one authorized deletion directory must be specified")
	}

	groups, report, err := w.Scan(ctx, args.ScanArgs)
	if err != nil {
		return report, err
	}

	auditLog, err := w.openLog(args.AuditDir, w.fp.Algorithm(), args.Roots)
	if err != nil {
		return report, fmt.Errorf("open audit log: %w", err)
	}

	defer func() {
		_ = auditLog.Close()
	}()

	classifier := NewClassifier(w.fs)

	for _, group := range groups {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		partition := classifier.Partition(group, args.DeleteRoots)
		decisions := Plan(group, partition, args.Policy, w.prompt)

		for _, decision := range decisions {
			w.apply(decision, args.DryRun, auditLog, &report)
		}
	}

	w.ui.DisplaySummary(report, auditLog.Path())

	return report, nil
}

// buildIndex enumerates the scan roots, fingerprints every regular file and
// accumulates the index. Fingerprinting runs on a bounded worker pool; index
// writes are serialized under a single mutex.
func (w *workflow) buildIndex(ctx context.Context, args ScanArgs, report *m.SessionReport) (*FingerprintIndex, error) {
	paths := w.collectPaths(args.Roots, report)
	report.FilesScanned = len(paths)

	index := NewFingerprintIndex()

	w.ui.StartScan(w.fp.Algorithm(), len(paths))
	defer w.ui.FinishScan()

	// Workers write into position-keyed slices, never into the index: group
	// membership must follow enumeration order, not goroutine completion
	// order, because "keep the first copy" binds to discovery order.
	results := make([]m.Fingerprint, len(paths))
	failures := make([]error, len(paths))

	var (
		mu    sync.Mutex
		done  int
		start = time.Now()
	)

	var group errgroup.Group
	if args.Workers > 0 {
		group.SetLimit(args.Workers)
	} else {
		group.SetLimit(1)
	}

	for i, path := range paths {
		i, path := i, path
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i], failures[i] = w.fp.Fingerprint(path)

			mu.Lock()
			defer mu.Unlock()

			done++
			w.ui.ScanProgress(done, len(paths), time.Since(start))

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	for i, path := range paths {
		if err := failures[i]; err != nil {
			report.FingerprintErrors++
			w.ui.Warnf("cannot fingerprint %s: %v", path, err)
			slog.Warn("fingerprint failed", "path", path, "error", err)

			continue
		}

		index.Add(path, results[i])
		report.FilesFingerprinted++
	}

	return index, nil
}

// collectPaths walks the scan roots and gathers every regular file in
// discovery order. A missing root is reported and skipped, not fatal.
func (w *workflow) collectPaths(roots []m.Path, report *m.SessionReport) []m.Path {
	var paths []m.Path

	for _, root := range roots {
		if _, err := w.fs.FileInfo(root); err != nil {
			w.ui.Warnf("directory not found: %s", root)
			slog.Warn("scan root skipped", "root", root, "error", err)

			continue
		}

		err := w.fs.Walk(root, func(path m.Path, err error) error {
			if err != nil {
				w.ui.Warnf("cannot read %s: %v", path, err)
				slog.Warn("walk entry skipped", "path", path, "error", err)

				return nil
			}

			paths = append(paths, path)

			return nil
		})
		if err != nil {
			w.ui.Warnf("error scanning %s: %v", root, err)
			slog.Warn("walk aborted", "root", root, "error", err)
		}
	}

	return paths
}

// apply executes one decision: Keep and Skip are record-only, Delete is
// simulated under dry run and otherwise handed to the removal collaborator.
// A removal failure becomes a Failed record and the run continues.
func (w *workflow) apply(decision m.Decision, dryRun bool, auditLog adapter.AuditLog, report *m.SessionReport) {
	switch decision.Action {
	case m.Keep:
		w.record(auditLog, decision)

	case m.Skip:
		report.Skipped++
		w.record(auditLog, decision)

	case m.Delete:
		if dryRun {
			decision.Simulated = true
			report.SimulatedRemovals++
			w.record(auditLog, decision)

			return
		}

		if err := w.fs.Remove(decision.Path); err != nil {
			report.Failures++
			w.ui.Warnf("error deleting file: %s - %v", decision.Path, err)
			slog.Error("delete failed", "path", decision.Path, "error", err)

			decision.Action = m.Failed
			decision.Cause = err
			w.record(auditLog, decision)

			return
		}

		report.FilesRemoved++
		w.record(auditLog, decision)

	case m.Failed:
		// The planner never emits Failed; it only arises from a removal
		// error above.
	}
}

func (w *workflow) record(auditLog adapter.AuditLog, decision m.Decision) {
	if err := auditLog.Record(decision); err != nil {
		slog.Error("audit log write failed", "path", decision.Path, "error", err)
	}
}
