package domain

import (
	"log/slog"
	"path/filepath"
	"strings"

	"dupesweep.dev/pkg/dupesweep/internal/adapter"
	m "dupesweep.dev/pkg/dupesweep/internal/model"
)

// Classifier decides whether paths fall inside authorized deletion roots.
// Both sides of every comparison are canonicalized first; a path that cannot
// be canonicalized is treated as outside every root, since containment gates
// real deletions.
type Classifier struct {
	fs adapter.ScanFS
}

// NewClassifier builds a Classifier on top of the given filesystem adapter.
func NewClassifier(fs adapter.ScanFS) *Classifier {
	return &Classifier{fs: fs}
}

// IsWithin reports whether path is a true descendant of root. The root itself
// does not count, and a path that only reaches root through `..` segments
// does not count either. Fails closed when either side cannot be
// canonicalized (e.g. the root does not exist).
func (c *Classifier) IsWithin(path, root m.Path) bool {
	canonicalPath, err := c.fs.Canonical(path)
	if err != nil {
		slog.Warn("cannot canonicalize path, treating as out of scope", "path", path, "error", err)
		return false
	}

	canonicalRoot, err := c.fs.Canonical(root)
	if err != nil {
		slog.Warn("cannot canonicalize root, treating as out of scope", "root", root, "error", err)
		return false
	}

	rel, err := filepath.Rel(string(canonicalRoot), string(canonicalPath))
	if err != nil {
		return false
	}

	if rel == "." || rel == ".." {
		return false
	}

	return !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Partition splits the group's membership into members inside at least one
// authorized root and everything else, preserving group order on both sides.
func (c *Classifier) Partition(group m.DuplicateGroup, roots []m.Path) m.ScopePartition {
	var partition m.ScopePartition

	for _, member := range group.Members {
		eligible := false

		for _, root := range roots {
			if c.IsWithin(member, root) {
				eligible = true
				break
			}
		}

		if eligible {
			partition.Eligible = append(partition.Eligible, member)
		} else {
			partition.Ineligible = append(partition.Ineligible, member)
		}
	}

	return partition
}
