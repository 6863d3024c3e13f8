package model

// SessionReport aggregates the counters for one run. It is owned by the
// workflow and handed to the UI for the end-of-run summary; FilesRemoved
// counts only real, successful deletions.
type SessionReport struct {
	FilesScanned       int
	FilesFingerprinted int
	FingerprintErrors  int
	DuplicateGroups    int
	FilesRemoved       int
	SimulatedRemovals  int
	Skipped            int
	Failures           int
}
