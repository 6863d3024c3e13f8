// Package adapter contains filesystem and I/O adapters for the dupesweep CLI.
package adapter

import (
	//nolint:gosec // MD5 is an operator-selected content fingerprint, not a security boundary.
	"crypto/md5"
	"crypto/sha256"
	"fmt"
	"hash"
	"io"
	"os"

	m "dupesweep.dev/pkg/dupesweep/internal/model"
)

// Fingerprinter computes content fingerprints for files. A fingerprinting
// failure (unreadable file) is reported as an error and the caller must
// exclude the path from the index.
type Fingerprinter interface {
	// Algorithm reports which digest algorithm this fingerprinter uses.
	Algorithm() m.Algorithm

	// Fingerprint returns the hex-encoded digest of the file's content.
	Fingerprint(path m.Path) (m.Fingerprint, error)
}

type hashFingerprinter struct {
	algorithm m.Algorithm
	newHash   func() hash.Hash
}

// NewFingerprinter builds a Fingerprinter for the named algorithm. An
// unrecognized algorithm is a configuration error and aborts the run before
// the pipeline starts.
func NewFingerprinter(algorithm string) (Fingerprinter, error) {
	switch m.Algorithm(algorithm) {
	case m.AlgorithmSHA256:
		return &hashFingerprinter{algorithm: m.AlgorithmSHA256, newHash: sha256.New}, nil
	case m.AlgorithmMD5:
		return &hashFingerprinter{algorithm: m.AlgorithmMD5, newHash: md5.New}, nil
	}

	return nil, fmt.Errorf("unsupported fingerprint algorithm %q (supported: sha256, md5)", algorithm)
}

// Algorithm reports the configured digest algorithm.
func (f *hashFingerprinter) Algorithm() m.Algorithm {
	return f.algorithm
}

// Fingerprint hashes the file content and returns the hex digest.
func (f *hashFingerprinter) Fingerprint(path m.Path) (m.Fingerprint, error) {
	file, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = file.Close()
	}()

	h := f.newHash()
	if _, err := io.Copy(h, file); err != nil {
		return "", err
	}

	return m.Fingerprint(fmt.Sprintf("%x", h.Sum(nil))), nil
}
