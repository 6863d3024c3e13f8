package model

// Fingerprint is a hex-encoded content digest. Equal fingerprints are treated
// as equal content; the algorithm behind it is opaque to the decision logic.
type Fingerprint string

// Algorithm identifies the digest algorithm used to fingerprint file content.
type Algorithm string

const (
	// AlgorithmSHA256 fingerprints content with SHA-256 (default).
	AlgorithmSHA256 Algorithm = "sha256"
	// AlgorithmMD5 fingerprints content with MD5.
	AlgorithmMD5 Algorithm = "md5"
)
