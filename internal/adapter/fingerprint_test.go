package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	m "dupesweep.dev/pkg/dupesweep/internal/model"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestNewFingerprinter_UnknownAlgorithm(t *testing.T) {
	_, err := NewFingerprinter("crc32")
	require.Error(t, err)
	require.Contains(t, err.Error(), "crc32")
}

func TestHashFingerprinter_KnownDigests(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.txt")
	writeTestFile(t, path, "hello")

	cases := []struct {
		algorithm string
		want      m.Fingerprint
	}{
		{"sha256", "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"},
		{"md5", "5d41402abc4b2a76b9719d911017c592"},
	}

	for _, tc := range cases {
		t.Run(tc.algorithm, func(t *testing.T) {
			fp, err := NewFingerprinter(tc.algorithm)
			require.NoError(t, err)
			require.Equal(t, m.Algorithm(tc.algorithm), fp.Algorithm())

			got, err := fp.Fingerprint(m.Path(path))
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestHashFingerprinter_EqualContentEqualFingerprint(t *testing.T) {
	dir := t.TempDir()

	first := filepath.Join(dir, "a.txt")
	second := filepath.Join(dir, "b.txt")
	writeTestFile(t, first, "same content")
	writeTestFile(t, second, "same content")

	fp, err := NewFingerprinter("sha256")
	require.NoError(t, err)

	fpFirst, err := fp.Fingerprint(m.Path(first))
	require.NoError(t, err)

	fpSecond, err := fp.Fingerprint(m.Path(second))
	require.NoError(t, err)

	require.Equal(t, fpFirst, fpSecond)
}

func TestHashFingerprinter_MissingFile(t *testing.T) {
	fp, err := NewFingerprinter("sha256")
	require.NoError(t, err)

	_, err = fp.Fingerprint(m.Path(filepath.Join(t.TempDir(), "gone.txt")))
	require.Error(t, err)
}
