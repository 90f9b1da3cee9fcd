package traverse

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// memTree builds an in-memory filesystem from slash-separated paths. Paths
// ending in "/" become empty directories.
func memTree(t *testing.T, paths ...string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for _, p := range paths {
		if strings.HasSuffix(p, "/") {
			require.NoError(t, fs.MkdirAll(filepath.FromSlash(p), 0o755))
			continue
		}
		name := filepath.FromSlash(p)
		require.NoError(t, fs.MkdirAll(filepath.Dir(name), 0o755))
		require.NoError(t, afero.WriteFile(fs, name, []byte("test content"), 0o644))
	}
	return fs
}

// osTree creates the paths below t.TempDir and returns the directory
func osTree(t *testing.T, paths ...string) string {
	t.Helper()

	dir := t.TempDir()
	for _, p := range paths {
		name := filepath.Join(dir, filepath.FromSlash(p))
		if strings.HasSuffix(p, "/") {
			require.NoError(t, os.MkdirAll(name, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(name), 0o755))
		require.NoError(t, os.WriteFile(name, []byte("test content"), 0o644))
	}
	return dir
}

// slashed converts slash-separated expectations to platform paths
func slashed(paths ...string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.FromSlash(p)
	}
	return out
}

// faultyFs fails Stat or Open for selected paths
type faultyFs struct {
	afero.Fs
	statErr map[string]error
	openErr map[string]error
}

func (f faultyFs) Stat(name string) (os.FileInfo, error) {
	if err, ok := f.statErr[filepath.ToSlash(filepath.Clean(name))]; ok {
		return nil, &os.PathError{Op: "stat", Path: name, Err: err}
	}
	return f.Fs.Stat(name)
}

func (f faultyFs) Open(name string) (afero.File, error) {
	if err, ok := f.openErr[filepath.ToSlash(filepath.Clean(name))]; ok {
		return nil, &os.PathError{Op: "open", Path: name, Err: err}
	}
	return f.Fs.Open(name)
}
