package fsops

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeTrash records trashed paths instead of touching the user's trash
type fakeTrash struct {
	mu      sync.Mutex
	trashed []string
	err     error
}

func (f *fakeTrash) Trash(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.trashed = append(f.trashed, path)
	return os.RemoveAll(path)
}

func newTestEngine(t *testing.T, cfg Config) (*Engine, *fakeTrash) {
	t.Helper()
	trash := &fakeTrash{}
	return New(cfg, WithTrasher(trash)), trash
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// buildTree creates {a/ {b.txt, c/ {d.txt}}} under root and returns root/a
func buildTree(t *testing.T, root string) string {
	t.Helper()
	a := filepath.Join(root, "a")
	writeFile(t, filepath.Join(a, "b.txt"), "bee")
	writeFile(t, filepath.Join(a, "c", "d.txt"), "dee dee")
	return a
}

// failReadDir makes the engine's directory reads of path fail with err
func failReadDir(e *Engine, path string, err error) {
	e.readDir = func(name string) ([]fs.DirEntry, error) {
		if filepath.Clean(name) == filepath.Clean(path) {
			return nil, err
		}
		return os.ReadDir(name)
	}
}

// vanishedEntry is a directory entry whose metadata can no longer be read
type vanishedEntry struct{ name string }

func (v vanishedEntry) Name() string               { return v.name }
func (v vanishedEntry) IsDir() bool                { return false }
func (v vanishedEntry) Type() fs.FileMode          { return 0 }
func (v vanishedEntry) Info() (fs.FileInfo, error) { return nil, fs.ErrNotExist }
