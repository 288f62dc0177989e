package fsops

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errCrossDevice = errors.New("invalid cross-device link")

func TestMoveSameVolume(t *testing.T) {
	engine, _ := newTestEngine(t, Config{})
	root := t.TempDir()
	a := buildTree(t, root)
	before := snapshot(t, a)
	dst := filepath.Join(root, "dst")
	require.NoError(t, os.Mkdir(dst, 0o755))

	dest, err := engine.Move(a, dst)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dst, "a"), dest)
	assert.NoDirExists(t, a)
	assert.Equal(t, before, snapshot(t, dest))
}

func TestMoveCrossVolumeFallback(t *testing.T) {
	engine, _ := newTestEngine(t, Config{})
	var renames int
	engine.rename = func(oldpath, newpath string) error {
		renames++
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: errCrossDevice}
	}

	a := buildTree(t, t.TempDir())
	before := snapshot(t, a)
	dst := t.TempDir()

	dest, err := engine.Move(a, dst)
	require.NoError(t, err)

	assert.Equal(t, 1, renames)
	assert.NoDirExists(t, a, "source must be gone after fallback")
	assert.Equal(t, before, snapshot(t, dest))
}

func TestMoveCleanupFailure(t *testing.T) {
	engine, _ := newTestEngine(t, Config{})
	engine.rename = func(oldpath, newpath string) error { return errCrossDevice }
	engine.removeAll = func(path string) error {
		return &os.PathError{Op: "unlinkat", Path: path, Err: os.ErrPermission}
	}

	a := buildTree(t, t.TempDir())
	before := snapshot(t, a)
	dst := t.TempDir()

	_, err := engine.Move(a, dst)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindCleanupFailure))
	assert.Equal(t, OpCleanup, PhaseOf(err))
	assert.Contains(t, err.Error(), "Copied but failed to remove source")

	// both copies survive
	assert.Equal(t, before, snapshot(t, a))
	assert.Equal(t, before, snapshot(t, filepath.Join(dst, "a")))
}

func TestMoveCopyPhaseFailure(t *testing.T) {
	engine, _ := newTestEngine(t, Config{})
	engine.rename = func(oldpath, newpath string) error { return errCrossDevice }

	a := buildTree(t, t.TempDir())

	// a folder moved into its own subtree falls back to a copy that refuses to recurse
	_, err := engine.Move(a, filepath.Join(a, "c"))
	require.Error(t, err)
	assert.True(t, IsKind(err, KindCopyFailure))
	assert.Equal(t, OpCopy, PhaseOf(err))
	assert.DirExists(t, a)
}

func TestMoveFile(t *testing.T) {
	engine, _ := newTestEngine(t, Config{})
	src := filepath.Join(t.TempDir(), "file.txt")
	writeFile(t, src, "content")
	dst := t.TempDir()

	dest, err := engine.Move(src, dst)
	require.NoError(t, err)

	assert.NoFileExists(t, src)
	assert.Equal(t, "content", readFile(t, dest))
}

func TestMoveNoClobber(t *testing.T) {
	engine, _ := newTestEngine(t, Config{NoClobber: true})
	src := filepath.Join(t.TempDir(), "file.txt")
	writeFile(t, src, "new")
	dst := t.TempDir()
	writeFile(t, filepath.Join(dst, "file.txt"), "old")

	_, err := engine.Move(src, dst)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindAlreadyExists))
	assert.Equal(t, "new", readFile(t, src))
	assert.Equal(t, "old", readFile(t, filepath.Join(dst, "file.txt")))
}

func TestMovePreconditions(t *testing.T) {
	engine, _ := newTestEngine(t, Config{})
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	writeFile(t, file, "x")

	_, err := engine.Move(filepath.Join(dir, "missing"), dir)
	assert.True(t, IsKind(err, KindNotFound))
	assert.Equal(t, OpMove, PhaseOf(err))

	_, err = engine.Move(file, file)
	assert.True(t, IsKind(err, KindNotADirectory))
	assert.FileExists(t, file)
}
