package fsops

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDirOrdering(t *testing.T) {
	engine, _ := newTestEngine(t, Config{})
	dir := t.TempDir()

	for _, name := range []string{"beta.txt", "Alpha.txt", "gamma.md", "_under"} {
		writeFile(t, filepath.Join(dir, name), name)
	}
	for _, name := range []string{"zeta", "Delta", "echo"} {
		require.NoError(t, os.Mkdir(filepath.Join(dir, name), 0o755))
	}

	entries, err := engine.ReadDir(dir, ListOptions{})
	require.NoError(t, err)

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	assert.Equal(t, []string{"Delta", "echo", "zeta", "_under", "Alpha.txt", "beta.txt", "gamma.md"}, names)

	seenFile := false
	for i, e := range entries {
		if !e.IsDir {
			seenFile = true
		} else {
			assert.False(t, seenFile, "directory %s listed after a file", e.Name)
		}
		if i > 0 && entries[i-1].IsDir == e.IsDir {
			assert.LessOrEqual(t, strings.ToLower(entries[i-1].Name), strings.ToLower(e.Name))
		}
	}
}

func TestReadDirDeterministic(t *testing.T) {
	engine, _ := newTestEngine(t, Config{})
	dir := t.TempDir()
	for _, name := range []string{"b", "B", "a", "A", "c.txt"} {
		writeFile(t, filepath.Join(dir, "sub", name), name)
	}

	first, err := engine.ReadDir(filepath.Join(dir, "sub"), ListOptions{})
	require.NoError(t, err)
	second, err := engine.ReadDir(filepath.Join(dir, "sub"), ListOptions{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestReadDirEntryMetadata(t *testing.T) {
	engine, _ := newTestEngine(t, Config{})
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "file.txt"), strings.Repeat("x", 5000))
	writeFile(t, filepath.Join(dir, "folder", "inner.txt"), strings.Repeat("y", 9000))

	entries, err := engine.ReadDir(dir, ListOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	folder := entries[0]
	assert.Equal(t, "folder", folder.Name)
	assert.True(t, folder.IsDir)
	assert.Equal(t, uint64(0), folder.Size, "directories never report a size")
	assert.Equal(t, filepath.Join(dir, "folder"), folder.Path)

	file := entries[1]
	info, err := os.Lstat(filepath.Join(dir, "file.txt"))
	require.NoError(t, err)
	assert.False(t, file.IsDir)
	assert.Equal(t, DiskUsage(info), file.Size)
	assert.Equal(t, uint64(info.ModTime().Unix()), file.Modified)
}

func TestReadDirCreateRoundTrip(t *testing.T) {
	engine, _ := newTestEngine(t, Config{})
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "existing.txt"), "x")

	before, err := engine.ReadDir(dir, ListOptions{})
	require.NoError(t, err)

	require.NoError(t, engine.CreateFile(dir, "a.txt"))

	after, err := engine.ReadDir(dir, ListOptions{})
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)

	var found []FileEntry
	for _, e := range after {
		if e.Name == "a.txt" {
			found = append(found, e)
		}
	}
	require.Len(t, found, 1)
	assert.False(t, found[0].IsDir)

	info, err := os.Lstat(filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, DiskUsage(info), found[0].Size)
}

func TestReadDirNotADirectory(t *testing.T) {
	engine, _ := newTestEngine(t, Config{})
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	writeFile(t, file, "x")

	tests := []struct {
		name string
		path string
	}{
		{"regular file", file},
		{"missing path", filepath.Join(dir, "missing")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.ReadDir(tt.path, ListOptions{})
			require.Error(t, err)
			assert.True(t, IsKind(err, KindNotADirectory))
			assert.Contains(t, err.Error(), "Not a directory")
		})
	}
}

func TestReadDirPatternFilter(t *testing.T) {
	engine, _ := newTestEngine(t, Config{})
	dir := t.TempDir()
	for _, name := range []string{"main.go", "main_test.go", "README.md", "go.mod"} {
		writeFile(t, filepath.Join(dir, name), name)
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "internal"), 0o755))

	entries, err := engine.ReadDir(dir, ListOptions{Pattern: "*.go"})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "main.go", entries[0].Name)
	assert.Equal(t, "main_test.go", entries[1].Name)

	entries, err = engine.ReadDir(dir, ListOptions{Pattern: "{internal,*.md}"})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].IsDir)
	assert.Equal(t, "README.md", entries[1].Name)

	_, err = engine.ReadDir(dir, ListOptions{Pattern: "[unclosed"})
	assert.True(t, IsKind(err, KindInvalidArgument))
}

func TestSortEntriesTotalOrder(t *testing.T) {
	entries := []FileEntry{
		{Name: "b"},
		{Name: "B"},
		{Name: "a", IsDir: true},
		{Name: "A", IsDir: true},
	}
	SortEntries(entries)

	assert.Equal(t, []FileEntry{
		{Name: "A", IsDir: true},
		{Name: "a", IsDir: true},
		{Name: "B"},
		{Name: "b"},
	}, entries)
}

func TestReadDirEnumerationFailure(t *testing.T) {
	engine, _ := newTestEngine(t, Config{})
	dir := t.TempDir()
	failReadDir(engine, dir, fs.ErrPermission)

	entries, err := engine.ReadDir(dir, ListOptions{})
	require.Error(t, err)
	assert.Nil(t, entries)
	assert.Equal(t, KindReadFailure, KindOf(err))
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestReadDirMetadataFailure(t *testing.T) {
	engine, _ := newTestEngine(t, Config{})
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "present.txt"), "x")
	engine.readDir = func(name string) ([]fs.DirEntry, error) {
		entries, err := os.ReadDir(name)
		return append(entries, vanishedEntry{name: "gone.txt"}), err
	}

	_, err := engine.ReadDir(dir, ListOptions{})
	require.Error(t, err)
	assert.Equal(t, KindReadFailure, KindOf(err))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var fsErr *Error
	require.ErrorAs(t, err, &fsErr)
	assert.Equal(t, filepath.Join(dir, "gone.txt"), fsErr.Path)
}
