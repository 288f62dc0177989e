//go:build linux || freebsd || openbsd || netbsd || dragonfly

package launcher

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/GriffinCanCode/panex/internal/fsops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNotInstalled = errors.New("executable file not found in $PATH")

func TestOpenUsesXdgOpen(t *testing.T) {
	l, rec := newTestLauncher(Config{})
	file := filepath.Join(t.TempDir(), "photo.png")
	require.NoError(t, os.WriteFile(file, []byte("png"), 0o644))

	require.NoError(t, l.Open(file))

	require.Len(t, rec.cmds, 1)
	assert.Equal(t, []string{"xdg-open", file}, rec.cmds[0].Args)
}

func TestOpenSpawnFailure(t *testing.T) {
	l, rec := newTestLauncher(Config{})
	rec.fail["xdg-open"] = errNotInstalled
	dir := t.TempDir()

	err := l.Open(dir)
	require.Error(t, err)
	assert.True(t, fsops.IsKind(err, fsops.KindLaunchFailure))
	assert.ErrorIs(t, err, errNotInstalled)
}

func TestOpenTerminalFirstCandidateWins(t *testing.T) {
	l, rec := newTestLauncher(Config{})
	dir := t.TempDir()

	require.NoError(t, l.OpenTerminal(dir))

	require.Len(t, rec.cmds, 1)
	assert.Equal(t, []string{"x-terminal-emulator"}, rec.cmds[0].Args)
	assert.Equal(t, dir, rec.cmds[0].Dir)
}

func TestOpenTerminalFallsBack(t *testing.T) {
	l, rec := newTestLauncher(Config{})
	rec.fail["x-terminal-emulator"] = errNotInstalled
	dir := t.TempDir()

	require.NoError(t, l.OpenTerminal(dir))

	require.Len(t, rec.cmds, 2)
	assert.Equal(t, []string{"gnome-terminal", "--working-directory=" + dir}, rec.cmds[1].Args)
}

func TestOpenTerminalNoCandidateStarts(t *testing.T) {
	l, rec := newTestLauncher(Config{})
	for _, term := range DefaultTerminals() {
		rec.fail[term] = errNotInstalled
	}
	dir := t.TempDir()

	err := l.OpenTerminal(dir)
	require.Error(t, err)
	assert.True(t, fsops.IsKind(err, fsops.KindUnsupportedPlatform))
	assert.Equal(t, "No supported terminal emulator found", err.Error())

	var tried []string
	for _, cmd := range rec.cmds {
		tried = append(tried, cmd.Args[0])
		assert.Equal(t, dir, cmd.Dir)
	}
	assert.Equal(t, DefaultTerminals(), tried)
}

func TestOpenTerminalConfiguredCandidates(t *testing.T) {
	l, rec := newTestLauncher(Config{Terminals: []string{"", "/usr/bin/gnome-terminal", "kitty"}})
	rec.fail["gnome-terminal"] = errNotInstalled
	dir := t.TempDir()

	require.NoError(t, l.OpenTerminal(dir))

	require.Len(t, rec.cmds, 2)
	assert.Equal(t, []string{"/usr/bin/gnome-terminal", "--working-directory=" + dir}, rec.cmds[0].Args)
	assert.Equal(t, []string{"kitty"}, rec.cmds[1].Args)
}
