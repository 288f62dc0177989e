//go:build darwin

package launcher

import (
	"os"
	"os/exec"
)

// macOS has one system terminal; a failed spawn is a launch failure
const terminalAlternatives = false

var itermApp = "/Applications/iTerm.app"

func openCommand(path string) *exec.Cmd {
	return exec.Command("open", path)
}

func terminalCommands(dir string, _ []string) []*exec.Cmd {
	app := "Terminal"
	if _, err := os.Stat(itermApp); err == nil {
		app = "iTerm"
	}
	return []*exec.Cmd{exec.Command("open", "-a", app, dir)}
}
