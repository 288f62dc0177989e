//go:build windows

package launcher

import "os/exec"

const terminalAlternatives = false

func openCommand(path string) *exec.Cmd {
	// the empty argument is the window title; start treats a first quoted arg as one
	return exec.Command("cmd", "/C", "start", "", path)
}

func terminalCommands(dir string, _ []string) []*exec.Cmd {
	return []*exec.Cmd{exec.Command("cmd", "/C", "start", "cmd", "/K", "cd", "/d", dir)}
}
