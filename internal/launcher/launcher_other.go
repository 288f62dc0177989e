//go:build !darwin && !windows && !linux && !freebsd && !openbsd && !netbsd && !dragonfly

package launcher

import "os/exec"

const terminalAlternatives = false

func openCommand(string) *exec.Cmd {
	return nil
}

func terminalCommands(string, []string) []*exec.Cmd {
	return nil
}
