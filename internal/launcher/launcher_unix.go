//go:build linux || freebsd || openbsd || netbsd || dragonfly

package launcher

import (
	"os/exec"
	"path/filepath"
)

// Desktop environments ship different terminals; candidates are alternatives
const terminalAlternatives = true

func openCommand(path string) *exec.Cmd {
	return exec.Command("xdg-open", path)
}

func terminalCommands(dir string, terminals []string) []*exec.Cmd {
	cmds := make([]*exec.Cmd, 0, len(terminals))
	for _, term := range terminals {
		if term == "" {
			continue
		}
		var cmd *exec.Cmd
		if filepath.Base(term) == "gnome-terminal" {
			cmd = exec.Command(term, "--working-directory="+dir)
		} else {
			cmd = exec.Command(term)
		}
		cmd.Dir = dir
		cmds = append(cmds, cmd)
	}
	return cmds
}
