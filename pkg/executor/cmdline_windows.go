//go:build windows

package executor

import (
	"os/exec"
	"syscall"
)

func applyCmdLine(c *exec.Cmd, line string) {
	if line == "" {
		return
	}
	c.SysProcAttr = &syscall.SysProcAttr{CmdLine: line}
}
