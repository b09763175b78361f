//go:build !windows

package executor

import "os/exec"

// Non-Windows systems take argv, not a command line.
func applyCmdLine(_ *exec.Cmd, _ string) {}
