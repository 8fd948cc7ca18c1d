package osutils

import (
	"os/exec"
)

// CmdExitCode returns the exit code of a command in a platform agnostic way
func CmdExitCode(cmd *exec.Cmd) int {
	if cmd == nil || cmd.ProcessState == nil {
		return -1
	}
	return cmd.ProcessState.ExitCode()
}

// CmdString returns the command line of the given command, for logging
// purposes only; it is not shell-escaped
func CmdString(cmd *exec.Cmd) string {
	if cmd == nil {
		return ""
	}
	return cmd.String()
}
