package exeutils

import (
	"bytes"
	"context"
	"os"
	"os/exec"

	"github.com/venvfromfile/cli/internal/errs"
	"github.com/venvfromfile/cli/internal/logging"
	"github.com/venvfromfile/cli/internal/osutils"
)

// ExecSimple runs the given command, capturing stdout and stderr
func ExecSimple(ctx context.Context, bin string, args ...string) (string, string, error) {
	c := exec.CommandContext(ctx, bin, args...)
	logging.Debug("Executing command: %s", osutils.CmdString(c))

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		return stdout.String(), stderr.String(), errs.Wrap(err, "Exec failed: %s %v", bin, args)
	}

	return stdout.String(), stderr.String(), nil
}

// ExecuteAndPipeStd will run the given command and pipe stdin, stdout and stderr
func ExecuteAndPipeStd(ctx context.Context, command string, args []string, env []string) (int, error) {
	cmd := exec.CommandContext(ctx, command, args...)
	logging.Debug("Executing command and piping std: %s", osutils.CmdString(cmd))

	cmd.Env = append(os.Environ(), env...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr

	err := cmd.Run()
	if err != nil {
		logging.Debug("Executing command returned error: %v", err)
		return osutils.CmdExitCode(cmd), errs.Wrap(err, "Exec failed: %s %v", command, args)
	}
	return osutils.CmdExitCode(cmd), nil
}
