package main

import (
	"context"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/venvfromfile/cli/internal/captain"
	"github.com/venvfromfile/cli/internal/constants"
	"github.com/venvfromfile/cli/internal/errs"
	"github.com/venvfromfile/cli/internal/locale"
	"github.com/venvfromfile/cli/internal/logging"
	"github.com/venvfromfile/cli/internal/output"
	"github.com/venvfromfile/cli/internal/runners/build"
	"github.com/venvfromfile/cli/pkg/venv"
)

type options struct {
	verbose    bool
	format     string
	python     string
	timeout    string
	configFile string
}

func main() {
	var exitCode int
	defer func() {
		os.Exit(exitCode)
	}()

	logging.SetLevel(logging.NORMAL)

	opts := &options{
		format: string(output.PlainFormatName),
		python: defaultPython(),
	}

	// The output flag needs to be known before cobra parses it, so that
	// errors raised during parsing are already rendered in the right format.
	out, err := initOutput(os.Args, &output.Config{OutWriter: os.Stdout, ErrWriter: os.Stderr})
	if err != nil {
		os.Stderr.WriteString(locale.JoinedErrorMessage(err) + "\n")
		exitCode = 1
		return
	}

	err = run(os.Args, opts, out)
	if err != nil {
		exitCode = errs.UnwrapExitCode(err)

		if locale.IsInputError(err) {
			logging.Debug("Input error: %s", errs.JoinMessage(err))
		} else {
			logging.Error("Run failed: %s", errs.JoinMessage(err))
		}
		out.Error(locale.JoinedErrorMessage(err))
	}
}

func run(args []string, opts *options, out output.Outputer) error {
	cmd := captain.NewCommand(
		constants.CommandName,
		"Materializes Python virtual environments from declarative layout files.",
		[]*captain.Flag{
			{
				Name:        "verbose",
				Shorthand:   "v",
				Description: "Turn on verbose logging",
				Value:       &opts.verbose,
				OnUse: func() {
					logging.SetMinimalLevel(logging.DEBUG)
				},
			},
			{
				Name:        "output",
				Shorthand:   "o",
				Description: "Set the output format, one of plain or json",
				Value:       &opts.format,
			},
			{
				Name:        "python",
				Description: "The Python interpreter to drive",
				Value:       &opts.python,
			},
			{
				Name:        "timeout",
				Description: "Maximum duration of each interpreter subprocess, eg. 5m (unlimited when unset)",
				Value:       &opts.timeout,
			},
		},
		[]*captain.Argument{
			{
				Name:        "config-file",
				Description: "Layout file declaring the environments to build; more than one may be given",
				Required:    true,
				Value:       &opts.configFile,
			},
		},
		func(cmd *captain.Command, args []string) error {
			return execute(opts, args, out)
		})
	cmd.SetVersion(constants.Version)

	return cmd.Execute(args[1:])
}

func execute(opts *options, configFiles []string, out output.Outputer) error {
	if verbose := os.Getenv(constants.VerboseEnvVarName); verbose != "" && verbose != "false" {
		logging.SetMinimalLevel(logging.DEBUG)
	}

	var timeout time.Duration
	if opts.timeout != "" {
		var err error
		timeout, err = time.ParseDuration(opts.timeout)
		if err != nil {
			return locale.WrapInputError(err, "command_flag_invalid_value",
				"Invalid value for flag {{.V0}}: {{.V1}}", "--timeout", opts.timeout)
		}
	}

	svc := venv.NewService(opts.python, timeout)
	runner := build.New(out, svc)
	return runner.Run(context.Background(), build.RunParams{ConfigFiles: configFiles})
}

// initOutput pre-parses the output flag so feedback emitted before cobra
// runs already honors the requested format.
func initOutput(args []string, config *output.Config) (output.Outputer, error) {
	return output.New(parseOutputFlag(args), config)
}

func parseOutputFlag(args []string) string {
	format := string(output.PlainFormatName)
	for i, arg := range args {
		switch {
		case arg == "-o" || arg == "--output":
			if i+1 < len(args) {
				format = args[i+1]
			}
		case strings.HasPrefix(arg, "--output="):
			format = strings.TrimPrefix(arg, "--output=")
		case strings.HasPrefix(arg, "-o="):
			format = strings.TrimPrefix(arg, "-o=")
		}
	}
	return format
}

func defaultPython() string {
	if python := os.Getenv(constants.PythonEnvVarName); python != "" {
		return python
	}
	if runtime.GOOS == "windows" {
		return "python"
	}
	return "python3"
}
