// Package captain wraps cobra so that commands declare their flags and
// arguments as plain data and get localized input errors for free.
package captain

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/venvfromfile/cli/internal/locale"
)

type Executor func(cmd *Command, args []string) error

type Command struct {
	cobra *cobra.Command

	flags     []*Flag
	arguments []*Argument

	execute Executor
}

func NewCommand(name, description string, flags []*Flag, args []*Argument, executor Executor) *Command {
	// Validate args
	for idx, arg := range args {
		if idx > 0 && arg.Required && !args[idx-1].Required {
			msg := fmt.Sprintf(
				"Cannot have a non-required argument followed by a required argument.\n\n%v\n\n%v",
				arg, args[len(args)-1],
			)
			panic(msg)
		}
	}

	cmd := &Command{
		execute:   executor,
		arguments: args,
		flags:     flags,
	}

	short := description
	if idx := strings.IndexByte(description, '.'); idx > 0 {
		short = description[0:idx]
	}

	cmd.cobra = &cobra.Command{
		Use:   name,
		Short: short,
		Long:  description,
		RunE:  cmd.runner,

		// Silence errors and usage, we handle that ourselves
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	if err := cmd.setFlags(flags); err != nil {
		panic(err)
	}

	return cmd
}

func (c *Command) UsageText() string {
	return c.cobra.UsageString()
}

func (c *Command) Help() string {
	return fmt.Sprintf("%s\n\n%s", c.cobra.Short, c.UsageText())
}

func (c *Command) SetVersion(version string) {
	c.cobra.Version = version
}

func (c *Command) Execute(args []string) error {
	c.cobra.SetArgs(args)
	err := c.cobra.Execute()
	c.cobra.SetArgs(nil)
	return setupSensibleErrors(err)
}

func (c *Command) Arguments() []*Argument {
	return c.arguments
}

func (c *Command) flagByName(name string) *Flag {
	for _, flag := range c.flags {
		if flag.Name == name {
			return flag
		}
	}
	return nil
}

func (c *Command) runner(cobraCmd *cobra.Command, args []string) error {
	// Run OnUse functions for flags that were set
	c.cobra.Flags().VisitAll(func(cobraFlag *pflag.Flag) {
		if !cobraFlag.Changed {
			return
		}
		flag := c.flagByName(cobraFlag.Name)
		if flag == nil || flag.OnUse == nil {
			return
		}
		flag.OnUse()
	})

	for idx, arg := range c.arguments {
		if arg.Required && idx > len(args)-1 {
			return locale.NewInputError("err_arg_required",
				"The following argument is required: {{.V0}} ({{.V1}})",
				arg.Name, arg.Description)
		}

		if idx >= len(args) {
			break
		}

		switch v := arg.Value.(type) {
		case *string:
			*v = args[idx]
		case ArgMarshaler:
			if err := v.Set(args[idx]); err != nil {
				return err
			}
		default:
			panic(fmt.Sprintf("arg: %s must be *string, or ArgMarshaler", arg.Name))
		}
	}

	return c.execute(c, args)
}

// setupSensibleErrors inspects an error value for certain errors and returns a
// wrapped error that can be checked and that is localized.
func setupSensibleErrors(err error) error {
	if err == nil {
		return nil
	}

	errMsg := err.Error()

	// pflag: flag.go: output being parsed:
	// fmt.Errorf("invalid argument %q for %q flag: %v", value, flagName, err)
	invalidArg := "invalid argument "
	if strings.Contains(errMsg, invalidArg) {
		segments := strings.SplitN(errMsg, ": ", 2)

		flagText := "{unknown flag}"
		msg := "unknown error"

		if len(segments) > 0 {
			subsegs := strings.SplitN(segments[0], "for ", 2)
			if len(subsegs) > 1 {
				flagText = strings.TrimSuffix(subsegs[1], " flag")
			}
		}

		if len(segments) > 1 {
			msg = segments[1]
		}

		return locale.NewInputError("command_flag_invalid_value",
			"Invalid value for flag {{.V0}}: {{.V1}}", flagText, msg)
	}

	// pflag: flag.go: output being parsed:
	// fmt.Errorf("no such flag -%v", name)
	// fmt.Errorf("unknown flag: %s", name)
	for _, prefix := range []string{"no such flag ", "unknown flag: ", "unknown shorthand flag: "} {
		if strings.Contains(errMsg, prefix) {
			flagText := strings.TrimPrefix(errMsg, prefix)
			return locale.NewInputError("command_flag_no_such_flag",
				"Could not recognize flag: {{.V0}}", flagText)
		}
	}

	return err
}
