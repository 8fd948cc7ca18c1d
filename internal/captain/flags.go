package captain

import (
	"fmt"

	"github.com/venvfromfile/cli/internal/errs"
)

// FlagMarshaler is implemented by flag values that parse themselves.
type FlagMarshaler interface {
	String() string
	Set(string) error
	Type() string
}

// ArgMarshaler is implemented by argument values that parse themselves.
type ArgMarshaler interface {
	Set(string) error
}

// Flag is a flag definition. Value must point at the variable receiving
// the parsed value.
type Flag struct {
	Name        string
	Shorthand   string
	Description string
	Value       interface{}

	OnUse func()
}

// Argument is a positional argument definition.
type Argument struct {
	Name        string
	Description string
	Required    bool
	Value       interface{}
}

func (c *Command) setFlags(flags []*Flag) error {
	for _, flag := range flags {
		flagSetter := c.cobra.Flags

		switch v := flag.Value.(type) {
		case nil:
			return errs.New("flag %s has no value to bind to", flag.Name)
		case *string:
			flagSetter().StringVarP(v, flag.Name, flag.Shorthand, *v, flag.Description)
		case *int:
			flagSetter().IntVarP(v, flag.Name, flag.Shorthand, *v, flag.Description)
		case *bool:
			flagSetter().BoolVarP(v, flag.Name, flag.Shorthand, *v, flag.Description)
		case FlagMarshaler:
			flagSetter().VarP(v, flag.Name, flag.Shorthand, flag.Description)
		default:
			return errs.New(
				"unknown type for flag %s: %s (%v)",
				flag.Name, fmt.Sprintf("%T", v), v,
			)
		}
	}

	return nil
}
