package output

import (
	"fmt"
	"io"
)

// Plain is our plain outputer, it renders human readable output
type Plain struct {
	cfg *Config
}

// NewPlain constructs a new Plain struct
func NewPlain(config *Config) Plain {
	return Plain{config}
}

// Config returns the Config struct for the active instance
func (f *Plain) Config() *Config {
	return f.cfg
}

// Print will print the value to the out writer
func (f *Plain) Print(value interface{}) {
	f.write(f.cfg.OutWriter, value)
}

// Error will print the value to the error writer
func (f *Plain) Error(value interface{}) {
	f.write(f.cfg.ErrWriter, value)
}

// Notice is a message that is not part of the primary output, it goes to the
// error writer so that stdout output stays machine-consumable
func (f *Plain) Notice(value interface{}) {
	f.write(f.cfg.ErrWriter, value)
}

func (f *Plain) write(writer io.Writer, value interface{}) {
	fmt.Fprintln(writer, sprint(value))
}

func sprint(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", value)
	}
}
