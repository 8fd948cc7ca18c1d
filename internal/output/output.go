package output

import (
	"io"

	"github.com/venvfromfile/cli/internal/locale"
	"github.com/venvfromfile/cli/internal/logging"
)

// Format represents an output format, e.g. plain or json
type Format string

// FormatName constants are tokens representing supported output formats.
const (
	PlainFormatName Format = "plain" // human readable
	JSONFormatName  Format = "json"  // plain json
)

// Outputer is the initialized formatter
type Outputer interface {
	Print(value interface{})
	Error(value interface{})
	Notice(value interface{})
	Config() *Config
}

// Config is the thing we pass to Outputer constructors
type Config struct {
	OutWriter io.Writer
	ErrWriter io.Writer
}

// New constructs a new Outputer according to the given format name
func New(formatName string, config *Config) (Outputer, error) {
	logging.Debug("Requested outputer for %s", formatName)

	format := Format(formatName)
	switch format {
	case "", PlainFormatName:
		logging.Debug("Using Plain outputer")
		plain := NewPlain(config)
		return &Mediator{&plain, PlainFormatName}, nil
	case JSONFormatName:
		logging.Debug("Using JSON outputer")
		json := NewJSON(config)
		return &Mediator{&json, JSONFormatName}, nil
	}

	return nil, locale.NewInputError("err_unknown_format", "", string(formatName))
}
