package output

import (
	"encoding/json"

	"github.com/venvfromfile/cli/internal/logging"
)

// JSON is our JSON outputer, it renders JSON and ONLY JSON on the out writer
type JSON struct {
	cfg *Config
}

// NewJSON constructs a new JSON struct
func NewJSON(config *Config) JSON {
	return JSON{config}
}

// Config returns the Config struct for the active instance
func (f *JSON) Config() *Config {
	return f.cfg
}

// Print will marshal and print the given value to the out writer
func (f *JSON) Print(value interface{}) {
	b, err := json.Marshal(value)
	if err != nil {
		logging.Error("Could not marshal value, error: %v", err)
		f.Error(err.Error())
		return
	}
	f.cfg.OutWriter.Write(b)
	f.cfg.OutWriter.Write([]byte("\n"))
}

// Error will marshal and print the given value to the error writer
func (f *JSON) Error(value interface{}) {
	errStruct := struct {
		Error interface{} `json:"error"`
	}{sprint(value)}
	b, err := json.Marshal(errStruct)
	if err != nil {
		logging.Error("Could not marshal value, error: %v", err)
		return
	}
	f.cfg.ErrWriter.Write(b)
	f.cfg.ErrWriter.Write([]byte("\n"))
}

// Notice is ignored by JSON, as they are not usually appropriate for JSON output
func (f *JSON) Notice(value interface{}) {
	logging.Debug("JSON outputer ignored notice: %v", value)
}
