package outputhelper

import (
	"bytes"

	"github.com/venvfromfile/cli/internal/output"
)

type catcher struct {
	output.Outputer
	outWriter *bytes.Buffer
	errWriter *bytes.Buffer
}

func NewCatcher() *catcher {
	catch := &catcher{}

	catch.outWriter = &bytes.Buffer{}
	catch.errWriter = &bytes.Buffer{}

	outputer, err := output.New(string(output.PlainFormatName), &output.Config{
		OutWriter: catch.outWriter,
		ErrWriter: catch.errWriter,
	})
	if err != nil {
		panic("Could not create plain outputer: " + err.Error())
	}

	catch.Outputer = outputer

	return catch
}

func (c *catcher) Output() string {
	return c.outWriter.String()
}

func (c *catcher) ErrorOutput() string {
	return c.errWriter.String()
}

func (c *catcher) CombinedOutput() string {
	return c.Output() + "\n" + c.ErrorOutput()
}

// TypedCatcher records the raw values passed to the Outputer, so tests can
// assert on them directly
type TypedCatcher struct {
	Prints  []interface{}
	Errors  []interface{}
	Notices []interface{}
}

func (t *TypedCatcher) Print(value interface{}) {
	t.Prints = append(t.Prints, value)
}

func (t *TypedCatcher) Error(value interface{}) {
	t.Errors = append(t.Errors, value)
}

func (t *TypedCatcher) Notice(value interface{}) {
	t.Notices = append(t.Notices, value)
}

func (t *TypedCatcher) Config() *output.Config {
	return &output.Config{}
}
