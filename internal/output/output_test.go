package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type marshallerValue struct{}

func (m marshallerValue) MarshalOutput(format Format) interface{} {
	if format == JSONFormatName {
		return map[string]string{"kind": "json"}
	}
	return "plain rendition"
}

func TestPlain(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	o, err := New("plain", &Config{OutWriter: out, ErrWriter: errOut})
	require.NoError(t, err)

	o.Print("hello")
	o.Notice("heads up")
	o.Error("boom")

	assert.Equal(t, "hello\n", out.String())
	assert.Contains(t, errOut.String(), "heads up")
	assert.Contains(t, errOut.String(), "boom")
}

func TestJSON(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	o, err := New("json", &Config{OutWriter: out, ErrWriter: errOut})
	require.NoError(t, err)

	o.Print(map[string]int{"n": 1})
	o.Notice("should not appear")
	o.Error("boom")

	assert.JSONEq(t, `{"n": 1}`, out.String())
	assert.JSONEq(t, `{"error": "boom"}`, errOut.String())
}

func TestMediator(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	o, err := New("plain", &Config{OutWriter: out, ErrWriter: errOut})
	require.NoError(t, err)
	o.Print(marshallerValue{})
	assert.Equal(t, "plain rendition\n", out.String())

	out.Reset()
	o, err = New("json", &Config{OutWriter: out, ErrWriter: errOut})
	require.NoError(t, err)
	o.Print(marshallerValue{})
	assert.JSONEq(t, `{"kind": "json"}`, out.String())
}

func TestUnknownFormat(t *testing.T) {
	_, err := New("yaml", &Config{})
	require.Error(t, err)
}
