package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/venvfromfile/cli/internal/constants"
)

func TestParseOutputFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default", []string{"venvfromfile", "venvs.yaml"}, "plain"},
		{"short", []string{"venvfromfile", "-o", "json", "venvs.yaml"}, "json"},
		{"long", []string{"venvfromfile", "--output", "json", "venvs.yaml"}, "json"},
		{"long equals", []string{"venvfromfile", "--output=json", "venvs.yaml"}, "json"},
		{"short equals", []string{"venvfromfile", "-o=json", "venvs.yaml"}, "json"},
		{"dangling", []string{"venvfromfile", "--output"}, "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseOutputFlag(tt.args))
		})
	}
}

func TestDefaultPython(t *testing.T) {
	t.Setenv(constants.PythonEnvVarName, "")
	assert.Contains(t, defaultPython(), "python")

	t.Setenv(constants.PythonEnvVarName, "/usr/local/bin/python3.12")
	assert.Equal(t, "/usr/local/bin/python3.12", defaultPython())
}
