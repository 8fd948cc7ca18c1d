package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venvfromfile/cli/internal/errs"
)

func TestErrs(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		wantMessage     string
		wantJoinMessage string
	}{
		{
			"Creates error",
			errs.New("hello %s", "world"),
			"hello world",
			"hello world",
		},
		{
			"Creates wrapped error",
			errs.Wrap(errors.New("Wrapped"), "Wrapper %s", "error"),
			"Wrapper error",
			"Wrapper error: Wrapped",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.err
			assert.Equal(t, tt.wantMessage, err.Error())

			var ee errs.Error
			require.True(t, errors.As(err, &ee), "Error should be of type errs.Error")
			assert.NotNil(t, ee.Stack(), "Error should have a stacktrace")

			assert.Equal(t, tt.wantJoinMessage, errs.JoinMessage(err))
		})
	}
}

func TestUnwrapExitCode(t *testing.T) {
	assert.Equal(t, 0, errs.UnwrapExitCode(nil))
	assert.Equal(t, 1, errs.UnwrapExitCode(errs.New("plain")))

	err := errs.WrapExitCode(fmt.Errorf("failed"), 3)
	assert.Equal(t, 3, errs.UnwrapExitCode(err))

	wrapped := errs.Wrap(err, "outer")
	assert.Equal(t, 3, errs.UnwrapExitCode(wrapped))
}
