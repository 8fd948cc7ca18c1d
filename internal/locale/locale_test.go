package locale

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTr(t *testing.T) {
	assert.Equal(t, "Could not recognize flag: --bogus", Tr("command_flag_no_such_flag", "--bogus"))
}

func TestTlFallback(t *testing.T) {
	assert.Equal(t, "Could not recognize flag: --bogus", Tl("command_flag_no_such_flag", "ignored", "--bogus"))
	assert.Equal(t, "No catalog entry for x", Tl("err_no_such_id", "No catalog entry for {{.V0}}", "x"))
}

func TestInputError(t *testing.T) {
	err := NewInputError("err_test_input", "Bad input")
	assert.True(t, IsInputError(err))
	assert.Equal(t, "Bad input", err.Error())

	wrapped := WrapError(err, "err_test_outer", "Outer")
	assert.True(t, IsInputError(wrapped))
	assert.Equal(t, "Outer: Bad input", JoinedErrorMessage(wrapped))

	assert.False(t, IsInputError(errors.New("plain")))
}
