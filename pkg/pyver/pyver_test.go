package pyver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustVersion(t *testing.T, text string) Version {
	t.Helper()
	v, err := ParseVersion(text)
	require.NoError(t, err, "version %q should parse", text)
	return v
}

func TestParseVersion(t *testing.T) {
	valid := []string{"3", "3.7", "3.7.1", "1.0.0.4", "0.0", " 3.7 "}
	for _, text := range valid {
		t.Run(text, func(t *testing.T) {
			_, err := ParseVersion(text)
			assert.NoError(t, err)
		})
	}

	invalid := []string{"", "3.", ".7", "3..7", "-3.7", "3.-1", "3.7b1", "3.7-beta", "3,7", "v3.7"}
	for _, text := range invalid {
		t.Run(text, func(t *testing.T) {
			_, err := ParseVersion(text)
			require.Error(t, err)
			var merr *MalformedConstraintError
			assert.True(t, errors.As(err, &merr), "error should be a MalformedConstraintError")
		})
	}
}

func TestVersionCompareZeroPadding(t *testing.T) {
	tests := []struct {
		left, right string
		want        int
	}{
		{"1.0", "1.0.0", 0},
		{"1.0.0", "1.0", 0},
		{"3.7", "3.7.1", -1},
		{"3.8", "3.7.9", 1},
		{"3.10", "3.9", 1}, // numeric, not lexicographic
		{"1.0.0.1", "1.0", 1},
	}
	for _, tt := range tests {
		t.Run(tt.left+" vs "+tt.right, func(t *testing.T) {
			left := mustVersion(t, tt.left)
			right := mustVersion(t, tt.right)
			assert.Equal(t, tt.want, left.Compare(right))
		})
	}
}

func TestParseConstraint(t *testing.T) {
	tests := []struct {
		text    string
		op      Operator
		version string
	}{
		{">=3.7", OpGreaterEq, "3.7"},
		{">3.7", OpGreater, "3.7"},
		{"<=3.10", OpLessEq, "3.10"},
		{"<4", OpLess, "4"},
		{"==3.8.5", OpEqual, "3.8.5"},
		{" >= 3.7 ", OpGreaterEq, "3.7"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			c, err := ParseConstraint(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.op, c.Operator())
			assert.Equal(t, tt.version, c.Version().String())
		})
	}

	invalid := []string{"", "3.7", "!=3.7", "=3.7", ">=", ">=3.x", "~3.7"}
	for _, text := range invalid {
		t.Run("invalid "+text, func(t *testing.T) {
			_, err := ParseConstraint(text)
			require.Error(t, err)
			var merr *MalformedConstraintError
			assert.True(t, errors.As(err, &merr))
		})
	}
}

func TestConstraintHolds(t *testing.T) {
	c, err := ParseConstraint(">=3.7")
	require.NoError(t, err)

	assert.True(t, c.Holds(mustVersion(t, "3.7.1")))
	assert.True(t, c.Holds(mustVersion(t, "3.8")))
	assert.True(t, c.Holds(mustVersion(t, "3.7")))
	assert.False(t, c.Holds(mustVersion(t, "3.6.9")))

	eq, err := ParseConstraint("==1.0.0")
	require.NoError(t, err)
	assert.True(t, eq.Holds(mustVersion(t, "1.0")), "1.0 should equal 1.0.0 via zero padding")

	lt, err := ParseConstraint("<3.9")
	require.NoError(t, err)
	assert.True(t, lt.Holds(mustVersion(t, "3.8.5")))
	assert.False(t, lt.Holds(mustVersion(t, "3.9")))
	assert.False(t, lt.Holds(mustVersion(t, "3.9.0")))
}

func TestNewConstraint(t *testing.T) {
	c := NewConstraint(OpGreaterEq, mustVersion(t, "3.7"))
	assert.Equal(t, ">=3.7", c.String())
	assert.True(t, c.Holds(mustVersion(t, "3.8")))
	assert.False(t, c.Holds(mustVersion(t, "3.6")))
}

func TestVersionSegments(t *testing.T) {
	assert.Equal(t, []int{3, 7, 0}, mustVersion(t, "3.7").Segments())
	assert.Equal(t, []int{3, 7, 1}, mustVersion(t, "3.7.1").Segments())
}

func TestVersionIsZero(t *testing.T) {
	assert.True(t, Version{}.IsZero())
	assert.False(t, mustVersion(t, "3.7").IsZero())
}

func TestParseMinMaxConstraintDefaults(t *testing.T) {
	min, err := ParseMinConstraint("3.7")
	require.NoError(t, err)
	assert.Equal(t, OpGreaterEq, min.Operator(), "bare min version is inclusive")

	max, err := ParseMaxConstraint("3.11")
	require.NoError(t, err)
	assert.Equal(t, OpLess, max.Operator(), "bare max version is exclusive")

	min, err = ParseMinConstraint(">3.7")
	require.NoError(t, err)
	assert.Equal(t, OpGreater, min.Operator())

	max, err = ParseMaxConstraint("<=3.11")
	require.NoError(t, err)
	assert.Equal(t, OpLessEq, max.Operator())
}

func TestParseMinMaxConstraintRejectsWrongOperators(t *testing.T) {
	for _, text := range []string{"<3.7", "<=3.7", "==3.7"} {
		_, err := ParseMinConstraint(text)
		assert.Error(t, err, "min constraint should reject %q", text)
	}
	for _, text := range []string{">3.7", ">=3.7", "==3.7"} {
		_, err := ParseMaxConstraint(text)
		assert.Error(t, err, "max constraint should reject %q", text)
	}
}

func TestRangeApplies(t *testing.T) {
	versions := []string{"0.1", "2.7.18", "3.6.9", "3.7", "3.8.5", "3.12", "4.0"}

	empty := Range{}
	for _, text := range versions {
		assert.True(t, empty.Applies(mustVersion(t, text)), "empty range should apply to %s", text)
	}

	r, err := ParseRange(">=3.8", "<3.9")
	require.NoError(t, err)
	assert.True(t, r.Applies(mustVersion(t, "3.8.5")))
	assert.True(t, r.Applies(mustVersion(t, "3.8")))
	assert.False(t, r.Applies(mustVersion(t, "3.9")))
	assert.False(t, r.Applies(mustVersion(t, "3.7.9")))

	minOnly, err := ParseRange("3.7", "")
	require.NoError(t, err)
	assert.True(t, minOnly.Applies(mustVersion(t, "99.0")))
	assert.False(t, minOnly.Applies(mustVersion(t, "3.6")))

	maxOnly, err := ParseRange("", "3.7")
	require.NoError(t, err)
	assert.True(t, maxOnly.Applies(mustVersion(t, "3.6.15")))
	assert.False(t, maxOnly.Applies(mustVersion(t, "3.7")), "bare max bound is exclusive")

	_, err = ParseRange("bogus", "")
	assert.Error(t, err)
}
