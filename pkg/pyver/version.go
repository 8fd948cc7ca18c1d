// Package pyver implements parsing and matching of Python interpreter
// versions and version constraints.
//
// Versions are dot-separated sequences of non-negative integers. Comparison
// follows the interpreter's own tuple semantics: the shorter operand is
// treated as if zero-padded on the right, so "1.0" and "1.0.0" are equal.
package pyver

import (
	"regexp"

	goversion "github.com/hashicorp/go-version"
)

var versionRe = regexp.MustCompile(`^[0-9]+(\.[0-9]+)*$`)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Version is a parsed interpreter version
type Version struct {
	raw string
	v   *goversion.Version
}

// ParseVersion parses a dot-separated sequence of non-negative integers.
// Anything else, including pre-release suffixes, fails with a
// MalformedConstraintError.
func ParseVersion(text string) (Version, error) {
	text = whitespaceRe.ReplaceAllString(text, "")
	if !versionRe.MatchString(text) {
		return Version{}, &MalformedConstraintError{text, "version must be dot-separated non-negative integers"}
	}

	v, err := goversion.NewVersion(text)
	if err != nil {
		return Version{}, &MalformedConstraintError{text, err.Error()}
	}

	return Version{text, v}, nil
}

// String returns the version as it was given, minus whitespace
func (v Version) String() string {
	return v.raw
}

// Segments returns the numeric components of the version, zero-padded to at
// least three entries
func (v Version) Segments() []int {
	return v.v.Segments()
}

// Compare returns -1, 0 or 1 depending on whether v is smaller than, equal
// to, or greater than o. Operands of different lengths are zero-padded.
func (v Version) Compare(o Version) int {
	return v.v.Compare(o.v)
}

// IsZero reports whether v is the zero value rather than a parsed version
func (v Version) IsZero() bool {
	return v.v == nil
}
