package pyver

import (
	"fmt"
	"strings"
)

// Operator is a comparison operator as a string
type Operator string

// The comparison operators supported in version constraints. Note the
// deliberate absence of "!=".
const (
	OpLess      Operator = "<"
	OpLessEq    Operator = "<="
	OpGreater   Operator = ">"
	OpGreaterEq Operator = ">="
	OpEqual     Operator = "=="
)

var operators = []Operator{OpLessEq, OpGreaterEq, OpEqual, OpLess, OpGreater} // two-char operators first

// MalformedConstraintError is returned when a version or constraint string
// cannot be parsed. It is fatal to configuration loading.
type MalformedConstraintError struct {
	Text   string
	Reason string
}

func (e *MalformedConstraintError) Error() string {
	return fmt.Sprintf("malformed version constraint %q: %s", e.Text, e.Reason)
}

// Constraint is a version combined with a comparison operator. It is
// immutable once parsed.
type Constraint struct {
	op      Operator
	version Version
}

// NewConstraint combines the given operator and version into a Constraint
func NewConstraint(op Operator, version Version) Constraint {
	return Constraint{op, version}
}

// ParseConstraint parses a constraint of the form "<op><dotted-integers>",
// where <op> is one of <, <=, >, >= and ==.
func ParseConstraint(text string) (Constraint, error) {
	return parseConstraint(text, nil, "")
}

// ParseMinConstraint parses a lower-bound constraint. Only ">" and ">=" are
// allowed as operators; a bare version defaults to ">=" (inclusive).
func ParseMinConstraint(text string) (Constraint, error) {
	return parseConstraint(text, []Operator{OpGreater, OpGreaterEq}, OpGreaterEq)
}

// ParseMaxConstraint parses an upper-bound constraint. Only "<" and "<=" are
// allowed as operators; a bare version defaults to "<" (exclusive).
func ParseMaxConstraint(text string) (Constraint, error) {
	return parseConstraint(text, []Operator{OpLess, OpLessEq}, OpLess)
}

// parseConstraint parses an operator-prefixed version string. When allowed is
// non-nil the operator must be one of its entries, and a missing operator
// falls back to dflt rather than being an error.
func parseConstraint(text string, allowed []Operator, dflt Operator) (Constraint, error) {
	stripped := whitespaceRe.ReplaceAllString(text, "")
	if stripped == "" {
		return Constraint{}, &MalformedConstraintError{text, "constraint is empty"}
	}

	op, rest := splitOperator(stripped)
	if op == "" {
		if dflt == "" {
			return Constraint{}, &MalformedConstraintError{text, "missing comparison operator"}
		}
		op = dflt
	} else if allowed != nil && !operatorIn(op, allowed) {
		return Constraint{}, &MalformedConstraintError{
			text, fmt.Sprintf("operator %q is not allowed here, expected one of %s", op, joinOperators(allowed)),
		}
	}

	version, err := ParseVersion(rest)
	if err != nil {
		return Constraint{}, err
	}

	return Constraint{op, version}, nil
}

func splitOperator(text string) (Operator, string) {
	for _, op := range operators {
		if strings.HasPrefix(text, string(op)) {
			return op, text[len(op):]
		}
	}
	return "", text
}

func operatorIn(op Operator, ops []Operator) bool {
	for _, o := range ops {
		if o == op {
			return true
		}
	}
	return false
}

func joinOperators(ops []Operator) string {
	strs := make([]string, len(ops))
	for i, op := range ops {
		strs[i] = fmt.Sprintf("%q", string(op))
	}
	return strings.Join(strs, ", ")
}

// Operator returns the constraint's comparison operator
func (c Constraint) Operator() Operator {
	return c.op
}

// Version returns the constraint's version operand
func (c Constraint) Version() Version {
	return c.version
}

func (c Constraint) String() string {
	return string(c.op) + c.version.String()
}

// Holds evaluates `actual OP version` for the given actual version. It never
// fails for a valid Version input.
func (c Constraint) Holds(actual Version) bool {
	cmp := actual.Compare(c.version)
	switch c.op {
	case OpLess:
		return cmp < 0
	case OpLessEq:
		return cmp <= 0
	case OpGreater:
		return cmp > 0
	case OpGreaterEq:
		return cmp >= 0
	case OpEqual:
		return cmp == 0
	}
	return false
}
