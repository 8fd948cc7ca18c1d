package pyver

// Range combines an optional minimum and maximum constraint into a single
// applicability predicate. The zero value applies to every version.
type Range struct {
	min *Constraint
	max *Constraint
}

// NewRange constructs a Range from optional bounds; either or both may be nil
func NewRange(min, max *Constraint) Range {
	return Range{min, max}
}

// ParseRange parses the optional min and max constraint strings, applying the
// lower/upper bound operator rules of ParseMinConstraint and
// ParseMaxConstraint. Empty strings mean unbounded on that side.
func ParseRange(minText, maxText string) (Range, error) {
	var r Range
	if minText != "" {
		min, err := ParseMinConstraint(minText)
		if err != nil {
			return Range{}, err
		}
		r.min = &min
	}
	if maxText != "" {
		max, err := ParseMaxConstraint(maxText)
		if err != nil {
			return Range{}, err
		}
		r.max = &max
	}
	return r, nil
}

// Min returns the lower bound, or nil if unbounded
func (r Range) Min() *Constraint {
	return r.min
}

// Max returns the upper bound, or nil if unbounded
func (r Range) Max() *Constraint {
	return r.max
}

// Applies returns whether the given version satisfies all present bounds
func (r Range) Applies(actual Version) bool {
	if r.min != nil && !r.min.Holds(actual) {
		return false
	}
	if r.max != nil && !r.max.Holds(actual) {
		return false
	}
	return true
}

func (r Range) String() string {
	switch {
	case r.min == nil && r.max == nil:
		return "any"
	case r.min == nil:
		return r.max.String()
	case r.max == nil:
		return r.min.String()
	}
	return r.min.String() + "," + r.max.String()
}
