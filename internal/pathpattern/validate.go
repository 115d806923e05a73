package pathpattern

import "fmt"

// ValidationResult contains well-formedness analysis of a pattern.
//
// The algebra itself is total and never fails: bound computation,
// collection, and transformations accept any pattern value, well-formed or
// not. Validate exists for boundaries that construct patterns from user
// input and want to reject nonsense before handing it downstream.
type ValidationResult struct {
	// IsWellFormed indicates the pattern satisfies every structural
	// invariant. True means Warnings is empty.
	IsWellFormed bool

	// Warnings lists each violated invariant with its location.
	Warnings []string
}

// Validate checks a pattern against the structural invariants:
//
//  1. exactly(n) requires n >= 0
//  2. range(min, max) requires min <= max when both bounds are present
//  3. an alternation must have at least one branch
//  4. a quantified element must have a non-empty inner pattern
//  5. the pattern itself must have at least one element
//
// Validate is a pure function with no side effects. Violations are
// reported as warnings, never panics - a malformed pattern still flows
// through every algebra function with total semantics.
func Validate(p Pattern) ValidationResult {
	v := &validator{}
	v.validatePattern(p, "pattern")
	if len(p.Elements) == 0 {
		// Only the top level requires elements; nested empties are
		// reported against their own paths by validatePattern.
		v.warnings = append(v.warnings, "pattern: no elements")
	}

	return ValidationResult{
		IsWellFormed: len(v.warnings) == 0,
		Warnings:     v.warnings,
	}
}

// validator accumulates warnings during traversal.
type validator struct {
	warnings []string
}

func (v *validator) addWarning(path, format string, args ...any) {
	v.warnings = append(v.warnings, path+": "+fmt.Sprintf(format, args...))
}

func (v *validator) validatePattern(p Pattern, path string) {
	for i, el := range p.Elements {
		elPath := fmt.Sprintf("%s.elements[%d]", path, i)
		switch e := el.(type) {
		case NodePattern, EdgePattern:
			// Leaves carry no structural invariants; labels and property
			// payloads are opaque to the algebra.
		case Quantified:
			v.validateQuantifier(e.Quantifier, elPath)
			if len(e.Inner.Elements) == 0 {
				v.addWarning(elPath, "quantified element has an empty inner pattern")
			}
			v.validatePattern(e.Inner, elPath+".inner")
		case Alternation:
			if len(e.Branches) == 0 {
				v.addWarning(elPath, "alternation has no branches")
			}
			for j, b := range e.Branches {
				v.validatePattern(b, fmt.Sprintf("%s.branches[%d]", elPath, j))
			}
		}
	}
}

func (v *validator) validateQuantifier(q Quantifier, path string) {
	switch q.Kind {
	case QuantExactly:
		if q.N < 0 {
			v.addWarning(path, "exactly(%d): repeat count must be non-negative", q.N)
		}
	case QuantRange:
		if q.Min != nil && *q.Min < 0 {
			v.addWarning(path, "range lower bound %d must be non-negative", *q.Min)
		}
		if q.Max != nil && *q.Max < 0 {
			v.addWarning(path, "range upper bound %d must be non-negative", *q.Max)
		}
		if q.Min != nil && q.Max != nil && *q.Min > *q.Max {
			v.addWarning(path, "range bounds inverted: min %d > max %d", *q.Min, *q.Max)
		}
	}
}
