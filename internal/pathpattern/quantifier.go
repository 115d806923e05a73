package pathpattern

import "fmt"

// QuantifierKind discriminates the quantifier variants.
type QuantifierKind int

const (
	// QuantExactly repeats the inner pattern exactly N times.
	QuantExactly QuantifierKind = iota
	// QuantRange repeats between Min and Max times; either bound may be
	// absent (nil).
	QuantRange
	// QuantZeroOrMore repeats zero or more times.
	QuantZeroOrMore
	// QuantOneOrMore repeats one or more times.
	QuantOneOrMore
	// QuantZeroOrOne repeats zero or one time.
	QuantZeroOrOne
)

// String returns the string representation of a QuantifierKind.
func (k QuantifierKind) String() string {
	switch k {
	case QuantExactly:
		return "exactly"
	case QuantRange:
		return "range"
	case QuantZeroOrMore:
		return "zeroOrMore"
	case QuantOneOrMore:
		return "oneOrMore"
	case QuantZeroOrOne:
		return "zeroOrOne"
	default:
		return "unknown"
	}
}

// Quantifier is a repetition specifier attached to a quantified sub-pattern.
//
// N is meaningful only for QuantExactly; Min and Max only for QuantRange,
// where nil means the bound is absent. Well-formedness (N >= 0, and
// Min <= Max when both bounds are present) is checked by Validate and by
// the definition compiler - the algebra itself stays total on any value.
type Quantifier struct {
	Kind QuantifierKind
	N    int
	Min  *int
	Max  *int
}

// Exactly builds an exactly-n quantifier.
func Exactly(n int) Quantifier {
	return Quantifier{Kind: QuantExactly, N: n}
}

// Between builds a range quantifier with both bounds present.
func Between(min, max int) Quantifier {
	return Quantifier{Kind: QuantRange, Min: &min, Max: &max}
}

// AtLeast builds a range quantifier with only the lower bound.
func AtLeast(min int) Quantifier {
	return Quantifier{Kind: QuantRange, Min: &min}
}

// AtMost builds a range quantifier with only the upper bound.
func AtMost(max int) Quantifier {
	return Quantifier{Kind: QuantRange, Max: &max}
}

// ZeroOrMore repeats zero or more times (Kleene star).
var ZeroOrMore = Quantifier{Kind: QuantZeroOrMore}

// OneOrMore repeats one or more times (Kleene plus).
var OneOrMore = Quantifier{Kind: QuantOneOrMore}

// ZeroOrOne repeats zero or one time (optional).
var ZeroOrOne = Quantifier{Kind: QuantZeroOrOne}

// String returns a compact representation, e.g. "{3}", "{1,5}", "*".
func (q Quantifier) String() string {
	switch q.Kind {
	case QuantExactly:
		return fmt.Sprintf("{%d}", q.N)
	case QuantRange:
		lo, hi := "", ""
		if q.Min != nil {
			lo = fmt.Sprintf("%d", *q.Min)
		}
		if q.Max != nil {
			hi = fmt.Sprintf("%d", *q.Max)
		}
		return fmt.Sprintf("{%s,%s}", lo, hi)
	case QuantZeroOrMore:
		return "*"
	case QuantOneOrMore:
		return "+"
	case QuantZeroOrOne:
		return "?"
	default:
		return "unknown"
	}
}

// quantifierEqual reports structural equality of two quantifiers.
func quantifierEqual(a, b Quantifier) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case QuantExactly:
		return a.N == b.N
	case QuantRange:
		return intPtrEqual(a.Min, b.Min) && intPtrEqual(a.Max, b.Max)
	default:
		return true
	}
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func intPtr(n int) *int {
	return &n
}
