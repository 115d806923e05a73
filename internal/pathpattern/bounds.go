package pathpattern

// MinLength returns the minimum number of traversal hops (nodes plus edges)
// a pattern can match. It folds over the elements left to right, summing
// per-element contributions:
//
//   - node, edge: 1
//   - quantified: inner minimum times the quantifier's lowest repeat count
//     (zero for zeroOrMore, zeroOrOne, and an absent range lower bound)
//   - alternation: the minimum across branches - the shortest branch is
//     always achievable
func MinLength(p Pattern) int {
	total := 0
	for _, el := range p.Elements {
		total += minOfElement(el)
	}
	return total
}

func minOfElement(el Element) int {
	switch e := el.(type) {
	case NodePattern:
		return 1
	case EdgePattern:
		return 1
	case Quantified:
		innerMin := MinLength(e.Inner)
		q := e.Quantifier
		switch q.Kind {
		case QuantExactly:
			return innerMin * q.N
		case QuantRange:
			lo := 0
			if q.Min != nil {
				lo = *q.Min
			}
			return innerMin * lo
		case QuantZeroOrMore:
			return 0
		case QuantOneOrMore:
			return innerMin
		case QuantZeroOrOne:
			return 0
		}
		return 0
	case Alternation:
		if len(e.Branches) == 0 {
			return 0
		}
		best := MinLength(e.Branches[0])
		for _, b := range e.Branches[1:] {
			if m := MinLength(b); m < best {
				best = m
			}
		}
		return best
	default:
		return 0
	}
}

// MaxLength returns the maximum number of traversal hops a pattern can
// match, or nil when the pattern is unbounded. The fold short-circuits:
// one unbounded element makes the whole pattern unbounded.
//
// KNOWN QUIRK: zeroOrMore and oneOrMore contribute unbounded
// unconditionally, even when the inner pattern's own maximum is 0 (a
// repeated zero-length pattern is mathematically still zero-length).
// Downstream planners rely on this conservative answer, so it is load
// bearing; TestMaxLength_RepeatedZeroLengthQuirk pins it.
func MaxLength(p Pattern) *int {
	total := 0
	for _, el := range p.Elements {
		m := maxOfElement(el)
		if m == nil {
			return nil
		}
		total += *m
	}
	return intPtr(total)
}

func maxOfElement(el Element) *int {
	switch e := el.(type) {
	case NodePattern:
		return intPtr(1)
	case EdgePattern:
		return intPtr(1)
	case Quantified:
		q := e.Quantifier
		switch q.Kind {
		case QuantExactly:
			innerMax := MaxLength(e.Inner)
			if innerMax == nil {
				return nil
			}
			return intPtr(*innerMax * q.N)
		case QuantRange:
			if q.Max == nil {
				return nil
			}
			innerMax := MaxLength(e.Inner)
			if innerMax == nil {
				return nil
			}
			return intPtr(*innerMax * *q.Max)
		case QuantZeroOrMore, QuantOneOrMore:
			// Unconditionally unbounded, regardless of the inner maximum.
			return nil
		case QuantZeroOrOne:
			return MaxLength(e.Inner)
		}
		return nil
	case Alternation:
		if len(e.Branches) == 0 {
			return intPtr(0)
		}
		best := 0
		for _, b := range e.Branches {
			m := MaxLength(b)
			if m == nil {
				return nil
			}
			if *m > best {
				best = *m
			}
		}
		return intPtr(best)
	default:
		return intPtr(0)
	}
}

// CanMatchEmpty reports whether the pattern can match a zero-length
// traversal.
func CanMatchEmpty(p Pattern) bool {
	return MinLength(p) == 0
}

// IsUnbounded reports whether the pattern has no maximum traversal length.
func IsUnbounded(p Pattern) bool {
	return MaxLength(p) == nil
}
