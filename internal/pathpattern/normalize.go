package pathpattern

// Normalized returns the canonical form of a pattern:
//
//  1. Quantified inners are normalized recursively. Nested quantification
//     is preserved verbatim: a single-element inner whose sole element is
//     another quantified element is NOT flattened, because merging repeat
//     counts silently changes matching semantics once per-repetition
//     property constraints are in play. This is a deliberate
//     non-simplification, not an omission.
//  2. Alternation branches are normalized, then duplicate branches are
//     removed with full deep structural equality in an O(n²) scan,
//     preserving first-occurrence order. A hash-set is never used here: a
//     hash collision could silently drop a distinct branch.
//  3. An alternation left with exactly one branch is replaced by that
//     branch's own elements, spliced inline into the parent sequence.
//
// Normalized is idempotent: Normalized(Normalized(p)) equals Normalized(p).
func Normalized(p Pattern) Pattern {
	out := Pattern{Binding: p.Binding, Mode: p.Mode}
	if p.Elements == nil {
		return out
	}
	out.Elements = make([]Element, 0, len(p.Elements))
	for _, el := range p.Elements {
		switch e := el.(type) {
		case Quantified:
			out.Elements = append(out.Elements, Quantified{
				Inner:      Normalized(e.Inner),
				Quantifier: e.Quantifier,
			})
		case Alternation:
			branches := dedupBranches(e.Branches)
			if len(branches) == 1 {
				// Degenerate single-branch alternation: splice the branch's
				// elements inline.
				out.Elements = append(out.Elements, branches[0].Elements...)
			} else {
				out.Elements = append(out.Elements, Alternation{Branches: branches})
			}
		default:
			out.Elements = append(out.Elements, el)
		}
	}
	return out
}

// dedupBranches normalizes each branch and removes structural duplicates,
// keeping the first occurrence of each distinct branch.
func dedupBranches(branches []Pattern) []Pattern {
	kept := make([]Pattern, 0, len(branches))
	for _, b := range branches {
		nb := Normalized(b)
		duplicate := false
		for _, seen := range kept {
			if Equal(seen, nb) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, nb)
		}
	}
	return kept
}
