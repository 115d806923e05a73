package pathpattern

// NodeCount returns the number of node matchers in the pattern's
// single-iteration shape. Quantified sub-patterns are counted once,
// not multiplied by their repeat count.
func NodeCount(p Pattern) int {
	total := 0
	for _, el := range p.Elements {
		total += countOfElement(el, true)
	}
	return total
}

// EdgeCount returns the number of edge matchers in the pattern's
// single-iteration shape, with the same multiplicities as NodeCount.
func EdgeCount(p Pattern) int {
	total := 0
	for _, el := range p.Elements {
		total += countOfElement(el, false)
	}
	return total
}

// countOfElement computes one structural counter for one element.
//
// KNOWN QUIRK: alternation takes the per-counter maximum across branches
// independently for nodes and for edges, so the reported (nodes, edges)
// pair may correspond to no single branch (branch A can win the node count
// while branch B wins the edge count). The pair is a worst-case shape size
// per dimension, not a reachable shape;
// TestCounts_AlternationIndependentMaxQuirk pins it.
func countOfElement(el Element, nodes bool) int {
	switch e := el.(type) {
	case NodePattern:
		if nodes {
			return 1
		}
		return 0
	case EdgePattern:
		if nodes {
			return 0
		}
		return 1
	case Quantified:
		// Single-iteration shape: pass through unmultiplied.
		if nodes {
			return NodeCount(e.Inner)
		}
		return EdgeCount(e.Inner)
	case Alternation:
		best := 0
		for _, b := range e.Branches {
			var c int
			if nodes {
				c = NodeCount(b)
			} else {
				c = EdgeCount(b)
			}
			if c > best {
				best = c
			}
		}
		return best
	default:
		return 0
	}
}
