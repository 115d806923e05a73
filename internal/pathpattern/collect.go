package pathpattern

import "sort"

// NodeVariables returns the sorted set of node binding names referenced
// anywhere in the pattern, descending into quantified inners and into
// every alternation branch (union semantics - any branch could bind a
// variable at match time). The path-level binding is not a node variable.
func NodeVariables(p Pattern) []string {
	set := make(map[string]struct{})
	forEachLeaf(p, func(el Element) {
		if n, ok := el.(NodePattern); ok && n.Binding != "" {
			set[n.Binding] = struct{}{}
		}
	})
	return sortedSet(set)
}

// EdgeVariables returns the sorted set of edge binding names, with the
// same union semantics as NodeVariables.
func EdgeVariables(p Pattern) []string {
	set := make(map[string]struct{})
	forEachLeaf(p, func(el Element) {
		if e, ok := el.(EdgePattern); ok && e.Binding != "" {
			set[e.Binding] = struct{}{}
		}
	})
	return sortedSet(set)
}

// NodeLabels returns the sorted set of node labels referenced anywhere in
// the pattern.
func NodeLabels(p Pattern) []string {
	set := make(map[string]struct{})
	forEachLeaf(p, func(el Element) {
		if n, ok := el.(NodePattern); ok {
			for _, l := range n.Labels {
				set[l] = struct{}{}
			}
		}
	})
	return sortedSet(set)
}

// EdgeLabels returns the sorted set of edge labels referenced anywhere in
// the pattern.
func EdgeLabels(p Pattern) []string {
	set := make(map[string]struct{})
	forEachLeaf(p, func(el Element) {
		if e, ok := el.(EdgePattern); ok {
			for _, l := range e.Labels {
				set[l] = struct{}{}
			}
		}
	})
	return sortedSet(set)
}

// forEachLeaf visits every node and edge matcher in the pattern, in
// traversal order, descending into quantified inners and every
// alternation branch.
func forEachLeaf(p Pattern, visit func(Element)) {
	for _, el := range p.Elements {
		switch e := el.(type) {
		case NodePattern:
			visit(e)
		case EdgePattern:
			visit(e)
		case Quantified:
			forEachLeaf(e.Inner, visit)
		case Alternation:
			for _, b := range e.Branches {
				forEachLeaf(b, visit)
			}
		}
	}
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
