package pathpattern

// Reversed returns the pattern traversed in the opposite direction:
// element order is reversed and each element is reversed recursively.
//
//   - Reversing a node is the identity.
//   - Reversing an edge flips Outgoing and Incoming; Undirected and Any
//     are unchanged. All other edge fields are preserved.
//   - Reversing a quantified element reverses its inner pattern and keeps
//     the quantifier unchanged (a repeat count has no direction).
//   - Reversing an alternation reverses each branch but keeps the branch
//     list in its original order.
//
// Reversed is an involution: Reversed(Reversed(p)) equals p.
func Reversed(p Pattern) Pattern {
	out := Pattern{Binding: p.Binding, Mode: p.Mode}
	if p.Elements == nil {
		return out
	}
	out.Elements = make([]Element, len(p.Elements))
	last := len(p.Elements) - 1
	for i, el := range p.Elements {
		out.Elements[last-i] = reversedElement(el)
	}
	return out
}

func reversedElement(el Element) Element {
	switch e := el.(type) {
	case NodePattern:
		return e
	case EdgePattern:
		switch e.Direction {
		case Outgoing:
			e.Direction = Incoming
		case Incoming:
			e.Direction = Outgoing
		}
		return e
	case Quantified:
		return Quantified{Inner: Reversed(e.Inner), Quantifier: e.Quantifier}
	case Alternation:
		branches := make([]Pattern, len(e.Branches))
		for i, b := range e.Branches {
			branches[i] = Reversed(b)
		}
		return Alternation{Branches: branches}
	default:
		return el
	}
}

// Anonymous returns the pattern with every binding name stripped: the
// path-level binding and every node and edge binding, recursively through
// quantified inners and every alternation branch. Labels, property
// payloads, directions, and quantifiers are preserved. Idempotent.
func Anonymous(p Pattern) Pattern {
	out := Pattern{Mode: p.Mode}
	if p.Elements == nil {
		return out
	}
	out.Elements = make([]Element, len(p.Elements))
	for i, el := range p.Elements {
		out.Elements[i] = anonymousElement(el)
	}
	return out
}

func anonymousElement(el Element) Element {
	switch e := el.(type) {
	case NodePattern:
		e.Binding = ""
		return e
	case EdgePattern:
		e.Binding = ""
		return e
	case Quantified:
		return Quantified{Inner: Anonymous(e.Inner), Quantifier: e.Quantifier}
	case Alternation:
		branches := make([]Pattern, len(e.Branches))
		for i, b := range e.Branches {
			branches[i] = Anonymous(b)
		}
		return Alternation{Branches: branches}
	default:
		return el
	}
}

// WithMode returns a shallow copy of the pattern with the top-level
// traversal mode replaced. No recursion: nested patterns keep their own
// modes.
func WithMode(p Pattern, m Mode) Pattern {
	p.Mode = m
	return p
}

// WithBinding returns a shallow copy of the pattern with the path-level
// binding name replaced. Node and edge bindings are untouched.
func WithBinding(p Pattern, name string) Pattern {
	p.Binding = name
	return p
}
