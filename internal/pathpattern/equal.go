package pathpattern

import "github.com/pathq/pathq/internal/ir"

// Equal reports deep structural equality of two patterns.
//
// Equality is recursive over the whole tree: bindings, modes, element
// order, labels (as sets), directions, quantifiers, and property payloads
// all participate. Normalization's branch deduplication relies on this
// function - never on a hash - so a content-derived key can never silently
// conflate two distinct branches.
func Equal(a, b Pattern) bool {
	if a.Binding != b.Binding || a.Mode != b.Mode {
		return false
	}
	if len(a.Elements) != len(b.Elements) {
		return false
	}
	for i := range a.Elements {
		if !elementEqual(a.Elements[i], b.Elements[i]) {
			return false
		}
	}
	return true
}

// elementEqual reports deep structural equality of two elements.
func elementEqual(a, b Element) bool {
	switch av := a.(type) {
	case NodePattern:
		bv, ok := b.(NodePattern)
		return ok && av.Binding == bv.Binding &&
			labelsEqual(av.Labels, bv.Labels) &&
			ir.ObjectEqual(av.Properties, bv.Properties)
	case EdgePattern:
		bv, ok := b.(EdgePattern)
		return ok && av.Binding == bv.Binding &&
			av.Direction == bv.Direction &&
			labelsEqual(av.Labels, bv.Labels) &&
			ir.ObjectEqual(av.Properties, bv.Properties)
	case Quantified:
		bv, ok := b.(Quantified)
		return ok && quantifierEqual(av.Quantifier, bv.Quantifier) &&
			Equal(av.Inner, bv.Inner)
	case Alternation:
		bv, ok := b.(Alternation)
		if !ok || len(av.Branches) != len(bv.Branches) {
			return false
		}
		for i := range av.Branches {
			if !Equal(av.Branches[i], bv.Branches[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// labelsEqual compares label sets: order-insensitive, duplicates collapse.
func labelsEqual(a, b []string) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	as := make(map[string]struct{}, len(a))
	for _, l := range a {
		as[l] = struct{}{}
	}
	bs := make(map[string]struct{}, len(b))
	for _, l := range b {
		bs[l] = struct{}{}
	}
	if len(as) != len(bs) {
		return false
	}
	for l := range as {
		if _, ok := bs[l]; !ok {
			return false
		}
	}
	return true
}
