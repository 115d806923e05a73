package pathpattern

import (
	"fmt"
	"sort"

	"github.com/pathq/pathq/internal/ir"
)

// fingerprintDomain separates pattern fingerprints from every other use of
// the content hash. The version suffix allows the encoding to change later.
const fingerprintDomain = "pathq/pattern/v1"

// Fingerprint returns a content-derived key for a pattern: a
// domain-separated SHA-256 over the canonical encoding of its structure.
//
// Structurally equal patterns always produce the same fingerprint, so the
// key is suitable for external memoization of Normalized or bound results
// over large shared sub-patterns. It is only a key: callers holding two
// patterns with matching fingerprints must re-verify with Equal before
// treating them as the same pattern, and nothing inside this package
// (normalization included) ever trusts a fingerprint alone.
//
// Returns an error if a property payload cannot be canonically encoded
// (explicit nulls, for instance).
func Fingerprint(p Pattern) (string, error) {
	obj, err := patternObject(p)
	if err != nil {
		return "", err
	}
	canonical, err := ir.MarshalCanonical(obj)
	if err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}
	return ir.HashWithDomain(fingerprintDomain, canonical), nil
}

// patternObject encodes a pattern as an ir.Object for canonical hashing.
// Optional fields are omitted when absent so "no binding" and "empty
// binding" cannot diverge, and label sets are sorted so the encoding does
// not depend on declaration order.
func patternObject(p Pattern) (ir.Object, error) {
	elements := make(ir.Array, len(p.Elements))
	for i, el := range p.Elements {
		encoded, err := elementObject(el)
		if err != nil {
			return nil, err
		}
		elements[i] = encoded
	}

	obj := ir.Object{
		"mode":     ir.String(p.Mode.String()),
		"elements": elements,
	}
	if p.Binding != "" {
		obj["binding"] = ir.String(p.Binding)
	}
	return obj, nil
}

func elementObject(el Element) (ir.Object, error) {
	switch e := el.(type) {
	case NodePattern:
		obj := ir.Object{"kind": ir.String("node")}
		addMatcherFields(obj, e.Binding, e.Labels, e.Properties)
		return obj, nil
	case EdgePattern:
		obj := ir.Object{
			"kind":      ir.String("edge"),
			"direction": ir.String(e.Direction.String()),
		}
		addMatcherFields(obj, e.Binding, e.Labels, e.Properties)
		return obj, nil
	case Quantified:
		inner, err := patternObject(e.Inner)
		if err != nil {
			return nil, err
		}
		return ir.Object{
			"kind":       ir.String("quantified"),
			"quantifier": quantifierObject(e.Quantifier),
			"inner":      inner,
		}, nil
	case Alternation:
		branches := make(ir.Array, len(e.Branches))
		for i, b := range e.Branches {
			encoded, err := patternObject(b)
			if err != nil {
				return nil, err
			}
			branches[i] = encoded
		}
		return ir.Object{
			"kind":     ir.String("alternation"),
			"branches": branches,
		}, nil
	default:
		return nil, fmt.Errorf("fingerprint: unknown element type %T", el)
	}
}

func addMatcherFields(obj ir.Object, binding string, labels []string, properties ir.Object) {
	if binding != "" {
		obj["binding"] = ir.String(binding)
	}
	if len(labels) > 0 {
		// Labels are a set: sort and drop duplicates so the encoding agrees
		// with Equal's set semantics.
		sorted := append([]string(nil), labels...)
		sort.Strings(sorted)
		arr := make(ir.Array, 0, len(sorted))
		for i, l := range sorted {
			if i > 0 && l == sorted[i-1] {
				continue
			}
			arr = append(arr, ir.String(l))
		}
		obj["labels"] = arr
	}
	if len(properties) > 0 {
		obj["properties"] = properties
	}
}

func quantifierObject(q Quantifier) ir.Object {
	obj := ir.Object{"kind": ir.String(q.Kind.String())}
	switch q.Kind {
	case QuantExactly:
		obj["n"] = ir.Int(q.N)
	case QuantRange:
		if q.Min != nil {
			obj["min"] = ir.Int(*q.Min)
		}
		if q.Max != nil {
			obj["max"] = ir.Int(*q.Max)
		}
	}
	return obj
}
