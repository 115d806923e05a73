// Package patterndef compiles declarative CUE pattern definitions into
// path pattern values.
//
// This is the query-building layer in front of the algebra: surface syntax
// in, pathpattern.Pattern values out. The structural invariants the
// algebra treats as given (non-negative repeat counts, ordered range
// bounds, known directions and modes) are enforced here, at the boundary,
// so downstream consumers only ever see well-formed patterns.
//
// Definition syntax:
//
//	pattern: knows_chain: {
//		mode: "trail"
//		elements: [
//			{node: {binding: "a", labels: ["Person"]}},
//			{quantified: {
//				quantifier: {oneOrMore: true}
//				elements: [{edge: {labels: ["knows"], direction: "outgoing"}}]
//			}},
//			{node: {binding: "b"}},
//		]
//	}
//
// Uses the CUE SDK's Go API directly (not a CLI subprocess).
package patterndef

import (
	"fmt"

	"cuelang.org/go/cue"

	"github.com/pathq/pathq/internal/ir"
	"github.com/pathq/pathq/internal/pathpattern"
)

// Definition is a named, compiled path pattern.
type Definition struct {
	Name    string
	Pattern pathpattern.Pattern
}

// CompileDefinitions extracts every named pattern under the top-level
// "pattern" field of a CUE value. Definitions are returned in declaration
// order; compilation stops at the first error.
func CompileDefinitions(v cue.Value) ([]Definition, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	patternsVal := v.LookupPath(cue.ParsePath("pattern"))
	if !patternsVal.Exists() {
		return nil, &CompileError{
			Field:   "pattern",
			Message: "no pattern definitions found",
			Pos:     v.Pos(),
		}
	}

	iter, err := patternsVal.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var defs []Definition
	for iter.Next() {
		name := iter.Label()
		p, err := CompilePattern(iter.Value())
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", name, err)
		}
		defs = append(defs, Definition{Name: name, Pattern: p})
	}
	if len(defs) == 0 {
		return nil, &CompileError{
			Field:   "pattern",
			Message: "pattern struct is empty",
			Pos:     patternsVal.Pos(),
		}
	}
	return defs, nil
}

// CompilePattern parses a single pattern struct: optional "binding" and
// "mode", required non-empty "elements".
func CompilePattern(v cue.Value) (pathpattern.Pattern, error) {
	if err := v.Err(); err != nil {
		return pathpattern.Pattern{}, formatCUEError(err)
	}

	p := pathpattern.Pattern{}

	bindingVal := v.LookupPath(cue.ParsePath("binding"))
	if bindingVal.Exists() {
		binding, err := bindingVal.String()
		if err != nil {
			return pathpattern.Pattern{}, formatCUEError(err)
		}
		p.Binding = binding
	}

	modeVal := v.LookupPath(cue.ParsePath("mode"))
	if modeVal.Exists() {
		modeStr, err := modeVal.String()
		if err != nil {
			return pathpattern.Pattern{}, formatCUEError(err)
		}
		mode, err := parseMode(modeStr, modeVal)
		if err != nil {
			return pathpattern.Pattern{}, err
		}
		p.Mode = mode
	}

	elementsVal := v.LookupPath(cue.ParsePath("elements"))
	if !elementsVal.Exists() {
		return pathpattern.Pattern{}, &CompileError{
			Field:   "elements",
			Message: "elements is required",
			Pos:     v.Pos(),
		}
	}
	elements, err := parseElements(elementsVal)
	if err != nil {
		return pathpattern.Pattern{}, err
	}
	if len(elements) == 0 {
		return pathpattern.Pattern{}, &CompileError{
			Field:   "elements",
			Message: "elements must not be empty",
			Pos:     elementsVal.Pos(),
		}
	}
	p.Elements = elements

	return p, nil
}

func parseElements(v cue.Value) ([]pathpattern.Element, error) {
	iter, err := v.List()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var elements []pathpattern.Element
	for iter.Next() {
		el, err := parseElement(iter.Value())
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}
	return elements, nil
}

// parseElement parses a one-of struct: exactly one of node, edge,
// quantified, or alternation must be present.
func parseElement(v cue.Value) (pathpattern.Element, error) {
	nodeVal := v.LookupPath(cue.ParsePath("node"))
	edgeVal := v.LookupPath(cue.ParsePath("edge"))
	quantVal := v.LookupPath(cue.ParsePath("quantified"))
	altVal := v.LookupPath(cue.ParsePath("alternation"))

	present := 0
	for _, val := range []cue.Value{nodeVal, edgeVal, quantVal, altVal} {
		if val.Exists() {
			present++
		}
	}
	if present != 1 {
		return nil, &CompileError{
			Field:   "element",
			Message: "element must have exactly one of node, edge, quantified, alternation",
			Pos:     v.Pos(),
		}
	}

	switch {
	case nodeVal.Exists():
		return parseNode(nodeVal)
	case edgeVal.Exists():
		return parseEdge(edgeVal)
	case quantVal.Exists():
		return parseQuantified(quantVal)
	default:
		return parseAlternation(altVal)
	}
}

func parseNode(v cue.Value) (pathpattern.NodePattern, error) {
	node := pathpattern.NodePattern{}
	var err error
	node.Binding, node.Labels, node.Properties, err = parseMatcherFields(v)
	return node, err
}

func parseEdge(v cue.Value) (pathpattern.EdgePattern, error) {
	edge := pathpattern.EdgePattern{}
	var err error
	edge.Binding, edge.Labels, edge.Properties, err = parseMatcherFields(v)
	if err != nil {
		return pathpattern.EdgePattern{}, err
	}

	dirVal := v.LookupPath(cue.ParsePath("direction"))
	if !dirVal.Exists() {
		return pathpattern.EdgePattern{}, &CompileError{
			Field:   "direction",
			Message: "edge direction is required",
			Pos:     v.Pos(),
		}
	}
	dirStr, err := dirVal.String()
	if err != nil {
		return pathpattern.EdgePattern{}, formatCUEError(err)
	}
	edge.Direction, err = parseDirection(dirStr, dirVal)
	if err != nil {
		return pathpattern.EdgePattern{}, err
	}
	return edge, nil
}

// parseMatcherFields parses the fields shared by node and edge matchers:
// optional binding, labels, and properties.
func parseMatcherFields(v cue.Value) (string, []string, ir.Object, error) {
	var binding string
	bindingVal := v.LookupPath(cue.ParsePath("binding"))
	if bindingVal.Exists() {
		b, err := bindingVal.String()
		if err != nil {
			return "", nil, nil, formatCUEError(err)
		}
		binding = b
	}

	var labels []string
	labelsVal := v.LookupPath(cue.ParsePath("labels"))
	if labelsVal.Exists() {
		iter, err := labelsVal.List()
		if err != nil {
			return "", nil, nil, formatCUEError(err)
		}
		for iter.Next() {
			label, err := iter.Value().String()
			if err != nil {
				return "", nil, nil, formatCUEError(err)
			}
			labels = append(labels, label)
		}
	}

	var properties ir.Object
	propsVal := v.LookupPath(cue.ParsePath("properties"))
	if propsVal.Exists() {
		props, err := parseProperties(propsVal)
		if err != nil {
			return "", nil, nil, err
		}
		properties = props
	}

	return binding, labels, properties, nil
}

func parseQuantified(v cue.Value) (pathpattern.Quantified, error) {
	quantVal := v.LookupPath(cue.ParsePath("quantifier"))
	if !quantVal.Exists() {
		return pathpattern.Quantified{}, &CompileError{
			Field:   "quantifier",
			Message: "quantifier is required",
			Pos:     v.Pos(),
		}
	}
	q, err := parseQuantifier(quantVal)
	if err != nil {
		return pathpattern.Quantified{}, err
	}

	elementsVal := v.LookupPath(cue.ParsePath("elements"))
	if !elementsVal.Exists() {
		return pathpattern.Quantified{}, &CompileError{
			Field:   "elements",
			Message: "quantified elements are required",
			Pos:     v.Pos(),
		}
	}
	elements, err := parseElements(elementsVal)
	if err != nil {
		return pathpattern.Quantified{}, err
	}
	if len(elements) == 0 {
		return pathpattern.Quantified{}, &CompileError{
			Field:   "elements",
			Message: "quantified elements must not be empty",
			Pos:     elementsVal.Pos(),
		}
	}

	return pathpattern.Quantified{
		Inner:      pathpattern.Pattern{Elements: elements},
		Quantifier: q,
	}, nil
}

// parseQuantifier parses a one-of struct:
//
//	{exactly: 3} | {range: {min: 1, max: 5}} |
//	{zeroOrMore: true} | {oneOrMore: true} | {zeroOrOne: true}
//
// The repeat-count invariants are enforced here: exactly needs n >= 0,
// range needs min <= max when both bounds are present.
func parseQuantifier(v cue.Value) (pathpattern.Quantifier, error) {
	exactlyVal := v.LookupPath(cue.ParsePath("exactly"))
	if exactlyVal.Exists() {
		n, err := exactlyVal.Int64()
		if err != nil {
			return pathpattern.Quantifier{}, formatCUEError(err)
		}
		if n < 0 {
			return pathpattern.Quantifier{}, &CompileError{
				Field:   "exactly",
				Message: fmt.Sprintf("repeat count must be non-negative, got %d", n),
				Pos:     exactlyVal.Pos(),
			}
		}
		return pathpattern.Exactly(int(n)), nil
	}

	rangeVal := v.LookupPath(cue.ParsePath("range"))
	if rangeVal.Exists() {
		return parseRange(rangeVal)
	}

	flags := []struct {
		name string
		q    pathpattern.Quantifier
	}{
		{"zeroOrMore", pathpattern.ZeroOrMore},
		{"oneOrMore", pathpattern.OneOrMore},
		{"zeroOrOne", pathpattern.ZeroOrOne},
	}
	for _, f := range flags {
		name, q := f.name, f.q
		flagVal := v.LookupPath(cue.ParsePath(name))
		if !flagVal.Exists() {
			continue
		}
		set, err := flagVal.Bool()
		if err != nil {
			return pathpattern.Quantifier{}, formatCUEError(err)
		}
		if !set {
			return pathpattern.Quantifier{}, &CompileError{
				Field:   name,
				Message: name + " must be true when present",
				Pos:     flagVal.Pos(),
			}
		}
		return q, nil
	}

	return pathpattern.Quantifier{}, &CompileError{
		Field:   "quantifier",
		Message: "quantifier must be one of exactly, range, zeroOrMore, oneOrMore, zeroOrOne",
		Pos:     v.Pos(),
	}
}

func parseRange(v cue.Value) (pathpattern.Quantifier, error) {
	q := pathpattern.Quantifier{Kind: pathpattern.QuantRange}

	minVal := v.LookupPath(cue.ParsePath("min"))
	if minVal.Exists() {
		n, err := minVal.Int64()
		if err != nil {
			return pathpattern.Quantifier{}, formatCUEError(err)
		}
		if n < 0 {
			return pathpattern.Quantifier{}, &CompileError{
				Field:   "range.min",
				Message: fmt.Sprintf("lower bound must be non-negative, got %d", n),
				Pos:     minVal.Pos(),
			}
		}
		lo := int(n)
		q.Min = &lo
	}

	maxVal := v.LookupPath(cue.ParsePath("max"))
	if maxVal.Exists() {
		n, err := maxVal.Int64()
		if err != nil {
			return pathpattern.Quantifier{}, formatCUEError(err)
		}
		if n < 0 {
			return pathpattern.Quantifier{}, &CompileError{
				Field:   "range.max",
				Message: fmt.Sprintf("upper bound must be non-negative, got %d", n),
				Pos:     maxVal.Pos(),
			}
		}
		hi := int(n)
		q.Max = &hi
	}

	if q.Min != nil && q.Max != nil && *q.Min > *q.Max {
		return pathpattern.Quantifier{}, &CompileError{
			Field:   "range",
			Message: fmt.Sprintf("bounds inverted: min %d > max %d", *q.Min, *q.Max),
			Pos:     v.Pos(),
		}
	}

	return q, nil
}

// parseAlternation parses {branches: [...]} where each branch is either a
// list of elements or a full pattern struct.
func parseAlternation(v cue.Value) (pathpattern.Alternation, error) {
	branchesVal := v.LookupPath(cue.ParsePath("branches"))
	if !branchesVal.Exists() {
		return pathpattern.Alternation{}, &CompileError{
			Field:   "branches",
			Message: "alternation branches are required",
			Pos:     v.Pos(),
		}
	}

	iter, err := branchesVal.List()
	if err != nil {
		return pathpattern.Alternation{}, formatCUEError(err)
	}

	var branches []pathpattern.Pattern
	for iter.Next() {
		branchVal := iter.Value()
		var branch pathpattern.Pattern
		if branchVal.Kind() == cue.ListKind {
			elements, err := parseElements(branchVal)
			if err != nil {
				return pathpattern.Alternation{}, err
			}
			branch = pathpattern.Pattern{Elements: elements}
		} else {
			branch, err = CompilePattern(branchVal)
			if err != nil {
				return pathpattern.Alternation{}, err
			}
		}
		branches = append(branches, branch)
	}
	if len(branches) == 0 {
		return pathpattern.Alternation{}, &CompileError{
			Field:   "branches",
			Message: "alternation must have at least one branch",
			Pos:     branchesVal.Pos(),
		}
	}

	return pathpattern.Alternation{Branches: branches}, nil
}

func parseMode(s string, v cue.Value) (pathpattern.Mode, error) {
	switch s {
	case "walk":
		return pathpattern.Walk, nil
	case "trail":
		return pathpattern.Trail, nil
	case "acyclic":
		return pathpattern.Acyclic, nil
	default:
		return pathpattern.Walk, &CompileError{
			Field:   "mode",
			Message: fmt.Sprintf("unknown mode %q: must be walk, trail, or acyclic", s),
			Pos:     v.Pos(),
		}
	}
}

func parseDirection(s string, v cue.Value) (pathpattern.Direction, error) {
	switch s {
	case "outgoing":
		return pathpattern.Outgoing, nil
	case "incoming":
		return pathpattern.Incoming, nil
	case "undirected":
		return pathpattern.Undirected, nil
	case "any":
		return pathpattern.Any, nil
	default:
		return pathpattern.Outgoing, &CompileError{
			Field:   "direction",
			Message: fmt.Sprintf("unknown direction %q: must be outgoing, incoming, undirected, or any", s),
			Pos:     v.Pos(),
		}
	}
}

// parseProperties converts a CUE struct into an opaque property payload.
// Floats are rejected (the value model forbids them); null is allowed and
// decodes to the explicit ir.Null.
func parseProperties(v cue.Value) (ir.Object, error) {
	obj, err := parsePropertyStruct(v)
	if err != nil {
		return nil, err
	}
	return obj, nil
}

func parsePropertyStruct(v cue.Value) (ir.Object, error) {
	iter, err := v.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}
	obj := ir.Object{}
	for iter.Next() {
		val, err := parsePropertyValue(iter.Value())
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", iter.Label(), err)
		}
		obj[iter.Label()] = val
	}
	return obj, nil
}

func parsePropertyValue(v cue.Value) (ir.Value, error) {
	switch v.Kind() {
	case cue.NullKind:
		return ir.Null{}, nil
	case cue.BoolKind:
		b, err := v.Bool()
		if err != nil {
			return nil, formatCUEError(err)
		}
		return ir.Bool(b), nil
	case cue.StringKind:
		s, err := v.String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		return ir.String(s), nil
	case cue.IntKind:
		n, err := v.Int64()
		if err != nil {
			return nil, formatCUEError(err)
		}
		return ir.Int(n), nil
	case cue.FloatKind, cue.NumberKind:
		return nil, &CompileError{
			Field:   "properties",
			Message: "floats are not allowed in property values",
			Pos:     v.Pos(),
		}
	case cue.ListKind:
		iter, err := v.List()
		if err != nil {
			return nil, formatCUEError(err)
		}
		var arr ir.Array
		for iter.Next() {
			elem, err := parsePropertyValue(iter.Value())
			if err != nil {
				return nil, err
			}
			arr = append(arr, elem)
		}
		return arr, nil
	case cue.StructKind:
		return parsePropertyStruct(v)
	default:
		return nil, &CompileError{
			Field:   "properties",
			Message: fmt.Sprintf("unsupported property value kind: %v", v.IncompleteKind()),
			Pos:     v.Pos(),
		}
	}
}
