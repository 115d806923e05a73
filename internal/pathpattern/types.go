package pathpattern

import "github.com/pathq/pathq/internal/ir"

// Direction is the traversal direction of an edge pattern.
type Direction int

const (
	// Outgoing matches edges leaving the preceding node.
	Outgoing Direction = iota
	// Incoming matches edges arriving at the preceding node.
	Incoming
	// Undirected matches edges with no direction.
	Undirected
	// Any matches edges regardless of direction.
	Any
)

// String returns the string representation of a Direction.
func (d Direction) String() string {
	switch d {
	case Outgoing:
		return "outgoing"
	case Incoming:
		return "incoming"
	case Undirected:
		return "undirected"
	case Any:
		return "any"
	default:
		return "unknown"
	}
}

// Mode is the traversal mode of a pattern. It is opaque to the algebra:
// every transformation carries it through unchanged and no computation
// interprets it.
type Mode int

const (
	// Walk allows repeated nodes and edges.
	Walk Mode = iota
	// Trail forbids repeated edges.
	Trail
	// Acyclic forbids repeated nodes.
	Acyclic
)

// String returns the string representation of a Mode.
func (m Mode) String() string {
	switch m {
	case Walk:
		return "walk"
	case Trail:
		return "trail"
	case Acyclic:
		return "acyclic"
	default:
		return "unknown"
	}
}

// Element is a sealed interface over the units of pattern composition.
//
// Element types:
//   - NodePattern: atomic node matcher
//   - EdgePattern: atomic edge matcher
//   - Quantified: a sub-pattern with a repetition quantifier
//   - Alternation: a choice between branch sub-patterns
//
// The marker method seals the interface to this package so backends can
// type switch exhaustively.
type Element interface {
	element() // Marker method - seals interface to this package
}

// NodePattern matches a single node.
//
// Binding is the variable name the matched node is bound to; empty means
// anonymous. Labels is the set of node labels referenced by the matcher
// (nil means unconstrained). Properties is an opaque property-constraint
// payload: the algebra passes it through unexamined.
type NodePattern struct {
	Binding    string
	Labels     []string
	Properties ir.Object
}

func (NodePattern) element() {}

// EdgePattern matches a single edge in a given direction.
//
// Binding, Labels, and Properties behave exactly as on NodePattern.
// Direction is required and participates in Reversed.
type EdgePattern struct {
	Binding    string
	Labels     []string
	Properties ir.Object
	Direction  Direction
}

func (EdgePattern) element() {}

// Quantified repeats an inner sub-pattern according to a quantifier.
//
// The inner pattern is a full Pattern, so quantification nests. Nested
// quantification is preserved as written: normalization deliberately never
// merges repeat counts (see Normalized).
type Quantified struct {
	Inner      Pattern
	Quantifier Quantifier
}

func (Quantified) element() {}

// Alternation matches any one of its branches.
//
// Branch order is preserved through every transformation; Normalized
// removes duplicate branches but never reorders the survivors.
type Alternation struct {
	Branches []Pattern
}

func (Alternation) element() {}

// Pattern is an ordered sequence of elements with an optional path-level
// binding and a traversal mode. Element order is traversal order and is
// load-bearing.
//
// Patterns are immutable value types. Every transformation in this package
// returns a new Pattern and leaves its input untouched.
type Pattern struct {
	Binding  string
	Elements []Element
	Mode     Mode
}

// Sequence builds a pattern from elements in traversal order, with the
// default Walk mode and no binding.
func Sequence(elements ...Element) Pattern {
	return Pattern{Elements: elements}
}
