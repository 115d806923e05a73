// Package pathpattern provides the path pattern algebra of the shared
// query intermediate representation.
//
// A path pattern is an AST describing a graph traversal: an ordered
// composition of node and edge matchers with repetition (quantifiers) and
// alternation, in the spirit of SQL/PGQ and GQL MATCH clauses. The algebra
// answers static questions about a pattern's shape - minimum and maximum
// traversal length, bound variables, referenced labels, boundedness -
// without executing anything.
//
// ARCHITECTURE:
//
// The pattern IR sits between the query-building layer and the downstream
// consumers:
//
//	[definition syntax] → [Pattern IR] → [planner]  (bounds, boundedness)
//	                                   → [renderer] (SQL/PGQ, SPARQL text)
//
// Both consumers are external. The planner calls MinLength, MaxLength, and
// IsUnbounded to pick a traversal strategy; the renderer serializes a
// pattern (typically after Normalized or Reversed) into SQL or SPARQL text
// using the sqltext and sparqltext escaping peers.
//
// SEALED INTERFACE:
//
// Element is sealed with the marker method pattern: only NodePattern,
// EdgePattern, Quantified, and Alternation implement it. This enables
// exhaustive type switches and prevents external extensions:
//
//	switch e := el.(type) {
//	case NodePattern:
//	    // leaf
//	case EdgePattern:
//	    // leaf
//	case Quantified:
//	    // recurse into e.Inner
//	case Alternation:
//	    // recurse into every branch
//	}
//
// PURITY:
//
// Every function in this package is total, pure, and synchronous. Patterns
// are immutable value types: transformations return fresh values and never
// mutate their input, so any number of goroutines may share pattern values
// without coordination. Every recursion terminates because a pattern is a
// finite tree; "unbounded" is only ever a returned answer about traversal
// length, never an unbounded computation.
//
// Property-constraint payloads on nodes and edges are opaque ir.Object
// values: the algebra passes them through unexamined and compares them only
// for deep equality.
package pathpattern
