// Package ir provides the constrained literal value model shared by the
// query intermediate representation.
//
// Property-constraint payloads carried on node and edge patterns are opaque
// to the path pattern algebra: the algebra never inspects them, it only
// passes them through transformations and compares them for deep equality.
// This package defines what such a payload is made of.
//
// VALUE CONSTRAINTS:
//
// Value is a sealed interface over String, Int, Bool, Null, Array, and
// Object. There is no Float: floats break deterministic equality and
// canonical encoding, so they are rejected at every boundary.
//
// CANONICAL ENCODING:
//
// MarshalCanonical produces RFC 8785 canonical JSON (UTF-16 key ordering,
// NFC-normalized strings, no HTML escaping, no floats, no null). It exists
// for exactly one purpose: feeding domain-separated SHA-256 fingerprints of
// pattern structure. It is not a general serialization format and is never
// used for persistence.
package ir
