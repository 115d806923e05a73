// Package sparqltext provides the SPARQL escaping and name validation
// primitives used when a path pattern is rendered into SPARQL property-path
// text.
//
// Escaping (IRI, StringLiteral) is total. Name validation (NCName,
// LocalName, PrefixedName) is the only failure surface in the query IR
// subsystem: inputs that do not match the lexical grammar fail with a
// distinct, descriptive error, reported synchronously at the call site.
// Such failures are caller-input errors - never retried, never silently
// recovered; the caller must correct the identifier before pattern-derived
// query text can be emitted.
package sparqltext

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Validation errors. Each failure mode is a distinct sentinel so callers
// can tell an empty name from a malformed one with errors.Is.
var (
	// ErrEmptyName reports a name that is empty where the grammar requires
	// at least one character.
	ErrEmptyName = errors.New("empty name")
	// ErrInvalidName reports a name outside the NCName lexical grammar.
	ErrInvalidName = errors.New("invalid name")
	// ErrInvalidLocalName reports a local part outside the local-name
	// lexical grammar.
	ErrInvalidLocalName = errors.New("invalid local name")
)

var (
	ncNamePattern    = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_.-]*$`)
	localNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]*$`)
)

// NCName validates a non-colonized name (the XML-Namespaces token SPARQL
// uses for prefixes). Returns the name unchanged on success.
func NCName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: NCName must not be empty", ErrEmptyName)
	}
	if !ncNamePattern.MatchString(name) {
		return "", fmt.Errorf("%w: %q is not a valid NCName", ErrInvalidName, name)
	}
	return name, nil
}

// LocalName validates the local part of a prefixed name. Unlike NCName,
// the empty string is allowed (a prefixed name may be just "prefix:").
func LocalName(name string) (string, error) {
	if !localNamePattern.MatchString(name) {
		return "", fmt.Errorf("%w: %q is not a valid local name", ErrInvalidLocalName, name)
	}
	return name, nil
}

// PrefixedName validates and assembles "prefix:local". The prefix must be
// a valid NCName; the local part must be a valid local name or empty.
func PrefixedName(prefix, local string) (string, error) {
	p, err := NCName(prefix)
	if err != nil {
		return "", err
	}
	l, err := LocalName(local)
	if err != nil {
		return "", err
	}
	return p + ":" + l, nil
}

// iriEscapes are the characters percent-encoded inside an IRI reference.
const iriEscapes = "\\<>\"{}|^`"

// IRI wraps an IRI reference in angle brackets, percent-encoding the
// characters that would terminate or corrupt the reference.
func IRI(iri string) string {
	var b strings.Builder
	b.Grow(len(iri) + 2)
	b.WriteByte('<')
	for i := 0; i < len(iri); i++ {
		c := iri[i]
		if strings.IndexByte(iriEscapes, c) >= 0 {
			fmt.Fprintf(&b, "%%%02X", c)
		} else {
			b.WriteByte(c)
		}
	}
	b.WriteByte('>')
	return b.String()
}

// StringLiteral quotes a SPARQL string literal: wrapped in double quotes
// with backslash escapes for backslash, quote, newline, carriage return,
// and tab.
func StringLiteral(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
