// Package sqltext provides the SQL escaping primitives used when a path
// pattern is rendered into SQL/PGQ text.
//
// These are the only rendering concerns owned by this repository: the
// renderer itself is an external consumer. Both functions are pure and
// total; escaping never fails, it only quotes.
package sqltext

import (
	"regexp"
	"strings"
)

// simpleIdentifier matches identifiers that may be emitted without quoting,
// reserved words aside.
var simpleIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// reservedWords is the closed set of SQL keywords that must always be
// quoted even when they match the simple-identifier pattern. Matching is
// case-insensitive (the candidate is uppercased before lookup).
var reservedWords = map[string]struct{}{
	"ALL":      {},
	"AND":      {},
	"AS":       {},
	"ASC":      {},
	"BETWEEN":  {},
	"BY":       {},
	"CASE":     {},
	"CAST":     {},
	"CREATE":   {},
	"CROSS":    {},
	"DELETE":   {},
	"DESC":     {},
	"DISTINCT": {},
	"DROP":     {},
	"ELSE":     {},
	"END":      {},
	"EXISTS":   {},
	"FROM":     {},
	"FULL":     {},
	"GROUP":    {},
	"HAVING":   {},
	"IN":       {},
	"INNER":    {},
	"INSERT":   {},
	"INTO":     {},
	"IS":       {},
	"JOIN":     {},
	"LEFT":     {},
	"LIKE":     {},
	"LIMIT":    {},
	"MATCH":    {},
	"NOT":      {},
	"NULL":     {},
	"OFFSET":   {},
	"ON":       {},
	"OR":       {},
	"ORDER":    {},
	"OUTER":    {},
	"RIGHT":    {},
	"SELECT":   {},
	"SET":      {},
	"TABLE":    {},
	"THEN":     {},
	"UNION":    {},
	"UPDATE":   {},
	"VALUES":   {},
	"WHEN":     {},
	"WHERE":    {},
	"WITH":     {},
}

// Identifier quotes an identifier unconditionally: wrapped in double
// quotes, with internal double quotes doubled.
func Identifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// IdentifierIfNeeded emits an identifier unquoted only when it matches the
// simple-identifier pattern AND its uppercased form is not a reserved
// word. Anything else is quoted via Identifier.
func IdentifierIfNeeded(name string) string {
	if simpleIdentifier.MatchString(name) {
		if _, reserved := reservedWords[strings.ToUpper(name)]; !reserved {
			return name
		}
	}
	return Identifier(name)
}

// StringLiteral quotes a SQL string literal: wrapped in single quotes,
// with internal single quotes doubled. Values in generated query text
// should normally be parameterized; this exists for the cases where the
// renderer must inline a literal.
func StringLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
