// Package scanner converts source text into tokens.
//
// Whitespace, "//" line comments and non-nesting "/* */" block comments are
// skipped while still counting lines. Strings have no escape sequences.
// Numbers are decimal with an optional fraction. Identifiers consist of
// ASCII letters only. Any other byte becomes an Error token and a recorded
// diagnostic; scanning never stops early.
package scanner
