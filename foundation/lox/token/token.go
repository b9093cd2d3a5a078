// File: token.go
// Title: Token Value
// Description: A classified lexeme with its payload and source line.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-05
// Modified: 2026-10-05
//
// Change History:
// - 2026-10-05 v0.1.0: Initial token value

package token

import (
	"fmt"
	"strconv"
)

// Token is one lexical unit. Tokens are values and are never modified after
// the scanner produces them.
type Token struct {
	Kind   Kind
	Lexeme string

	// Literal is float64 for Number, string for String, nil otherwise
	Literal interface{}

	Line int
}

// New creates a token without a literal payload
func New(kind Kind, lexeme string, line int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Line: line}
}

// Is reports whether the token belongs to any of the given kinds
func (t Token) Is(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}

// LiteralString renders the payload, or "nil" when there is none
func (t Token) LiteralString() string {
	switch v := t.Literal.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	default:
		return "nil"
	}
}

// String returns "KIND lexeme literal line", one token per dump line
func (t Token) String() string {
	return fmt.Sprintf("%s %s %s %d", t.Kind, t.Lexeme, t.LiteralString(), t.Line)
}
