// File: printer.go
// Title: AST Printer
// Description: Renders trees in parenthesized prefix form, e.g.
//              "(+ 1 (group (* 2 3)))". Literal formatting is lossy, so the
//              output is for reading, not for re-parsing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-05
// Modified: 2026-10-05
//
// Change History:
// - 2026-10-05 v0.1.0: Initial printer

package ast

import (
	"fmt"
	"strings"
)

// Sprint renders an expression
func Sprint(e Expr) string {
	var b strings.Builder
	writeExpr(&b, e)
	return b.String()
}

// SprintStmt renders a statement
func SprintStmt(s Stmt) string {
	var b strings.Builder
	switch s := s.(type) {
	case *ExpressionStmt:
		parenthesize(&b, "expr", s.Expr)
	case *PrintStmt:
		parenthesize(&b, "print", s.Expr)
	default:
		panic(fmt.Sprintf("ast: unhandled statement %T", s))
	}
	return b.String()
}

// SprintProgram renders each statement on its own line
func SprintProgram(stmts []Stmt) string {
	lines := make([]string, len(stmts))
	for i, s := range stmts {
		lines[i] = SprintStmt(s)
	}
	return strings.Join(lines, "\n")
}

func writeExpr(b *strings.Builder, e Expr) {
	switch e := e.(type) {
	case *Literal:
		b.WriteString(e.Value.String())
	case *Unary:
		parenthesize(b, e.Op.Lexeme, e.Right)
	case *Binary:
		parenthesize(b, e.Op.Lexeme, e.Left, e.Right)
	case *Grouping:
		parenthesize(b, "group", e.Inner)
	default:
		panic(fmt.Sprintf("ast: unhandled expression %T", e))
	}
}

func parenthesize(b *strings.Builder, name string, exprs ...Expr) {
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		writeExpr(b, e)
	}
	b.WriteByte(')')
}
