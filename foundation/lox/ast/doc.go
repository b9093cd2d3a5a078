// File: doc.go
// Title: Abstract Syntax Tree
// Description: Package documentation for the syntax tree and runtime values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-05
// Modified: 2026-10-05
//
// Change History:
// - 2026-10-05 v0.1.0: Initial AST package

/*
Package ast defines the syntax tree produced by the parser and the runtime
values the evaluator computes.

Expressions and statements are closed sets. Each is an interface with an
unexported marker method, so no type outside this package can satisfy it,
and every consumer (printer, parser, evaluator) switches over the concrete
node types and panics on anything else:

  • Expressions: *Literal, *Unary, *Binary, *Grouping
  • Statements: *ExpressionStmt, *PrintStmt

Nodes are built once by the parser and never modified afterwards. A parent
exclusively owns its children.

Value is a tagged variant over nil, boolean, number (float64) and string.
Values are small structs passed by value.

Printing:

	expr := &ast.Binary{
		Left:  &ast.Literal{Value: ast.Number(1)},
		Op:    token.New(token.Plus, "+", 1),
		Right: &ast.Literal{Value: ast.Number(2)},
	}
	fmt.Println(expr) // (+ 1 2)
*/
package ast
