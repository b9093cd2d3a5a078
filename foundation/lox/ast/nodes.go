// File: nodes.go
// Title: AST Node Definitions
// Description: Expression and statement nodes. Both sets are closed: the
//              marker methods are unexported.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-05
// Modified: 2026-10-05
//
// Change History:
// - 2026-10-05 v0.1.0: Initial node set

package ast

import (
	"fmt"

	"github.com/msto63/lox/foundation/lox/token"
)

// Expr is an expression node
type Expr interface {
	fmt.Stringer
	exprNode()
}

// Stmt is a statement node
type Stmt interface {
	fmt.Stringer
	stmtNode()
}

// Literal is a constant value
type Literal struct {
	Value Value
}

// Unary is a prefix operator applied to one operand
type Unary struct {
	Op    token.Token
	Right Expr
}

// Binary is an infix operator applied to two operands
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// Grouping is a parenthesized expression
type Grouping struct {
	Inner Expr
}

func (*Literal) exprNode()  {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Grouping) exprNode() {}

func (e *Literal) String() string  { return Sprint(e) }
func (e *Unary) String() string    { return Sprint(e) }
func (e *Binary) String() string   { return Sprint(e) }
func (e *Grouping) String() string { return Sprint(e) }

// ExpressionStmt evaluates an expression for its value
type ExpressionStmt struct {
	Expr Expr
}

// PrintStmt evaluates an expression and writes it to the output
type PrintStmt struct {
	Expr Expr
}

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}

func (s *ExpressionStmt) String() string { return SprintStmt(s) }
func (s *PrintStmt) String() string      { return SprintStmt(s) }
