// File: errors.go
// Title: Runtime Errors
// Description: The error returned when an operation receives operands of
//              the wrong type. It carries the node that failed.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-07
// Modified: 2026-10-07
//
// Change History:
// - 2026-10-07 v0.1.0: Initial runtime error

package interpreter

import (
	"github.com/msto63/lox/foundation/lox/ast"
	"github.com/msto63/lox/foundation/lox/diag"
	"github.com/msto63/lox/foundation/lox/token"
)

// RuntimeError reports a type-mismatched operation. Node is the offending
// expression exactly as it appears in the tree (a *ast.Binary or
// *ast.Unary); Token is its operator.
type RuntimeError struct {
	Node    ast.Expr
	Token   token.Token
	Message string
}

// Error renders the error in the diagnostics format
func (e *RuntimeError) Error() string {
	return e.Record().String()
}

// Record converts the error into a diagnostics record
func (e *RuntimeError) Record() diag.Record {
	return diag.Record{
		Line:    e.Token.Line,
		Where:   diag.Where(e.Token),
		Message: e.Message,
		Stage:   diag.StageEval,
	}
}
