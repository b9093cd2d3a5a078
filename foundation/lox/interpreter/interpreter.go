// File: interpreter.go
// Title: Tree-Walking Evaluator
// Description: Evaluates expressions to values and executes statements.
//              Evaluate and Execute return either a value or a
//              *RuntimeError naming the failing node; Interpret runs a whole
//              program, records runtime errors and keeps going with the next
//              statement.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-07
// Modified: 2026-10-10
//
// Change History:
// - 2026-10-07 v0.1.0: Initial evaluator
// - 2026-10-10 v0.1.1: Interpret with per-statement outcomes

package interpreter

import (
	"fmt"
	"io"
	"os"

	loxerror "github.com/msto63/lox/foundation/core/error"
	loxlog "github.com/msto63/lox/foundation/core/log"
	"github.com/msto63/lox/foundation/lox/ast"
	"github.com/msto63/lox/foundation/lox/diag"
	"github.com/msto63/lox/foundation/lox/token"
)

// Options configures an Interpreter
type Options struct {
	// Output receives print statements; defaults to os.Stdout
	Output io.Writer

	// Diagnostics receives runtime errors from Interpret; a fresh
	// collector is used when nil
	Diagnostics *diag.Collector

	// Logger defaults to the foundation default logger
	Logger *loxlog.Logger
}

// Interpreter evaluates syntax trees. It holds no program state between
// statements, so one value can serve many runs in sequence.
type Interpreter struct {
	out    io.Writer
	diag   *diag.Collector
	logger *loxlog.Logger
}

// Outcome is the result of executing one statement
type Outcome struct {
	Stmt  ast.Stmt
	Value ast.Value
	Err   *RuntimeError
}

// New creates an interpreter
func New(opts Options) *Interpreter {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Diagnostics == nil {
		opts.Diagnostics = diag.New()
	}
	if opts.Logger == nil {
		opts.Logger = loxlog.GetDefault()
	}
	return &Interpreter{
		out:    opts.Output,
		diag:   opts.Diagnostics,
		logger: opts.Logger.WithField("component", "lox-interpreter"),
	}
}

// Diagnostics returns the collector Interpret reports to
func (i *Interpreter) Diagnostics() *diag.Collector {
	return i.diag
}

// Interpret executes stmts in order. A runtime error aborts only its own
// statement; it is recorded and execution continues. The returned error is
// non-nil only when writing output fails.
func (i *Interpreter) Interpret(stmts []ast.Stmt) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(stmts))
	failed := 0

	for _, stmt := range stmts {
		value, err := i.Execute(stmt)
		outcome := Outcome{Stmt: stmt, Value: value}

		if err != nil {
			rtErr, ok := err.(*RuntimeError)
			if !ok {
				return outcomes, err
			}
			failed++
			outcome.Err = rtErr
			r := rtErr.Record()
			i.diag.RecordStage(diag.StageEval, r.Line, r.Where, r.Message)
			i.logger.Debug("runtime error", loxlog.Fields{
				"line":    r.Line,
				"message": r.Message,
				"node":    rtErr.Node.String(),
			})
		}
		outcomes = append(outcomes, outcome)
	}

	i.logger.Debug("evaluation complete", loxlog.Fields{
		"statements": len(stmts),
		"errors":     failed,
	})
	return outcomes, nil
}

// Execute runs one statement and returns the value of its expression
func (i *Interpreter) Execute(stmt ast.Stmt) (ast.Value, error) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		return i.Evaluate(s.Expr)
	case *ast.PrintStmt:
		value, err := i.Evaluate(s.Expr)
		if err != nil {
			return ast.Nil(), err
		}
		if _, err := fmt.Fprintln(i.out, value.String()); err != nil {
			return value, loxerror.Wrap(err, "write print output").
				WithCode(loxerror.CodeIO).
				WithOperation("print")
		}
		return value, nil
	default:
		panic(fmt.Sprintf("interpreter: unhandled statement %T", stmt))
	}
}

// Evaluate reduces an expression to a value. Operands are evaluated left
// to right and eagerly.
func (i *Interpreter) Evaluate(expr ast.Expr) (ast.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.Grouping:
		return i.Evaluate(e.Inner)
	case *ast.Unary:
		return i.unary(e)
	case *ast.Binary:
		return i.binary(e)
	default:
		panic(fmt.Sprintf("interpreter: unhandled expression %T", expr))
	}
}

func (i *Interpreter) unary(e *ast.Unary) (ast.Value, error) {
	right, err := i.Evaluate(e.Right)
	if err != nil {
		return ast.Nil(), err
	}

	switch e.Op.Kind {
	case token.Bang:
		return ast.Bool(!right.Truthy()), nil
	case token.Minus:
		n, ok := right.AsNumber()
		if !ok {
			return ast.Nil(), fail(e, e.Op, "Operand must be a number.")
		}
		return ast.Number(-n), nil
	default:
		return ast.Nil(), fail(e, e.Op, "Unknown unary operator.")
	}
}

func (i *Interpreter) binary(e *ast.Binary) (ast.Value, error) {
	left, err := i.Evaluate(e.Left)
	if err != nil {
		return ast.Nil(), err
	}
	right, err := i.Evaluate(e.Right)
	if err != nil {
		return ast.Nil(), err
	}

	// equality is defined for every pair of values
	switch e.Op.Kind {
	case token.EqualEqual:
		return ast.Bool(left.Equal(right)), nil
	case token.BangEqual:
		return ast.Bool(!left.Equal(right)), nil
	}

	if e.Op.Kind == token.Plus {
		if l, r, ok := numbers(left, right); ok {
			return ast.Number(l + r), nil
		}
		if l, ok := left.AsString(); ok {
			if r, ok := right.AsString(); ok {
				return ast.String(l + r), nil
			}
		}
		return ast.Nil(), fail(e, e.Op, "Operands must be two numbers or two strings.")
	}

	l, r, ok := numbers(left, right)
	if !ok {
		return ast.Nil(), fail(e, e.Op, "Operands must be numbers.")
	}

	switch e.Op.Kind {
	case token.Minus:
		return ast.Number(l - r), nil
	case token.Star:
		return ast.Number(l * r), nil
	case token.Slash:
		return ast.Number(l / r), nil
	case token.Greater:
		return ast.Bool(l > r), nil
	case token.GreaterEqual:
		return ast.Bool(l >= r), nil
	case token.Less:
		return ast.Bool(l < r), nil
	case token.LessEqual:
		return ast.Bool(l <= r), nil
	default:
		return ast.Nil(), fail(e, e.Op, "Unknown binary operator.")
	}
}

func numbers(left, right ast.Value) (float64, float64, bool) {
	l, lok := left.AsNumber()
	r, rok := right.AsNumber()
	return l, r, lok && rok
}

func fail(node ast.Expr, op token.Token, message string) *RuntimeError {
	return &RuntimeError{Node: node, Token: op, Message: message}
}
