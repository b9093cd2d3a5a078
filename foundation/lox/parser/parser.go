// File: parser.go
// Title: Recursive-Descent Parser
// Description: Builds statements from the scanner's tokens. One method per
//              precedence level (equality, comparison, term, factor, unary,
//              primary); binary levels fold left-associatively. Syntax errors
//              are recorded and the parser resynchronizes at the next
//              statement boundary, so each broken statement yields one error.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-06
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-06 v0.1.0: Initial expression grammar
// - 2026-10-09 v0.1.1: Statements, error recovery, single-expression entry

package parser

import (
	"strconv"
	"strings"

	loxlog "github.com/msto63/lox/foundation/core/log"
	"github.com/msto63/lox/foundation/lox/ast"
	"github.com/msto63/lox/foundation/lox/diag"
	"github.com/msto63/lox/foundation/lox/token"
)

// ParseError describes one grammar violation
type ParseError struct {
	Token   token.Token
	Message string
}

// Error renders the error in the diagnostics format
func (e *ParseError) Error() string {
	return diag.Record{
		Line:    e.Token.Line,
		Where:   diag.Where(e.Token),
		Message: e.Message,
	}.String()
}

// Options configures a Parser
type Options struct {
	// Diagnostics receives syntax errors; a fresh collector is used when nil
	Diagnostics *diag.Collector

	// Logger defaults to the foundation default logger
	Logger *loxlog.Logger
}

// Parser consumes one token sequence
type Parser struct {
	tokens  []token.Token
	current int

	diag   *diag.Collector
	logger *loxlog.Logger
}

// New creates a parser. A sequence that does not end in EOF gets one
// appended, so the parser never reads past the end.
func New(tokens []token.Token, opts Options) *Parser {
	if opts.Diagnostics == nil {
		opts.Diagnostics = diag.New()
	}
	if opts.Logger == nil {
		opts.Logger = loxlog.GetDefault()
	}

	if n := len(tokens); n == 0 || tokens[n-1].Kind != token.EOF {
		line := 1
		if n > 0 {
			line = tokens[n-1].Line
		}
		tokens = append(tokens[:n:n], token.New(token.EOF, "", line))
	}

	return &Parser{
		tokens: tokens,
		diag:   opts.Diagnostics,
		logger: opts.Logger.WithField("component", "lox-parser"),
	}
}

// Parse parses tokens into statements, reporting syntax errors to collector
// (which may be nil)
func Parse(tokens []token.Token, collector *diag.Collector) []ast.Stmt {
	return New(tokens, Options{Diagnostics: collector}).Parse()
}

// ParseExpression parses tokens holding exactly one expression
func ParseExpression(tokens []token.Token) (ast.Expr, error) {
	return New(tokens, Options{}).ParseExpression()
}

// Diagnostics returns the collector the parser reports to
func (p *Parser) Diagnostics() *diag.Collector {
	return p.diag
}

// Parse parses statements until EOF. Statements with syntax errors are
// left out of the result.
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	errors := 0

	for !p.isAtEnd() {
		start := p.current
		stmt, err := p.statement()
		if err != nil {
			errors++
			p.synchronize(start)
			continue
		}
		stmts = append(stmts, stmt)
	}

	p.logger.Debug("parse complete", loxlog.Fields{
		"statements": len(stmts),
		"errors":     errors,
	})
	return stmts
}

// ParseExpression parses a single expression that must span all tokens
func (p *Parser) ParseExpression() (ast.Expr, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if !p.isAtEnd() {
		return nil, p.errorAt(p.peek(), "Expect end of expression.")
	}
	return expr, nil
}

func (p *Parser) statement() (ast.Stmt, error) {
	if p.match(token.Print) {
		value, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.Semicolon, "Expect ';' after value."); err != nil {
			return nil, err
		}
		return &ast.PrintStmt{Expr: value}, nil
	}

	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &ast.ExpressionStmt{Expr: expr}, nil
}

func (p *Parser) expression() (ast.Expr, error) {
	return p.equality()
}

func (p *Parser) equality() (ast.Expr, error) {
	return p.binary(p.comparison, token.BangEqual, token.EqualEqual)
}

func (p *Parser) comparison() (ast.Expr, error) {
	return p.binary(p.term, token.Greater, token.GreaterEqual, token.Less, token.LessEqual)
}

func (p *Parser) term() (ast.Expr, error) {
	return p.binary(p.factor, token.Minus, token.Plus)
}

func (p *Parser) factor() (ast.Expr, error) {
	return p.binary(p.unary, token.Slash, token.Star)
}

// binary parses one left-associative level: operand (op operand)*
func (p *Parser) binary(operand func() (ast.Expr, error), ops ...token.Kind) (ast.Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}

	for p.match(ops...) {
		op := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: op, Right: right}, nil
	}
	return p.primary()
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(token.False):
		return &ast.Literal{Value: ast.Bool(false)}, nil
	case p.match(token.True):
		return &ast.Literal{Value: ast.Bool(true)}, nil
	case p.match(token.Nil):
		return &ast.Literal{Value: ast.Nil()}, nil
	case p.match(token.Number):
		return &ast.Literal{Value: ast.Number(numberLiteral(p.previous()))}, nil
	case p.match(token.String):
		return &ast.Literal{Value: ast.String(stringLiteral(p.previous()))}, nil
	case p.match(token.LeftParen):
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RightParen, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &ast.Grouping{Inner: inner}, nil
	}

	return nil, p.errorAt(p.peek(), "Expect expression.")
}

// synchronize skips to the next statement boundary: just past a ';' or just
// before a statement keyword. At least one token is consumed when the error
// occurred on the statement's first token.
func (p *Parser) synchronize(start int) {
	if p.current == start {
		p.advance()
	}
	for !p.isAtEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}
		if p.peek().Kind.StartsStatement() {
			return
		}
		p.advance()
	}
}

// errorAt records a syntax error. Error tokens were already reported by the
// scanner and are not reported twice.
func (p *Parser) errorAt(tok token.Token, message string) *ParseError {
	err := &ParseError{Token: tok, Message: message}
	if tok.Kind != token.Error {
		p.diag.RecordStage(diag.StageParse, tok.Line, diag.Where(tok), message)
	}
	p.logger.Debug("syntax error", loxlog.Fields{
		"line":    tok.Line,
		"token":   tok.Kind.String(),
		"message": message,
	})
	return err
}

func (p *Parser) consume(kind token.Kind, message string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return token.Token{}, p.errorAt(p.peek(), message)
}

// match consumes the current token if its kind is one of kinds. Only kinds
// are compared, never literal payloads.
func (p *Parser) match(kinds ...token.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return kind == token.EOF
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	if p.current == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.current-1]
}

// numberLiteral prefers the scanner's payload and falls back to the lexeme
// for hand-built tokens
func numberLiteral(tok token.Token) float64 {
	if n, ok := tok.Literal.(float64); ok {
		return n
	}
	n, _ := strconv.ParseFloat(tok.Lexeme, 64)
	return n
}

func stringLiteral(tok token.Token) string {
	if s, ok := tok.Literal.(string); ok {
		return s
	}
	return strings.Trim(tok.Lexeme, `"`)
}
