// File: scanner.go
// Title: Lexical Scanner
// Description: Turns source text into the token sequence consumed by the
//              parser. One left-to-right pass over bytes; the pending lexeme
//              is source[start:current]. Comments and whitespace produce no
//              tokens, unrecognized bytes produce Error tokens, and scanning
//              always runs to the end of input.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-05
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-05 v0.1.0: Initial scanner
// - 2026-10-09 v0.1.1: Block comments, unterminated literal policy

package scanner

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	loxlog "github.com/msto63/lox/foundation/core/log"
	"github.com/msto63/lox/foundation/lox/diag"
	"github.com/msto63/lox/foundation/lox/token"
)

// Unterminated selects how a string or block comment that runs into the end
// of input is handled
type Unterminated int

const (
	// UnterminatedError records a lexical error and drops the partial lexeme
	UnterminatedError Unterminated = iota

	// UnterminatedEOF silently treats end of input as the terminator
	UnterminatedEOF
)

// String returns the configuration name of the policy
func (u Unterminated) String() string {
	if u == UnterminatedEOF {
		return "eof"
	}
	return "error"
}

// ParseUnterminated parses "error" or "eof"
func ParseUnterminated(s string) (Unterminated, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "error":
		return UnterminatedError, nil
	case "eof":
		return UnterminatedEOF, nil
	default:
		return UnterminatedError, fmt.Errorf("invalid unterminated policy %q (want \"error\" or \"eof\")", s)
	}
}

// Options configures a Scanner
type Options struct {
	// Diagnostics receives lexical errors; a fresh collector is used when nil
	Diagnostics *diag.Collector

	Unterminated Unterminated

	// Logger defaults to the foundation default logger
	Logger *loxlog.Logger
}

// Scanner holds the cursor state for one source text
type Scanner struct {
	source  string
	start   int
	current int
	line    int

	tokens []token.Token
	diag   *diag.Collector
	policy Unterminated
	logger *loxlog.Logger
}

// New creates a scanner over source
func New(source string, opts Options) *Scanner {
	if opts.Diagnostics == nil {
		opts.Diagnostics = diag.New()
	}
	if opts.Logger == nil {
		opts.Logger = loxlog.GetDefault()
	}
	return &Scanner{
		source: source,
		line:   1,
		diag:   opts.Diagnostics,
		policy: opts.Unterminated,
		logger: opts.Logger.WithField("component", "lox-scanner"),
	}
}

// Scan is a convenience wrapper using default options. It returns the
// tokens together with the collector holding any lexical errors.
func Scan(source string) ([]token.Token, *diag.Collector) {
	s := New(source, Options{})
	return s.ScanTokens(), s.diag
}

// Diagnostics returns the collector the scanner reports to
func (s *Scanner) Diagnostics() *diag.Collector {
	return s.diag
}

// ScanTokens scans the whole source. The result always ends with exactly
// one EOF token.
func (s *Scanner) ScanTokens() []token.Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.scanToken()
	}
	s.tokens = append(s.tokens, token.New(token.EOF, "", s.line))

	s.logger.Debug("scan complete", loxlog.Fields{
		"tokens": len(s.tokens),
		"lines":  s.line,
	})
	return s.tokens
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case '(':
		s.addToken(token.LeftParen)
	case ')':
		s.addToken(token.RightParen)
	case '{':
		s.addToken(token.LeftBrace)
	case '}':
		s.addToken(token.RightBrace)
	case ',':
		s.addToken(token.Comma)
	case '.':
		s.addToken(token.Dot)
	case '-':
		s.addToken(token.Minus)
	case '+':
		s.addToken(token.Plus)
	case ';':
		s.addToken(token.Semicolon)
	case '*':
		s.addToken(token.Star)
	case '!':
		s.addToken(s.either('=', token.BangEqual, token.Bang))
	case '=':
		s.addToken(s.either('=', token.EqualEqual, token.Equal))
	case '<':
		s.addToken(s.either('=', token.LessEqual, token.Less))
	case '>':
		s.addToken(s.either('=', token.GreaterEqual, token.Greater))
	case '/':
		switch {
		case s.match('/'):
			s.lineComment()
		case s.match('*'):
			s.blockComment()
		default:
			s.addToken(token.Slash)
		}
	case ' ', '\r', '\t':
	case '\n':
		s.line++
	case '"':
		s.string()
	default:
		switch {
		case isDigit(c):
			s.number()
		case isAlpha(c):
			s.identifier()
		default:
			// one Error token per character, not per byte
			_, size := utf8.DecodeRuneInString(s.source[s.start:])
			s.current = s.start + size
			s.addToken(token.Error)
			s.diag.RecordStage(diag.StageScan, s.line, "", "Unexpected character.")
			s.logger.Trace("unexpected character", loxlog.Fields{"char": s.source[s.start:s.current], "line": s.line})
		}
	}
}

func (s *Scanner) lineComment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
}

// blockComment consumes up to and including the first "*/"; comments do not nest
func (s *Scanner) blockComment() {
	for !s.isAtEnd() {
		if s.peek() == '*' && s.peekNext() == '/' {
			s.current += 2
			return
		}
		if s.advance() == '\n' {
			s.line++
		}
	}
	s.unterminated("Unterminated block comment.")
}

func (s *Scanner) string() {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.advance() == '\n' {
			s.line++
		}
	}

	if s.isAtEnd() {
		if s.policy == UnterminatedEOF {
			s.addLiteral(token.String, s.source[s.start+1:s.current])
			return
		}
		s.unterminated("Unterminated string.")
		return
	}

	s.advance() // closing quote
	s.addLiteral(token.String, s.source[s.start+1:s.current-1])
}

func (s *Scanner) number() {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	// digits with an optional fraction always parse
	value, _ := strconv.ParseFloat(s.source[s.start:s.current], 64)
	s.addLiteral(token.Number, value)
}

func (s *Scanner) identifier() {
	for isAlpha(s.peek()) {
		s.advance()
	}
	s.addToken(token.LookupIdent(s.source[s.start:s.current]))
}

func (s *Scanner) unterminated(message string) {
	if s.policy == UnterminatedEOF {
		return
	}
	s.diag.RecordStage(diag.StageScan, s.line, "", message)
}

func (s *Scanner) addToken(kind token.Kind) {
	s.addLiteral(kind, nil)
}

func (s *Scanner) addLiteral(kind token.Kind, literal interface{}) {
	s.tokens = append(s.tokens, token.Token{
		Kind:    kind,
		Lexeme:  s.source[s.start:s.current],
		Literal: literal,
		Line:    s.line,
	})
}

func (s *Scanner) either(expected byte, matched, otherwise token.Kind) token.Kind {
	if s.match(expected) {
		return matched
	}
	return otherwise
}

func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	return c
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
