package parser

import (
	"strings"
	"testing"

	"github.com/msto63/lox/foundation/lox/ast"
	"github.com/msto63/lox/foundation/lox/diag"
	"github.com/msto63/lox/foundation/lox/scanner"
	"github.com/msto63/lox/foundation/lox/token"
)

func parseSource(t *testing.T, src string) ([]ast.Stmt, *diag.Collector) {
	t.Helper()
	tokens, d := scanner.Scan(src)
	return Parse(tokens, d), d
}

func TestParsePrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3;", "(expr (+ 1 (* 2 3)))"},
		{"1 * 2 + 3;", "(expr (+ (* 1 2) 3))"},
		{"1 - 2 - 3;", "(expr (- (- 1 2) 3))"},
		{"8 / 4 / 2;", "(expr (/ (/ 8 4) 2))"},
		{"(1 + 2) * 3;", "(expr (* (group (+ 1 2)) 3))"},
		{"-1 - -2;", "(expr (- (- 1) (- 2)))"},
		{"!!true;", "(expr (! (! true)))"},
		{"1 < 2 == 3 >= 4;", "(expr (== (< 1 2) (>= 3 4)))"},
		{"1 != 2 == nil;", "(expr (== (!= 1 2) nil))"},
		{`print "a" + "b";`, "(print (+ a b))"},
		{"print false;", "(print false)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			stmts, d := parseSource(t, tt.input)
			if d.HasErrors() {
				t.Fatalf("unexpected errors: %s", d.Report())
			}
			if got := ast.SprintProgram(stmts); got != tt.want {
				t.Errorf("parse(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTreeShape(t *testing.T) {
	stmts, d := parseSource(t, "1 + 2 * 3;")
	if d.HasErrors() || len(stmts) != 1 {
		t.Fatalf("stmts = %v, errors = %s", stmts, d.Report())
	}

	stmt, ok := stmts[0].(*ast.ExpressionStmt)
	if !ok {
		t.Fatalf("stmt = %T, want *ast.ExpressionStmt", stmts[0])
	}
	top, ok := stmt.Expr.(*ast.Binary)
	if !ok || top.Op.Kind != token.Plus {
		t.Fatalf("top = %v, want Binary(+)", stmt.Expr)
	}
	left, ok := top.Left.(*ast.Literal)
	if !ok || !left.Value.Equal(ast.Number(1)) {
		t.Errorf("left = %v, want Literal(1)", top.Left)
	}
	right, ok := top.Right.(*ast.Binary)
	if !ok || right.Op.Kind != token.Star {
		t.Fatalf("right = %v, want Binary(*)", top.Right)
	}
	if l, ok := right.Left.(*ast.Literal); !ok || !l.Value.Equal(ast.Number(2)) {
		t.Errorf("right.Left = %v, want Literal(2)", right.Left)
	}
	if r, ok := right.Right.(*ast.Literal); !ok || !r.Value.Equal(ast.Number(3)) {
		t.Errorf("right.Right = %v, want Literal(3)", right.Right)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantStmts  int
		wantReport string
	}{
		{
			name:       "missing closing paren",
			input:      "(1 + 2;",
			wantReport: "[line 1] Error at ';': Expect ')' after expression.",
		},
		{
			name:       "missing semicolon after print at end",
			input:      "print 1",
			wantReport: "[line 1] Error at end: Expect ';' after value.",
		},
		{
			name:       "missing semicolon after expression",
			input:      "1 + 2\n3;",
			wantReport: "[line 2] Error at '3': Expect ';' after expression.",
		},
		{
			name:       "missing operand",
			input:      "1 + ;",
			wantReport: "[line 1] Error at ';': Expect expression.",
		},
		{
			name:  "two independent errors",
			input: "print (1;\n1 + ;\nprint 3;",
			wantStmts: 1,
			wantReport: "[line 1] Error at ';': Expect ')' after expression.\n" +
				"[line 2] Error at ';': Expect expression.",
		},
		{
			name:       "resynchronizes before statement keyword",
			input:      "print 1 print 2;",
			wantStmts:  1,
			wantReport: "[line 1] Error at 'print': Expect ';' after value.",
		},
		{
			name:       "keyword without grammar consumes itself",
			input:      "class; print 1;",
			wantStmts:  1,
			wantReport: "[line 1] Error at 'class': Expect expression.",
		},
		{
			name:       "garbage in one statement reports once",
			input:      ") ) ) ;\nprint 1;",
			wantStmts:  1,
			wantReport: "[line 1] Error at ')': Expect expression.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmts, d := parseSource(t, tt.input)
			if len(stmts) != tt.wantStmts {
				t.Errorf("len(stmts) = %d, want %d (%s)", len(stmts), tt.wantStmts, ast.SprintProgram(stmts))
			}
			if got := d.Report(); got != tt.wantReport {
				t.Errorf("report =\n%s\nwant\n%s", got, tt.wantReport)
			}
			for _, r := range d.Records() {
				if r.Stage != diag.StageParse {
					t.Errorf("record %v has stage %v, want parse", r, r.Stage)
				}
			}
		})
	}
}

func TestParseErrorTokenNotReportedTwice(t *testing.T) {
	stmts, d := parseSource(t, "1 @ 2;\nprint 3;")

	want := "[line 1] Error: Unexpected character."
	if got := d.Report(); got != want {
		t.Errorf("report = %q, want %q", got, want)
	}
	if got := ast.SprintProgram(stmts); got != "(print 3)" {
		t.Errorf("stmts = %s, want (print 3)", got)
	}
}

func TestParseMatchesKindNotPayload(t *testing.T) {
	tokens := []token.Token{
		{Kind: token.Number, Lexeme: "7", Literal: 7.0, Line: 1},
		token.New(token.Plus, "+", 1),
		{Kind: token.Number, Lexeme: "0.5", Line: 1},
		token.New(token.Semicolon, ";", 1),
	}

	stmts := Parse(tokens, nil)
	if got := ast.SprintProgram(stmts); got != "(expr (+ 7 0.5))" {
		t.Errorf("Parse() = %s, want (expr (+ 7 0.5))", got)
	}
}

func TestParseExpression(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr string
	}{
		{input: "1 + 2 * 3", want: "(+ 1 (* 2 3))"},
		{input: `("x")`, want: "(group x)"},
		{input: "1 +", wantErr: "[line 1] Error at end: Expect expression."},
		{input: "1 2", wantErr: "[line 1] Error at '2': Expect end of expression."},
		{input: "(1", wantErr: "[line 1] Error at end: Expect ')' after expression."},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, _ := scanner.Scan(tt.input)
			expr, err := ParseExpression(tokens)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("ParseExpression(%q) = %v, want error", tt.input, expr)
				}
				if _, ok := err.(*ParseError); !ok {
					t.Errorf("error type = %T, want *ParseError", err)
				}
				if err.Error() != tt.wantErr {
					t.Errorf("error = %q, want %q", err.Error(), tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseExpression(%q) error = %v", tt.input, err)
			}
			if got := ast.Sprint(expr); got != tt.want {
				t.Errorf("ParseExpression(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseNeverReadsPastEnd(t *testing.T) {
	inputs := [][]token.Token{
		nil,
		{token.New(token.Print, "print", 1)},
		{token.New(token.LeftParen, "(", 1), token.New(token.LeftParen, "(", 1)},
		{token.New(token.Minus, "-", 2)},
	}

	for _, tokens := range inputs {
		d := diag.New()
		stmts := Parse(tokens, d)
		if len(stmts) != 0 {
			t.Errorf("Parse(%v) = %v, want no statements", tokens, stmts)
		}
		if len(tokens) > 0 && !strings.Contains(d.Report(), "at end") {
			t.Errorf("Parse(%v) report = %q, want an error at end", tokens, d.Report())
		}
	}
}
