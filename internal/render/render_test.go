package render

import (
	"strings"
	"testing"

	"github.com/msto63/lox/foundation/lox/ast"
)

func TestPlainRenderer(t *testing.T) {
	r := Plain()

	if r.Color() {
		t.Fatal("Plain().Color() = true, want false")
	}

	report := "[line 1] Error at 'x': boom\n[line 2] Error: bad"
	if got := r.Diagnostics(report); got != report {
		t.Errorf("Diagnostics() = %q, want unchanged", got)
	}
	if got := r.Title("lox"); got != "lox" {
		t.Errorf("Title() = %q, want lox", got)
	}
}

func TestEcho(t *testing.T) {
	tests := []struct {
		name  string
		value ast.Value
		want  string
	}{
		{"nil", ast.Nil(), "nil"},
		{"bool", ast.Bool(true), "true"},
		{"number", ast.Number(2.5), "2.5"},
		{"string quoted", ast.String("hi"), `"hi"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Plain().Echo(tt.value); got != tt.want {
				t.Errorf("Echo() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSeparator(t *testing.T) {
	got := Plain().Separator("main.lox", "0123456789abcdef")
	want := "---- main.lox (run 01234567) ----"
	if got != want {
		t.Errorf("Separator() = %q, want %q", got, want)
	}

	if got := Plain().Separator("a", "xy"); !strings.Contains(got, "(run xy)") {
		t.Errorf("Separator() with short id = %q", got)
	}
}

func TestColorKeepsText(t *testing.T) {
	r := New(true)

	if !r.Color() {
		t.Fatal("New(true).Color() = false")
	}
	if got := r.Diagnostics("[line 1] Error: x"); !strings.Contains(got, "[line 1] Error: x") {
		t.Errorf("Diagnostics() = %q, lost text", got)
	}
	if got := r.Diagnostics(""); got != "" {
		t.Errorf("Diagnostics(\"\") = %q, want empty", got)
	}
}

func TestNilRenderer(t *testing.T) {
	var r *Renderer
	if r.Color() {
		t.Error("nil renderer should not color")
	}
	if got := r.Echo(ast.Number(1)); got != "1" {
		t.Errorf("Echo() = %q, want 1", got)
	}
}
