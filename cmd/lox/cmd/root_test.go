package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/msto63/lox/internal/runner"
	"github.com/msto63/lox/pkg/core/version"
)

// execute runs the command tree with fresh flag values and captured streams
func execute(t *testing.T, stdin string, args ...string) (string, string, int) {
	t.Helper()

	cfgFile, verbose, logLevel, noColor = "", false, "", false
	runWatch, replTUI = false, false
	for _, key := range []string{"LOX_CONFIG", "LOX_LOG_LEVEL", "LOX_PROMPT", "LOX_COLOR", "LOX_UNTERMINATED"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)

	code := Execute(context.Background())
	return stdout.String(), stderr.String(), code
}

func writeScript(t *testing.T, name, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunCommand(t *testing.T) {
	tests := []struct {
		name       string
		source     string
		wantStdout string
		wantStderr string
		wantCode   int
	}{
		{
			name:       "clean",
			source:     "print 1 + 2;\nprint \"a\" + \"b\";\n",
			wantStdout: "3\nab\n",
			wantCode:   runner.ExitOK,
		},
		{
			name:       "syntax error",
			source:     "print (1;\n",
			wantStderr: "[line 1] Error at ';': Expect ')' after expression.\n",
			wantCode:   runner.ExitDataErr,
		},
		{
			name:       "runtime error",
			source:     "print 1;\nprint 1 < \"x\";\nprint 3;\n",
			wantStdout: "1\n3\n",
			wantStderr: "[line 2] Error at '<': Operands must be numbers.\n",
			wantCode:   runner.ExitSoftware,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScript(t, "main.lox", tt.source)

			for _, args := range [][]string{{"run", "--no-color", path}, {"--no-color", path}} {
				stdout, stderr, code := execute(t, "", args...)
				if stdout != tt.wantStdout {
					t.Errorf("%v: stdout = %q, want %q", args, stdout, tt.wantStdout)
				}
				if stderr != tt.wantStderr {
					t.Errorf("%v: stderr = %q, want %q", args, stderr, tt.wantStderr)
				}
				if code != tt.wantCode {
					t.Errorf("%v: exit code = %d, want %d", args, code, tt.wantCode)
				}
			}
		})
	}
}

func TestRunCommand_MissingFile(t *testing.T) {
	_, stderr, code := execute(t, "", "run", filepath.Join(t.TempDir(), "absent.lox"))

	if code != runner.ExitIOErr {
		t.Errorf("exit code = %d, want %d", code, runner.ExitIOErr)
	}
	if !strings.HasPrefix(stderr, "Error: read source") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--frobnicate"}},
		{"run without file", []string{"run"}},
		{"too many files", []string{"a.lox", "b.lox"}},
		{"bad log level", []string{"--log-level", "loud", "version"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, code := execute(t, "", tt.args...)
			if code != runner.ExitUsage {
				t.Errorf("exit code = %d, want %d", code, runner.ExitUsage)
			}
			if !strings.HasPrefix(stderr, "Error: ") {
				t.Errorf("stderr = %q, want error message", stderr)
			}
		})
	}
}

func TestInteractive(t *testing.T) {
	stdout, stderr, code := execute(t, "print 1;\n1 + 1;\nprint ;\nexit\n", "--no-color")

	if code != runner.ExitOK {
		t.Errorf("exit code = %d, want 0", code)
	}
	if want := "> 1\n> 2\n> > "; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
	if want := "[line 1] Error at ';': Expect expression.\n"; stderr != want {
		t.Errorf("stderr = %q, want %q", stderr, want)
	}
}

func TestReplCommand_Config(t *testing.T) {
	cfg := writeScript(t, "lox.yaml", "repl:\n  prompt: \"$ \"\n  echo: false\n")

	stdout, _, code := execute(t, "1 + 1;\n", "repl", "--config", cfg, "--no-color")
	if code != runner.ExitOK {
		t.Errorf("exit code = %d, want 0", code)
	}
	if want := "$ $ \n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestTokensCommand(t *testing.T) {
	stdout, _, code := execute(t, "1 + \"a\"", "tokens", "-")

	want := "NUMBER 1 1 1\nPLUS + nil 1\nSTRING \"a\" a 1\nEOF  nil 1\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
	if code != runner.ExitOK {
		t.Errorf("exit code = %d, want 0", code)
	}

	_, stderr, code := execute(t, "1 @", "tokens", "-")
	if code != runner.ExitDataErr {
		t.Errorf("exit code = %d, want %d", code, runner.ExitDataErr)
	}
	if !strings.Contains(stderr, "Unexpected character.") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestAstCommand(t *testing.T) {
	path := writeScript(t, "expr.lox", "print 1 + 2 * 3;\n-(4) == nil;\n")

	stdout, _, code := execute(t, "", "ast", path)
	want := "(print (+ 1 (* 2 3)))\n(expr (== (- (group 4)) nil))\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
	if code != runner.ExitOK {
		t.Errorf("exit code = %d, want 0", code)
	}

	stdout, _, code = execute(t, "print 1 print 2;", "ast", "-")
	if stdout != "(print 2)\n" {
		t.Errorf("stdout after recovery = %q, want (print 2)", stdout)
	}
	if code != runner.ExitDataErr {
		t.Errorf("exit code = %d, want %d", code, runner.ExitDataErr)
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, _, code := execute(t, "", "--no-color", "version")

	if code != runner.ExitOK {
		t.Errorf("exit code = %d, want 0", code)
	}
	if want := version.Get().String(); stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestVerboseLogsToStderr(t *testing.T) {
	path := writeScript(t, "main.lox", "print 1;")

	stdout, stderr, code := execute(t, "", "-v", "--no-color", "run", path)
	if code != runner.ExitOK || stdout != "1\n" {
		t.Fatalf("stdout = %q, code = %d", stdout, code)
	}
	if !strings.Contains(stderr, "run finished") {
		t.Errorf("stderr = %q, want debug log entries", stderr)
	}
}
