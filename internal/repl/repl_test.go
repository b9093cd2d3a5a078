package repl

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/peterh/liner"

	loxlog "github.com/msto63/lox/foundation/core/log"

	"github.com/msto63/lox/internal/runner"
)

func newSession(input string, cfg Config) (*Session, *bytes.Buffer, *bytes.Buffer, *bytes.Buffer) {
	var prompts, stdout, stderr bytes.Buffer
	r := runner.New(runner.Options{
		Stdout: &stdout,
		Stderr: &stderr,
		Logger: loxlog.Discard(),
		Echo:   true,
	})
	return New(r, strings.NewReader(input), &prompts, cfg, loxlog.Discard()), &prompts, &stdout, &stderr
}

func TestSession_Run(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantStdout string
		wantStderr string
		wantRuns   int
	}{
		{
			name:       "print and echo",
			input:      "print 1;\n2 * 3;\n",
			wantStdout: "1\n6\n",
			wantRuns:   2,
		},
		{
			name:       "errors do not end the session",
			input:      "print ;\nprint 2;\n",
			wantStdout: "2\n",
			wantStderr: "[line 1] Error at ';': Expect expression.\n",
			wantRuns:   2,
		},
		{
			name:       "exit stops reading",
			input:      "print 1;\n  exit  \nprint 2;\n",
			wantStdout: "1\n",
			wantRuns:   1,
		},
		{
			name:     "blank lines are skipped",
			input:    "\n   \n",
			wantRuns: 0,
		},
		{
			name:       "last line without newline",
			input:      "print \"end\";",
			wantStdout: "end\n",
			wantRuns:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, stdout, stderr := newSession(tt.input, DefaultConfig())

			if err := s.Run(context.Background()); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if got := stdout.String(); got != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", got, tt.wantStdout)
			}
			if got := stderr.String(); got != tt.wantStderr {
				t.Errorf("stderr = %q, want %q", got, tt.wantStderr)
			}
			if got := s.runner.Runs(); got != tt.wantRuns {
				t.Errorf("Runs() = %d, want %d", got, tt.wantRuns)
			}
		})
	}
}

func TestSession_Prompt(t *testing.T) {
	s, prompts, _, _ := newSession("1;\n", Config{Prompt: "lox> ", ExitCommand: "quit"})

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := prompts.String(); got != "lox> lox> \n" {
		t.Errorf("prompts = %q, want two prompts and a final newline", got)
	}
}

func TestSession_CustomExit(t *testing.T) {
	s, _, stdout, _ := newSession("quit\nprint 1;\n", Config{ExitCommand: "quit"})

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want nothing after quit", stdout.String())
	}
}

func TestSession_Cancelled(t *testing.T) {
	s, _, stdout, _ := newSession("print 1;\n", DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want nothing", stdout.String())
	}
}

func TestDefaultConfig(t *testing.T) {
	s, _, _, _ := newSession("", Config{})
	if s.cfg != DefaultConfig() {
		t.Errorf("cfg = %+v, want %+v", s.cfg, DefaultConfig())
	}
}

// scriptedReader replays lines and then returns end
type scriptedReader struct {
	lines   []string
	end     error
	prompts []string
	closed  bool
}

func (r *scriptedReader) ReadLine(prompt string) (string, error) {
	r.prompts = append(r.prompts, prompt)
	if len(r.lines) == 0 {
		return "", r.end
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func (r *scriptedReader) Close() error {
	r.closed = true
	return nil
}

func TestSession_ReaderEndings(t *testing.T) {
	tests := []struct {
		name    string
		end     error
		wantErr bool
	}{
		{"ctrl+c aborts cleanly", liner.ErrPromptAborted, false},
		{"end of input", io.EOF, false},
		{"read failure", errors.New("terminal gone"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			r := runner.New(runner.Options{Stdout: &stdout, Stderr: &bytes.Buffer{}, Logger: loxlog.Discard(), Echo: true})
			reader := &scriptedReader{lines: []string{"print 1;", "2 + 3;"}, end: tt.end}
			s := NewWithReader(r, reader, &bytes.Buffer{}, Config{Prompt: "lox> "}, loxlog.Discard())

			err := s.Run(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := stdout.String(); got != "1\n5\n" {
				t.Errorf("stdout = %q, want %q", got, "1\n5\n")
			}
			if len(reader.prompts) != 3 || reader.prompts[0] != "lox> " {
				t.Errorf("prompts = %q, want three lox> prompts", reader.prompts)
			}
			if !reader.closed {
				t.Error("reader was not closed")
			}
		})
	}
}

func TestNewLineReader_NonTerminal(t *testing.T) {
	if _, ok := NewLineReader(strings.NewReader(""), &bytes.Buffer{}).(*streamReader); !ok {
		t.Error("NewLineReader(strings.Reader) should read plain lines")
	}

	f, err := os.CreateTemp(t.TempDir(), "input")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, ok := NewLineReader(f, &bytes.Buffer{}).(*streamReader); !ok {
		t.Error("NewLineReader(regular file) should read plain lines")
	}
}

func TestStreamReader_EOF(t *testing.T) {
	var out bytes.Buffer
	r := newStreamReader(strings.NewReader("a\n"), &out)

	if line, err := r.ReadLine("> "); err != nil || line != "a" {
		t.Fatalf("ReadLine() = %q, %v, want a", line, err)
	}
	if _, err := r.ReadLine("> "); !errors.Is(err, io.EOF) {
		t.Errorf("ReadLine() error = %v, want io.EOF", err)
	}
	if got := out.String(); got != "> > \n" {
		t.Errorf("out = %q, want two prompts and a newline", got)
	}
}
