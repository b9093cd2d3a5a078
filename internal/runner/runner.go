// ============================================================================
// lox - scripting language toolchain
// ============================================================================
//
// Package:     runner
// Description: Drives the engine for the command line: reads sources, writes
//              diagnostics to stderr, echoes values and maps results to
//              process exit codes
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package runner

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	loxerror "github.com/msto63/lox/foundation/core/error"
	loxlog "github.com/msto63/lox/foundation/core/log"
	"github.com/msto63/lox/foundation/lox"
	"github.com/msto63/lox/foundation/lox/ast"
	"github.com/msto63/lox/foundation/lox/scanner"

	"github.com/msto63/lox/internal/render"
)

// Exit codes (sysexits.h)
const (
	ExitOK       = 0
	ExitUsage    = 64
	ExitDataErr  = 65
	ExitSoftware = 70
	ExitIOErr    = 74
)

// Options configures a Runner
type Options struct {
	Stdout io.Writer
	Stderr io.Writer

	Unterminated scanner.Unterminated
	Logger       *loxlog.Logger
	Renderer     *render.Renderer

	// Echo writes the value of a trailing expression statement to Stdout
	Echo bool
}

// Runner runs source units and reports their results
type Runner struct {
	engine    *lox.Engine
	stdout    io.Writer
	stderr    io.Writer
	render    *render.Renderer
	logger    *loxlog.Logger
	echo      bool
	sessionID string

	runs   int
	failed int
}

// New creates a runner with its own session id
func New(opts Options) *Runner {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Logger == nil {
		opts.Logger = loxlog.GetDefault()
	}
	if opts.Renderer == nil {
		opts.Renderer = render.Plain()
	}

	sessionID := uuid.NewString()
	logger := opts.Logger.WithField("session", sessionID)

	return &Runner{
		engine: lox.New(lox.Options{
			Output:       opts.Stdout,
			Unterminated: opts.Unterminated,
			Logger:       logger,
		}),
		stdout:    opts.Stdout,
		stderr:    opts.Stderr,
		render:    opts.Renderer,
		logger:    logger,
		echo:      opts.Echo,
		sessionID: sessionID,
	}
}

// SessionID identifies this runner in log output
func (r *Runner) SessionID() string {
	return r.sessionID
}

// Runs returns how many units were run
func (r *Runner) Runs() int {
	return r.runs
}

// Failed returns how many runs reported at least one error
func (r *Runner) Failed() int {
	return r.failed
}

// Renderer returns the renderer used for diagnostics
func (r *Runner) Renderer() *render.Renderer {
	return r.render
}

// Run runs one unit, writes its diagnostics and, when echo is enabled,
// the value of a trailing expression statement. The error is reserved for
// output failures.
func (r *Runner) Run(source string) (*lox.Result, error) {
	result, err := r.engine.Run(source)
	r.runs++
	if result.HasErrors() {
		r.failed++
	}

	if report := result.Report(); report != "" {
		if _, werr := fmt.Fprintln(r.stderr, r.render.Diagnostics(report)); werr != nil && err == nil {
			err = ioError(werr, "write diagnostics")
		}
	}
	if err != nil {
		return result, err
	}

	if r.echo {
		if v, ok := trailingValue(result); ok {
			if _, werr := fmt.Fprintln(r.stdout, r.render.Echo(v)); werr != nil {
				return result, ioError(werr, "write value")
			}
		}
	}
	return result, nil
}

// RunFile reads path and runs it once
func (r *Runner) RunFile(path string) (*lox.Result, error) {
	source, err := ReadSource(path, nil)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("running file", loxlog.Fields{"path": path, "bytes": len(source)})
	return r.Run(source)
}

// Tokens scans source without parsing it. The error is reserved for
// output failures.
func (r *Runner) Tokens(source string) (*lox.Result, error) {
	return r.report(r.engine.Tokens(source))
}

// Parse scans and parses source without evaluating it
func (r *Runner) Parse(source string) (*lox.Result, error) {
	return r.report(r.engine.Parse(source))
}

func (r *Runner) report(result *lox.Result) (*lox.Result, error) {
	r.runs++
	if !result.HasErrors() {
		return result, nil
	}
	r.failed++
	if _, err := fmt.Fprintln(r.stderr, r.render.Diagnostics(result.Report())); err != nil {
		return result, ioError(err, "write diagnostics")
	}
	return result, nil
}

// ReadSource reads a whole file. "-" reads stdin, or in when it is set.
func ReadSource(path string, in io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		if in == nil {
			in = os.Stdin
		}
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", loxerror.Wrap(err, "read source").
			WithCode(loxerror.CodeIO).
			WithOperation("runner.read").
			WithDetail("path", path)
	}
	return string(data), nil
}

// ExitCode maps a run to a process exit code. Static errors take
// precedence over runtime errors.
func ExitCode(result *lox.Result, err error) int {
	if err != nil {
		switch loxerror.GetCode(err) {
		case loxerror.CodeIO:
			return ExitIOErr
		case loxerror.CodeConfigError, loxerror.CodeInvalidInput:
			return ExitUsage
		default:
			return ExitSoftware
		}
	}
	if result == nil {
		return ExitOK
	}
	switch {
	case result.Diagnostics.HasStaticErrors():
		return ExitDataErr
	case result.Diagnostics.HasRuntimeErrors():
		return ExitSoftware
	default:
		return ExitOK
	}
}

// trailingValue returns the value of the last statement when it is a
// successfully evaluated expression statement
func trailingValue(result *lox.Result) (ast.Value, bool) {
	if len(result.Outcomes) == 0 {
		return ast.Value{}, false
	}
	last := result.Outcomes[len(result.Outcomes)-1]
	if last.Err != nil {
		return ast.Value{}, false
	}
	if _, ok := last.Stmt.(*ast.ExpressionStmt); !ok {
		return ast.Value{}, false
	}
	return last.Value, true
}

func ioError(err error, msg string) error {
	return loxerror.Wrap(err, msg).
		WithCode(loxerror.CodeIO).
		WithOperation("runner.write")
}
