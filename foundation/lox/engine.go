// File: engine.go
// Title: Interpreter Engine
// Description: Runs one source unit through scanner, parser and evaluator
//              with a shared diagnostics collector. Each run gets its own
//              run id, which tags log entries and errors.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-08
// Modified: 2026-10-11
//
// Change History:
// - 2026-10-08 v0.1.0: Initial engine
// - 2026-10-11 v0.1.1: Stage timers, Tokens/Parse entry points, RunString

package lox

import (
	"bytes"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	loxerror "github.com/msto63/lox/foundation/core/error"
	loxlog "github.com/msto63/lox/foundation/core/log"
	"github.com/msto63/lox/foundation/lox/ast"
	"github.com/msto63/lox/foundation/lox/diag"
	"github.com/msto63/lox/foundation/lox/interpreter"
	"github.com/msto63/lox/foundation/lox/parser"
	"github.com/msto63/lox/foundation/lox/scanner"
	"github.com/msto63/lox/foundation/lox/token"
)

// Options configures an Engine
type Options struct {
	// Output receives print statements (default: os.Stdout)
	Output io.Writer

	// Unterminated selects the scanner policy for strings and block
	// comments that reach end of input
	Unterminated scanner.Unterminated

	// Logger defaults to the foundation default logger
	Logger *loxlog.Logger

	// NewRunID generates run ids (default: random UUIDs)
	NewRunID func() string
}

// Engine runs source units one at a time
type Engine struct {
	output       io.Writer
	unterminated scanner.Unterminated
	newRunID     func() string
	logger       *loxlog.Logger
}

// Result is everything one run produced
type Result struct {
	RunID       string
	Tokens      []token.Token
	Statements  []ast.Stmt
	Outcomes    []interpreter.Outcome
	Diagnostics *diag.Collector
	Duration    time.Duration

	// Evaluated is false when static errors prevented evaluation
	Evaluated bool

	started time.Time
}

// New creates an engine
func New(opts Options) *Engine {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = loxlog.GetDefault()
	}
	if opts.NewRunID == nil {
		opts.NewRunID = uuid.NewString
	}

	engine := &Engine{
		output:       opts.Output,
		unterminated: opts.Unterminated,
		newRunID:     opts.NewRunID,
		logger:       opts.Logger.WithField("component", "lox-engine"),
	}
	engine.logger.Debug("engine initialized", loxlog.Fields{
		"unterminated": opts.Unterminated.String(),
	})
	return engine
}

// Run scans, parses and, when there are no static errors, evaluates
// source. Language errors end up in Result.Diagnostics; the returned error
// is reserved for output failures.
func (e *Engine) Run(source string) (*Result, error) {
	result, logger := e.front(source, true)
	if result.Diagnostics.HasStaticErrors() {
		logger.Debug("evaluation skipped", loxlog.Fields{"errors": result.Diagnostics.Len()})
		return e.finish(result, logger), nil
	}

	timer := logger.StartTimer("evaluate")
	interp := interpreter.New(interpreter.Options{
		Output:      e.output,
		Diagnostics: result.Diagnostics,
		Logger:      logger,
	})
	outcomes, err := interp.Interpret(result.Statements)
	result.Outcomes = outcomes
	result.Evaluated = true
	if err != nil {
		timer.StopWithError(err)
		e.finish(result, logger)
		return result, loxerror.Wrap(err, "run").WithRunID(result.RunID)
	}
	timer.Stop()

	return e.finish(result, logger), nil
}

// Tokens only scans source
func (e *Engine) Tokens(source string) *Result {
	result, logger := e.front(source, false)
	return e.finish(result, logger)
}

// Parse scans and parses source without evaluating it
func (e *Engine) Parse(source string) *Result {
	result, logger := e.front(source, true)
	return e.finish(result, logger)
}

func (e *Engine) front(source string, parse bool) (*Result, *loxlog.Logger) {
	result := &Result{
		RunID:       e.newRunID(),
		Diagnostics: diag.New(),
		started:     time.Now(),
	}
	logger := e.logger.WithRunID(result.RunID)
	logger.Debug("run started", loxlog.Fields{"bytes": len(source)})

	timer := logger.StartTimer("scan")
	result.Tokens = scanner.New(source, scanner.Options{
		Diagnostics:  result.Diagnostics,
		Unterminated: e.unterminated,
		Logger:       logger,
	}).ScanTokens()
	timer.Stop()

	if parse {
		timer = logger.StartTimer("parse")
		result.Statements = parser.New(result.Tokens, parser.Options{
			Diagnostics: result.Diagnostics,
			Logger:      logger,
		}).Parse()
		timer.Stop()
	}
	return result, logger
}

func (e *Engine) finish(result *Result, logger *loxlog.Logger) *Result {
	result.Duration = time.Since(result.started)

	fields := loxlog.Fields{
		"tokens":      len(result.Tokens),
		"statements":  len(result.Statements),
		"errors":      result.Diagnostics.Len(),
		"duration_ms": float64(result.Duration.Nanoseconds()) / 1e6,
	}
	if err := result.Err(); err != nil {
		fields["error_code"] = loxerror.GetCode(err).String()
	}
	logger.Debug("run finished", fields)
	return result
}

// HasErrors reports whether any stage recorded a problem
func (r *Result) HasErrors() bool {
	return r.Diagnostics.HasErrors()
}

// Report returns the joined diagnostics, empty for a clean run
func (r *Result) Report() string {
	return r.Diagnostics.Report()
}

// Err returns nil for a clean run, otherwise a foundation error carrying
// the report, the code of the earliest failing stage and the run id
func (r *Result) Err() error {
	err := r.Diagnostics.Err()
	if err == nil {
		return nil
	}
	loxErr, ok := err.(*loxerror.Error)
	if !ok {
		loxErr = loxerror.Wrap(err, "run")
	}
	return loxErr.WithRunID(r.RunID).WithOperation("run")
}

// Values returns the values of the statements that executed successfully
func (r *Result) Values() []ast.Value {
	values := make([]ast.Value, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		if o.Err == nil {
			values = append(values, o.Value)
		}
	}
	return values
}

// RunString runs source with default options and returns the program
// output followed by the diagnostics report
func RunString(source string) string {
	var out bytes.Buffer
	engine := New(Options{Output: &out, Logger: loxlog.Discard()})

	result, err := engine.Run(source)
	var b strings.Builder
	b.WriteString(out.String())
	if report := result.Report(); report != "" {
		b.WriteString(report)
		b.WriteByte('\n')
	}
	if err != nil {
		b.WriteString(err.Error())
		b.WriteByte('\n')
	}
	return b.String()
}
