// File: diag.go
// Title: Diagnostics Collector
// Description: Accumulates the errors of one run (scanner, parser and
//              evaluator) in detection order and renders them as the
//              "[line N] Error<where>: <message>" report.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-05
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-05 v0.1.0: Initial collector
// - 2026-10-09 v0.1.1: Stage tagging and Err()

package diag

import (
	"fmt"
	"strings"

	loxerror "github.com/msto63/lox/foundation/core/error"
	"github.com/msto63/lox/foundation/lox/token"
)

// Stage names the pipeline stage that detected a problem
type Stage int

const (
	StageUnknown Stage = iota
	StageScan
	StageParse
	StageEval
)

// String returns the stage name
func (s Stage) String() string {
	switch s {
	case StageScan:
		return "scan"
	case StageParse:
		return "parse"
	case StageEval:
		return "eval"
	default:
		return "unknown"
	}
}

// Record is one reported problem
type Record struct {
	Line    int
	Where   string
	Message string
	Stage   Stage
}

// String renders the record in the report format
func (r Record) String() string {
	return fmt.Sprintf("[line %d] Error%s: %s", r.Line, r.Where, r.Message)
}

// Where builds the location label for a problem found at tok
func Where(tok token.Token) string {
	if tok.Kind == token.EOF {
		return " at end"
	}
	return " at '" + tok.Lexeme + "'"
}

// Collector is owned by a single run and is not safe for concurrent use
type Collector struct {
	records []Record
}

// New creates an empty collector
func New() *Collector {
	return &Collector{}
}

// Record appends a problem that is not tied to a stage
func (c *Collector) Record(line int, where, message string) {
	c.RecordStage(StageUnknown, line, where, message)
}

// RecordStage appends a problem detected by stage
func (c *Collector) RecordStage(stage Stage, line int, where, message string) {
	c.records = append(c.records, Record{
		Line:    line,
		Where:   where,
		Message: message,
		Stage:   stage,
	})
}

// HasErrors reports whether anything was recorded
func (c *Collector) HasErrors() bool {
	return len(c.records) > 0
}

// HasStaticErrors reports whether the scanner or the parser recorded
// anything. Static errors prevent evaluation.
func (c *Collector) HasStaticErrors() bool {
	return c.count(StageScan)+c.count(StageParse) > 0
}

// HasRuntimeErrors reports whether evaluation recorded anything
func (c *Collector) HasRuntimeErrors() bool {
	return c.count(StageEval) > 0
}

// Len returns the number of records
func (c *Collector) Len() int {
	return len(c.records)
}

// Records returns a copy of the records in detection order
func (c *Collector) Records() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Report joins all records, one per line, without a trailing newline
func (c *Collector) Report() string {
	lines := make([]string, len(c.records))
	for i, r := range c.records {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}

// Reset drops all records so the collector can serve the next run
func (c *Collector) Reset() {
	c.records = c.records[:0]
}

// Err returns nil for a clean run, otherwise an error whose message is the
// report and whose code names the earliest failing stage
func (c *Collector) Err() error {
	if len(c.records) == 0 {
		return nil
	}

	code := loxerror.CodeRuntime
	switch {
	case c.count(StageScan) > 0:
		code = loxerror.CodeLexical
	case c.count(StageParse) > 0:
		code = loxerror.CodeSyntax
	}

	return loxerror.New(c.Report()).
		WithCode(code).
		WithDetail("errors", len(c.records)).
		WithDetail("first_line", c.records[0].Line)
}

func (c *Collector) count(stage Stage) int {
	n := 0
	for _, r := range c.records {
		if r.Stage == stage {
			n++
		}
	}
	return n
}
