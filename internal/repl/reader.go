// ============================================================================
// lox - scripting language toolchain
// ============================================================================
//
// Package:     repl
// Description: Line sources for the interactive session: liner on a
//              terminal, a plain reader for pipes and redirected input
// Author:      Mike Stoffels
// Created:     2026-10-20
// License:     MIT
// ============================================================================

package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	loxerror "github.com/msto63/lox/foundation/core/error"
)

// maxLineSize bounds a single input line
const maxLineSize = 1024 * 1024

// LineReader yields one line per call. io.EOF and liner.ErrPromptAborted
// end the session cleanly.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// NewLineReader returns a liner-backed reader when in is an interactive
// terminal and a plain reader otherwise
func NewLineReader(in io.Reader, out io.Writer) LineReader {
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) && liner.TerminalSupported() {
		return newTerminalReader()
	}
	return newStreamReader(in, out)
}

// terminalReader edits lines with liner. History is kept in memory only.
type terminalReader struct {
	state *liner.State
}

func newTerminalReader() *terminalReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return &terminalReader{state: state}
}

func (r *terminalReader) ReadLine(prompt string) (string, error) {
	line, err := r.state.Prompt(prompt)
	if err != nil {
		if errors.Is(err, io.EOF) {
			// ctrl+d leaves the cursor after the prompt
			fmt.Println()
		}
		return "", err
	}
	if line != "" {
		r.state.AppendHistory(line)
	}
	return line, nil
}

func (r *terminalReader) Close() error {
	return r.state.Close()
}

// streamReader reads newline-terminated lines and writes the prompt itself
type streamReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newStreamReader(in io.Reader, out io.Writer) *streamReader {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &streamReader{scanner: scanner, out: out}
}

func (r *streamReader) ReadLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(r.out, prompt); err != nil {
		return "", loxerror.Wrap(err, "write prompt").
			WithCode(loxerror.CodeIO).
			WithOperation("repl.run")
	}
	if r.scanner.Scan() {
		return r.scanner.Text(), nil
	}

	// end of input leaves the cursor after the prompt
	fmt.Fprintln(r.out)
	if err := r.scanner.Err(); err != nil {
		return "", loxerror.Wrap(err, "read line").
			WithCode(loxerror.CodeIO).
			WithOperation("repl.run")
	}
	return "", io.EOF
}

func (r *streamReader) Close() error {
	return nil
}

// isEndOfInput reports whether err ends the session without failing it
func isEndOfInput(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted)
}
