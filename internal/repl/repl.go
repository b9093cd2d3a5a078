// ============================================================================
// lox - scripting language toolchain
// ============================================================================
//
// Package:     repl
// Description: Line-oriented interactive session. Each line is one unit;
//              errors are reported and the session goes on.
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package repl

import (
	"context"
	"fmt"
	"io"
	"strings"

	loxlog "github.com/msto63/lox/foundation/core/log"

	"github.com/msto63/lox/internal/runner"
)

// Config holds session settings
type Config struct {
	Prompt      string
	ExitCommand string
}

// DefaultConfig returns the settings used when none are configured
func DefaultConfig() Config {
	return Config{Prompt: "> ", ExitCommand: "exit"}
}

// Session reads lines and runs them through a runner
type Session struct {
	runner *runner.Runner
	reader LineReader
	out    io.Writer
	cfg    Config
	logger *loxlog.Logger
}

// New creates a session reading from in. On a terminal lines are edited
// with liner; otherwise prompts are written to out. Program output and
// diagnostics go wherever the runner writes them.
func New(r *runner.Runner, in io.Reader, out io.Writer, cfg Config, logger *loxlog.Logger) *Session {
	return NewWithReader(r, NewLineReader(in, out), out, cfg, logger)
}

// NewWithReader creates a session over an existing line source
func NewWithReader(r *runner.Runner, reader LineReader, out io.Writer, cfg Config, logger *loxlog.Logger) *Session {
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultConfig().Prompt
	}
	if cfg.ExitCommand == "" {
		cfg.ExitCommand = DefaultConfig().ExitCommand
	}
	if logger == nil {
		logger = loxlog.GetDefault()
	}
	return &Session{
		runner: r,
		reader: reader,
		out:    out,
		cfg:    cfg,
		logger: logger.WithField("component", "repl"),
	}
}

// Run loops until the exit command, end of input or ctx is done. Only
// output and input failures end the session with an error.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Debug("session started", loxlog.Fields{"session": s.runner.SessionID()})
	defer func() {
		s.reader.Close()
		s.logger.Debug("session ended", loxlog.Fields{
			"runs":   s.runner.Runs(),
			"failed": s.runner.Failed(),
		})
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// reading blocks, so it runs apart from the loop to keep ctx responsive;
	// one request yields one line
	type readResult struct {
		line string
		err  error
	}
	requests := make(chan struct{})
	results := make(chan readResult)
	defer close(requests)
	go func() {
		for range requests {
			line, err := s.reader.ReadLine(s.cfg.Prompt)
			select {
			case results <- readResult{line: line, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()

	for {
		if ctx.Err() != nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case requests <- struct{}{}:
		}

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			return nil
		case r := <-results:
			if r.err != nil {
				if isEndOfInput(r.err) {
					return nil
				}
				return r.err
			}
			line = r.line
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == s.cfg.ExitCommand {
			return nil
		}
		if trimmed == "" {
			continue
		}

		if _, err := s.runner.Run(line); err != nil {
			return err
		}
	}
}
