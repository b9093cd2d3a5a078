// File: doc.go
// Title: Lox Package Documentation
// Description: Package-level documentation for the interpreter engine.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-08
// Modified: 2026-10-08
//
// Change History:
// - 2026-10-08 v0.1.0: Initial documentation

/*
Package lox runs source text through the complete pipeline:

  • scanner: source text → tokens
  • parser: tokens → statements
  • interpreter: statements → values and printed output

A diag.Collector travels through all three stages of a run and keeps the
errors in the order they were found. When the scanner or parser reports
anything, nothing is evaluated.

Usage:

	engine := lox.New(lox.Options{Output: os.Stdout})
	result, err := engine.Run(`print "hello" + " world";`)
	if err != nil {
		// output could not be written
	}
	if result.HasErrors() {
		fmt.Fprintln(os.Stderr, result.Report())
	}
*/
package lox
