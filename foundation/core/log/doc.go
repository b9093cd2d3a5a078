// Package log provides structured logging for the lox toolchain.
//
// Package: log
// Title: Structured Logging
// Description: Structured, leveled logging with contextual fields, a run
//              identifier shared by every stage of one interpreter run, and
//              pluggable output formats. Stage timings are recorded through
//              Timer.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-12 v0.2.0: Run identifiers replace request/user ids, async and audit paths removed
//
// Usage:
//
//	import loxlog "github.com/msto63/lox/foundation/core/log"
//
//	logger := loxlog.New().
//		WithLevel(loxlog.LevelDebug).
//		WithFormat(loxlog.FormatText).
//		WithField("component", "lox-parser")
//
//	logger.Debug("parse complete", loxlog.Fields{"statements": 3})
//
//	timer := logger.StartTimer("scan")
//	// ... scan source
//	timer.Stop()
package log
