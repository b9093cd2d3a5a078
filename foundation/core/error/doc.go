// Package error provides the structured error type shared by the lox
// toolchain.
//
// Package: error
// Title: Structured Errors
// Description: An error type carrying a code, a severity, the failed
//              operation, free-form details and the id of the interpreter run
//              that produced it. Wraps standard errors and stays compatible
//              with errors.Is / errors.As.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors
// - 2026-10-12 v0.2.0: Interpreter codes, run ids, stack capture removed
//
// Usage:
//
//	import loxerror "github.com/msto63/lox/foundation/core/error"
//
//	data, err := os.ReadFile(path)
//	if err != nil {
//		return loxerror.Wrap(err, "read script").
//			WithCode(loxerror.CodeIO).
//			WithOperation("run").
//			WithDetail("path", path)
//	}
package error
