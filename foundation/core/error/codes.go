// File: codes.go
// Title: Error Codes
// Description: Codes categorizing failures of the toolchain. The three
//              language codes correspond to the scanner, parser and
//              evaluator.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial error code catalogue
// - 2026-10-12 v0.2.0: Language codes replace the TCOL set

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeNotFound     Code = "NOT_FOUND"

	// Language
	CodeLexical Code = "LOX_LEXICAL"
	CodeSyntax  Code = "LOX_SYNTAX"
	CodeRuntime Code = "LOX_RUNTIME"

	// Environment
	CodeConfigError Code = "CONFIG_ERROR"
	CodeIO          Code = "IO_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput, CodeNotFound,
		CodeLexical, CodeSyntax, CodeRuntime,
		CodeConfigError, CodeIO:
		return true
	default:
		return false
	}
}

// IsLanguage reports whether the code describes a problem in the script
// rather than in the environment running it
func (c Code) IsLanguage() bool {
	return c == CodeLexical || c == CodeSyntax || c == CodeRuntime
}
