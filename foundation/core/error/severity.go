// File: severity.go
// Title: Error Severity
// Description: Severity levels and the default severity of each code.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial severity levels
// - 2026-10-12 v0.2.0: Mapping for language codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks mistakes in user input, such as a script that does
	// not parse
	SeverityLow Severity = iota

	// SeverityMedium marks failures of one run that leave the tool usable
	SeverityMedium

	// SeverityHigh marks failures of the environment (files, configuration)
	SeverityHigh

	// SeverityCritical marks bugs in the toolchain itself
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines the default severity for a code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeIO, CodeConfigError:
		return SeverityHigh
	case CodeLexical, CodeSyntax, CodeInvalidInput, CodeNotFound:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
