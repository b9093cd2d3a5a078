// File: value.go
// Title: Runtime Values
// Description: The tagged value type shared by literals and the evaluator.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-05
// Modified: 2026-10-05
//
// Change History:
// - 2026-10-05 v0.1.0: Initial value model

package ast

import "strconv"

// ValueKind is the tag of a Value
type ValueKind int

const (
	NilValue ValueKind = iota
	BoolValue
	NumberValue
	StringValue
)

// String returns the kind name used in messages
func (k ValueKind) String() string {
	switch k {
	case NilValue:
		return "nil"
	case BoolValue:
		return "boolean"
	case NumberValue:
		return "number"
	case StringValue:
		return "string"
	default:
		return "unknown"
	}
}

// Value is a runtime value. The zero Value is nil.
type Value struct {
	kind ValueKind
	num  float64
	str  string
	b    bool
}

// Nil returns the nil value
func Nil() Value { return Value{} }

// Bool wraps a boolean
func Bool(b bool) Value { return Value{kind: BoolValue, b: b} }

// Number wraps a float64
func Number(n float64) Value { return Value{kind: NumberValue, num: n} }

// String wraps a string
func String(s string) Value { return Value{kind: StringValue, str: s} }

// Kind returns the tag
func (v Value) Kind() ValueKind { return v.kind }

// IsNil reports whether v is nil
func (v Value) IsNil() bool { return v.kind == NilValue }

// AsNumber returns the number and whether v holds one
func (v Value) AsNumber() (float64, bool) {
	return v.num, v.kind == NumberValue
}

// AsString returns the string and whether v holds one
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == StringValue
}

// AsBool returns the boolean and whether v holds one
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == BoolValue
}

// Truthy applies the truthiness rule: nil and false are falsy
func (v Value) Truthy() bool {
	switch v.kind {
	case NilValue:
		return false
	case BoolValue:
		return v.b
	default:
		return true
	}
}

// Equal compares structurally. Values of different kinds are never equal;
// numbers compare with float semantics, so NaN is not equal to itself.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case NilValue:
		return true
	case BoolValue:
		return v.b == other.b
	case NumberValue:
		return v.num == other.num
	case StringValue:
		return v.str == other.str
	default:
		panic("ast: unhandled value kind " + v.kind.String())
	}
}

// String renders the value the way print shows it
func (v Value) String() string {
	switch v.kind {
	case NilValue:
		return "nil"
	case BoolValue:
		return strconv.FormatBool(v.b)
	case NumberValue:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case StringValue:
		return v.str
	default:
		panic("ast: unhandled value kind " + v.kind.String())
	}
}
