// Package interpreter evaluates syntax trees directly.
//
// Arithmetic and comparison need numbers and follow IEEE-754 (division by
// zero gives an infinity or NaN). "+" also concatenates two strings.
// "==" and "!=" accept any operands; values of different kinds are unequal.
// "!" negates truthiness, where only nil and false are falsy.
package interpreter
