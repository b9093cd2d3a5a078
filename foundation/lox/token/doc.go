// Package token defines the lexical categories of the language and the
// token value passed from the scanner to the parser.
package token
