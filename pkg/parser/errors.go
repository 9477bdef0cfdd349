package parser

import "fmt"

// ErrorKind classifies a ParseError.
type ErrorKind int

// ErrorKind constants.
const (
	ErrUnexpectedToken  ErrorKind = iota // token does not fit the grammar here
	ErrMixedSigns                        // positive and negative indices in one block
	ErrMissingRParen                     // hypothesis list not closed
	ErrMissingIdent                      // hypothesis name expected
	ErrInvalidNat                        // occurrence index is not a natural number
	ErrEmptyOccurrences                  // "{}" with no indices
	ErrIllegalToken                      // the lexer could not tokenize the input
)

var errorKindNames = map[ErrorKind]string{
	ErrUnexpectedToken:  "unexpected token",
	ErrMixedSigns:       "mixed occurrence signs",
	ErrMissingRParen:    "missing ')'",
	ErrMissingIdent:     "missing identifier",
	ErrInvalidNat:       "invalid natural number",
	ErrEmptyOccurrences: "empty occurrence set",
	ErrIllegalToken:     "illegal token",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError represents a parsing error with position information.
// Pos is the position of the offending token, not the start of the construct.
type ParseError struct {
	Pos     Position
	Kind    ErrorKind
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Common error messages
const (
	ErrMsgUnexpectedToken  = "unexpected token %s, expected %s"
	ErrMsgMixedSigns       = "cannot mix positive and negative occurrences"
	ErrMsgRParenExpected   = "')' expected"
	ErrMsgIdentExpected    = "identifier expected"
	ErrMsgNatExpected      = "natural number expected"
	ErrMsgInvalidNat       = "invalid natural number %q"
	ErrMsgEmptyOccurrences = "occurrence set cannot be empty"
	ErrMsgIllegalCharacter = "illegal character %q"
	ErrMsgUnterminated     = "unterminated %s"
)

func newError(pos Position, kind ErrorKind, msg string) *ParseError {
	return &ParseError{Pos: pos, Kind: kind, Message: msg}
}
