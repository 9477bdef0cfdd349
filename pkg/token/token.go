// Package token defines the token types for tactic location parsing.
//
// Core tokens are defined as constants (IDs 0-999) for switch performance.
// Keywords of the surrounding tactic grammar are registered dynamically via
// Register() so that they never lex as hypothesis names.
package token

import "fmt"

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Literals
	IDENT  // h, h₁, h', Nat.succ, «a b»
	NUMBER // 0, 1, 42

	// Punctuation
	STAR      // *
	MINUS     // -
	COMMA     // ,
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	TURNSTILE // ⊢ or |-

	// Keywords
	AT

	// Sentinel - dynamic tokens start after this
	maxBuiltin TokenType = 999
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := getDynamicName(t); ok {
		return name
	}
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",

	STAR:      "*",
	MINUS:     "-",
	COMMA:     ",",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	TURNSTILE: "⊢",

	AT: "at",
}

// keywords maps keyword spellings to their token types. Keywords are case-sensitive.
var keywords = map[string]TokenType{
	"at": AT,
}

// LookupIdent returns the token type for the given identifier.
// If the identifier is a builtin keyword, the keyword token type is returned.
// Otherwise, IDENT is returned.
// This only checks builtin keywords; use LookupDynamicKeyword for registered ones.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword returns true if the token type is a builtin or registered keyword.
func IsKeyword(t TokenType) bool {
	return t == AT || IsDynamic(t)
}

// IsOperator returns true if the token type is punctuation.
func IsOperator(t TokenType) bool {
	return t >= STAR && t <= TURNSTILE
}

// Token represents a lexical token with position information.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
	End     Position // position just after the token's last rune
}

// String renders the token for diagnostics: literals are quoted,
// everything else uses the token type's spelling.
func (t Token) String() string {
	switch t.Type {
	case IDENT, NUMBER, ILLEGAL:
		return fmt.Sprintf("%q", t.Literal)
	case EOF:
		return "end of input"
	}
	return fmt.Sprintf("'%s'", t.Type)
}
