package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/tacloc/pkg/token"
)

// TokenSource is the cursor the location grammar reads from. The surrounding
// tactic grammar supplies one; *Parser is the implementation backed by this
// package's lexer or by a pre-tokenized slice.
//
// A TokenSource is a single-reader cursor: it must not be shared between
// goroutines.
type TokenSource interface {
	// Check reports whether the current token has type t.
	Check(t TokenType) bool
	// Next advances past the current token.
	Next()
	// ParseNat reads a natural number literal and advances past it.
	ParseNat() (uint, error)
	// ParseIdent reads an identifier and advances past it, failing with msg
	// at the current position if there is none.
	ParseIdent(msg string) (string, error)
	// Position returns the position of the current token.
	Position() Position
}

// tokenStream produces tokens one at a time.
type tokenStream interface {
	NextToken() Token
}

// sliceStream replays a pre-tokenized slice. Once exhausted it keeps
// returning EOF positioned just after the last token.
type sliceStream struct {
	tokens []Token
	next   int
}

func (s *sliceStream) NextToken() Token {
	if s.next < len(s.tokens) {
		tok := s.tokens[s.next]
		s.next++
		return tok
	}
	end := Position{Line: 1, Column: 1}
	if n := len(s.tokens); n > 0 {
		last := s.tokens[n-1]
		if last.Type == token.EOF {
			return last
		}
		if last.End.IsValid() {
			return Token{Type: token.EOF, Pos: last.End, End: last.End}
		}
		width := len([]rune(last.Literal))
		end = Position{
			Line:   last.Pos.Line,
			Column: last.Pos.Column + width,
			Offset: last.Pos.Offset + len(last.Literal),
		}
	}
	return Token{Type: token.EOF, Pos: end}
}

// Parser is the TokenSource over a token stream.
type Parser struct {
	stream tokenStream
	token  Token // current token
}

// NewParser creates a parser that lexes input.
func NewParser(input string) *Parser {
	return newParser(NewLexer(input))
}

// NewParserFromTokens creates a parser over tokens that were already lexed,
// for callers whose own grammar tokenizes the whole tactic first.
func NewParserFromTokens(tokens []Token) *Parser {
	return newParser(&sliceStream{tokens: tokens})
}

func newParser(stream tokenStream) *Parser {
	p := &Parser{stream: stream}
	p.nextToken()
	return p
}

// ---------- Token Helpers ----------

func (p *Parser) nextToken() {
	p.token = p.stream.NextToken()
}

func (p *Parser) check(t TokenType) bool {
	return p.token.Type == t
}

// errorf builds a ParseError at the current token. An ILLEGAL current token
// is reported as such, since it is the real cause of whatever was expected.
func (p *Parser) errorf(kind ErrorKind, format string, args ...any) *ParseError {
	if p.check(token.ILLEGAL) {
		return p.illegal()
	}
	return newError(p.token.Pos, kind, fmt.Sprintf(format, args...))
}

func (p *Parser) illegal() *ParseError {
	lit := p.token.Literal
	var msg string
	switch {
	case strings.HasPrefix(lit, "/-"):
		msg = fmt.Sprintf(ErrMsgUnterminated, "block comment")
	case strings.HasPrefix(lit, "«"):
		msg = fmt.Sprintf(ErrMsgUnterminated, "quoted name")
	default:
		msg = fmt.Sprintf(ErrMsgIllegalCharacter, lit)
	}
	return newError(p.token.Pos, ErrIllegalToken, msg)
}

// expectEOF fails unless the whole input has been consumed.
func (p *Parser) expectEOF() error {
	if p.check(token.EOF) {
		return nil
	}
	return p.errorf(ErrUnexpectedToken, ErrMsgUnexpectedToken, p.token, "end of input")
}

// ---------- TokenSource Implementation ----------

// Token returns the current token.
func (p *Parser) Token() Token {
	return p.token
}

// Check implements TokenSource.
func (p *Parser) Check(t TokenType) bool {
	return p.check(t)
}

// Next implements TokenSource.
func (p *Parser) Next() {
	p.nextToken()
}

// ParseNat implements TokenSource.
func (p *Parser) ParseNat() (uint, error) {
	if !p.check(token.NUMBER) {
		return 0, p.errorf(ErrInvalidNat, ErrMsgNatExpected)
	}
	n, err := strconv.ParseUint(p.token.Literal, 10, strconv.IntSize)
	if err != nil {
		return 0, p.errorf(ErrInvalidNat, ErrMsgInvalidNat, p.token.Literal)
	}
	p.nextToken()
	return uint(n), nil
}

// ParseIdent implements TokenSource.
func (p *Parser) ParseIdent(msg string) (string, error) {
	if !p.check(token.IDENT) {
		return "", p.errorf(ErrMissingIdent, "%s", msg)
	}
	name := p.token.Literal
	p.nextToken()
	return name, nil
}

// Position implements TokenSource.
func (p *Parser) Position() Position {
	return p.token.Pos
}
