package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/leapstack-labs/tacloc/pkg/token"
	"golang.org/x/text/unicode/norm"
)

// eof marks the end of input in Lexer.ch.
const eof rune = -1

// Lexer tokenizes tactic location source text.
type Lexer struct {
	input   string
	pos     int  // byte offset of ch
	readPos int  // byte offset after ch
	ch      rune // current rune under examination
	line    int  // line of ch (1-based)
	col     int  // column of ch in runes (1-based)
}

// NewLexer creates a new Lexer for the given input. Positions refer to the
// input as given; identifier literals are normalized to NFC so that composed
// and decomposed spellings of the same name lex to the same identifier.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
	}
	l.readChar()
	return l
}

// readChar advances to the next rune.
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.col = 0
	}
	l.col++
	if l.readPos >= len(l.input) {
		l.ch = eof
		l.pos = len(l.input)
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.readPos:])
	l.ch = r
	l.pos = l.readPos
	l.readPos += w
}

// peekChar returns the next rune without advancing.
func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPos:])
	return r
}

func (l *Lexer) currentPos() Position {
	return Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// NextToken returns the next token. At end of input it returns EOF forever.
func (l *Lexer) NextToken() Token {
	tok := l.scan()
	tok.End = l.currentPos()
	return tok
}

func (l *Lexer) scan() Token {
	if tok, ok := l.skipWhitespaceAndComments(); !ok {
		return tok
	}

	pos := l.currentPos()

	var tok Token
	switch l.ch {
	case eof:
		return Token{Type: token.EOF, Pos: pos}
	case '*':
		tok = Token{Type: token.STAR, Literal: "*", Pos: pos}
	case '-':
		tok = Token{Type: token.MINUS, Literal: "-", Pos: pos}
	case ',':
		tok = Token{Type: token.COMMA, Literal: ",", Pos: pos}
	case '(':
		tok = Token{Type: token.LPAREN, Literal: "(", Pos: pos}
	case ')':
		tok = Token{Type: token.RPAREN, Literal: ")", Pos: pos}
	case '{':
		tok = Token{Type: token.LBRACE, Literal: "{", Pos: pos}
	case '}':
		tok = Token{Type: token.RBRACE, Literal: "}", Pos: pos}
	case '⊢':
		tok = Token{Type: token.TURNSTILE, Literal: "⊢", Pos: pos}
	case '|':
		if l.peekChar() != '-' {
			tok = Token{Type: token.ILLEGAL, Literal: "|", Pos: pos}
			break
		}
		l.readChar()
		tok = Token{Type: token.TURNSTILE, Literal: "|-", Pos: pos}
	case '«':
		return l.readQuotedIdentifier(pos)
	default:
		switch {
		case token.IsIdentStart(l.ch):
			lit := l.readIdentifier()
			return Token{Type: lookupKeyword(lit), Literal: lit, Pos: pos}
		case isDigit(l.ch):
			return Token{Type: token.NUMBER, Literal: l.readNumber(), Pos: pos}
		default:
			tok = Token{Type: token.ILLEGAL, Literal: string(l.ch), Pos: pos}
		}
	}

	l.readChar()
	return tok
}

// lookupKeyword checks builtin keywords first, then keywords registered by
// the surrounding tactic grammar.
func lookupKeyword(ident string) TokenType {
	if t := token.LookupIdent(ident); t != token.IDENT {
		return t
	}
	if t, ok := token.LookupDynamicKeyword(ident); ok {
		return t
	}
	return token.IDENT
}

// skipWhitespaceAndComments skips whitespace, "--" line comments and
// nestable "/- ... -/" block comments. It returns an ILLEGAL token and false
// for an unterminated block comment.
func (l *Lexer) skipWhitespaceAndComments() (Token, bool) {
	for {
		for unicode.IsSpace(l.ch) {
			l.readChar()
		}

		if l.ch == '-' && l.peekChar() == '-' {
			for l.ch != '\n' && l.ch != eof {
				l.readChar()
			}
			continue
		}

		if l.ch == '/' && l.peekChar() == '-' {
			pos := l.currentPos()
			if !l.skipBlockComment() {
				return Token{Type: token.ILLEGAL, Literal: "/-", Pos: pos}, false
			}
			continue
		}

		return Token{}, true
	}
}

func (l *Lexer) skipBlockComment() bool {
	l.readChar() // skip '/'
	l.readChar() // skip '-'

	depth := 1
	for l.ch != eof {
		switch {
		case l.ch == '/' && l.peekChar() == '-':
			depth++
			l.readChar()
		case l.ch == '-' && l.peekChar() == '/':
			depth--
			l.readChar()
			if depth == 0 {
				l.readChar()
				return true
			}
		}
		l.readChar()
	}
	return false
}

// readQuotedIdentifier reads a «guillemet-quoted» name. The quotes are not
// part of the literal.
func (l *Lexer) readQuotedIdentifier(pos Position) Token {
	l.readChar() // skip «

	var result strings.Builder
	for l.ch != eof {
		if l.ch == '»' {
			l.readChar()
			return Token{Type: token.IDENT, Literal: norm.NFC.String(result.String()), Pos: pos}
		}
		result.WriteRune(l.ch)
		l.readChar()
	}
	return Token{Type: token.ILLEGAL, Literal: "«" + result.String(), Pos: pos}
}

// readIdentifier reads a possibly dotted identifier such as hx.left.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for {
		for token.IsIdentRune(l.ch) {
			l.readChar()
		}
		if l.ch != '.' || !token.IsIdentStart(l.peekChar()) {
			break
		}
		l.readChar() // skip '.'
	}
	return norm.NFC.String(l.input[start:l.pos])
}

// readNumber reads a natural number literal.
func (l *Lexer) readNumber() string {
	start := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize returns all tokens from the input, ending with EOF.
func Tokenize(input string) []Token {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return tokens
}
