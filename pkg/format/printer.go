// Package format renders locations back to tactic surface syntax.
package format

import (
	"bytes"
	"strconv"

	"github.com/leapstack-labs/tacloc/pkg/token"
)

// Printer accumulates formatted output.
type Printer struct {
	output *bytes.Buffer
	ascii  bool
}

func newPrinter(opts ...Option) *Printer {
	p := &Printer{output: &bytes.Buffer{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Option configures a Printer.
type Option func(*Printer)

// WithASCII spells the turnstile "|-" instead of "⊢".
func WithASCII() Option {
	return func(p *Printer) { p.ascii = true }
}

// String returns the formatted output.
func (p *Printer) String() string {
	return p.output.String()
}

func (p *Printer) write(s string) {
	p.output.WriteString(s)
}

func (p *Printer) space() {
	p.output.WriteByte(' ')
}

// kw prints keywords and punctuation by token type, separated by spaces.
func (p *Printer) kw(tokens ...token.TokenType) {
	for i, t := range tokens {
		if i > 0 {
			p.space()
		}
		if t == token.TURNSTILE && p.ascii {
			p.write("|-")
			continue
		}
		p.write(t.String())
	}
}

// name prints a hypothesis name, quoting it when it would not lex back as
// the same identifier.
func (p *Printer) name(n string) {
	if token.IsPlainName(n) {
		p.write(n)
		return
	}
	p.write("«" + n + "»")
}

func (p *Printer) nat(n uint) {
	p.write(strconv.FormatUint(uint64(n), 10))
}

// formatList prints count items with sep between them.
func (p *Printer) formatList(count int, format func(i int), sep string) {
	for i := 0; i < count; i++ {
		format(i)
		if i < count-1 {
			p.write(sep)
		}
	}
}

// Name renders a hypothesis name as it must appear in source.
func Name(n string) string {
	p := newPrinter()
	p.name(n)
	return p.String()
}
