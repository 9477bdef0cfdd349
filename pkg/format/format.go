package format

import (
	"github.com/leapstack-labs/tacloc/pkg/core"
	"github.com/leapstack-labs/tacloc/pkg/token"
)

// Location formats a location as a canonical "at ..." clause. GoalOnly
// formats as the empty string, since it is written by omitting the clause.
//
// Parsing the result yields a Location equal to loc for every value the
// parser can produce. GoalAt with all occurrences has no clause of its own
// and formats like GoalOnly.
func Location(loc core.Location, opts ...Option) string {
	p := newPrinter(opts...)
	p.formatLocation(loc)
	return p.String()
}

// Occurrence formats an occurrence block such as "{1 2}". All occurrences
// format as the empty string.
func Occurrence(occ core.Occurrence) string {
	p := newPrinter()
	p.formatOccurrence(occ)
	return p.String()
}

func (p *Printer) formatLocation(loc core.Location) {
	switch l := loc.(type) {
	case core.Everywhere:
		p.kw(token.AT, token.STAR)
	case core.AllHypotheses:
		p.kw(token.AT, token.STAR, token.TURNSTILE)
	case core.GoalAt:
		if l.Occurrence.IsAll() {
			return
		}
		p.kw(token.AT)
		p.space()
		p.formatOccurrence(l.Occurrence)
	case core.HypothesesAt:
		targets := l.Targets()
		p.kw(token.AT)
		p.space()
		if len(targets) == 1 {
			p.formatTarget(targets[0])
			return
		}
		p.formatTargetList(targets)
	case core.At:
		p.kw(token.AT)
		p.space()
		p.formatTargetList(l.Targets())
		p.space()
		p.kw(token.TURNSTILE)
		if !l.Goal.IsAll() {
			p.space()
			p.formatOccurrence(l.Goal)
		}
	}
}

func (p *Printer) formatTargetList(targets []core.Target) {
	p.kw(token.LPAREN)
	p.formatList(len(targets), func(i int) {
		p.formatTarget(targets[i])
	}, ", ")
	p.kw(token.RPAREN)
}

func (p *Printer) formatTarget(t core.Target) {
	p.name(t.Name)
	if !t.Occurrence.IsAll() {
		p.space()
		p.formatOccurrence(t.Occurrence)
	}
}

func (p *Printer) formatOccurrence(occ core.Occurrence) {
	if occ.IsAll() {
		return
	}
	indices := occ.Indices()
	negative := occ.Kind() == core.OccurrencesNegative
	p.kw(token.LBRACE)
	p.formatList(len(indices), func(i int) {
		if negative {
			p.kw(token.MINUS)
		}
		p.nat(indices[i])
	}, " ")
	p.kw(token.RBRACE)
}
