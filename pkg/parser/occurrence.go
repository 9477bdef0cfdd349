package parser

import (
	"github.com/leapstack-labs/tacloc/pkg/core"
	"github.com/leapstack-labs/tacloc/pkg/token"
)

// sign tracks which kind of index an occurrence block has seen so far.
type sign int

const (
	signUnset sign = iota
	signPositive
	signNegative
)

// ParseOccurrence parses an optional occurrence block:
//
//	occurrences → [ '{' entry { [','] entry } '}' ]
//	entry       → nat | '-' nat
//
// Without a leading '{' it returns all occurrences and consumes nothing.
// Positive and negative entries cannot be mixed in one block, and an empty
// block is rejected.
func ParseOccurrence(src TokenSource) (core.Occurrence, error) {
	if !src.Check(token.LBRACE) {
		return core.AllOccurrences(), nil
	}
	src.Next()

	if src.Check(token.RBRACE) {
		return core.Occurrence{}, newError(src.Position(), ErrEmptyOccurrences, ErrMsgEmptyOccurrences)
	}

	var (
		seen    = signUnset
		indices []uint
	)
	for {
		pos := src.Position()
		entry := signPositive
		if src.Check(token.MINUS) {
			src.Next()
			entry = signNegative
		}
		n, err := src.ParseNat()
		if err != nil {
			return core.Occurrence{}, err
		}
		if seen != signUnset && seen != entry {
			return core.Occurrence{}, newError(pos, ErrMixedSigns, ErrMsgMixedSigns)
		}
		seen = entry
		indices = append(indices, n)

		if src.Check(token.RBRACE) {
			break
		}
		if src.Check(token.COMMA) {
			src.Next()
		}
	}
	src.Next() // '}'

	if seen == signNegative {
		return core.NegativeOccurrences(indices...), nil
	}
	return core.PositiveOccurrences(indices...), nil
}
