package parser

import (
	"github.com/leapstack-labs/tacloc/pkg/core"
	"github.com/leapstack-labs/tacloc/pkg/token"
)

// ParseLocation parses an optional location clause:
//
//	location   → [ 'at' target ]
//	target     → '*' [ '⊢' [ '*' ] ]
//	           | '(' hyp { ',' hyp } ')' [ '⊢' occurrences ]
//	           | occurrences
//	           | hyp
//	hyp        → ident occurrences
//
// Each alternative is chosen by the token after 'at'. Without 'at' it
// returns core.GoalOnly and consumes nothing. On error the returned
// Location is nil.
func ParseLocation(src TokenSource) (core.Location, error) {
	if !src.Check(token.AT) {
		return core.GoalOnly{}, nil
	}
	src.Next()

	switch {
	case src.Check(token.STAR):
		src.Next()
		return parseWildcard(src), nil
	case src.Check(token.LPAREN):
		src.Next()
		return parseHypothesisList(src)
	case src.Check(token.LBRACE):
		occ, err := ParseOccurrence(src)
		if err != nil {
			return nil, err
		}
		return core.GoalAt{Occurrence: occ}, nil
	default:
		target, err := parseTarget(src)
		if err != nil {
			return nil, err
		}
		return core.NewHypothesesAt(target), nil
	}
}

// parseWildcard handles everything after "at *":
//
//	at *      → everywhere
//	at * ⊢    → all hypotheses
//	at * ⊢ *  → everywhere
func parseWildcard(src TokenSource) core.Location {
	if !src.Check(token.TURNSTILE) {
		return core.Everywhere{}
	}
	src.Next()
	if src.Check(token.STAR) {
		src.Next()
		return core.Everywhere{}
	}
	return core.AllHypotheses{}
}

// parseHypothesisList handles everything after "at (".
func parseHypothesisList(src TokenSource) (core.Location, error) {
	var targets []core.Target
	for {
		target, err := parseTarget(src)
		if err != nil {
			return nil, err
		}
		targets = append(targets, target)
		if !src.Check(token.COMMA) {
			break
		}
		src.Next()
	}

	if !src.Check(token.RPAREN) {
		return nil, newError(src.Position(), ErrMissingRParen, ErrMsgRParenExpected)
	}
	src.Next()

	if !src.Check(token.TURNSTILE) {
		return core.NewHypothesesAt(targets...), nil
	}
	src.Next()
	goal, err := ParseOccurrence(src)
	if err != nil {
		return nil, err
	}
	return core.NewAt(goal, targets...), nil
}

func parseTarget(src TokenSource) (core.Target, error) {
	name, err := src.ParseIdent(ErrMsgIdentExpected)
	if err != nil {
		return core.Target{}, err
	}
	occ, err := ParseOccurrence(src)
	if err != nil {
		return core.Target{}, err
	}
	return core.Target{Name: name, Occurrence: occ}, nil
}
