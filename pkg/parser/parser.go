// Package parser parses tactic location clauses such as "at h {1 2}",
// "at * ⊢" or "at (h₁, h₂ {-1}) ⊢ {2}".
//
// # Usage
//
//	loc, err := parser.Parse("at (h₁, h₂) ⊢")
//	if err != nil {
//	    // handle error
//	}
//
// A surrounding tactic grammar that owns its own cursor calls ParseLocation
// with any TokenSource at the point where a location clause may appear.
//
// # Grammar Overview
//
//	location    → [ 'at' target ]
//	target      → '*' [ '⊢' [ '*' ] ]
//	            | '(' hyp { ',' hyp } ')' [ '⊢' occurrences ]
//	            | occurrences
//	            | ident occurrences
//	hyp         → ident occurrences
//	occurrences → [ '{' entry { [','] entry } '}' ]
//	entry       → nat | '-' nat
//
// '⊢' may also be written '|-'.
package parser

import (
	"context"
	"runtime"

	"github.com/leapstack-labs/tacloc/pkg/core"
	"golang.org/x/sync/errgroup"
)

// Parse parses a complete location clause. Trailing input is an error.
func Parse(input string) (core.Location, error) {
	p := NewParser(input)
	loc, err := ParseLocation(p)
	if err != nil {
		return nil, err
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}
	return loc, nil
}

// ParseOccurrences parses a complete occurrence block such as "{1 2}".
// Empty input yields all occurrences.
func ParseOccurrences(input string) (core.Occurrence, error) {
	p := NewParser(input)
	occ, err := ParseOccurrence(p)
	if err != nil {
		return core.Occurrence{}, err
	}
	if err := p.expectEOF(); err != nil {
		return core.Occurrence{}, err
	}
	return occ, nil
}

// Result is the outcome of parsing one input in ParseAll.
type Result struct {
	Input    string
	Location core.Location
	Err      error
}

// ParseAll parses independent clauses concurrently, each with its own
// parser, using at most limit goroutines (GOMAXPROCS when limit <= 0).
// Results are in input order. The returned error is non-nil only if ctx was
// cancelled; parse failures are reported per Result.
func ParseAll(ctx context.Context, inputs []string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, input := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			loc, err := Parse(input)
			results[i] = Result{Input: input, Location: loc, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
