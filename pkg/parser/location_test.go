package parser_test

import (
	"testing"

	"github.com/leapstack-labs/tacloc/pkg/core"
	"github.com/leapstack-labs/tacloc/pkg/parser"
	"github.com/leapstack-labs/tacloc/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hyp(name string, occ core.Occurrence) core.Target {
	return core.Target{Name: name, Occurrence: occ}
}

func TestParse_Locations(t *testing.T) {
	all := core.AllOccurrences()
	pos := core.PositiveOccurrences
	neg := core.NegativeOccurrences

	tests := []struct {
		name  string
		input string
		want  core.Location
	}{
		{"no clause", "", core.GoalOnly{}},
		{"comment only", "-- nothing here", core.GoalOnly{}},
		{"wildcard", "at *", core.Everywhere{}},
		{"wildcard all hypotheses", "at * ⊢", core.AllHypotheses{}},
		{"wildcard goal and hypotheses", "at * ⊢ *", core.Everywhere{}},
		{"wildcard ascii turnstile", "at * |-", core.AllHypotheses{}},
		{"wildcard ascii turnstile star", "at *|-*", core.Everywhere{}},
		{"goal positive", "at {1, 2}", core.GoalAt{Occurrence: pos(1, 2)}},
		{"goal negative", "at {-1, -2}", core.GoalAt{Occurrence: neg(1, 2)}},
		{"goal without separators", "at {1 2 3}", core.GoalAt{Occurrence: pos(1, 2, 3)}},
		{"goal duplicates kept in order", "at {3, 1, 3}", core.GoalAt{Occurrence: pos(3, 1, 3)}},
		{"single hypothesis", "at h", core.NewHypothesesAt(hyp("h", all))},
		{"single hypothesis occurrences", "at h {1}", core.NewHypothesesAt(hyp("h", pos(1)))},
		{"single hypothesis negative", "at h {-2 -4}", core.NewHypothesesAt(hyp("h", neg(2, 4)))},
		{"subscript name", "at h₁", core.NewHypothesesAt(hyp("h₁", all))},
		{"quoted name", "at «my hyp» {1}", core.NewHypothesesAt(hyp("my hyp", pos(1)))},
		{
			"list with goal",
			"at (h1 {1}, h2) ⊢ {2}",
			core.NewAt(pos(2), hyp("h1", pos(1)), hyp("h2", all)),
		},
		{
			"list without turnstile",
			"at (h1, h2)",
			core.NewHypothesesAt(hyp("h1", all), hyp("h2", all)),
		},
		{
			"list with bare turnstile",
			"at (h1, h2) ⊢",
			core.NewAt(all, hyp("h1", all), hyp("h2", all)),
		},
		{
			"list ascii turnstile",
			"at (h) |- {-1}",
			core.NewAt(neg(1), hyp("h", all)),
		},
		{
			"multiline with comments",
			"at ( h1 {1} -- first\n , h2 /- second -/ {-3} )",
			core.NewHypothesesAt(hyp("h1", pos(1)), hyp("h2", neg(3))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, core.Equal(tt.want, got))
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kind    parser.ErrorKind
		message string
		pos     parser.Position
	}{
		{
			name:    "mixed positive then negative",
			input:   "at {1, -2}",
			kind:    parser.ErrMixedSigns,
			message: "cannot mix positive and negative occurrences",
			pos:     parser.Position{Line: 1, Column: 8, Offset: 7},
		},
		{
			name:    "mixed negative then positive",
			input:   "at {-1 2}",
			kind:    parser.ErrMixedSigns,
			message: "cannot mix positive and negative occurrences",
			pos:     parser.Position{Line: 1, Column: 8, Offset: 7},
		},
		{
			name:    "mixed inside hypothesis list on second line",
			input:   "at (h1,\n  h2 {1 -2})",
			kind:    parser.ErrMixedSigns,
			message: "cannot mix positive and negative occurrences",
			pos:     parser.Position{Line: 2, Column: 9, Offset: 16},
		},
		{
			name:    "mixed after decomposed name",
			input:   "at e\u0301 {1 -2}",
			kind:    parser.ErrMixedSigns,
			message: "cannot mix positive and negative occurrences",
			pos:     parser.Position{Line: 1, Column: 10, Offset: 10},
		},
		{
			name:    "mixed after multibyte name",
			input:   "at h₁ {-1, 2}",
			kind:    parser.ErrMixedSigns,
			message: "cannot mix positive and negative occurrences",
			pos:     parser.Position{Line: 1, Column: 12, Offset: 13},
		},
		{
			name:    "unclosed hypothesis list",
			input:   "at (h1",
			kind:    parser.ErrMissingRParen,
			message: "')' expected",
			pos:     parser.Position{Line: 1, Column: 7, Offset: 6},
		},
		{
			name:    "missing comma in hypothesis list",
			input:   "at (h1 h2)",
			kind:    parser.ErrMissingRParen,
			message: "')' expected",
			pos:     parser.Position{Line: 1, Column: 8, Offset: 7},
		},
		{
			name:    "trailing comma in hypothesis list",
			input:   "at (h1,)",
			kind:    parser.ErrMissingIdent,
			message: "identifier expected",
			pos:     parser.Position{Line: 1, Column: 8, Offset: 7},
		},
		{
			name:    "at without target",
			input:   "at",
			kind:    parser.ErrMissingIdent,
			message: "identifier expected",
			pos:     parser.Position{Line: 1, Column: 3, Offset: 2},
		},
		{
			name:    "number instead of hypothesis",
			input:   "at 3",
			kind:    parser.ErrMissingIdent,
			message: "identifier expected",
			pos:     parser.Position{Line: 1, Column: 4, Offset: 3},
		},
		{
			name:    "empty occurrence block",
			input:   "at {}",
			kind:    parser.ErrEmptyOccurrences,
			message: "occurrence set cannot be empty",
			pos:     parser.Position{Line: 1, Column: 5, Offset: 4},
		},
		{
			name:    "non-number in occurrence block",
			input:   "at h {x}",
			kind:    parser.ErrInvalidNat,
			message: "natural number expected",
			pos:     parser.Position{Line: 1, Column: 7, Offset: 6},
		},
		{
			name:    "minus without number",
			input:   "at {-}",
			kind:    parser.ErrInvalidNat,
			message: "natural number expected",
			pos:     parser.Position{Line: 1, Column: 6, Offset: 5},
		},
		{
			name:    "unclosed occurrence block",
			input:   "at {1 2",
			kind:    parser.ErrInvalidNat,
			message: "natural number expected",
			pos:     parser.Position{Line: 1, Column: 8, Offset: 7},
		},
		{
			name:    "index overflows",
			input:   "at {99999999999999999999999}",
			kind:    parser.ErrInvalidNat,
			message: `invalid natural number "99999999999999999999999"`,
			pos:     parser.Position{Line: 1, Column: 5, Offset: 4},
		},
		{
			name:    "illegal character",
			input:   "at #",
			kind:    parser.ErrIllegalToken,
			message: `illegal character "#"`,
			pos:     parser.Position{Line: 1, Column: 4, Offset: 3},
		},
		{
			name:    "unterminated comment after target",
			input:   "at h /- open",
			kind:    parser.ErrIllegalToken,
			message: "unterminated block comment",
			pos:     parser.Position{Line: 1, Column: 6, Offset: 5},
		},
		{
			name:    "unterminated quoted name",
			input:   "at «h",
			kind:    parser.ErrIllegalToken,
			message: "unterminated quoted name",
			pos:     parser.Position{Line: 1, Column: 4, Offset: 3},
		},
		{
			name:    "trailing input",
			input:   "at h extra",
			kind:    parser.ErrUnexpectedToken,
			message: `unexpected token "extra", expected end of input`,
			pos:     parser.Position{Line: 1, Column: 6, Offset: 5},
		},
		{
			name:    "tactic text without clause",
			input:   "simp",
			kind:    parser.ErrUnexpectedToken,
			message: `unexpected token "simp", expected end of input`,
			pos:     parser.Position{Line: 1, Column: 1, Offset: 0},
		},
		{
			name:    "star after goal turnstile",
			input:   "at (h) ⊢ *",
			kind:    parser.ErrUnexpectedToken,
			message: "unexpected token '*', expected end of input",
			pos:     parser.Position{Line: 1, Column: 10, Offset: 11},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := parser.Parse(tt.input)
			require.Error(t, err)
			assert.Nil(t, loc, "no partial location on error")

			var pe *parser.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.kind, pe.Kind, "kind: %s", pe.Kind)
			assert.Equal(t, tt.message, pe.Message)
			assert.Equal(t, tt.pos, pe.Pos)
		})
	}
}

func TestParseError_Format(t *testing.T) {
	_, err := parser.Parse("at (h1")
	require.Error(t, err)
	assert.Equal(t, "parse error at line 1, column 7: ')' expected", err.Error())
}

func TestParseLocation_NoClauseConsumesNothing(t *testing.T) {
	inputs := []string{"simp only", "with h", "", "{1}", "* ⊢"}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			p := parser.NewParser(input)
			before := p.Token()

			loc, err := parser.ParseLocation(p)
			require.NoError(t, err)
			assert.Equal(t, core.GoalOnly{}, loc)
			assert.Equal(t, before, p.Token())
		})
	}
}

func TestParseLocation_StopsAtSurroundingGrammar(t *testing.T) {
	using := token.Register("test_location_using")

	p := parser.NewParser("at h {1} test_location_using foo")
	loc, err := parser.ParseLocation(p)
	require.NoError(t, err)
	assert.Equal(t, core.NewHypothesesAt(hyp("h", core.PositiveOccurrences(1))), loc)
	assert.True(t, p.Check(using), "the location clause must not consume the next keyword")

	_, err = parser.Parse("at test_location_using")
	var pe *parser.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, parser.ErrMissingIdent, pe.Kind)
}

func TestParseLocation_FromTokens(t *testing.T) {
	input := "at (h1 {1}, h2) ⊢ {2}"
	want, err := parser.Parse(input)
	require.NoError(t, err)

	tokens := parser.Tokenize(input)
	got, err := parser.ParseLocation(parser.NewParserFromTokens(tokens))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Without the trailing EOF the cursor synthesizes one after the last token.
	trimmed := parser.Tokenize("at (h")
	trimmed = trimmed[:len(trimmed)-1]
	_, err = parser.ParseLocation(parser.NewParserFromTokens(trimmed))
	var pe *parser.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, parser.ErrMissingRParen, pe.Kind)
	assert.Equal(t, parser.Position{Line: 1, Column: 6, Offset: 5}, pe.Pos)
}

func TestParseLocation_FromTokensEndsAfterQuotedName(t *testing.T) {
	full := parser.Tokenize("at («ab»")
	trimmed := full[:len(full)-1]

	_, err := parser.ParseLocation(parser.NewParserFromTokens(trimmed))
	var pe *parser.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, parser.ErrMissingRParen, pe.Kind)
	assert.Equal(t, full[len(full)-1].Pos, pe.Pos)
	assert.Equal(t, parser.Position{Line: 1, Column: 9, Offset: 10}, pe.Pos)
}

func TestParseLocation_EmptyTokenSlice(t *testing.T) {
	p := parser.NewParserFromTokens(nil)
	loc, err := parser.ParseLocation(p)
	require.NoError(t, err)
	assert.Equal(t, core.GoalOnly{}, loc)
	assert.True(t, p.Check(token.EOF))
}
