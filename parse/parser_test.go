package parse

import (
	"testing"

	"github.com/optimtab/lintab/field"
	"github.com/optimtab/lintab/simplex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNumber_ExactCoefficients: decimal literals parse into exact
// rationals, trailing dot included.
func TestNumber_ExactCoefficients(t *testing.T) {
	cases := []struct {
		in   string
		want field.Rat
	}{
		{"5", field.RatFromInt(5)},
		{"+3", field.RatFromInt(3)},
		{"5.", field.RatFromInt(5)},
		{"5.2", field.R(26, 5)},
		{"-555.111", field.R(-555111, 1000)},
	}
	for _, tc := range cases {
		s := &scanner{src: tc.in}
		got, err := s.number()
		require.NoError(t, err, tc.in)
		assert.Equal(t, 0, got.Cmp(tc.want), tc.in)
	}

	s := &scanner{src: "abc"}
	_, err := s.number()
	assert.ErrorIs(t, err, ErrNotANumber)

	s = &scanner{src: "   "}
	_, err = s.number()
	assert.ErrorIs(t, err, ErrEndOfInput)
}

// TestTerm_Forms covers the accepted spellings of a single term.
func TestTerm_Forms(t *testing.T) {
	cases := []struct {
		in    string
		coef  field.Rat
		index int
	}{
		{"5*x2", field.RatFromInt(5), 2},
		{"5 * x2", field.RatFromInt(5), 2},
		{"5x3", field.RatFromInt(5), 3},
		{"x1", field.RatFromInt(1), 1},
		{"- x4", field.RatFromInt(-1), 4},
		{"+X7", field.RatFromInt(1), 7},
		{"2.5x1", field.R(5, 2), 1},
	}
	for _, tc := range cases {
		s := &scanner{src: tc.in}
		got, err := s.term()
		require.NoError(t, err, tc.in)
		assert.Equal(t, 0, got.Coef.Cmp(tc.coef), tc.in)
		assert.Equal(t, tc.index, got.Index, tc.in)
	}

	s := &scanner{src: "x"}
	_, err := s.term()
	assert.ErrorIs(t, err, ErrEndOfInput, "variable with no index")

	s = &scanner{src: "3 * y1"}
	_, err = s.term()
	assert.ErrorIs(t, err, ErrNotANumber, "unknown variable letter")
}

// TestParseRestriction covers the full-line restriction grammar and
// its error taxonomy.
func TestParseRestriction(t *testing.T) {
	r, err := parseRestriction("x1 + 2x2 == 3")
	require.NoError(t, err)
	assert.Equal(t, simplex.Equal, r.Relation)
	require.Len(t, r.Terms, 2)
	assert.Equal(t, 0, r.Terms[1].Coef.Cmp(field.RatFromInt(2)))
	assert.Equal(t, 2, r.Terms[1].Index)
	assert.Equal(t, 0, r.RHS.Cmp(field.RatFromInt(3)))

	r, err = parseRestriction("2x1 - x2 >= -1.5")
	require.NoError(t, err)
	assert.Equal(t, simplex.GreaterEq, r.Relation)
	assert.Equal(t, 0, r.Terms[1].Coef.Cmp(field.RatFromInt(-1)))
	assert.Equal(t, 0, r.RHS.Cmp(field.R(-3, 2)))

	_, err = parseRestriction("x1 <= ")
	assert.ErrorIs(t, err, ErrEndOfInput, "missing right-hand side")

	_, err = parseRestriction("x1 ~ 4")
	assert.ErrorIs(t, err, ErrUnexpectedRelation)

	_, err = parseRestriction("x1 <= 4 rubbish")
	assert.ErrorIs(t, err, ErrUnexpectedRelation, "trailing junk")
}

// TestParseObjective covers the objective grammar, sign handling
// inside the term list and the goal keyword variants.
func TestParseObjective(t *testing.T) {
	obj, err := parseObjective("z =  5 * x2  + -x4  -> max")
	require.NoError(t, err)
	assert.Equal(t, simplex.Maximize, obj.Goal)
	require.Len(t, obj.Terms, 2)
	assert.Equal(t, 0, obj.Terms[0].Coef.Cmp(field.RatFromInt(5)))
	assert.Equal(t, 2, obj.Terms[0].Index)
	assert.Equal(t, 0, obj.Terms[1].Coef.Cmp(field.RatFromInt(-1)))
	assert.Equal(t, 4, obj.Terms[1].Index)

	obj, err = parseObjective("Z = x1 - 2x2 -> MIN")
	require.NoError(t, err)
	assert.Equal(t, simplex.Minimize, obj.Goal)
	assert.Equal(t, 0, obj.Terms[1].Coef.Cmp(field.RatFromInt(-2)))

	_, err = parseObjective("z = x1")
	assert.ErrorIs(t, err, ErrEndOfInput, "missing goal arrow")

	_, err = parseObjective("z = x1 -> sideways")
	assert.ErrorIs(t, err, ErrNoTarget, "unknown goal keyword")

	_, err = parseObjective("w = x1 -> max")
	assert.ErrorIs(t, err, ErrNoTarget, "not an objective line")
}

// TestTask_FullProblem parses a complete statement with blank lines
// and Windows line endings.
func TestTask_FullProblem(t *testing.T) {
	src := "x1 + x2 <= 4\r\n\r\n3x1 - x2 >= 0\r\nz = 3x1 + 2x2 -> max\r\n"

	task, err := Task(src)
	require.NoError(t, err)
	require.Len(t, task.Restrictions, 2)
	assert.Equal(t, simplex.LessEq, task.Restrictions[0].Relation)
	assert.Equal(t, simplex.GreaterEq, task.Restrictions[1].Relation)
	assert.Equal(t, simplex.Maximize, task.Objective.Goal)
	require.Len(t, task.Objective.Terms, 2)
}

// TestTask_LastObjectiveWins: repeated objective lines overwrite each
// other; only the final one survives.
func TestTask_LastObjectiveWins(t *testing.T) {
	task, err := Task("z = x1 -> max\nx1 <= 4\nz = x1 -> min\n")
	require.NoError(t, err)
	assert.Equal(t, simplex.Minimize, task.Objective.Goal)
}

// TestTask_Errors: empty input, missing objective and an unparseable
// line with both failed attempts attached.
func TestTask_Errors(t *testing.T) {
	_, err := Task("\n\n")
	assert.ErrorIs(t, err, ErrEndOfInput)

	_, err = Task("x1 <= 4\n")
	assert.ErrorIs(t, err, ErrNoTarget)

	_, err = Task("x1 <= 4\nhello world\nz = x1 -> max\n")
	var ce *CompositeError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "hello world", ce.Line)
	assert.ErrorIs(t, err, ErrNotANumber, "restriction attempt surfaces")
	assert.ErrorIs(t, err, ErrNoTarget, "objective attempt surfaces")
}
