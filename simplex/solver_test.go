package simplex_test

import (
	"testing"

	"github.com/optimtab/lintab/field"
	"github.com/optimtab/lintab/simplex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ri(n int64) field.Rat { return field.RatFromInt(n) }

// TestSolver_ScenarioA solves x1 + x2 ≤ 4, max 3x1 + 2x2 from an
// explicit canonical tableau: optimum 12 at x1 = 4.
func TestSolver_ScenarioA(t *testing.T) {
	contents := [][]field.Rat{
		{ri(1), ri(1), ri(1), ri(4)},   // x1 + x2 + s = 4
		{ri(-3), ri(-2), ri(0), ri(0)}, // negated objective row
	}

	s, err := simplex.NewSolver(contents, simplex.Maximize)
	require.NoError(t, err)

	sol, err := s.Solve()
	require.NoError(t, err)
	assert.Equal(t, 0, sol.Value().Cmp(ri(12)), "optimal z is 12")

	basics := sol.Basics()
	require.Len(t, basics, 1)
	assert.Equal(t, 0, basics[0].Column, "x1 enters the basis")
	assert.Equal(t, 0, basics[0].Value.Cmp(ri(4)))
	assert.Equal(t, 0, sol.ValueOf(1).Cmp(ri(4)))
	assert.True(t, sol.ValueOf(2).IsZero(), "non-basic variables are zero")
}

// TestSolver_ScenarioB: x1 − x2 ≤ 5 with max x1 + x2 is unbounded in
// x2's increasing direction — the ratio test finds no row.
func TestSolver_ScenarioB(t *testing.T) {
	task := simplex.Task[field.Rat]{
		Restrictions: []simplex.Restriction[field.Rat]{
			{Terms: []simplex.Term[field.Rat]{rterm(1, 1), rterm(-1, 2)}, Relation: simplex.LessEq, RHS: ri(5)},
		},
		Objective: simplex.Objective[field.Rat]{
			Terms: []simplex.Term[field.Rat]{rterm(1, 1), rterm(1, 2)},
			Goal:  simplex.Maximize,
		},
	}

	_, err := simplex.SolveSimple(task)
	assert.ErrorIs(t, err, simplex.ErrNoLimit)
}

// TestSolver_ConsumedOnSolve: a solver is consumed by its first Solve
// call, successful or not.
func TestSolver_ConsumedOnSolve(t *testing.T) {
	contents := [][]field.Rat{
		{ri(1), ri(1), ri(4)},
		{ri(-1), ri(0), ri(0)},
	}
	s, err := simplex.NewSolver(contents, simplex.Maximize)
	require.NoError(t, err)

	_, err = s.Solve()
	require.NoError(t, err)

	_, err = s.Solve()
	assert.ErrorIs(t, err, simplex.ErrSolverConsumed)
}

// TestNewSolver_Validation covers shape errors: ragged rows, trivial
// tableaus and a starting basis that cannot cover every row.
func TestNewSolver_Validation(t *testing.T) {
	_, err := simplex.NewSolver([][]field.Rat{{ri(1), ri(2)}}, simplex.Minimize)
	assert.ErrorIs(t, err, simplex.ErrEmptyProblem, "no restriction rows")

	_, err = simplex.NewSolver([][]field.Rat{
		{ri(1), ri(1), ri(4)},
		{ri(-1), ri(0)},
	}, simplex.Minimize)
	assert.ErrorIs(t, err, simplex.ErrShapeMismatch, "ragged rows")

	_, err = simplex.NewSolver([][]field.Rat{
		{ri(1), ri(1), ri(4)},
		{ri(-1), ri(-2), ri(0)},
	}, simplex.Minimize)
	assert.ErrorIs(t, err, simplex.ErrShapeMismatch, "no implicit identity column")
}

// TestSolver_MinimizeAim: min x1 + x2 over x1 + x2 ≤ 4 stays at the
// origin — already optimal, no pivots.
func TestSolver_MinimizeAim(t *testing.T) {
	contents := [][]field.Rat{
		{ri(1), ri(1), ri(1), ri(4)},
		{ri(-1), ri(-1), ri(0), ri(0)},
	}
	s, err := simplex.NewSolver(contents, simplex.Minimize)
	require.NoError(t, err)

	sol, err := s.Solve()
	require.NoError(t, err)
	assert.True(t, sol.Value().IsZero(), "origin is optimal for minimization")
}

// TestSolution_String checks the reporting format: optimum first, then
// one 1-based line per basic variable.
func TestSolution_String(t *testing.T) {
	contents := [][]field.Rat{
		{ri(1), ri(1), ri(1), ri(4)},
		{ri(-3), ri(-2), ri(0), ri(0)},
	}
	s, err := simplex.NewSolver(contents, simplex.Maximize)
	require.NoError(t, err)
	sol, err := s.Solve()
	require.NoError(t, err)

	assert.Equal(t, "Optimal z is: 12\nBasic variables are equal to: \n   x1 = 4\n", sol.String())
}
