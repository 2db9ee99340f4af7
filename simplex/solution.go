package simplex

import (
	"fmt"
	"strings"

	"github.com/optimtab/lintab/field"
)

// BasicVar is one basic variable in the final tableau: the 0-based
// column it occupies and its value (the rhs of its row). Variables not
// listed in a Solution are non-basic and equal zero.
type BasicVar[F field.Value[F]] struct {
	Column int
	Value  F
}

// Solution is the reportable outcome of a solve: the sparse basis
// assignment and the final objective row (coefficients plus trailing
// constant). It shares no memory with the consumed Solver.
type Solution[F field.Value[F]] struct {
	basics    []BasicVar[F]
	objective []F
}

// Basics returns the basic variables in restriction-row order.
func (s *Solution[F]) Basics() []BasicVar[F] {
	return append([]BasicVar[F](nil), s.basics...)
}

// ValueOf returns the value of variable x<index> (1-based); zero for
// every non-basic variable.
func (s *Solution[F]) ValueOf(index int) F {
	for _, bv := range s.basics {
		if bv.Column == index-1 {
			return bv.Value
		}
	}
	var zero F

	return zero
}

// Value computes the optimal objective value as
//
//	stored constant + Σ objective[basis column] × basis value
//
// over all basis entries. The final objective row already encodes the
// negated, penalty-adjusted state of the run, so this exact formula —
// and no other — recovers the optimum.
func (s *Solution[F]) Value() F {
	out := s.objective[len(s.objective)-1]
	for _, bv := range s.basics {
		out = out.Add(s.objective[bv.Column].Mul(bv.Value))
	}

	return out
}

// ObjectiveRow returns a copy of the final objective row, trailing
// constant included.
func (s *Solution[F]) ObjectiveRow() []F {
	return append([]F(nil), s.objective...)
}

// String renders the optimum and each basic variable as a 1-based
// "x<i> = <value>" line; non-basic variables are implicitly zero.
func (s *Solution[F]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Optimal z is: %s\n", s.Value())
	b.WriteString("Basic variables are equal to: \n")
	for _, bv := range s.basics {
		fmt.Fprintf(&b, "   x%d = %s\n", bv.Column+1, bv.Value)
	}

	return b.String()
}
