// Package simplex - unified dispatcher for the standard-form
// strategies. SolveSimple and SolveTwoPhase are generic over the
// scalar field; SolveBigM is pinned to field.BigM because the penalty
// row only exists there. Solve routes a Big-M-typed task — the type
// every strategy can run on, penalty-free values included — by Method.
package simplex

import "github.com/optimtab/lintab/field"

// Solve canonicalizes t under the given method, assembles the matching
// tableau and drives it to optimality.
//
// Errors: ErrEmptyProblem/ErrBadIndex from canonicalization,
// ErrShapeMismatch from assembly, ErrNoLimit/ErrNoSolutions from the
// pivot engine, ErrUnknownMethod for a Method outside the declared set.
func Solve(t Task[field.BigM], method Method) (*Solution[field.BigM], error) {
	switch method {
	case MethodSimple:
		return SolveSimple(t)
	case MethodBigM:
		return SolveBigM(t)
	case MethodTwoPhase:
		return SolveTwoPhase(t)
	default:
		return nil, ErrUnknownMethod
	}
}

// SolveSimple assumes canonicalization alone yields a feasible
// identity basis (all restrictions ≤ with non-negative rhs). The
// precondition is not verified here — it is the documented caller
// responsibility; a violation typically surfaces as ErrShapeMismatch.
func SolveSimple[F field.Value[F]](t Task[F]) (*Solution[F], error) {
	ct, err := t.Canonicalize(MethodSimple)
	if err != nil {
		return nil, err
	}

	p := ct.assemble()
	p.invertZ()
	s, err := solverFromParts(p, ct.task.Objective.Goal)
	if err != nil {
		return nil, err
	}

	return s.Solve()
}

// SolveBigM augments the tableau with the penalty row and an
// artificial identity block, then runs a single penalized
// optimization: the lexicographic order on field.BigM drives every
// artificial out of the basis before finite improvement matters.
func SolveBigM(t Task[field.BigM]) (*Solution[field.BigM], error) {
	ct, err := t.Canonicalize(MethodBigM)
	if err != nil {
		return nil, err
	}

	p := ct.assemble()
	addPenaltyRow(&p, ct.task.Objective.Goal)
	p.addBasis()
	p.invertZ()
	s, err := solverFromParts(p, ct.task.Objective.Goal)
	if err != nil {
		return nil, err
	}

	sol, err := s.Solve()
	if err != nil {
		return nil, err
	}
	// A penalty component surviving into the optimum means some
	// artificial variable could not be priced out: the restriction
	// system is inconsistent.
	if !sol.Value().Pen().IsZero() {
		return nil, ErrNoSolutions
	}

	return sol, nil
}

// SolveTwoPhase restores feasibility by minimizing the artificial sum
// over plain numbers, then optimizes the real objective in a second
// run of the same engine. On every feasible input it agrees with
// SolveBigM's optimal value.
func SolveTwoPhase[F field.Value[F]](t Task[F]) (*Solution[F], error) {
	ct, err := t.Canonicalize(MethodTwoPhase)
	if err != nil {
		return nil, err
	}

	return solveTwoPhase(ct)
}
