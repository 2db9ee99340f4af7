package simplex

import "github.com/optimtab/lintab/field"

// Goal selects the optimization direction of an Objective.
type Goal int

const (
	// Minimize seeks the smallest objective value.
	Minimize Goal = iota
	// Maximize seeks the largest objective value.
	Maximize
)

// Relation is the comparison of a Restriction against its right-hand
// side.
type Relation int

const (
	// Equal — the row must hold with equality.
	Equal Relation = iota
	// LessEq — left-hand side ≤ right-hand side.
	LessEq
	// GreaterEq — left-hand side ≥ right-hand side.
	GreaterEq
)

// Method selects the standard-form strategy used to seed a feasible
// basis. See the package documentation for when each applies.
type Method int

const (
	// MethodSimple assumes canonicalization alone yields an identity
	// sub-matrix (every restriction was ≤ with non-negative rhs).
	MethodSimple Method = iota
	// MethodBigM prices artificial columns with the symbolic penalty M.
	MethodBigM
	// MethodTwoPhase runs a feasibility phase before the real objective.
	MethodTwoPhase
)

// Term is one coefficient·variable pair. Index is the user-facing,
// 1-based variable index; the dense tableau maps it to column Index−1.
type Term[F field.Value[F]] struct {
	Coef  F
	Index int
}

// Restriction is an ordered list of terms compared against a
// right-hand-side value.
type Restriction[F field.Value[F]] struct {
	Terms    []Term[F]
	Relation Relation
	RHS      F
}

// Objective is the target function: terms, an optional constant, and
// the optimization direction.
type Objective[F field.Value[F]] struct {
	Terms []Term[F]
	Const F
	Goal  Goal
}

// Task is a complete problem statement: at least one restriction and
// one referenced variable (enforced by Canonicalize).
type Task[F field.Value[F]] struct {
	Restrictions []Restriction[F]
	Objective    Objective[F]
}

// MapTask converts a Task between scalar fields, applying conv to
// every coefficient, right-hand side and the objective constant. It is
// how a parsed rational task is lifted into field.BigM before a Big-M
// run.
func MapTask[F field.Value[F], G field.Value[G]](t Task[F], conv func(F) G) Task[G] {
	out := Task[G]{
		Restrictions: make([]Restriction[G], len(t.Restrictions)),
		Objective: Objective[G]{
			Terms: mapTerms(t.Objective.Terms, conv),
			Const: conv(t.Objective.Const),
			Goal:  t.Objective.Goal,
		},
	}
	for i, r := range t.Restrictions {
		out.Restrictions[i] = Restriction[G]{
			Terms:    mapTerms(r.Terms, conv),
			Relation: r.Relation,
			RHS:      conv(r.RHS),
		}
	}

	return out
}

func mapTerms[F field.Value[F], G field.Value[G]](ts []Term[F], conv func(F) G) []Term[G] {
	out := make([]Term[G], len(ts))
	for i, t := range ts {
		out[i] = Term[G]{Coef: conv(t.Coef), Index: t.Index}
	}

	return out
}
