package simplex

import "github.com/optimtab/lintab/field"

// CanonicalTask is a Task brought to standard equality form: every
// relation is Equal, every right-hand side is ≥ 0, and maxIndex
// records the largest variable index after slack/surplus augmentation,
// so the dense index space is contiguous from 1 to maxIndex.
type CanonicalTask[F field.Value[F]] struct {
	task     Task[F]
	maxIndex int
	method   Method
}

// MaxIndex reports the number of variables after augmentation.
func (ct CanonicalTask[F]) MaxIndex() int { return ct.maxIndex }

// Method reports the strategy this task was canonicalized for.
func (ct CanonicalTask[F]) Method() Method { return ct.method }

// Restrictions returns an independent copy of the canonical
// restrictions (every relation Equal, every rhs ≥ 0, augmentation
// terms included).
func (ct CanonicalTask[F]) Restrictions() []Restriction[F] {
	out := make([]Restriction[F], len(ct.task.Restrictions))
	for i, r := range ct.task.Restrictions {
		out[i] = Restriction[F]{
			Terms:    append([]Term[F](nil), r.Terms...),
			Relation: r.Relation,
			RHS:      r.RHS,
		}
	}

	return out
}

// Objective returns an independent copy of the objective.
func (ct CanonicalTask[F]) Objective() Objective[F] {
	return Objective[F]{
		Terms: append([]Term[F](nil), ct.task.Objective.Terms...),
		Const: ct.task.Objective.Const,
		Goal:  ct.task.Objective.Goal,
	}
}

// Canonicalize rewrites the task into standard equality form for the
// given strategy:
//
//  1. Find the largest referenced variable index. A task with no
//     restrictions or no terms fails with ErrEmptyProblem; an index
//     below 1 fails with ErrBadIndex.
//  2. Per restriction: ≤ gains a slack term (+1, fresh index), ≥ gains
//     a surplus term (−1, fresh index), = gains nothing; the relation
//     then becomes Equal.
//  3. A negative right-hand side flips the sign of the whole row, so
//     every canonical rhs is ≥ 0 — the precondition of the min-ratio
//     test's feasibility guarantee.
//
// The receiver is consumed by value: the canonical task owns deep
// copies of all term slices and never aliases the caller's memory.
//
// Complexity: O(total terms).
func (t Task[F]) Canonicalize(method Method) (CanonicalTask[F], error) {
	if len(t.Restrictions) == 0 {
		return CanonicalTask[F]{}, ErrEmptyProblem
	}

	maxIndex := 0
	for _, r := range t.Restrictions {
		for _, term := range r.Terms {
			if term.Index < 1 {
				return CanonicalTask[F]{}, ErrBadIndex
			}
			if term.Index > maxIndex {
				maxIndex = term.Index
			}
		}
	}
	if maxIndex == 0 {
		return CanonicalTask[F]{}, ErrEmptyProblem
	}
	for _, term := range t.Objective.Terms {
		// The objective may only price variables that occur in some
		// restriction; anything else has no canonical column.
		if term.Index < 1 || term.Index > maxIndex {
			return CanonicalTask[F]{}, ErrBadIndex
		}
	}

	var zero F
	one := zero.One()

	out := Task[F]{
		Restrictions: make([]Restriction[F], len(t.Restrictions)),
		Objective: Objective[F]{
			Terms: append([]Term[F](nil), t.Objective.Terms...),
			Const: t.Objective.Const,
			Goal:  t.Objective.Goal,
		},
	}

	for i, r := range t.Restrictions {
		terms := append([]Term[F](nil), r.Terms...)

		switch r.Relation {
		case LessEq:
			maxIndex++
			terms = append(terms, Term[F]{Coef: one, Index: maxIndex})
		case GreaterEq:
			maxIndex++
			terms = append(terms, Term[F]{Coef: one.Neg(), Index: maxIndex})
		case Equal:
			// already an equality, no auxiliary column
		}

		rhs := r.RHS
		if rhs.Cmp(zero) < 0 {
			for j := range terms {
				terms[j].Coef = terms[j].Coef.Neg()
			}
			rhs = rhs.Neg()
		}

		out.Restrictions[i] = Restriction[F]{Terms: terms, Relation: Equal, RHS: rhs}
	}

	return CanonicalTask[F]{task: out, maxIndex: maxIndex, method: method}, nil
}
