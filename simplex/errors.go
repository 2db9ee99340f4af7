// Package simplex: sentinel error set. All exported entry points
// return these sentinels (optionally wrapped with context via %w) and
// tests match them with errors.Is. User-triggered conditions never
// panic; panics are reserved for programmer errors inside private
// helpers.

package simplex

import "errors"

var (
	// ErrEmptyProblem is returned when a Task has no restrictions or
	// references no variables at all.
	ErrEmptyProblem = errors.New("simplex: task has no restrictions or no variables")

	// ErrBadIndex is returned when a term references a variable index
	// smaller than 1. The user-facing index space is 1-based.
	ErrBadIndex = errors.New("simplex: variable index must be >= 1")

	// ErrShapeMismatch signals an internal assembly inconsistency, such
	// as the implicit starting basis not covering every restriction row.
	// For MethodSimple this is the usual symptom of violating the
	// identity-sub-matrix precondition.
	ErrShapeMismatch = errors.New("simplex: tableau shape mismatch")

	// ErrNoLimit means no valid pivot row exists for the chosen column:
	// the objective is unbounded along the improving direction.
	ErrNoLimit = errors.New("simplex: objective is unbounded")

	// ErrNoSolutions means no admissible pivot column exists while the
	// tableau is not optimal, or (two-phase) that the restriction system
	// admits no feasible point.
	ErrNoSolutions = errors.New("simplex: no solution satisfies the restrictions")

	// ErrSolverConsumed is returned by Solve on second and later calls;
	// a Solver instance is consumed by solving.
	ErrSolverConsumed = errors.New("simplex: solver already consumed")

	// ErrUnknownMethod is returned by the dispatcher for a Method value
	// outside the declared set.
	ErrUnknownMethod = errors.New("simplex: unknown method")
)
