// Package simplex implements the tableau form of the simplex method
// over an exact, generic scalar field.
//
// Pipeline:
//
//	Task ──Canonicalize──▶ CanonicalTask ──assemble──▶ Solver ──Solve──▶ Solution
//
//  1. Canonicalize turns an arbitrary restriction set into standard
//     equality form: a slack (+1) for every ≤, a surplus (−1) for every
//     ≥, and a whole-row sign flip wherever the right-hand side is
//     negative, so every canonical rhs is ≥ 0.
//  2. Assembly builds the dense (m+1)×(n+1) tableau [A|b; z] for the
//     selected strategy. The objective row is stored negated, so one
//     sign test covers optimality for both aims.
//  3. The pivot engine repeats reduced-cost column choice, min-ratio
//     row choice and Gauss–Jordan elimination until no improving column
//     remains, then reads the basis into a Solution.
//
// Strategies (Method):
//
//   - MethodSimple   — the canonical form already contains an identity
//     sub-matrix (all restrictions were ≤ with non-negative rhs). This
//     precondition is the caller's responsibility; assembly surfaces a
//     violation as ErrShapeMismatch at best.
//   - MethodBigM     — artificial columns are priced at ±M via the
//     field.BigM penalty component, so one run both restores
//     feasibility and optimizes.
//   - MethodTwoPhase — phase 1 minimizes the sum of artificials over
//     plain numbers; a positive optimum means the system is
//     inconsistent. Phase 2 re-installs the real objective and runs
//     the same engine again.
//
// Degeneracy: no anti-cycling rule is applied; ties in the column and
// row choices break deterministically toward the smallest index, which
// makes runs reproducible but does not bound the iteration count.
//
// Everything is synchronous and single-owner: a Solver owns its
// tableau, Solve consumes the Solver, and the returned Solution is
// independent of it.
package simplex
