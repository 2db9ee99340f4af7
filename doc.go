// Package lintab solves linear programming problems with the tableau
// form of the simplex method, over exact arithmetic.
//
// What lintab brings together:
//
//   - Exact fields: immutable rationals (field.Rat) and Big-M penalty
//     numbers (field.BigM) behind one small capability interface
//   - Canonicalization: slack/surplus augmentation and sign
//     normalization into standard equality form
//   - Three standard-form strategies: Simple (an obvious feasible basis
//     already exists), Big-M penalties, and a true two-phase run
//   - A generic pivot engine: reduced-cost column choice, min-ratio row
//     choice, Gauss–Jordan elimination, basis bookkeeping
//   - A small text grammar for restriction/objective input
//
// Why exact arithmetic? Pivoting amplifies rounding aggressively; over
// rationals every tableau invariant holds with equality, so optimality
// and unboundedness tests need no tolerances.
//
// Everything is organized under small subpackages:
//
//	field/   — Value[T] interface, Rat and BigM implementations
//	simplex/ — Task model, canonicalizer, tableau assembly, pivot engine
//	parse/   — text grammar for restrictions and the objective line
//	cmd/     — the lintab command-line solver
//
// Quick textual example:
//
//	x1 + x2 <= 4
//	z = 3x1 + 2x2 -> max
//
// solves to an optimal objective value of 12 at x1 = 4.
//
//	go get github.com/optimtab/lintab
package lintab
