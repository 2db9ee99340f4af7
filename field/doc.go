// Package field provides the exact scalar types the simplex engine
// pivots over.
//
// The engine never touches a concrete number type directly; it is
// written against Value[T], a minimal capability interface (add,
// subtract, multiply, divide, negate, zero, one, compare). Two
// implementations ship with the package:
//
//   - Rat  — an immutable, arbitrary-precision rational. The usable
//     zero value makes it safe to allocate tableaus with make().
//   - BigM — a pair (finite, penalty) representing finite + penalty·M,
//     where M stands for an unspecified, arbitrarily large positive
//     constant. Ordering is lexicographic with the penalty component
//     dominant, which is exactly the property the Big-M method needs:
//     any positive penalty outweighs any finite quantity.
//
// Both types are values: operations return new results and never
// mutate their operands, so rows of a tableau can be copied and scaled
// without aliasing concerns.
package field
