// Package parse turns textual problem statements into simplex Tasks.
//
// The grammar, line-oriented:
//
//	restriction := terms relation number
//	objective   := "z" "=" terms "->" ("max" | "min")
//	terms       := term (("+" | "-") term)*
//	term        := [sign] [number] ["*"] "x" digits
//	relation    := "<=" | "==" | ">="
//	number      := [sign] digits ["." [digits]]
//
// Whitespace between tokens is insignificant, "x" and the max/min/z
// keywords are case-insensitive, and a bare sign before "x" reads as
// ±1. Coefficients parse to exact rationals: "5.2" is 26/5, never a
// float.
//
// Every non-blank line must match one of the two productions; a line
// matching neither fails with a *CompositeError carrying both
// attempts' errors. The relative order of lines is free, but exactly
// the last objective line wins and at least one is required
// (ErrNoTarget otherwise).
package parse
