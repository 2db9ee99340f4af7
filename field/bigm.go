package field

import "strings"

// BigM represents fin + pen·M, where M denotes an unspecified,
// arbitrarily large positive constant. The penalty slot behaves like
// the imaginary part of a complex number under multiplication and
// division, which keeps the type closed under all four operations;
// tableau arithmetic only ever multiplies or divides by penalty-free
// values, where the complex rules coincide with symbolic-M algebra.
//
// Ordering is lexicographic: penalties compare first, finite parts
// break ties. This encodes "M dominates any finite quantity", the
// property that lets Big-M pivot selection prefer shedding artificial
// penalties over improving the real objective.
type BigM struct {
	fin Rat
	pen Rat
}

// M returns fin + pen·M.
func M(fin, pen Rat) BigM { return BigM{fin: fin, pen: pen} }

// BigMFromRat embeds a plain rational as a penalty-free BigM.
func BigMFromRat(r Rat) BigM { return BigM{fin: r} }

// BigMFromInt returns n as a penalty-free BigM.
func BigMFromInt(n int64) BigM { return BigM{fin: RatFromInt(n)} }

// ParseBigM parses either the bare token "M", yielding 0 + 1·M, or a
// rational literal, yielding a penalty-free value.
func ParseBigM(s string) (BigM, error) {
	if s == "M" {
		return BigM{pen: RatFromInt(1)}, nil
	}
	r, err := ParseRat(s)
	if err != nil {
		return BigM{}, err
	}

	return BigM{fin: r}, nil
}

// Fin returns the finite component.
func (x BigM) Fin() Rat { return x.fin }

// Pen returns the penalty component.
func (x BigM) Pen() Rat { return x.pen }

// IntoPenalty moves the finite component into the penalty slot: a+b·M
// becomes 0+a·M. This is the lift the Big-M assembler applies to
// column sums when forming the penalty row.
func (x BigM) IntoPenalty() BigM { return BigM{pen: x.fin} }

// Add returns x + y, component-wise.
func (x BigM) Add(y BigM) BigM { return BigM{fin: x.fin.Add(y.fin), pen: x.pen.Add(y.pen)} }

// Sub returns x − y, component-wise.
func (x BigM) Sub(y BigM) BigM { return BigM{fin: x.fin.Sub(y.fin), pen: x.pen.Sub(y.pen)} }

// Mul returns x × y under the complex-pair rule
// (a+pM)(b+qM) = (ab − pq) + (aq + pb)M.
func (x BigM) Mul(y BigM) BigM {
	return BigM{
		fin: x.fin.Mul(y.fin).Sub(x.pen.Mul(y.pen)),
		pen: x.fin.Mul(y.pen).Add(x.pen.Mul(y.fin)),
	}
}

// Div returns x ÷ y via the conjugate: the divisor's squared norm
// b² + q² is zero only for a zero divisor, which panics.
func (x BigM) Div(y BigM) BigM {
	norm := y.fin.Mul(y.fin).Add(y.pen.Mul(y.pen))

	return BigM{
		fin: x.fin.Mul(y.fin).Add(x.pen.Mul(y.pen)).Div(norm),
		pen: x.pen.Mul(y.fin).Sub(x.fin.Mul(y.pen)).Div(norm),
	}
}

// Neg returns −x.
func (x BigM) Neg() BigM { return BigM{fin: x.fin.Neg(), pen: x.pen.Neg()} }

// Zero returns 0 + 0·M. The receiver is ignored.
func (BigM) Zero() BigM { return BigM{} }

// One returns 1 + 0·M. The receiver is ignored.
func (BigM) One() BigM { return BigM{fin: RatFromInt(1)} }

// Cmp compares lexicographically: penalty components first, finite
// components only on a penalty tie.
func (x BigM) Cmp(y BigM) int {
	if c := x.pen.Cmp(y.pen); c != 0 {
		return c
	}

	return x.fin.Cmp(y.fin)
}

// IsZero reports whether both components are zero.
func (x BigM) IsZero() bool { return x.fin.IsZero() && x.pen.IsZero() }

// String renders the four shapes distinctly, suppressing zero
// components: "0", "5", "3M", "2 + 3M".
func (x BigM) String() string {
	switch {
	case x.IsZero():
		return "0"
	case x.pen.IsZero():
		return x.fin.String()
	case x.fin.IsZero():
		return x.pen.String() + "M"
	default:
		var b strings.Builder
		b.WriteString(x.fin.String())
		b.WriteString(" + ")
		b.WriteString(x.pen.String())
		b.WriteString("M")

		return b.String()
	}
}
