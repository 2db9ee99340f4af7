package field

import (
	"errors"
	"math/big"
)

// ErrNotANumber is returned by ParseRat and ParseBigM when the input
// is neither a rational literal nor (for ParseBigM) the token "M".
var ErrNotANumber = errors.New("field: not a number")

// Rat is an immutable exact rational. The zero value is 0 and is ready
// to use. All operations return fresh values; a Rat is never mutated
// after construction, so Rats can be shared freely between tableau
// rows.
type Rat struct {
	// num is nil for the zero value; treated as 0 everywhere.
	num *big.Rat
}

// R returns the rational num/den. Panics when den == 0.
func R(num, den int64) Rat {
	return Rat{num: big.NewRat(num, den)}
}

// RatFromInt returns n as a Rat.
func RatFromInt(n int64) Rat {
	return Rat{num: new(big.Rat).SetInt64(n)}
}

// ParseRat parses an exact rational literal. Accepted forms are those
// of big.Rat.SetString: "3", "-7/3", "5.2", "1.25e2". A trailing dot
// with no fractional digits ("5.") is tolerated.
func ParseRat(s string) (Rat, error) {
	if len(s) > 1 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rat{}, ErrNotANumber
	}

	return Rat{num: r}, nil
}

// ref returns the backing big.Rat, mapping the nil zero value to 0.
func (x Rat) ref() *big.Rat {
	if x.num == nil {
		return new(big.Rat)
	}

	return x.num
}

// Add returns x + y.
func (x Rat) Add(y Rat) Rat { return Rat{num: new(big.Rat).Add(x.ref(), y.ref())} }

// Sub returns x − y.
func (x Rat) Sub(y Rat) Rat { return Rat{num: new(big.Rat).Sub(x.ref(), y.ref())} }

// Mul returns x × y.
func (x Rat) Mul(y Rat) Rat { return Rat{num: new(big.Rat).Mul(x.ref(), y.ref())} }

// Div returns x ÷ y. Panics when y is zero.
func (x Rat) Div(y Rat) Rat { return Rat{num: new(big.Rat).Quo(x.ref(), y.ref())} }

// Neg returns −x.
func (x Rat) Neg() Rat { return Rat{num: new(big.Rat).Neg(x.ref())} }

// Zero returns 0. The receiver is ignored.
func (Rat) Zero() Rat { return Rat{} }

// One returns 1. The receiver is ignored.
func (Rat) One() Rat { return RatFromInt(1) }

// Cmp returns −1, 0 or +1 as x <, == or > y.
func (x Rat) Cmp(y Rat) int { return x.ref().Cmp(y.ref()) }

// IsZero reports whether x == 0.
func (x Rat) IsZero() bool { return x.num == nil || x.num.Sign() == 0 }

// Sign returns −1, 0 or +1 as x is negative, zero or positive.
func (x Rat) Sign() int { return x.ref().Sign() }

// Float64 returns the nearest float64 to x. Used only at reporting and
// cross-checking boundaries; the solver itself never rounds.
func (x Rat) Float64() float64 {
	f, _ := x.ref().Float64()

	return f
}

// String renders x as "n" for integers and "n/d" otherwise.
func (x Rat) String() string { return x.ref().RatString() }
