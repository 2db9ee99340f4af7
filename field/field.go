package field

// Value is the numeric capability contract the simplex engine is
// generic over. A type F implementing Value[F] forms an ordered field:
// Add/Sub/Mul/Div follow the usual field laws, Cmp is a total order
// compatible with addition, and Zero/One are the respective identities.
//
// Zero and One take a receiver only to satisfy Go's method syntax; they
// ignore it and may be called on any value, including the type's zero
// value.
//
// Div with a zero divisor is a programmer error and panics; the pivot
// engine filters zero pivot candidates before dividing.
type Value[F any] interface {
	// Add returns receiver + v.
	Add(v F) F
	// Sub returns receiver − v.
	Sub(v F) F
	// Mul returns receiver × v.
	Mul(v F) F
	// Div returns receiver ÷ v. Panics when v is zero.
	Div(v F) F
	// Neg returns −receiver.
	Neg() F
	// Zero returns the additive identity of the field.
	Zero() F
	// One returns the multiplicative identity of the field.
	One() F
	// Cmp returns −1, 0 or +1 as receiver <, == or > v.
	Cmp(v F) int
	// IsZero reports whether the value equals the additive identity.
	IsZero() bool
	// String renders the value for solution output.
	String() string
}
