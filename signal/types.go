// Package signal core types: the Signal contract and the closed operator set.
package signal

// Signal is an immutable node of the algebra: a pure function from a
// global time value to a numeric value. Implementations are closed to
// this module (constant leaf, windowed local rule, binary composite);
// user-defined kinds are expressed through Func.
//
// A Signal is never mutated after construction, so a single expression
// tree may be evaluated concurrently from any number of goroutines.
type Signal interface {
	// At evaluates the signal at global time t.
	At(t float64) float64
}

// Op tags the four binary composite kinds.
//
//   - Sum        — lhs + rhs
//   - Difference — lhs − rhs
//   - Product    — lhs × rhs
//   - Quotient   — lhs ÷ rhs (IEEE-754: a zero denominator yields ±Inf or NaN)
type Op int

const (
	// Sum adds the two operand values.
	Sum Op = iota

	// Difference subtracts rhs from lhs.
	Difference

	// Product multiplies the two operand values.
	Product

	// Quotient divides lhs by rhs under IEEE-754 float64 semantics.
	Quotient
)

// String returns the conventional arithmetic symbol for op.
func (op Op) String() string {
	switch op {
	case Sum:
		return "+"
	case Difference:
		return "-"
	case Product:
		return "*"
	case Quotient:
		return "/"
	default:
		return "?"
	}
}
