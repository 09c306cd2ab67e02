package signal

import "fmt"

// composite is the binary node of the algebra: two operand signals and
// an operator tag. Operands may themselves be composites, windowed
// leaves or constants; the same node instance may serve as an operand of
// several composites (shared subtree), in which case evaluation
// recomputes it at every occurrence.
type composite struct {
	op       Op
	lhs, rhs Signal
}

// At recursively evaluates both operands at t, then applies the operator.
// No evaluation order is guaranteed between lhs and rhs — operand rules
// must be pure. Quotient follows IEEE-754: x/0 is ±Inf, 0/0 is NaN.
func (c *composite) At(t float64) float64 {
	l, r := c.lhs.At(t), c.rhs.At(t)
	switch c.op {
	case Sum:
		return l + r
	case Difference:
		return l - r
	case Product:
		return l * r
	default: // Quotient
		return l / r
	}
}

// coerce turns an operand into a Signal: signals pass through unchanged,
// numeric literals become an always-active Const. Every combinator funnels
// both operands through this single conversion point.
func coerce(v any) (Signal, bool) {
	switch x := v.(type) {
	case Signal:
		return x, x != nil
	case float64:
		return Const(x), true
	case float32:
		return Const(float64(x)), true
	case int:
		return Const(float64(x)), true
	case int64:
		return Const(float64(x)), true
	case int32:
		return Const(float64(x)), true
	case int16:
		return Const(float64(x)), true
	case int8:
		return Const(float64(x)), true
	case uint:
		return Const(float64(x)), true
	case uint64:
		return Const(float64(x)), true
	case uint32:
		return Const(float64(x)), true
	case uint16:
		return Const(float64(x)), true
	case uint8:
		return Const(float64(x)), true
	default:
		return nil, false
	}
}

// newComposite coerces both operands and records the structure. It never
// evaluates: type errors surface here, at construction time, not at At.
func newComposite(op Op, a, b any) (Signal, error) {
	lhs, okL := coerce(a)
	rhs, okR := coerce(b)
	if !okL || !okR {
		return nil, fmt.Errorf("signal: operator %s called for types %T %s %T: %w", op, a, op, b, ErrTypeMismatch)
	}

	return &composite{op: op, lhs: lhs, rhs: rhs}, nil
}

// Add builds a + b. Operands are Signals or numeric literals on either
// side; anything else fails with ErrTypeMismatch.
func Add(a, b any) (Signal, error) { return newComposite(Sum, a, b) }

// Sub builds a − b. Operand order is preserved, so the mirrored literal
// form of the reference algebra is simply Sub(5, s).
func Sub(a, b any) (Signal, error) { return newComposite(Difference, a, b) }

// Mul builds a × b.
func Mul(a, b any) (Signal, error) { return newComposite(Product, a, b) }

// Div builds a ÷ b. The quotient is evaluated under IEEE-754 float64
// semantics: a zero denominator yields ±Inf (or NaN for 0/0), never an
// error. Div(5, s) is the mirrored literal form.
func Div(a, b any) (Signal, error) { return newComposite(Quotient, a, b) }
