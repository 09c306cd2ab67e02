// Package signal implements a lazy combinator algebra over scalar,
// time-domain signals: pure functions from a time value to a numeric
// value that can be added, subtracted, multiplied, divided and windowed
// without eager computation.
//
// 🚀 What is a signal here?
//
//	A Signal is an immutable expression node. Leaves are constants
//	(Const) or arbitrary windowed local rules (Func); composites are
//	binary arithmetic nodes built by Add, Sub, Mul and Div. Building an
//	expression only records structure — nothing is evaluated until At
//	(one timestamp) or EvalOn (a whole grid) is called.
//
// ✨ Key features:
//   - literal coercion: every combinator accepts raw Go numerics on
//     either side, so Sub(5, s) is the mirrored form of Sub(s, 5)
//   - half-open windowing: a leaf is active on [Start, End) and exactly
//     zero outside; t == Start is active, t == End is not, so adjacent
//     windows stitch with no double-counted instant
//   - local time: inside its window a leaf sees τ = t − Start, which
//     time-shifts any rule without rewriting it
//   - shared subtrees: the same node may appear as an operand of many
//     composites; evaluation recomputes it at every occurrence
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/sigalg/signal"
//
//	a := signal.Const(1, signal.WithWindow(0, 2))
//	b := signal.Const(1, signal.WithWindow(1, 3))
//	s, err := signal.Sub(a, b) // +1 on [0,1), 0 on [1,2), −1 on [2,3)
//	if err != nil {
//	  // ErrTypeMismatch — only possible with non-Signal, non-numeric operands
//	}
//	ys := signal.EvalOn(s, []float64{0, 0.5, 1, 1.5, 2, 2.5, 3})
//
// Numeric policy:
//
//	Division follows IEEE-754 float64 semantics: x/0 is ±Inf for x ≠ 0
//	and NaN for 0/0. A zero denominator is never an error.
//
// Windows are not validated at construction: Start > End silently yields
// a permanently-zero signal. Call Window.Validate to fail fast instead.
//
// Performance:
//
//   - At:     O(size of expression)
//   - EvalOn: O(len(ts) · size of expression)
//
// Evaluation is pure and lock-free; one tree may be evaluated from many
// goroutines concurrently (see EvalOnConcurrent).
package signal
