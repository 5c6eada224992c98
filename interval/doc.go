// Package interval provides the outward-rounded interval kernel that the
// rest of the library builds on: a closed Interval value type, a Box product
// type, and sound arithmetic/transcendental extensions.
//
// Soundness contract:
//
//	For every operation Op and intervals X, Y, the result Op(X, Y) contains
//	{op(x, y) : x ∈ X, y ∈ Y} ∩ dom(op). Results of partial operations
//	(Sqrt, Log, Div) clip to the operation's domain; when the whole input
//	lies outside the domain, the distinguished Empty interval is returned.
//
// Rounding policy:
//
//   - Rational endpoint arithmetic (+, −, ×, ÷, integer powers) is widened
//     outward by one representable step (math.Nextafter) per endpoint.
//   - Transcendental extensions (Exp, Log, Sin, Cos) rely on the standard
//     library's faithfully rounded math functions and widen outward by two
//     representable steps per endpoint.
//
// The Empty interval is the sentinel [+∞, −∞]; it absorbs every operation
// and signals "no real value is possible here". The Entire interval
// [−∞, +∞] is the top element; over-approximating to Entire is always
// sound (e.g. division by a zero-crossing interval).
//
// Complexity: every operation in this package is O(1); Box operations are
// O(dim).
package interval
