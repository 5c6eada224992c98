package interval

import "math"

// outLo widens a lower endpoint outward (downward) by one representable step.
// Infinite endpoints are already outward.
func outLo(v float64) float64 {
	if math.IsInf(v, -1) {
		return v
	}

	return math.Nextafter(v, math.Inf(-1))
}

// outHi widens an upper endpoint outward (upward) by one representable step.
func outHi(v float64) float64 {
	if math.IsInf(v, 1) {
		return v
	}

	return math.Nextafter(v, math.Inf(1))
}

// transLo / transHi widen by two representable steps, covering the ≤1 ulp
// error of the standard library's transcendental functions.
func transLo(v float64) float64 { return outLo(outLo(v)) }
func transHi(v float64) float64 { return outHi(outHi(v)) }

// Neg returns −x. Negation of floating-point endpoints is exact.
func (x Interval) Neg() Interval {
	if x.IsEmpty() {
		return Empty()
	}

	return Interval{lo: -x.hi, hi: -x.lo}
}

// Add returns the outward-rounded sum x + y.
func (x Interval) Add(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}
	lo := x.lo + y.lo
	hi := x.hi + y.hi
	// −∞ + +∞ is NaN; resolve toward the unbounded side.
	if math.IsNaN(lo) {
		lo = math.Inf(-1)
	}
	if math.IsNaN(hi) {
		hi = math.Inf(1)
	}

	return Interval{lo: outLo(lo), hi: outHi(hi)}
}

// Sub returns the outward-rounded difference x − y.
func (x Interval) Sub(y Interval) Interval { return x.Add(y.Neg()) }

// mulEP multiplies endpoints under the interval convention 0 · ±∞ = 0.
func mulEP(a, b float64) float64 {
	if a == 0 || b == 0 {
		return 0
	}

	return a * b
}

// Mul returns the outward-rounded product x · y.
func (x Interval) Mul(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}
	p1 := mulEP(x.lo, y.lo)
	p2 := mulEP(x.lo, y.hi)
	p3 := mulEP(x.hi, y.lo)
	p4 := mulEP(x.hi, y.hi)
	lo := math.Min(math.Min(p1, p2), math.Min(p3, p4))
	hi := math.Max(math.Max(p1, p2), math.Max(p3, p4))

	return Interval{lo: outLo(lo), hi: outHi(hi)}
}

// Div returns an enclosure of x / y.
//
// When y straddles or touches zero the quotient set is unbounded; this
// kernel returns Entire in that case (sound over-approximation) and Empty
// for the degenerate divisor [0, 0].
func (x Interval) Div(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}
	if y.lo <= 0 && 0 <= y.hi {
		if y.lo == 0 && y.hi == 0 {
			return Empty()
		}

		return Entire()
	}
	q1 := x.lo / y.lo
	q2 := x.lo / y.hi
	q3 := x.hi / y.lo
	q4 := x.hi / y.hi
	// ±∞ / ±∞ is NaN; any NaN candidate widens to Entire (sound).
	if math.IsNaN(q1) || math.IsNaN(q2) || math.IsNaN(q3) || math.IsNaN(q4) {
		return Entire()
	}
	lo := math.Min(math.Min(q1, q2), math.Min(q3, q4))
	hi := math.Max(math.Max(q1, q2), math.Max(q3, q4))

	return Interval{lo: outLo(lo), hi: outHi(hi)}
}

// Abs returns the enclosure of |x|.
func (x Interval) Abs() Interval {
	if x.IsEmpty() {
		return Empty()
	}
	if x.lo >= 0 {
		return x
	}
	if x.hi <= 0 {
		return x.Neg()
	}

	return Interval{lo: 0, hi: math.Max(-x.lo, x.hi)}
}

// Sqr returns the enclosure of x². Tighter than x.Mul(x): the two factors
// are the same variable, so the sign correlation is exact here.
func (x Interval) Sqr() Interval {
	if x.IsEmpty() {
		return Empty()
	}
	m := x.Abs()
	lo := mulEP(m.lo, m.lo)
	hi := mulEP(m.hi, m.hi)

	return Interval{lo: math.Max(0, outLo(lo)), hi: outHi(hi)}
}

// Sqrt returns the enclosure of √x over the domain x ≥ 0.
// The negative part of x is clipped; a wholly negative x yields Empty.
func (x Interval) Sqrt() Interval {
	if x.IsEmpty() || x.hi < 0 {
		return Empty()
	}
	lo := math.Max(x.lo, 0)

	return Interval{
		lo: math.Max(0, transLo(math.Sqrt(lo))),
		hi: transHi(math.Sqrt(x.hi)),
	}
}

// Pow returns the enclosure of xⁿ for an integer exponent n.
// Negative exponents are 1 / x⁻ⁿ and inherit Div's zero-divisor policy.
func (x Interval) Pow(n int) Interval {
	if x.IsEmpty() {
		return Empty()
	}
	switch {
	case n == 0:
		return Point(1)
	case n < 0:
		return Point(1).Div(x.Pow(-n))
	case n == 1:
		return x
	case n == 2:
		return x.Sqr()
	case n%2 == 0:
		m := x.Abs()

		return Interval{
			lo: math.Max(0, outLo(powEP(m.lo, n))),
			hi: outHi(powEP(m.hi, n)),
		}
	default:
		return Interval{lo: outLo(powEP(x.lo, n)), hi: outHi(powEP(x.hi, n))}
	}
}

// powEP raises a single endpoint to an integer power, preserving sign for
// odd exponents.
func powEP(v float64, n int) float64 {
	if v < 0 && n%2 != 0 {
		return -math.Pow(-v, float64(n))
	}

	return math.Pow(math.Abs(v), float64(n))
}

// Exp returns the enclosure of eˣ. The result is clamped at 0 from below.
func (x Interval) Exp() Interval {
	if x.IsEmpty() {
		return Empty()
	}

	return Interval{
		lo: math.Max(0, transLo(math.Exp(x.lo))),
		hi: transHi(math.Exp(x.hi)),
	}
}

// Log returns the enclosure of ln x over the domain x > 0.
// The non-positive part of x is clipped; a wholly non-positive x yields
// Empty. Log of an interval touching zero has lower endpoint −∞.
func (x Interval) Log() Interval {
	if x.IsEmpty() || x.hi <= 0 {
		return Empty()
	}
	lo := math.Max(x.lo, 0)

	return Interval{lo: transLo(math.Log(lo)), hi: transHi(math.Log(x.hi))}
}

// twoPi is a lower bound on 2π; any interval at least this wide covers a
// full period of sine/cosine.
const twoPi = 2 * math.Pi

// Cos returns the enclosure of cos x.
func (x Interval) Cos() Interval {
	if x.IsEmpty() {
		return Empty()
	}
	full := Interval{lo: -1, hi: 1}
	if x.Diam() >= twoPi {
		return full
	}
	cl := math.Cos(x.lo)
	ch := math.Cos(x.hi)
	out := Interval{
		lo: transLo(math.Min(cl, ch)),
		hi: transHi(math.Max(cl, ch)),
	}
	// Interior extrema: cos attains +1 at multiples of 2π and −1 at odd
	// multiples of π. The membership test is deliberately slack-widened,
	// so a near-miss errs toward including the extremum (sound).
	if containsMultiple(x, twoPi, 0) {
		out.hi = 1
	}
	if containsMultiple(x, twoPi, math.Pi) {
		out.lo = -1
	}

	return out.Intersect(full)
}

// Sin returns the enclosure of sin x via sin x = cos(x − π/2), using an
// interval enclosure of π/2 to keep the shift sound.
func (x Interval) Sin() Interval {
	halfPi := Interval{lo: outLo(math.Pi / 2), hi: outHi(math.Pi / 2)}

	return x.Sub(halfPi).Cos()
}

// containsMultiple conservatively tests whether phase + k·period lies in x
// for some integer k. False positives only widen trig enclosures.
func containsMultiple(x Interval, period, phase float64) bool {
	if math.IsInf(x.lo, -1) || math.IsInf(x.hi, 1) {
		return true
	}
	k := math.Floor((x.lo - phase) / period)
	m := phase + (k+1)*period
	slack := 1e-9 * (1 + math.Abs(m))
	if phase+k*period >= x.lo-slack {
		return true
	}

	return m <= x.hi+slack
}

// Min returns the enclosure of min(x, y).
func (x Interval) Min(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}

	return Interval{lo: math.Min(x.lo, y.lo), hi: math.Min(x.hi, y.hi)}
}

// Max returns the enclosure of max(x, y).
func (x Interval) Max(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}

	return Interval{lo: math.Max(x.lo, y.lo), hi: math.Max(x.hi, y.hi)}
}
