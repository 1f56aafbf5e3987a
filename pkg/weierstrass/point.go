package weierstrass

import (
	"crypto/subtle"
)

// Point is either the point at infinity or an affine point (x, y). The zero
// value is the point at infinity.
type Point[E any] struct {
	x, y E
	// finite is 0 for the point at infinity and 1 for affine points. It is
	// an int so it can take part in constant time selection.
	finite int
}

// Identity returns the point at infinity.
func Identity[E any]() Point[E] {
	return Point[E]{}
}

// IsIdentity reports whether pt is the point at infinity.
func (pt Point[E]) IsIdentity() bool {
	return pt.finite == 0
}

// Coords returns the affine coordinates of pt. ok is false for the point at
// infinity, in which case x and y are zero values.
func (pt Point[E]) Coords() (x, y E, ok bool) {
	return pt.x, pt.y, pt.finite == 1
}

// NewPoint returns the affine point (x, y) after checking that it satisfies
// the curve equation.
func (p *Params[E]) NewPoint(x, y E) (Point[E], error) {
	if !p.f.Equal(p.f.Square(y), p.rhs(x)) {
		return Point[E]{}, NewError(ErrPointNotOnCurve, "point is not on the curve")
	}
	return Point[E]{x: x, y: y, finite: 1}, nil
}

// affine builds a point without checking the curve equation. It is only used
// for results of the group law.
func affine[E any](x, y E) Point[E] {
	return Point[E]{x: x, y: y, finite: 1}
}

// IsOnCurve reports whether pt satisfies the curve equation. The point at
// infinity is on every curve. It is meant for re-validating points built
// from untrusted input.
func (p *Params[E]) IsOnCurve(pt Point[E]) bool {
	if pt.IsIdentity() {
		return true
	}
	return p.f.Equal(p.f.Square(pt.y), p.rhs(pt.x))
}

// Equal reports whether a and b are the same point.
func (p *Params[E]) Equal(a, b Point[E]) bool {
	if a.IsIdentity() || b.IsIdentity() {
		return a.IsIdentity() && b.IsIdentity()
	}
	return p.f.Equal(a.x, b.x) && p.f.Equal(a.y, b.y)
}

// Negate returns -pt.
func (p *Params[E]) Negate(pt Point[E]) Point[E] {
	if pt.IsIdentity() {
		return pt
	}
	return affine(pt.x, p.f.Neg(pt.y))
}

// Add returns a + b.
func (p *Params[E]) Add(a, b Point[E]) Point[E] {
	f := p.f

	// O + b = b, a + O = a
	if a.IsIdentity() {
		return b
	}
	if b.IsIdentity() {
		return a
	}

	if f.Equal(a.x, b.x) {
		// Vertical chord: b = -a.
		if f.IsZero(f.Add(a.y, b.y)) {
			return Identity[E]()
		}
		if f.Equal(a.y, b.y) {
			return p.Double(a)
		}
		panic("weierstrass: points with equal x and unrelated y (not on the curve)")
	}

	// λ = (y₂ - y₁) / (x₂ - x₁)
	inv, err := f.Inverse(f.Sub(b.x, a.x))
	if err != nil {
		panic("weierstrass: zero denominator in point addition")
	}
	lambda := f.Mul(f.Sub(b.y, a.y), inv)

	// x₃ = λ² - x₁ - x₂, y₃ = λ(x₁ - x₃) - y₁
	x3 := f.Sub(f.Sub(f.Square(lambda), a.x), b.x)
	y3 := f.Sub(f.Mul(lambda, f.Sub(a.x, x3)), a.y)
	return affine(x3, y3)
}

// Sub returns a - b.
func (p *Params[E]) Sub(a, b Point[E]) Point[E] {
	return p.Add(a, p.Negate(b))
}

// Double returns 2·pt.
func (p *Params[E]) Double(pt Point[E]) Point[E] {
	f := p.f
	if pt.IsIdentity() {
		return pt
	}
	// A point of order two has a vertical tangent.
	if f.IsZero(pt.y) {
		return Identity[E]()
	}

	// λ = (3x₁² + a) / 2y₁
	x2 := f.Square(pt.x)
	num := f.Add(f.Add(f.Add(x2, x2), x2), p.a)
	inv, err := f.Inverse(f.Add(pt.y, pt.y))
	if err != nil {
		panic("weierstrass: zero denominator in point doubling")
	}
	lambda := f.Mul(num, inv)

	// x₃ = λ² - 2x₁, y₃ = λ(x₁ - x₃) - y₁
	x3 := f.Sub(f.Square(lambda), f.Add(pt.x, pt.x))
	y3 := f.Sub(f.Mul(lambda, f.Sub(pt.x, x3)), pt.y)
	return affine(x3, y3)
}

// Select returns b when cond is 1 and a when cond is 0 without branching on
// cond. cond must be 0 or 1.
func (p *Params[E]) Select(a, b Point[E], cond int) Point[E] {
	return Point[E]{
		x:      p.f.Select(a.x, b.x, cond),
		y:      p.f.Select(a.y, b.y, cond),
		finite: subtle.ConstantTimeSelect(cond, b.finite, a.finite),
	}
}
