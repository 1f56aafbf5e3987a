// Package weierstrass implements the group law of elliptic curves in short
// Weierstrass form y² = x³ + a·x + b over any prime field that satisfies the
// field.Field contract.
//
// Points are affine values with a separate point-at-infinity state. They
// carry no curve reference: every operation is a method on the *Params that
// describes the curve, and all points passed to it must belong to that curve.
// Params and Points are immutable and may be shared between goroutines.
package weierstrass

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-weierstrass/pkg/field"
)

var three = big.NewInt(3)

// Config holds the raw domain parameters of a curve.
type Config[E any] struct {
	Name   string         // Human readable curve name (e.g. "secp256k1")
	Field  field.Field[E] // The base field
	A, B   E              // Curve coefficients
	Gx, Gy E              // Generator coordinates
	N      *big.Int       // Order of the generator
	H      *big.Int       // Cofactor
}

// Params is a validated curve parameter set.
type Params[E any] struct {
	name string
	f    field.Field[E]
	a, b E
	g    Point[E]
	n, h *big.Int
}

// NewParams validates cfg and returns the corresponding parameter set. It
// checks that the field characteristic is greater than 3, that the curve is
// non-singular (4a³ + 27b² ≠ 0), that the generator lies on the curve and
// that N and H are positive.
//
// NewParams does not verify that N is the order of the generator. Callers
// defining their own curves are responsible for that; the built-in profiles
// use published, verified orders.
func NewParams[E any](cfg Config[E]) (*Params[E], error) {
	f := cfg.Field
	if f == nil {
		return nil, NewError(ErrInvalidCurve, "curve has no field")
	}
	if f.Modulus().Cmp(three) <= 0 {
		return nil, NewError(ErrInvalidCurve, "field characteristic must be greater than 3")
	}
	if cfg.N == nil || cfg.N.Sign() <= 0 {
		return nil, NewError(ErrInvalidCurve, "order must be positive")
	}
	if cfg.H == nil || cfg.H.Sign() <= 0 {
		return nil, NewError(ErrInvalidCurve, "cofactor must be positive")
	}

	// 4a³ + 27b²
	a3 := f.Mul(f.Square(cfg.A), cfg.A)
	b2 := f.Square(cfg.B)
	disc := f.Add(f.Mul(field.FromUint64(f, 4), a3), f.Mul(field.FromUint64(f, 27), b2))
	if f.IsZero(disc) {
		return nil, NewError(ErrInvalidCurve, "curve is singular")
	}

	p := &Params[E]{
		name: cfg.Name,
		f:    f,
		a:    cfg.A,
		b:    cfg.B,
		n:    new(big.Int).Set(cfg.N),
		h:    new(big.Int).Set(cfg.H),
	}
	g, err := p.NewPoint(cfg.Gx, cfg.Gy)
	if err != nil {
		return nil, NewError(ErrInvalidCurve, "generator is not on the curve")
	}
	p.g = g
	return p, nil
}

// MustNewParams is like NewParams but panics on error. It is intended for
// hard-coded curves.
func MustNewParams[E any](cfg Config[E]) *Params[E] {
	p, err := NewParams(cfg)
	if err != nil {
		panic(fmt.Sprintf("weierstrass: invalid hard-coded curve %q: %v", cfg.Name, err))
	}
	return p
}

// Name returns the curve name.
func (p *Params[E]) Name() string { return p.name }

// Field returns the base field.
func (p *Params[E]) Field() field.Field[E] { return p.f }

// A returns the coefficient a.
func (p *Params[E]) A() E { return p.a }

// B returns the coefficient b.
func (p *Params[E]) B() E { return p.b }

// Generator returns the base point G.
func (p *Params[E]) Generator() Point[E] { return p.g }

// Order returns a copy of the generator order N.
func (p *Params[E]) Order() *big.Int { return new(big.Int).Set(p.n) }

// Cofactor returns a copy of the cofactor H.
func (p *Params[E]) Cofactor() *big.Int { return new(big.Int).Set(p.h) }

// ByteSize returns the width of one encoded coordinate.
func (p *Params[E]) ByteSize() int { return p.f.ByteSize() }

// ScalarSize returns the width of an encoded scalar modulo N.
func (p *Params[E]) ScalarSize() int { return (p.n.BitLen() + 7) / 8 }

// rhs evaluates x³ + a·x + b.
func (p *Params[E]) rhs(x E) E {
	f := p.f
	return f.Add(f.Mul(f.Add(f.Square(x), p.a), x), p.b)
}
