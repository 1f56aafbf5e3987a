// Package modp implements field.Field for an arbitrary odd prime modulus on
// top of math/big. It is the backend for user supplied curves and for small
// test curves. math/big is not constant time, so this backend is not suited
// to secret-dependent arithmetic on production curves.
package modp

import (
	"crypto/subtle"
	"errors"
	"math/big"

	"github.com/smallyu/go-weierstrass/pkg/field"
)

var (
	ErrNotPrime = errors.New("modp: modulus is not an odd prime")

	zero = new(big.Int)
	one  = big.NewInt(1)
	two  = big.NewInt(2)
)

// Element is a residue modulo the field prime. The zero value is 0.
type Element struct {
	v *big.Int
}

func (e Element) int() *big.Int {
	if e.v == nil {
		return zero
	}
	return e.v
}

// String returns the decimal representation of the residue.
func (e Element) String() string {
	return e.int().String()
}

// Field is the prime field Z/pZ.
type Field struct {
	p        *big.Int
	pMinus2  *big.Int
	byteSize int
}

var _ field.Field[Element] = (*Field)(nil)

// New returns the field of integers modulo p. p must be an odd prime.
func New(p *big.Int) (*Field, error) {
	if p == nil || p.Cmp(two) <= 0 || p.Bit(0) == 0 || !p.ProbablyPrime(20) {
		return nil, ErrNotPrime
	}
	return &Field{
		p:        new(big.Int).Set(p),
		pMinus2:  new(big.Int).Sub(p, two),
		byteSize: (p.BitLen() + 7) / 8,
	}, nil
}

// MustNew is like New but panics on error. It is intended for hard-coded
// moduli.
func MustNew(p *big.Int) *Field {
	f, err := New(p)
	if err != nil {
		panic(err)
	}
	return f
}

// Element returns the residue of v modulo p.
func (f *Field) Element(v *big.Int) Element {
	return Element{v: new(big.Int).Mod(v, f.p)}
}

// NewElement is a shorthand for Element(big.NewInt(v)).
func (f *Field) NewElement(v int64) Element {
	return f.Element(big.NewInt(v))
}

func (f *Field) reduce(v *big.Int) Element {
	return Element{v: v.Mod(v, f.p)}
}

func (f *Field) Zero() Element { return Element{v: new(big.Int)} }
func (f *Field) One() Element  { return Element{v: big.NewInt(1)} }

func (f *Field) Add(a, b Element) Element {
	return f.reduce(new(big.Int).Add(a.int(), b.int()))
}

func (f *Field) Sub(a, b Element) Element {
	return f.reduce(new(big.Int).Sub(a.int(), b.int()))
}

func (f *Field) Neg(a Element) Element {
	return f.reduce(new(big.Int).Neg(a.int()))
}

func (f *Field) Mul(a, b Element) Element {
	return f.reduce(new(big.Int).Mul(a.int(), b.int()))
}

func (f *Field) Square(a Element) Element {
	return f.Mul(a, a)
}

// Inverse uses Fermat's little theorem rather than the extended Euclidean
// algorithm of big.Int.ModInverse.
func (f *Field) Inverse(a Element) (Element, error) {
	if a.int().Sign() == 0 {
		return Element{}, field.ErrDivisionByZero
	}
	return Element{v: new(big.Int).Exp(a.int(), f.pMinus2, f.p)}, nil
}

func (f *Field) Sqrt(a Element) (Element, bool) {
	r := new(big.Int).ModSqrt(a.int(), f.p)
	if r == nil {
		return Element{}, false
	}
	return Element{v: r}, true
}

func (f *Field) IsZero(a Element) bool {
	return a.int().Sign() == 0
}

func (f *Field) Equal(a, b Element) bool {
	return a.int().Cmp(b.int()) == 0
}

func (f *Field) IsOdd(a Element) bool {
	return a.int().Bit(0) == 1
}

// Select copies the fixed-width encodings with subtle.ConstantTimeCopy. The
// conversion back through math/big is not itself constant time.
func (f *Field) Select(a, b Element, cond int) Element {
	out := f.Bytes(a)
	subtle.ConstantTimeCopy(cond, out, f.Bytes(b))
	return Element{v: new(big.Int).SetBytes(out)}
}

func (f *Field) FromBytes(b []byte) (Element, error) {
	if len(b) != f.byteSize {
		return Element{}, field.ErrInvalidLength
	}
	v := new(big.Int).SetBytes(b)
	if v.Cmp(f.p) >= 0 {
		return Element{}, field.ErrOutOfRange
	}
	return Element{v: v}, nil
}

func (f *Field) Bytes(a Element) []byte {
	out := make([]byte, f.byteSize)
	a.int().FillBytes(out)
	return out
}

func (f *Field) ByteSize() int {
	return f.byteSize
}

func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.p)
}

// IsOne reports whether a is the multiplicative identity.
func (f *Field) IsOne(a Element) bool {
	return a.int().Cmp(one) == 0
}
