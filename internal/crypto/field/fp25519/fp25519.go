// Package fp25519 implements field.Field for GF(2^255 - 19) on top of the
// constant time field.Element from filippo.io/edwards25519.
//
// The edwards25519 encoding is little-endian; this package converts to and
// from the big-endian encoding required by the field contract.
package fp25519

import (
	"bytes"
	"math/big"

	ed "filippo.io/edwards25519/field"

	"github.com/smallyu/go-weierstrass/pkg/field"
)

// ByteSize is the width of an encoded element.
const ByteSize = 32

var modulus = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))

// Element is a value of GF(2^255 - 19). The zero value is 0.
type Element struct {
	v ed.Element
}

// Field is GF(2^255 - 19). It is stateless.
type Field struct{}

var _ field.Field[Element] = Field{}

// New returns GF(2^255 - 19).
func New() Field {
	return Field{}
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[len(b)-1-i] = b[i]
	}
	return out
}

func (Field) Zero() Element { return Element{} }

func (Field) One() Element {
	var e Element
	e.v.One()
	return e
}

func (Field) Add(a, b Element) Element {
	var e Element
	e.v.Add(&a.v, &b.v)
	return e
}

func (Field) Sub(a, b Element) Element {
	var e Element
	e.v.Subtract(&a.v, &b.v)
	return e
}

func (Field) Neg(a Element) Element {
	var e Element
	e.v.Negate(&a.v)
	return e
}

func (Field) Mul(a, b Element) Element {
	var e Element
	e.v.Multiply(&a.v, &b.v)
	return e
}

func (Field) Square(a Element) Element {
	var e Element
	e.v.Square(&a.v)
	return e
}

func (f Field) Inverse(a Element) (Element, error) {
	if f.IsZero(a) {
		return Element{}, field.ErrDivisionByZero
	}
	var e Element
	e.v.Invert(&a.v)
	return e, nil
}

// Sqrt returns the root whose canonical encoding is even.
func (Field) Sqrt(a Element) (Element, bool) {
	one := new(ed.Element).One()
	var e Element
	if _, wasSquare := e.v.SqrtRatio(&a.v, one); wasSquare == 0 {
		return Element{}, false
	}
	return e, true
}

func (Field) IsZero(a Element) bool {
	var zero ed.Element
	return a.v.Equal(&zero) == 1
}

func (Field) Equal(a, b Element) bool {
	return a.v.Equal(&b.v) == 1
}

func (Field) IsOdd(a Element) bool {
	return a.v.IsNegative() == 1
}

func (Field) Select(a, b Element, cond int) Element {
	var e Element
	e.v.Select(&b.v, &a.v, cond)
	return e
}

func (Field) FromBytes(b []byte) (Element, error) {
	if len(b) != ByteSize {
		return Element{}, field.ErrInvalidLength
	}
	le := reverse(b)
	var e Element
	if _, err := e.v.SetBytes(le); err != nil {
		return Element{}, err
	}
	// SetBytes ignores the top bit and accepts non-canonical values, so a
	// round trip is the canonicality check.
	if !bytes.Equal(e.v.Bytes(), le) {
		return Element{}, field.ErrOutOfRange
	}
	return e, nil
}

func (Field) Bytes(a Element) []byte {
	return reverse(a.v.Bytes())
}

func (Field) ByteSize() int {
	return ByteSize
}

func (Field) Modulus() *big.Int {
	return new(big.Int).Set(modulus)
}
