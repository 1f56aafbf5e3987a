// Package fp256k1 implements field.Field for the secp256k1 base field
// p = 2^256 - 2^32 - 977 using the constant time FieldVal type of the decred
// secp256k1 package.
package fp256k1

import (
	"crypto/subtle"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-weierstrass/pkg/field"
)

// ByteSize is the width of an encoded element.
const ByteSize = 32

var modulus, _ = new(big.Int).SetString("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)

// Element is a normalized field value. The zero value is 0.
type Element struct {
	v secp256k1.FieldVal
}

// Field is the secp256k1 base field. It is stateless.
type Field struct{}

var _ field.Field[Element] = Field{}

// New returns the secp256k1 base field.
func New() Field {
	return Field{}
}

func wrap(v *secp256k1.FieldVal) Element {
	var e Element
	e.v.Set(v.Normalize())
	return e
}

func (Field) Zero() Element { return Element{} }

func (Field) One() Element {
	var e Element
	e.v.SetInt(1)
	return e
}

func (Field) Add(a, b Element) Element {
	var r secp256k1.FieldVal
	return wrap(r.Add2(&a.v, &b.v))
}

func (Field) Sub(a, b Element) Element {
	var r secp256k1.FieldVal
	r.NegateVal(&b.v, 1).Add(&a.v)
	return wrap(&r)
}

func (Field) Neg(a Element) Element {
	var r secp256k1.FieldVal
	return wrap(r.NegateVal(&a.v, 1))
}

func (Field) Mul(a, b Element) Element {
	var r secp256k1.FieldVal
	return wrap(r.Mul2(&a.v, &b.v))
}

func (Field) Square(a Element) Element {
	var r secp256k1.FieldVal
	return wrap(r.SquareVal(&a.v))
}

func (Field) Inverse(a Element) (Element, error) {
	if a.v.IsZero() {
		return Element{}, field.ErrDivisionByZero
	}
	var r secp256k1.FieldVal
	r.Set(&a.v).Inverse()
	return wrap(&r), nil
}

func (Field) Sqrt(a Element) (Element, bool) {
	var r secp256k1.FieldVal
	if !r.SquareRootVal(&a.v) {
		return Element{}, false
	}
	return wrap(&r), true
}

func (Field) IsZero(a Element) bool {
	return a.v.IsZero()
}

func (Field) Equal(a, b Element) bool {
	return a.v.Equals(&b.v)
}

func (Field) IsOdd(a Element) bool {
	return a.v.IsOdd()
}

func (Field) Select(a, b Element, cond int) Element {
	out := a.v.Bytes()
	subtle.ConstantTimeCopy(cond, out[:], b.v.Bytes()[:])
	var e Element
	e.v.SetBytes(out)
	return e
}

func (Field) FromBytes(b []byte) (Element, error) {
	if len(b) != ByteSize {
		return Element{}, field.ErrInvalidLength
	}
	var e Element
	if overflow := e.v.SetByteSlice(b); overflow {
		return Element{}, field.ErrOutOfRange
	}
	return e, nil
}

func (Field) Bytes(a Element) []byte {
	b := a.v.Bytes()
	return b[:]
}

func (Field) ByteSize() int {
	return ByteSize
}

func (Field) Modulus() *big.Int {
	return new(big.Int).Set(modulus)
}

// FieldVal returns a copy of the underlying decred value, for interop with
// code built on that package.
func (e Element) FieldVal() secp256k1.FieldVal {
	return e.v
}
