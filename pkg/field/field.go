// Package field defines the finite field capability consumed by the curve
// arithmetic in this module.
//
// A Field[E] value describes one prime field and performs all arithmetic on
// its elements. Elements are immutable values: every operation returns a new
// element and leaves its operands untouched. The zero value of E must be the
// additive identity of the field.
package field

import (
	"encoding/hex"
	"errors"
	"math/big"
)

var (
	ErrDivisionByZero = errors.New("field: inverse of zero")
	ErrInvalidLength  = errors.New("field: invalid encoding length")
	ErrOutOfRange     = errors.New("field: value not less than modulus")
)

// Field is the arithmetic contract for a prime field with elements of type E.
type Field[E any] interface {
	// Zero returns the additive identity.
	Zero() E
	// One returns the multiplicative identity.
	One() E

	Add(a, b E) E
	Sub(a, b E) E
	Neg(a E) E
	Mul(a, b E) E
	Square(a E) E

	// Inverse returns a⁻¹. It fails with ErrDivisionByZero when a is zero.
	Inverse(a E) (E, error)

	// Sqrt returns a square root of a, and false when a is not a quadratic
	// residue.
	Sqrt(a E) (E, bool)

	IsZero(a E) bool
	Equal(a, b E) bool

	// IsOdd reports the parity of the canonical integer representative of a.
	IsOdd(a E) bool

	// Select returns b when cond is 1 and a when cond is 0, in constant time.
	// cond must be 0 or 1.
	Select(a, b E, cond int) E

	// FromBytes decodes a fixed-width big-endian encoding of ByteSize bytes.
	FromBytes(b []byte) (E, error)
	// Bytes returns the fixed-width big-endian encoding of a.
	Bytes(a E) []byte
	// ByteSize is the width of the encoding in bytes.
	ByteSize() int

	// Modulus returns a copy of the field characteristic.
	Modulus() *big.Int
}

// FromBig converts v, which must satisfy 0 <= v < modulus, into an element.
func FromBig[E any](f Field[E], v *big.Int) (E, error) {
	var zero E
	if v.Sign() < 0 || v.BitLen() > f.ByteSize()*8 {
		return zero, ErrOutOfRange
	}
	buf := make([]byte, f.ByteSize())
	v.FillBytes(buf)
	return f.FromBytes(buf)
}

// ToBig returns the canonical integer representative of a.
func ToBig[E any](f Field[E], a E) *big.Int {
	return new(big.Int).SetBytes(f.Bytes(a))
}

// MustFromHex converts a hex string to an element and panics on error. It is
// only meant for hard-coded constants so errors in source can be detected.
func MustFromHex[E any](f Field[E], s string) E {
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("field: invalid hex in source file: " + s)
	}
	e, err := FromBig(f, new(big.Int).SetBytes(b))
	if err != nil {
		panic("field: hex in source file overflows modulus: " + s)
	}
	return e
}

// FromUint64 returns the element congruent to v.
func FromUint64[E any](f Field[E], v uint64) E {
	n := new(big.Int).SetUint64(v)
	n.Mod(n, f.Modulus())
	e, err := FromBig(f, n)
	if err != nil {
		panic("field: reduced value out of range")
	}
	return e
}
