package secp256k1

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-weierstrass/pkg/weierstrass"
)

const (
	// PubKeyBytesLenCompressed is the length of a compressed public key.
	PubKeyBytesLenCompressed = 33

	// PubKeyBytesLenUncompressed is the length of an uncompressed public key.
	PubKeyBytesLenUncompressed = 65

	// ScalarBytesLen is the length of a serialized scalar.
	ScalarBytesLen = 32
)

// EncodePoint serializes pt as 0x04 || X || Y (65 bytes) or, when compressed
// is set, as 0x02/0x03 || X (33 bytes) with the prefix giving the parity of
// Y. Encoding the point at infinity panics.
func EncodePoint(pt Point, compressed bool) []byte {
	return params().Marshal(pt, compressed)
}

// DecodePoint parses a 33-byte compressed or 65-byte uncompressed public key.
// Every failure matches weierstrass.ErrInvalidEncoding: a bad length or
// prefix, a coordinate that is not below p, an x coordinate with no y on the
// curve, or uncompressed coordinates off the curve. The last case also
// matches weierstrass.ErrPointNotOnCurve.
func DecodePoint(b []byte) (Point, error) {
	return params().Unmarshal(b)
}

// EncodeScalar returns s as 32 big-endian bytes. s must be in [0, 2^256).
func EncodeScalar(s *big.Int) []byte {
	if s.Sign() < 0 || s.BitLen() > 8*ScalarBytesLen {
		panic("secp256k1: scalar does not fit in 32 bytes")
	}
	out := make([]byte, ScalarBytesLen)
	return s.FillBytes(out)
}

// DecodeScalar parses 32 big-endian bytes. Any 256-bit value is accepted; use
// keygen.Derive or PublicKey to enforce the private key range.
func DecodeScalar(b []byte) (*big.Int, error) {
	if len(b) != ScalarBytesLen {
		str := fmt.Sprintf("malformed scalar: %d bytes, want %d", len(b), ScalarBytesLen)
		return nil, weierstrass.NewError(weierstrass.ErrInvalidEncoding, str)
	}
	return new(big.Int).SetBytes(b), nil
}
