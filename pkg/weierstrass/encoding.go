package weierstrass

import (
	"fmt"
)

// SEC1 point encoding prefixes.
const (
	PrefixCompressedEven byte = 0x02
	PrefixCompressedOdd  byte = 0x03
	PrefixUncompressed   byte = 0x04
)

// CompressedSize returns the length of a compressed encoding on this curve.
func (p *Params[E]) CompressedSize() int {
	return 1 + p.f.ByteSize()
}

// UncompressedSize returns the length of an uncompressed encoding on this
// curve.
func (p *Params[E]) UncompressedSize() int {
	return 1 + 2*p.f.ByteSize()
}

// Marshal encodes pt per SEC1 §2.3.3: 0x04 || X || Y, or 0x02/0x03 || X when
// compressed, where the prefix carries the parity of Y. The point at
// infinity has no encoding; passing it is a programming error and panics.
func (p *Params[E]) Marshal(pt Point[E], compressed bool) []byte {
	if pt.IsIdentity() {
		panic("weierstrass: cannot encode the point at infinity")
	}

	if compressed {
		out := make([]byte, 0, p.CompressedSize())
		prefix := PrefixCompressedEven
		if p.f.IsOdd(pt.y) {
			prefix = PrefixCompressedOdd
		}
		out = append(out, prefix)
		return append(out, p.f.Bytes(pt.x)...)
	}

	out := make([]byte, 0, p.UncompressedSize())
	out = append(out, PrefixUncompressed)
	out = append(out, p.f.Bytes(pt.x)...)
	return append(out, p.f.Bytes(pt.y)...)
}

// Unmarshal decodes a compressed or uncompressed SEC1 encoding. Hybrid
// encodings (0x06, 0x07) are rejected. Every failure matches
// ErrInvalidEncoding; uncompressed coordinates that do not satisfy the curve
// equation additionally match ErrPointNotOnCurve.
func (p *Params[E]) Unmarshal(data []byte) (Point[E], error) {
	size := p.f.ByteSize()
	if len(data) == 0 {
		return Point[E]{}, NewError(ErrInvalidEncoding, "empty point encoding")
	}

	switch prefix := data[0]; prefix {
	case PrefixUncompressed:
		if len(data) != p.UncompressedSize() {
			str := fmt.Sprintf("malformed uncompressed point: %d bytes, want %d",
				len(data), p.UncompressedSize())
			return Point[E]{}, NewError(ErrInvalidEncoding, str)
		}
		x, err := p.f.FromBytes(data[1 : 1+size])
		if err != nil {
			return Point[E]{}, WrapError(ErrInvalidEncoding, "invalid x coordinate", err)
		}
		y, err := p.f.FromBytes(data[1+size:])
		if err != nil {
			return Point[E]{}, WrapError(ErrInvalidEncoding, "invalid y coordinate", err)
		}
		pt, err := p.NewPoint(x, y)
		if err != nil {
			return Point[E]{}, WrapError(ErrInvalidEncoding, "invalid uncompressed point", err)
		}
		return pt, nil

	case PrefixCompressedEven, PrefixCompressedOdd:
		if len(data) != p.CompressedSize() {
			str := fmt.Sprintf("malformed compressed point: %d bytes, want %d",
				len(data), p.CompressedSize())
			return Point[E]{}, NewError(ErrInvalidEncoding, str)
		}
		x, err := p.f.FromBytes(data[1:])
		if err != nil {
			return Point[E]{}, WrapError(ErrInvalidEncoding, "invalid x coordinate", err)
		}
		y, err := p.DecompressY(x, prefix == PrefixCompressedOdd)
		if err != nil {
			return Point[E]{}, err
		}
		return affine(x, y), nil

	default:
		str := fmt.Sprintf("unknown point encoding prefix 0x%02x", prefix)
		return Point[E]{}, NewError(ErrInvalidEncoding, str)
	}
}

// DecompressY solves the curve equation for y given x and returns the root
// with the requested parity.
func (p *Params[E]) DecompressY(x E, odd bool) (E, error) {
	f := p.f
	y, ok := f.Sqrt(p.rhs(x))
	if !ok {
		var zero E
		return zero, NewError(ErrInvalidEncoding, "x coordinate is not on the curve")
	}
	if f.IsOdd(y) != odd {
		y = f.Neg(y)
	}
	// y = 0 has no odd root.
	if f.IsOdd(y) != odd {
		var zero E
		return zero, NewError(ErrInvalidEncoding, "no y coordinate with the requested parity")
	}
	return y, nil
}
