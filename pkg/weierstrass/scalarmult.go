package weierstrass

import (
	"math/big"
)

// ScalarMult returns k·pt using a left-to-right double-and-add ladder.
//
// Every iteration doubles the accumulator, always computes acc + pt, and
// keeps the sum or the doubled value with Select, so the sequence of group
// operations does not depend on the bits of k. The number of iterations is
// max(N.BitLen(), k.BitLen()). The underlying math/big bit access and the
// branches inside Add are not constant time; the backends in this module
// provide constant time field arithmetic and selection only.
//
// k must not be negative. pt must be on the curve; the caller is responsible
// for validating untrusted points with IsOnCurve first.
func (p *Params[E]) ScalarMult(k *big.Int, pt Point[E]) Point[E] {
	if k.Sign() < 0 {
		panic("weierstrass: negative scalar")
	}

	bits := p.n.BitLen()
	if k.BitLen() > bits {
		bits = k.BitLen()
	}

	acc := Identity[E]()
	for i := bits - 1; i >= 0; i-- {
		acc = p.Double(acc)
		sum := p.Add(acc, pt)
		acc = p.Select(acc, sum, int(k.Bit(i)))
	}
	return acc
}

// ScalarBaseMult returns k·G.
func (p *Params[E]) ScalarBaseMult(k *big.Int) Point[E] {
	return p.ScalarMult(k, p.g)
}
