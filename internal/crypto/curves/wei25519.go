package curves

import (
	"math/big"
	"sync"

	"github.com/smallyu/go-weierstrass/internal/crypto/field/fp25519"
	"github.com/smallyu/go-weierstrass/pkg/field"
	"github.com/smallyu/go-weierstrass/pkg/weierstrass"
)

// Wei25519Name is the registry name of the short Weierstrass model of
// Curve25519.
const Wei25519Name = "wei25519"

// Wei25519Element is a field element modulo 2^255 - 19.
type Wei25519Element = fp25519.Element

// Montgomery form of Curve25519: v² = u³ + A·u² + u with base point u = 9.
const (
	montgomeryA = 486662
	montgomeryU = 9
)

// l = 2^252 + 27742317777372353535851937790883648493
const hexWei25519N = "1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed"

// Wei25519 returns y² = x³ + a·x + b over 2^255 - 19, birationally equivalent
// to Curve25519 via x = u + A/3. The parameters are computed from the
// Montgomery constants on first use:
//
//	a  = (3 - A²) / 3
//	b  = (2·A³ - 9·A) / 27
//	Gx = 9 + A/3
//
// Gy is the odd square root, which matches the v coordinate of RFC 7748.
// The cofactor is 8.
var Wei25519 = sync.OnceValue(func() *weierstrass.Params[Wei25519Element] {
	f := fp25519.New()
	p := f.Modulus()

	A := big.NewInt(montgomeryA)
	inv3 := new(big.Int).ModInverse(big.NewInt(3), p)
	inv27 := new(big.Int).ModInverse(big.NewInt(27), p)

	a := new(big.Int).Mul(A, A)
	a.Sub(big.NewInt(3), a)
	a.Mul(a, inv3).Mod(a, p)

	b := new(big.Int).Exp(A, big.NewInt(3), nil)
	b.Lsh(b, 1)
	b.Sub(b, new(big.Int).Mul(big.NewInt(9), A))
	b.Mul(b, inv27).Mod(b, p)

	gx := new(big.Int).Mul(A, inv3)
	gx.Add(gx, big.NewInt(montgomeryU)).Mod(gx, p)

	n, _ := new(big.Int).SetString(hexWei25519N, 16)

	// y² = x³ + a·x + b at Gx.
	x := mustElement(f, gx)
	ea, eb := mustElement(f, a), mustElement(f, b)
	rhs := f.Add(f.Mul(f.Square(x), x), f.Add(f.Mul(ea, x), eb))
	y, ok := f.Sqrt(rhs)
	if !ok {
		panic("wei25519: generator x has no square root")
	}
	if !f.IsOdd(y) {
		y = f.Neg(y)
	}

	return weierstrass.MustNewParams(weierstrass.Config[Wei25519Element]{
		Name:  Wei25519Name,
		Field: f,
		A:     ea,
		B:     eb,
		Gx:    x,
		Gy:    y,
		N:     n,
		H:     big.NewInt(8),
	})
})

func mustElement(f fp25519.Field, v *big.Int) Wei25519Element {
	e, err := field.FromBig[Wei25519Element](f, v)
	if err != nil {
		panic(err)
	}
	return e
}
