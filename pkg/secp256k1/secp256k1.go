// Package secp256k1 instantiates the generic Weierstrass engine with the
// secp256k1 domain parameters and provides the SEC1 point and scalar
// encodings used by Bitcoin tooling.
//
// See https://www.secg.org/sec2-v2.pdf, section 2.4.1.
package secp256k1

import (
	"io"
	"math/big"
	"sync"

	"github.com/smallyu/go-weierstrass/internal/crypto/field/fp256k1"
	"github.com/smallyu/go-weierstrass/pkg/field"
	"github.com/smallyu/go-weierstrass/pkg/keygen"
	"github.com/smallyu/go-weierstrass/pkg/weierstrass"
)

// Name is the curve name used by the parameter set.
const Name = "secp256k1"

// Element is a secp256k1 base field element.
type Element = fp256k1.Element

// Point is a point on secp256k1.
type Point = weierstrass.Point[Element]

// Keypair is a secp256k1 private scalar and its public point.
type Keypair = keygen.Keypair[Element]

// curve equation y² = x³ + 7
const (
	hexB  = "07"
	hexGx = "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	hexGy = "483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
	hexN  = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
)

var params = sync.OnceValue(func() *weierstrass.Params[Element] {
	f := fp256k1.New()
	n, _ := new(big.Int).SetString(hexN, 16)
	return weierstrass.MustNewParams(weierstrass.Config[Element]{
		Name:  Name,
		Field: f,
		A:     f.Zero(),
		B:     field.MustFromHex[Element](f, hexB),
		Gx:    field.MustFromHex[Element](f, hexGx),
		Gy:    field.MustFromHex[Element](f, hexGy),
		N:     n,
		H:     big.NewInt(1),
	})
})

// Params returns the secp256k1 parameter set. It is built once and shared.
func Params() *weierstrass.Params[Element] {
	return params()
}

// Generator returns the base point G.
func Generator() Point {
	return params().Generator()
}

// Order returns a copy of the group order n.
func Order() *big.Int {
	return params().Order()
}

// PublicKey returns k·G. It fails with weierstrass.ErrInvalidScalar unless
// 1 <= k <= n-1.
func PublicKey(k *big.Int) (Point, error) {
	kp, err := keygen.Derive(k, params())
	if err != nil {
		return Point{}, err
	}
	return kp.PublicKey, nil
}

// GenerateKeypair samples a private key from rand and derives its public key.
func GenerateKeypair(rand io.Reader) (*Keypair, error) {
	return keygen.Generate(rand, params())
}
