// Package keygen derives elliptic curve keypairs: a private scalar in
// [1, N-1] and the public point scalar·G.
//
// Private key material held in a Keypair should be wiped with Zeroize once it
// is no longer needed. Zeroize clears the words of the scalar; copies made by
// callers and temporaries inside the field backends are outside its reach.
//
// Sampling draws at most 128 candidates. A source that yields no scalar in
// [1, N-1] within that bound fails with weierstrass.ErrRandomnessFailure; for
// a working source on secp256k1 each draw is rejected with probability about
// 2^-128.
package keygen

import (
	crand "crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/smallyu/go-weierstrass/pkg/field"
	"github.com/smallyu/go-weierstrass/pkg/weierstrass"
)

// maxDraws bounds the rejection sampling loop. For secp256k1 a single draw is
// rejected with probability about 2^-128, so hitting the bound means the
// entropy source is broken.
const maxDraws = 128

// Keypair is a private scalar and the matching public point.
type Keypair[E any] struct {
	PrivateKey *big.Int
	PublicKey  weierstrass.Point[E]
}

// Encoded is the serialized form of a Keypair.
type Encoded struct {
	Curve        string
	PrivateKey   []byte
	Compressed   []byte
	Uncompressed []byte
	X, Y         *big.Int
}

// RandomScalar samples k uniformly from [1, N-1] by rejection: each draw
// reads ScalarSize bytes, clears the bits above the bit length of N and is
// discarded when it is 0 or not below N. A nil rand means crypto/rand.
func RandomScalar[E any](rand io.Reader, params *weierstrass.Params[E]) (*big.Int, error) {
	if rand == nil {
		rand = crand.Reader
	}
	n := params.Order()
	size := params.ScalarSize()
	excess := uint(size*8 - n.BitLen())

	buf := make([]byte, size)
	defer clear(buf)

	for i := 0; i < maxDraws; i++ {
		// 1. Draw a candidate from [0, 2^bitlen(N)).
		if _, err := io.ReadFull(rand, buf); err != nil {
			return nil, weierstrass.WrapError(weierstrass.ErrRandomnessFailure,
				"failed to read random bytes", err)
		}
		buf[0] &= 0xff >> excess

		// 2. Accept it only if it is a valid private key.
		k := new(big.Int).SetBytes(buf)
		if k.Sign() > 0 && k.Cmp(n) < 0 {
			return k, nil
		}
	}

	str := fmt.Sprintf("no scalar in [1, N-1] after %d draws", maxDraws)
	return nil, weierstrass.NewError(weierstrass.ErrRandomnessFailure, str)
}

// Generate samples a private key from rand and derives its public key.
func Generate[E any](rand io.Reader, params *weierstrass.Params[E]) (*Keypair[E], error) {
	k, err := RandomScalar(rand, params)
	if err != nil {
		return nil, err
	}
	return &Keypair[E]{
		PrivateKey: k,
		PublicKey:  params.ScalarBaseMult(k),
	}, nil
}

// Derive returns the keypair for a known private scalar k. It fails with
// weierstrass.ErrInvalidScalar unless 1 <= k <= N-1.
func Derive[E any](k *big.Int, params *weierstrass.Params[E]) (*Keypair[E], error) {
	if k == nil || k.Sign() <= 0 || k.Cmp(params.Order()) >= 0 {
		return nil, weierstrass.NewError(weierstrass.ErrInvalidScalar,
			"private key must be in [1, N-1]")
	}
	priv := new(big.Int).Set(k)
	return &Keypair[E]{
		PrivateKey: priv,
		PublicKey:  params.ScalarBaseMult(priv),
	}, nil
}

// DeriveBytes is Derive for a big-endian encoded private key of exactly
// ScalarSize bytes.
func DeriveBytes[E any](b []byte, params *weierstrass.Params[E]) (*Keypair[E], error) {
	if len(b) != params.ScalarSize() {
		str := fmt.Sprintf("malformed private key: %d bytes, want %d", len(b), params.ScalarSize())
		return nil, weierstrass.NewError(weierstrass.ErrInvalidEncoding, str)
	}
	return Derive(new(big.Int).SetBytes(b), params)
}

// Encode serializes kp under params. The public key of a Keypair is never the
// point at infinity because the private key is in [1, N-1].
func (kp *Keypair[E]) Encode(params *weierstrass.Params[E]) *Encoded {
	priv := make([]byte, params.ScalarSize())
	kp.PrivateKey.FillBytes(priv)

	x, y, _ := kp.PublicKey.Coords()
	f := params.Field()
	return &Encoded{
		Curve:        params.Name(),
		PrivateKey:   priv,
		Compressed:   params.Marshal(kp.PublicKey, true),
		Uncompressed: params.Marshal(kp.PublicKey, false),
		X:            field.ToBig(f, x),
		Y:            field.ToBig(f, y),
	}
}

// Zeroize overwrites the private scalar with zeros.
func (kp *Keypair[E]) Zeroize() {
	if kp.PrivateKey == nil {
		return
	}
	words := kp.PrivateKey.Bits()
	clear(words)
	kp.PrivateKey.SetInt64(0)
}

// Zeroize overwrites the private key bytes with zeros.
func (e *Encoded) Zeroize() {
	clear(e.PrivateKey)
}
