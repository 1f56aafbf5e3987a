// Package curves is a registry of the named curves this module ships. It
// hides the field element type of each curve behind the Curve interface so
// callers can pick a curve by name at run time.
package curves

import (
	"fmt"
	"io"
	"math/big"
	"sort"
	"strings"

	"github.com/smallyu/go-weierstrass/pkg/keygen"
	"github.com/smallyu/go-weierstrass/pkg/secp256k1"
	"github.com/smallyu/go-weierstrass/pkg/weierstrass"
)

// Curve defines the key generation operations of a named curve.
type Curve interface {
	// Name returns the registry name of the curve.
	Name() string

	// Order returns the order n of the base point.
	Order() *big.Int

	// GenerateKey samples a keypair from rand and returns it encoded.
	GenerateKey(rand io.Reader) (*keygen.Encoded, error)

	// DeriveKey returns the encoded keypair for a big-endian private key.
	DeriveKey(priv []byte) (*keygen.Encoded, error)
}

// erased adapts a Params instance to Curve.
type erased[E any] struct {
	params func() *weierstrass.Params[E]
}

func (c erased[E]) Name() string { return c.params().Name() }

func (c erased[E]) Order() *big.Int { return c.params().Order() }

func (c erased[E]) GenerateKey(rand io.Reader) (*keygen.Encoded, error) {
	params := c.params()
	kp, err := keygen.Generate(rand, params)
	if err != nil {
		return nil, err
	}
	defer kp.Zeroize()
	return kp.Encode(params), nil
}

func (c erased[E]) DeriveKey(priv []byte) (*keygen.Encoded, error) {
	params := c.params()
	kp, err := keygen.DeriveBytes(priv, params)
	if err != nil {
		return nil, err
	}
	defer kp.Zeroize()
	return kp.Encode(params), nil
}

var registry = map[string]Curve{
	secp256k1.Name: erased[secp256k1.Element]{params: secp256k1.Params},
	Wei25519Name:   erased[Wei25519Element]{params: Wei25519},
}

// Lookup returns the curve registered under name, ignoring case.
func Lookup(name string) (Curve, error) {
	c, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown curve %q (supported: %s)", name, strings.Join(Names(), ", "))
	}
	return c, nil
}

// Names returns the registered curve names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
