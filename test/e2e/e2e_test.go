package e2e

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
	"testing"

	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/pkg/secp256k1"
)

// TestKeysInterop generates keypairs through the curve registry and uses them
// with an independent secp256k1 implementation for signing and ECDH.
func TestKeysInterop(t *testing.T) {
	curve, err := curves.Lookup(secp256k1.Name)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}

	// 1. Key Generation Phase
	alice, err := curve.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("Alice failed to generate key: %v", err)
	}
	bob, err := curve.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("Bob failed to generate key: %v", err)
	}

	// 2. Both public key encodings describe the same point.
	fromCompressed, err := secp256k1.DecodePoint(alice.Compressed)
	if err != nil {
		t.Fatalf("DecodePoint(compressed) failed: %v", err)
	}
	fromUncompressed, err := secp256k1.DecodePoint(alice.Uncompressed)
	if err != nil {
		t.Fatalf("DecodePoint(uncompressed) failed: %v", err)
	}
	if !secp256k1.Params().Equal(fromCompressed, fromUncompressed) {
		t.Fatal("compressed and uncompressed encodings disagree")
	}

	// 3. Signing Phase (Simulated)
	// The private key signs with the external implementation and the
	// signature verifies against our public key encoding.
	hash := sha256.Sum256([]byte("hello weierstrass"))
	priv := dcrsecp.PrivKeyFromBytes(alice.PrivateKey)
	sig := ecdsa.Sign(priv, hash[:])

	pub, err := dcrsecp.ParsePubKey(alice.Compressed)
	if err != nil {
		t.Fatalf("ParsePubKey failed: %v", err)
	}
	if !sig.Verify(hash[:], pub) {
		t.Fatal("signature did not verify against the generated public key")
	}

	// 4. ECDH Phase
	// Our scalar multiplication agrees with the external shared secret.
	bobPub, err := dcrsecp.ParsePubKey(bob.Uncompressed)
	if err != nil {
		t.Fatalf("ParsePubKey failed: %v", err)
	}
	want := dcrsecp.GenerateSharedSecret(priv, bobPub)

	bobPoint, err := secp256k1.DecodePoint(bob.Compressed)
	if err != nil {
		t.Fatalf("DecodePoint failed: %v", err)
	}
	k, err := secp256k1.DecodeScalar(alice.PrivateKey)
	if err != nil {
		t.Fatalf("DecodeScalar failed: %v", err)
	}
	x, _, ok := secp256k1.Params().ScalarMult(k, bobPoint).Coords()
	if !ok {
		t.Fatal("shared point is the identity")
	}
	got := secp256k1.Params().Field().Bytes(x)
	if !bytes.Equal(got, want) {
		t.Fatalf("shared secret mismatch: got %x, want %x", got, want)
	}

	// 5. The integer coordinates match the encoding.
	if !bytes.Equal(alice.X.FillBytes(make([]byte, 32)), alice.Compressed[1:]) {
		t.Fatal("x coordinate does not match the compressed encoding")
	}
	if !bytes.Equal(alice.Y.FillBytes(make([]byte, 32)), alice.Uncompressed[33:]) {
		t.Fatal("y coordinate does not match the uncompressed encoding")
	}
}
