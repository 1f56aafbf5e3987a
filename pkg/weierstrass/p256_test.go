package weierstrass

import (
	"crypto/elliptic"
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-weierstrass/pkg/field"
	"github.com/smallyu/go-weierstrass/pkg/field/modp"
)

// p256 builds NIST P-256 on the generic modp backend from the parameters
// published by crypto/elliptic, which then serves as a reference.
func p256(t testing.TB) (*modp.Field, *Params[modp.Element]) {
	t.Helper()
	ref := elliptic.P256().Params()
	f := modp.MustNew(ref.P)
	params, err := NewParams(Config[modp.Element]{
		Name:  ref.Name,
		Field: f,
		A:     f.NewElement(-3),
		B:     f.Element(ref.B),
		Gx:    f.Element(ref.Gx),
		Gy:    f.Element(ref.Gy),
		N:     ref.N,
		H:     big.NewInt(1),
	})
	require.NoError(t, err)
	return f, params
}

func TestP256MatchesStdlib(t *testing.T) {
	f, params := p256(t)
	curve := elliptic.P256()

	for i := 0; i < 8; i++ {
		k, err := rand.Int(rand.Reader, curve.Params().N)
		require.NoError(t, err)

		wantX, wantY := curve.ScalarBaseMult(k.Bytes())
		got := params.ScalarBaseMult(k)
		x, y, ok := got.Coords()
		require.True(t, ok)
		if field.ToBig[modp.Element](f, x).Cmp(wantX) != 0 || field.ToBig[modp.Element](f, y).Cmp(wantY) != 0 {
			t.Fatalf("k = %x: got %s, want (%x, %x)", k, spew.Sdump(got), wantX, wantY)
		}

		require.Equal(t, elliptic.Marshal(curve, wantX, wantY), params.Marshal(got, false))
		require.Equal(t, elliptic.MarshalCompressed(curve, wantX, wantY), params.Marshal(got, true))

		back, err := params.Unmarshal(elliptic.MarshalCompressed(curve, wantX, wantY))
		require.NoError(t, err)
		require.True(t, params.Equal(got, back))
	}

	require.True(t, params.ScalarBaseMult(params.Order()).IsIdentity())
}
