package modp

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-weierstrass/pkg/field"
)

func TestNew(t *testing.T) {
	_, err := New(big.NewInt(223))
	require.NoError(t, err)

	for _, p := range []int64{0, 1, 2, 221, 224} {
		_, err := New(big.NewInt(p))
		assert.ErrorIs(t, err, ErrNotPrime, "p = %d", p)
	}
	_, err = New(nil)
	assert.ErrorIs(t, err, ErrNotPrime)
}

func TestArithmetic(t *testing.T) {
	f := MustNew(big.NewInt(223))

	a := f.NewElement(192)
	b := f.NewElement(105)

	assert.Equal(t, "74", f.Add(a, b).String())
	assert.Equal(t, "87", f.Sub(a, b).String())
	assert.Equal(t, "136", f.Sub(b, a).String())
	assert.Equal(t, "31", f.Neg(a).String())
	assert.Equal(t, "90", f.Mul(a, b).String()) // 20160 mod 223
	assert.True(t, f.Equal(f.Square(a), f.Mul(a, a)))

	// Zero value behaves as the additive identity.
	var z Element
	assert.True(t, f.IsZero(z))
	assert.True(t, f.Equal(f.Add(z, a), a))
	assert.True(t, f.Equal(z, f.Zero()))
	assert.True(t, f.IsOne(f.One()))
}

func TestInverse(t *testing.T) {
	f := MustNew(big.NewInt(223))

	for i := int64(1); i < 223; i++ {
		a := f.NewElement(i)
		inv, err := f.Inverse(a)
		require.NoError(t, err)
		if !f.IsOne(f.Mul(a, inv)) {
			t.Fatalf("%d * %s != 1", i, inv)
		}
	}

	_, err := f.Inverse(f.Zero())
	assert.ErrorIs(t, err, field.ErrDivisionByZero)
	_, err = f.Inverse(Element{})
	assert.ErrorIs(t, err, field.ErrDivisionByZero)
}

func TestSqrt(t *testing.T) {
	f := MustNew(big.NewInt(223))

	squares := 0
	for i := int64(0); i < 223; i++ {
		a := f.NewElement(i)
		r, ok := f.Sqrt(a)
		if !ok {
			continue
		}
		squares++
		if !f.Equal(f.Square(r), a) {
			t.Fatalf("sqrt(%d) = %s is not a root", i, r)
		}
	}
	// 0 plus (p-1)/2 non-zero quadratic residues.
	assert.Equal(t, 112, squares)
}

func TestSelect(t *testing.T) {
	f := MustNew(big.NewInt(223))
	a := f.NewElement(17)
	b := f.NewElement(56)

	assert.True(t, f.Equal(f.Select(a, b, 0), a))
	assert.True(t, f.Equal(f.Select(a, b, 1), b))
	assert.True(t, f.IsZero(f.Select(Element{}, b, 0)))
}

func TestBytes(t *testing.T) {
	p, _ := new(big.Int).SetString("ffffffff00000001000000000000000000000000ffffffffffffffffffffffff", 16)
	f := MustNew(p)
	assert.Equal(t, 32, f.ByteSize())

	x := f.NewElement(0x0102)
	enc := f.Bytes(x)
	require.Len(t, enc, 32)
	assert.Equal(t, byte(0x01), enc[30])
	assert.Equal(t, byte(0x02), enc[31])

	back, err := f.FromBytes(enc)
	require.NoError(t, err)
	assert.True(t, f.Equal(back, x))
	assert.False(t, f.IsOdd(x))

	_, err = f.FromBytes(enc[1:])
	assert.ErrorIs(t, err, field.ErrInvalidLength)

	_, err = f.FromBytes(p.Bytes())
	assert.ErrorIs(t, err, field.ErrOutOfRange)

	// Modulus returns a copy.
	f.Modulus().SetInt64(0)
	assert.Equal(t, 0, f.Modulus().Cmp(p))
}

func TestHelpers(t *testing.T) {
	f := MustNew(big.NewInt(223))

	e := field.MustFromHex[Element](f, "c0")
	assert.Equal(t, "192", e.String())
	assert.Equal(t, int64(192), field.ToBig[Element](f, e).Int64())

	assert.Equal(t, "7", field.FromUint64[Element](f, 230).String())

	_, err := field.FromBig[Element](f, big.NewInt(223))
	assert.ErrorIs(t, err, field.ErrOutOfRange)
	_, err = field.FromBig[Element](f, big.NewInt(-1))
	assert.ErrorIs(t, err, field.ErrOutOfRange)

	assert.Panics(t, func() { field.MustFromHex[Element](f, "zz") })
	assert.Panics(t, func() { field.MustFromHex[Element](f, "ff") })
}
