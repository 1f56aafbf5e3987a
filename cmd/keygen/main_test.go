package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPrivKey      = "1e99423a4ed27608a15a2616a2b0e9e52ced330ac530edcc32c8ffc6a526aedd"
	testCompressed   = "03f028892bad7ed57d2fb57bf33081d5cfcf6f9ed3d3d7f159c2e2fff579dc341a"
	testUncompressed = "04f028892bad7ed57d2fb57bf33081d5cfcf6f9ed3d3d7f159c2e2fff579dc341a" +
		"07cf33da18bd734c600b96a72bbc4749d5141c90ec8ac328ae52ddfe2e505bdb"
	testX = "108626704259373488493324494832963472198167093861790438979212875284973843395610"
	testY = "3532285151429480400098290360892322426461524297929807392099748929454186978267"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"keygen"}, args...))
	return out.String(), err
}

func TestDeriveText(t *testing.T) {
	out, err := run(t, "--privkey", testPrivKey)
	require.NoError(t, err)

	for _, want := range []string{"secp256k1", testPrivKey, testCompressed, testUncompressed, testX, testY} {
		assert.Contains(t, out, want)
	}
}

func TestDeriveJSON(t *testing.T) {
	out, err := run(t, "--format", "json", "--privkey", "0x"+testPrivKey)
	require.NoError(t, err)

	var got outputKey
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, outputKey{
		Curve:                 "secp256k1",
		PrivateKey:            testPrivKey,
		PublicKeyCompressed:   testCompressed,
		PublicKeyUncompressed: testUncompressed,
		X:                     testX,
		Y:                     testY,
	}, got)
}

func TestGenerate(t *testing.T) {
	for _, curve := range []string{"secp256k1", "wei25519"} {
		out, err := run(t, "--curve", curve, "--format", "json")
		require.NoError(t, err, curve)

		var got outputKey
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, curve, got.Curve)
		assert.Len(t, got.PrivateKey, 64)
		assert.Len(t, got.PublicKeyCompressed, 66)
		assert.Len(t, got.PublicKeyUncompressed, 130)
	}
}

func TestEnvironment(t *testing.T) {
	t.Setenv("KEYGEN_CURVE", "wei25519")
	t.Setenv("KEYGEN_FORMAT", "json")

	out, err := run(t)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{"))
	assert.Contains(t, out, `"curve": "wei25519"`)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown curve", []string{"--curve", "p521"}, "unknown curve"},
		{"unknown format", []string{"--format", "yaml"}, "unknown output format"},
		{"bad hex", []string{"--privkey", "zz"}, "could not decode private key"},
		{"zero key", []string{"--privkey", strings.Repeat("00", 32)}, "could not derive key"},
		{"short key", []string{"--privkey", "01"}, "could not derive key"},
		{"extra args", []string{"foo"}, "unexpected arguments"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, err := run(t, test.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.want)
			assert.NotContains(t, out, "Private key")
		})
	}
}
