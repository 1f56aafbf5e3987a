package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/smallyu/go-weierstrass/pkg/keygen"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type outputKey struct {
	Curve                 string `json:"curve"`
	PrivateKey            string `json:"privateKey"`
	PublicKeyCompressed   string `json:"publicKeyCompressed"`
	PublicKeyUncompressed string `json:"publicKeyUncompressed"`
	X                     string `json:"x"`
	Y                     string `json:"y"`
}

func newOutputKey(enc *keygen.Encoded) outputKey {
	return outputKey{
		Curve:                 enc.Curve,
		PrivateKey:            hex.EncodeToString(enc.PrivateKey),
		PublicKeyCompressed:   hex.EncodeToString(enc.Compressed),
		PublicKeyUncompressed: hex.EncodeToString(enc.Uncompressed),
		X:                     enc.X.String(),
		Y:                     enc.Y.String(),
	}
}

// writeKey prints enc in the given format. Nothing is written on error.
func writeKey(w io.Writer, enc *keygen.Encoded, format string) error {
	out := newOutputKey(enc)
	switch format {
	case formatJSON:
		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case formatText:
		_, err := fmt.Fprintf(w, "Curve:                     %s\n"+
			"Private key:               %s\n"+
			"Public key (compressed):   %s\n"+
			"Public key (uncompressed): %s\n"+
			"x:                         %s\n"+
			"y:                         %s\n",
			out.Curve, out.PrivateKey, out.PublicKeyCompressed, out.PublicKeyUncompressed, out.X, out.Y)
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
