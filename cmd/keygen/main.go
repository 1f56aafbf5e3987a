// Command keygen generates an elliptic curve keypair and prints the private
// key, the SEC1 public key encodings and the affine coordinates.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/pkg/keygen"
	"github.com/smallyu/go-weierstrass/pkg/secp256k1"
)

var log = logrus.New()

// newApp builds the command. Flags are created per app because urfave/cli
// stores environment overrides in the flag values.
func newApp() *cli.App {
	var (
		curveFlag = &cli.StringFlag{
			Name:    "curve",
			Usage:   "curve to generate the key on (" + strings.Join(curves.Names(), ", ") + ")",
			Value:   secp256k1.Name,
			EnvVars: []string{"KEYGEN_CURVE"},
		}
		formatFlag = &cli.StringFlag{
			Name:    "format",
			Usage:   "output format (text, json)",
			Value:   formatText,
			EnvVars: []string{"KEYGEN_FORMAT"},
		}
		privkeyFlag = &cli.StringFlag{
			Name:  "privkey",
			Usage: "hex encoded private key to derive the public key from instead of sampling one",
		}
		verboseFlag = &cli.BoolFlag{
			Name:  "verbose",
			Usage: "log diagnostics to stderr",
		}
	)
	return &cli.App{
		Name:  "keygen",
		Usage: "generate an elliptic curve keypair",
		Description: `
Samples a private key uniformly from [1, n-1] using the operating system's
entropy source and prints it with the matching public key. If --privkey is
given the public key is derived from it instead.`,
		Flags:           []cli.Flag{curveFlag, formatFlag, privkeyFlag, verboseFlag},
		HideHelpCommand: true,
		Before: func(ctx *cli.Context) error {
			if ctx.Bool(verboseFlag.Name) {
				log.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
		Action: generate,
	}
}

func generate(ctx *cli.Context) error {
	if ctx.NArg() != 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(ctx.Args().Slice(), " "))
	}
	format := ctx.String("format")
	if format != formatText && format != formatJSON {
		return fmt.Errorf("unknown output format %q", format)
	}
	curve, err := curves.Lookup(ctx.String("curve"))
	if err != nil {
		return err
	}
	logger := log.WithField("curve", curve.Name())

	var enc *keygen.Encoded
	if ctx.IsSet("privkey") {
		priv, err := hex.DecodeString(strings.TrimPrefix(ctx.String("privkey"), "0x"))
		if err != nil {
			return fmt.Errorf("could not decode private key: %v", err)
		}
		logger.Debug("Deriving public key from supplied private key")
		enc, err = curve.DeriveKey(priv)
		clear(priv)
		if err != nil {
			return fmt.Errorf("could not derive key: %w", err)
		}
	} else {
		logger.Debug("Sampling private key")
		enc, err = curve.GenerateKey(rand.Reader)
		if err != nil {
			return fmt.Errorf("could not generate key: %w", err)
		}
	}
	defer enc.Zeroize()

	logger.WithField("pubkey", hex.EncodeToString(enc.Compressed)).Debug("Keypair ready")
	return writeKey(ctx.App.Writer, enc, format)
}

func main() {
	log.SetOutput(os.Stderr)
	if err := newApp().Run(os.Args); err != nil {
		log.WithError(err).Error("Key generation failed")
		os.Exit(1)
	}
}
