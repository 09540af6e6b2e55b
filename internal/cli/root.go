// Package cli provides the sigma command line interface.
package cli

import (
	"context"
	"io"

	"github.com/MixinNetwork/sigma-go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"lukechampine.com/frand"
)

var ErrProofRejected = errors.New("proof rejected")

type globalFlags struct {
	configFile string
	verbose    bool
	quiet      bool
	seed       string
}

// app is the state shared by all subcommands once the root command has
// loaded the configuration.
type app struct {
	flags  globalFlags
	config *Config
	scheme sigma.Scheme
	logger zerolog.Logger
}

// rng returns frand unless --seed asks for a reproducible stream.
func (a *app) rng() (io.Reader, error) {
	if a.flags.seed == "" {
		return frand.Reader, nil
	}
	seed, err := decodeHex("seed", a.flags.seed)
	if err != nil {
		return nil, err
	}
	if len(seed) != 32 {
		return nil, errors.Errorf("--seed must be 32 bytes, got %d", len(seed))
	}
	var s [32]byte
	copy(s[:], seed)
	a.logger.Warn().Msg("using seeded randomness, proofs are reproducible")
	return sigma.NewSeededReader(s), nil
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "sigma",
		Short: "Prove and verify knowledge of discrete logarithms",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.logger = newLogger(cmd.ErrOrStderr(), a.flags.verbose, a.flags.quiet)

			v, err := newViper(a.flags.configFile)
			if err != nil {
				return err
			}
			for _, key := range []string{"protocol", "hash", "challenge_length", "transcript_label"} {
				if err := v.BindPFlag(key, cmd.Flags().Lookup(flagName(key))); err != nil {
					return errors.Wrap(err, "bind flags")
				}
			}

			a.config, err = loadConfig(v)
			if err != nil {
				return err
			}
			a.scheme, err = a.config.Scheme()
			if err != nil {
				return err
			}
			a.logger.Debug().
				Str("protocol", a.config.Protocol).
				Str("hash", a.config.Hash).
				Int("challenge_length", a.config.ChallengeLength).
				Msg("configured")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.flags.configFile, "config", "", "config file (yaml, json or toml)")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "debug logging")
	pf.BoolVarP(&a.flags.quiet, "quiet", "q", false, "only log warnings and errors")
	pf.StringVar(&a.flags.seed, "seed", "", "hex encoded 32 byte seed for reproducible randomness")
	pf.String(flagName("protocol"), "dlg-ed25519", "dl-ed25519, dlg-ed25519, dl-ristretto255 or dlg-ristretto255")
	pf.String(flagName("hash"), "sha256", "sha256, sha512, blake2b, blake2b-256, sha3-256, sha3-512 or merlin")
	pf.Int(flagName("challenge_length"), sigma.MaxChallengeLength, "challenge length in bytes")
	pf.String(flagName("transcript_label"), "sigma-go", "merlin transcript label")

	cmd.AddCommand(newKeygenCmd(a), newProveCmd(a), newVerifyCmd(a), newSimulateCmd(a))
	return cmd
}

func flagName(key string) string {
	switch key {
	case "challenge_length":
		return "challenge-length"
	case "transcript_label":
		return "transcript-label"
	}
	return key
}

func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.ExecuteContext(ctx)
}
