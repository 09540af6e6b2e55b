package cli

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type keyPair struct {
	Protocol  string `json:"protocol"`
	Witness   string `json:"witness"`
	Statement string `json:"statement"`
}

func newKeygenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a witness and the matching statement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rng, err := a.rng()
			if err != nil {
				return err
			}
			witness, statement, err := a.scheme.Generate(rng)
			if err != nil {
				return errors.Wrap(err, "generate")
			}
			a.logger.Info().Str("protocol", a.scheme.Name()).Str("statement", encodeHex(statement)).Msg("generated")
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(keyPair{
				Protocol:  a.scheme.Name(),
				Witness:   encodeHex(witness),
				Statement: encodeHex(statement),
			})
		},
	}
}

func newProveCmd(a *app) *cobra.Command {
	var witnessHex, statementHex string
	var deterministic bool

	cmd := &cobra.Command{
		Use:   "prove",
		Short: "Prove knowledge of the witness for a statement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			witness, err := decodeHex("witness", witnessHex)
			if err != nil {
				return err
			}
			statement, err := decodeHex("statement", statementHex)
			if err != nil {
				return err
			}
			var proof []byte
			if deterministic {
				proof, err = a.scheme.Prove(witness, statement, nil)
			} else {
				rng, rerr := a.rng()
				if rerr != nil {
					return rerr
				}
				proof, err = a.scheme.Prove(witness, statement, rng)
			}
			if err != nil {
				return errors.Wrap(err, "prove")
			}
			a.logger.Info().Str("protocol", a.scheme.Name()).Bool("deterministic", deterministic).Int("size", len(proof)).Msg("proved")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), encodeHex(proof))
			return err
		},
	}
	cmd.Flags().StringVar(&witnessHex, "witness", "", "hex encoded witness")
	cmd.Flags().StringVar(&statementHex, "statement", "", "hex encoded statement")
	cmd.Flags().BoolVar(&deterministic, "deterministic", false, "derive the announce secret from the witness and statement")
	return cmd
}

func newVerifyCmd(a *app) *cobra.Command {
	var statementHex, proofHex string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a proof against a statement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			statement, err := decodeHex("statement", statementHex)
			if err != nil {
				return err
			}
			proof, err := decodeHex("proof", proofHex)
			if err != nil {
				return err
			}
			valid, err := a.scheme.Verify(statement, proof)
			if err != nil {
				return errors.Wrap(err, "statement")
			}
			a.logger.Info().Str("protocol", a.scheme.Name()).Bool("valid", valid).Msg("verified")
			if !valid {
				fmt.Fprintln(cmd.OutOrStdout(), "invalid")
				return ErrProofRejected
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return err
		},
	}
	cmd.Flags().StringVar(&statementHex, "statement", "", "hex encoded statement")
	cmd.Flags().StringVar(&proofHex, "proof", "", "hex encoded proof")
	return cmd
}

func newSimulateCmd(a *app) *cobra.Command {
	var statementHex string

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate a transcript (challenge, announcement, response) without the witness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			statement, err := decodeHex("statement", statementHex)
			if err != nil {
				return err
			}
			rng, err := a.rng()
			if err != nil {
				return err
			}
			transcript, err := a.scheme.Simulate(statement, rng)
			if err != nil {
				return errors.Wrap(err, "simulate")
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), encodeHex(transcript))
			return err
		},
	}
	cmd.Flags().StringVar(&statementHex, "statement", "", "hex encoded statement")
	return cmd
}
