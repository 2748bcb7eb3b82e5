package main

import (
	"errors"

	"github.com/spf13/cobra"

	g60 "github.com/juliotpaez/G60"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [string]",
	Short: "Check that a string is valid canonical G60",
	Long: `Check that a string is valid canonical G60.

Exits 0 when the string verifies. On failure the diagnostic names the
error kind: an invalid byte with its index, an impossible length, or
nonzero padding bits in the final group.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		encoded, err := readEncoded(args)
		if err != nil {
			return err
		}

		if err := g60.Verify(encoded); err != nil {
			var byteErr *g60.InvalidByteError
			var lenErr *g60.InvalidLengthError
			switch {
			case errors.As(err, &byteErr):
				logger.Error().
					Int("index", byteErr.Index).
					Str("byte", string(byteErr.Byte)).
					Msg("invalid byte")
			case errors.As(err, &lenErr):
				logger.Error().
					Int("length", lenErr.Length).
					Msg("impossible length")
			case errors.Is(err, g60.ErrNotCanonical):
				logger.Error().Msg("well-formed but not canonical")
			}
			return err
		}

		logger.Info().Int("symbols", len(encoded)).Msg("valid canonical G60")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
