package main

import (
	"fmt"

	"github.com/spf13/cobra"

	g60 "github.com/juliotpaez/G60"
)

var canonicalizeCmd = &cobra.Command{
	Use:   "canonicalize [string]",
	Short: "Rewrite a well-formed G60 string to its canonical form",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		encoded, err := readEncoded(args)
		if err != nil {
			return err
		}

		canonical, err := g60.Canonicalize(encoded)
		if err != nil {
			return err
		}
		if canonical == encoded {
			logger.Debug().Msg("already canonical")
		} else {
			logger.Debug().Msg("rewrote final group padding")
		}
		fmt.Println(canonical)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(canonicalizeCmd)
}
