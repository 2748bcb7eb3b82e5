package main

import (
	"fmt"

	"github.com/spf13/cobra"

	g60 "github.com/juliotpaez/G60"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [text]",
	Short: "Encode the argument or stdin into a G60 string",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args)
		if err != nil {
			return err
		}
		logger.Debug().
			Int("bytes", len(data)).
			Int("symbols", g60.EncodedLen(len(data))).
			Msg("encoding")
		fmt.Println(g60.Encode(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}
