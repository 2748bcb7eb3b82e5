package main

import (
	"fmt"

	"github.com/spf13/cobra"

	g60 "github.com/juliotpaez/G60"
)

var (
	flagRandomBytes    int
	flagRandomLength   int
	flagRandomInsecure bool
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Generate a random canonical G60 string",
	Long: `Generate a random canonical G60 string.

--bytes picks the number of random source bytes; --length targets an
encoded length instead (impossible lengths are shortened by one).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("bytes") && cmd.Flags().Changed("length") {
			return fmt.Errorf("--bytes and --length are mutually exclusive")
		}

		var out string
		switch {
		case cmd.Flags().Changed("length"):
			if flagRandomInsecure {
				out = g60.RandomInsecure(flagRandomLength)
			} else {
				out = g60.Random(flagRandomLength)
			}
		default:
			if flagRandomInsecure {
				out = g60.RandomBytesInsecure(flagRandomBytes)
			} else {
				out = g60.RandomBytes(flagRandomBytes)
			}
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	randomCmd.Flags().IntVar(&flagRandomBytes, "bytes", 16, "number of random source bytes to encode")
	randomCmd.Flags().IntVar(&flagRandomLength, "length", 0, "target encoded length in symbols")
	randomCmd.Flags().BoolVar(&flagRandomInsecure, "insecure", false, "use the faster non-cryptographic generator")
	rootCmd.AddCommand(randomCmd)
}
