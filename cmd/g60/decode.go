package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	g60 "github.com/juliotpaez/G60"
)

var flagDecodeText bool

var decodeCmd = &cobra.Command{
	Use:   "decode [string]",
	Short: "Decode a G60 string from the argument or stdin",
	Long: `Decode a G60 string and write the raw bytes to stdout.

With --text the decoded bytes must form valid UTF-8 and are printed
with a trailing newline.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		encoded, err := readEncoded(args)
		if err != nil {
			return err
		}
		logger.Debug().
			Int("symbols", len(encoded)).
			Int("bytes", g60.DecodedLen(len(encoded))).
			Msg("decoding")

		if flagDecodeText {
			text, err := g60.DecodeString(encoded)
			if err != nil {
				return err
			}
			fmt.Println(text)
			return nil
		}

		decoded, err := g60.Decode(encoded)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(decoded)
		return err
	},
}

func init() {
	decodeCmd.Flags().BoolVar(&flagDecodeText, "text", false, "require the decoded bytes to be UTF-8 text")
	rootCmd.AddCommand(decodeCmd)
}
