// Command g60 exposes the G60 codec on the command line: encode,
// decode, verify, canonicalize and random generation.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	flagVerbose bool
	flagQuiet   bool
)

var logger zerolog.Logger

var rootCmd = &cobra.Command{
	Use:   "g60",
	Short: "G60 binary-to-text codec",
	Long: `g60 encodes arbitrary bytes into the 60-symbol G60 alphabet and back.

The alphabet is [0-9A-HJ-NP-Za-z]: digits and letters without I and O,
which read too much like 1, l and 0. Every 8 bytes become 11 symbols,
and every byte sequence has exactly one canonical encoding.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if flagVerbose {
			level = zerolog.DebugLevel
		}
		if flagQuiet {
			level = zerolog.ErrorLevel
		}
		logger = logger.Level(level)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "only report errors")
}

func main() {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
