package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"relex/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "relex",
	Short: "Ruby primitive-token translator",
	Long:  `relex translates raw tokenizer event streams into the token taxonomy a parser consumes`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
