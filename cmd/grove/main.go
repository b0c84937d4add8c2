package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"grove/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "grove",
	Short: "Grove language front end",
	Long:  `Grove lexes source files and groups the token stream into delimiter trees`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(groupCmd)
	rootCmd.AddCommand(echoCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics to show (0 uses the project default)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
