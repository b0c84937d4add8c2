package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"grove/internal/diagfmt"
	"grove/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.gr",
	Short: "Tokenize a grove source file",
	Long:  `Tokenize breaks down a grove source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.Tokenize(filePath, resolveMaxDiagnostics(cmd, startDirFor(filePath)))
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	printDiagnostics(cmd, result.Bag, result.FileSet, startDirFor(filePath))

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
