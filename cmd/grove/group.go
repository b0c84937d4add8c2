package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"grove/internal/diagfmt"
	"grove/internal/driver"
)

var groupCmd = &cobra.Command{
	Use:   "group [flags] file.gr",
	Short: "Group the token stream of a grove source file",
	Long:  `Group matches delimiters in the token stream and prints the resulting tree of tokens and delimiter groups`,
	Args:  cobra.ExactArgs(1),
	RunE:  runGroup,
}

func init() {
	groupCmd.Flags().String("format", "tree", "output format (tree|canonical)")
}

func runGroup(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.Group(filePath, resolveMaxDiagnostics(cmd, startDirFor(filePath)))
	if err != nil {
		return fmt.Errorf("grouping failed: %w", err)
	}

	printDiagnostics(cmd, result.Bag, result.FileSet, startDirFor(filePath))

	switch format {
	case "tree":
		return diagfmt.FormatTree(os.Stdout, result.Elems)
	case "canonical":
		for _, e := range result.Elems {
			if e.Sub != nil {
				fmt.Println(e.Sub.Canonical())
			} else {
				fmt.Println(e.Tok.Text)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
