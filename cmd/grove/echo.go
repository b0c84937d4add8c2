package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"grove/internal/driver"
	"grove/internal/emit"
	"grove/internal/source"
)

var echoCmd = &cobra.Command{
	Use:   "echo [flags] file.gr",
	Short: "Re-emit a grove source file from its grouped token tree",
	Long: `Echo groups the file and then re-serializes the tree with original
positions, reproducing the source text byte for byte. Useful for verifying
position fidelity and as the basis for formatting tooling.`,
	Args: cobra.ExactArgs(1),
	RunE: runEcho,
}

func runEcho(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	result, err := driver.Group(filePath, resolveMaxDiagnostics(cmd, startDirFor(filePath)))
	if err != nil {
		return fmt.Errorf("grouping failed: %w", err)
	}

	printDiagnostics(cmd, result.Bag, result.FileSet, startDirFor(filePath))

	// one emitter over the whole stream keeps inter-element whitespace intact
	e := emit.New(source.Pos{Line: 1, Col: 1})
	for _, el := range result.Elems {
		if el.Sub != nil {
			for _, tok := range el.Sub.Tokens() {
				e.Token(tok)
			}
		} else {
			e.Token(el.Tok)
		}
	}
	_, err = fmt.Fprint(os.Stdout, e.String())
	return err
}
