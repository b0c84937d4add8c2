package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"grove/internal/diag"
	"grove/internal/diagfmt"
	"grove/internal/project"
	"grove/internal/source"
)

// resolveMaxDiagnostics picks the diagnostics limit: an explicit flag wins,
// then the project manifest, then the built-in default.
func resolveMaxDiagnostics(cmd *cobra.Command, startDir string) int {
	n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err == nil && n > 0 {
		return n
	}
	if m, ok, err := project.Discover(startDir); err == nil && ok {
		return m.Config.Diagnostics.Max
	}
	return project.DefaultMaxDiagnostics
}

// useColor decides terminal coloring from the --color flag, the manifest,
// and whether the stream is a terminal.
func useColor(cmd *cobra.Command, startDir string, f *os.File) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	if mode == "auto" || mode == "" {
		if m, ok, err := project.Discover(startDir); err == nil && ok {
			mode = m.Config.Diagnostics.Color
		}
	}
	switch mode {
	case "on":
		return true
	case "off":
		return false
	}
	return isTerminal(f)
}

// printDiagnostics renders a bag to stderr in the standard pretty shape.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet, startDir string) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	if quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet"); quiet && !bag.HasErrors() {
		return
	}
	bag.Sort()
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:     useColor(cmd, startDir, os.Stderr),
		ShowNotes: true,
	})
}

func startDirFor(path string) string {
	return filepath.Dir(path)
}
