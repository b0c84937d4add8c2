package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"grove/internal/project"
)

func newTestRoot(t *testing.T) *cobra.Command {
	t.Helper()
	root := &cobra.Command{Use: "grove"}
	root.PersistentFlags().String("color", "auto", "")
	root.PersistentFlags().Bool("quiet", false, "")
	root.PersistentFlags().Int("max-diagnostics", 0, "")
	return root
}

func TestResolveMaxDiagnostics_FlagWins(t *testing.T) {
	root := newTestRoot(t)
	if err := root.PersistentFlags().Set("max-diagnostics", "7"); err != nil {
		t.Fatal(err)
	}
	if got := resolveMaxDiagnostics(root, t.TempDir()); got != 7 {
		t.Errorf("got %d, want 7", got)
	}
}

func TestResolveMaxDiagnostics_Manifest(t *testing.T) {
	dir := t.TempDir()
	manifest := "[diagnostics]\nmax = 12\n"
	if err := os.WriteFile(filepath.Join(dir, project.ManifestName), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}
	root := newTestRoot(t)
	if got := resolveMaxDiagnostics(root, dir); got != 12 {
		t.Errorf("got %d, want 12", got)
	}
}

func TestUseColor_ExplicitModes(t *testing.T) {
	for mode, want := range map[string]bool{"on": true, "off": false} {
		root := newTestRoot(t)
		if err := root.PersistentFlags().Set("color", mode); err != nil {
			t.Fatal(err)
		}
		if got := useColor(root, t.TempDir(), os.Stderr); got != want {
			t.Errorf("mode %q: got %v, want %v", mode, got, want)
		}
	}
}

func TestUseColor_ManifestOverridesAuto(t *testing.T) {
	dir := t.TempDir()
	manifest := "[diagnostics]\ncolor = \"on\"\n"
	if err := os.WriteFile(filepath.Join(dir, project.ManifestName), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}
	root := newTestRoot(t)
	if !useColor(root, dir, os.Stderr) {
		t.Error("manifest color=on should force coloring")
	}
}
