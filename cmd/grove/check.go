package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"grove/internal/driver"
	"grove/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [dir]",
	Short: "Lex and group every source file under a directory",
	Long: `Check runs the front end over all *.gr files under the given directory
(default: the project source dir, or .) and reports diagnostics. Files whose
content is unchanged since a clean run are skipped via the result cache.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Int("workers", 0, "worker pool size (0 = GOMAXPROCS)")
	checkCmd.Flags().Bool("no-cache", false, "ignore and do not update the result cache")
	checkCmd.Flags().Bool("no-ui", false, "disable the progress UI even on a terminal")
}

func runCheck(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	workers, _ := cmd.Flags().GetInt("workers")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	noUI, _ := cmd.Flags().GetBool("no-ui")
	maxDiagnostics := resolveMaxDiagnostics(cmd, dir)

	var cache *driver.DiskCache
	if !noCache {
		// cache failures only cost speed
		cache, _ = driver.OpenDiskCache("grove")
	}

	files, err := driver.ListSourceFiles(dir)
	if err != nil {
		return fmt.Errorf("failed to list sources: %w", err)
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "no %s files under %s\n", driver.SourceExt, dir)
		return nil
	}

	ctx := cmd.Context()
	var results []driver.GroupDirResult

	if !noUI && isTerminal(os.Stdout) {
		results, err = runCheckWithUI(ctx, dir, files, maxDiagnostics, workers, cache)
	} else {
		results, err = driver.GroupDir(ctx, dir, maxDiagnostics, workers, cache, nil)
	}
	if err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		if res.Bag != nil && res.Bag.HasErrors() {
			failed++
		}
		if res.Bag != nil && res.Bag.Len() > 0 {
			printDiagnostics(cmd, res.Bag, res.FileSet, dir)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files have errors", failed, len(results))
	}
	if quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet"); !quiet {
		fmt.Printf("checked %d files, no errors\n", len(results))
	}
	return nil
}

type checkOutcome struct {
	results []driver.GroupDirResult
	err     error
}

func runCheckWithUI(ctx context.Context, dir string, files []string, maxDiagnostics, workers int, cache *driver.DiskCache) ([]driver.GroupDirResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		res, err := driver.GroupDir(ctx, dir, maxDiagnostics, workers, cache, events)
		outcomeCh <- checkOutcome{results: res, err: err}
	}()

	model := ui.NewProgressModel("checking "+dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
