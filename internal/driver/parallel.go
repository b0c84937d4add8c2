package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"grove/internal/diag"
	"grove/internal/group"
	"grove/internal/source"
)

// SourceExt is the extension of grove source files.
const SourceExt = ".gr"

// GroupDirResult is the outcome for one file of a directory run.
type GroupDirResult struct {
	Path    string
	FileSet *source.FileSet
	FileID  source.FileID
	Elems   []group.Elem
	Bag     *diag.Bag
	Cached  bool
}

// ListSourceFiles returns the sorted list of *.gr files under dir.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// GroupDir lexes and groups every *.gr file under dir with a bounded worker
// pool. Progress is streamed to events (which may be nil) and the channel is
// closed when the run settles. Files whose content hash is already known
// clean in the cache are skipped; a nil cache disables caching. Per-file
// diagnostics go to the result bags, not the returned error: only IO and
// context failures abort the run.
func GroupDir(ctx context.Context, dir string, maxDiagnostics, workers int, cache *DiskCache, events chan<- Event) ([]GroupDirResult, error) {
	if events != nil {
		defer close(events)
	}

	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	emit := func(ev Event) {
		if events != nil {
			select {
			case events <- ev:
			case <-ctx.Done():
			}
		}
	}
	for _, path := range files {
		emit(Event{Path: path, Stage: StageQueued})
	}

	results := make([]GroupDirResult, len(files))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			fs := source.NewFileSet()
			fileID, err := fs.Load(path)
			if err != nil {
				emit(Event{Path: path, Stage: StageFailed, Err: err})
				return err
			}
			file := fs.Get(fileID)

			if payload, ok := cache.Get(file.Hash); ok && payload.Clean {
				emit(Event{Path: path, Stage: StageDone, Cached: true})
				mu.Lock()
				results[i] = GroupDirResult{Path: path, FileSet: fs, FileID: fileID, Bag: diag.NewBag(maxDiagnostics), Cached: true}
				mu.Unlock()
				return nil
			}

			emit(Event{Path: path, Stage: StageLex})
			tr := tokenizeFile(fs, fileID, maxDiagnostics)

			emit(Event{Path: path, Stage: StageGroup})
			gr := groupTokens(tr)

			cache.Put(&Payload{
				Schema:    payloadSchema,
				Path:      path,
				Hash:      file.Hash,
				Clean:     !gr.Bag.HasErrors(),
				DiagCount: gr.Bag.Len(),
			})

			emit(Event{Path: path, Stage: StageDone, Diags: gr.Bag.Len()})
			mu.Lock()
			results[i] = GroupDirResult{Path: path, FileSet: fs, FileID: fileID, Elems: gr.Elems, Bag: gr.Bag}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
