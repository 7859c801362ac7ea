package contracts

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:embed mockdata/contracts.json mockdata/contract-details.json
var mockFS embed.FS

const (
	embeddedListFile   = "mockdata/contracts.json"
	embeddedDetailFile = "mockdata/contract-details.json"
)

// Repository is the read-only contract data source. Both collections are
// fetched whole; detail lookup by id happens on the consumer side.
type Repository interface {
	List(ctx context.Context) ([]Contract, error)
	Details(ctx context.Context) ([]Detail, error)
}

// FileRepository serves the mock collections from JSON files on disk,
// falling back to the embedded copies when no path is configured.
type FileRepository struct {
	listPath   string
	detailPath string
	log        *zap.Logger
}

// NewFileRepository builds a repository over the given file paths.
// Empty paths select the embedded mock data.
func NewFileRepository(listPath, detailPath string, log *zap.Logger) *FileRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &FileRepository{
		listPath:   listPath,
		detailPath: detailPath,
		log:        log.Named("repository"),
	}
}

// List returns the full summary collection.
func (r *FileRepository) List(ctx context.Context) ([]Contract, error) {
	raw, err := r.read(ctx, r.listPath, embeddedListFile)
	if err != nil {
		return nil, fmt.Errorf("read contracts: %w", err)
	}
	var out []Contract
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse contracts: %w", err)
	}
	r.log.Debug("loaded contract list", zap.Int("count", len(out)))
	return out, nil
}

// Details returns the full detail collection.
func (r *FileRepository) Details(ctx context.Context) ([]Detail, error) {
	raw, err := r.read(ctx, r.detailPath, embeddedDetailFile)
	if err != nil {
		return nil, fmt.Errorf("read contract details: %w", err)
	}
	var out []Detail
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse contract details: %w", err)
	}
	r.log.Debug("loaded contract details", zap.Int("count", len(out)))
	return out, nil
}

// Preload fetches both collections concurrently and reports their sizes.
// Used by the validate command to exercise a full load up front.
func (r *FileRepository) Preload(ctx context.Context) (listCount, detailCount int, err error) {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := r.List(ctx)
		if err != nil {
			return err
		}
		listCount = len(list)
		return nil
	})
	g.Go(func() error {
		details, err := r.Details(ctx)
		if err != nil {
			return err
		}
		detailCount = len(details)
		return nil
	})
	if err := g.Wait(); err != nil {
		return 0, 0, err
	}
	return listCount, detailCount, nil
}

// Watch notifies on every write to either backing file until ctx is done.
// It is a no-op when the repository is serving embedded data only.
func (r *FileRepository) Watch(ctx context.Context, notify func()) error {
	if r.listPath == "" && r.detailPath == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	watched := map[string]bool{}
	for _, p := range []string{r.listPath, r.detailPath} {
		if p == "" {
			continue
		}
		// Watch the directory; editors replace files rather than write in place.
		dir := filepath.Dir(p)
		if watched[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		watched[dir] = true
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if ev.Name != r.listPath && ev.Name != r.detailPath {
					continue
				}
				r.log.Debug("mock data changed", zap.String("file", ev.Name))
				notify()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				r.log.Warn("watcher error", zap.Error(err))
			}
		}
	}()
	return nil
}

func (r *FileRepository) read(ctx context.Context, path, embedded string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if path != "" {
		return os.ReadFile(path)
	}
	return mockFS.ReadFile(embedded)
}
