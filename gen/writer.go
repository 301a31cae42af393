package gen

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

// writer emits rendered files to the target directory in parallel.
type writer struct {
	target  string
	workers int
}

func newWriter(cfg *Config) *writer {
	return &writer{target: cfg.Target, workers: cfg.Workers}
}

// fileTask is a single file to render and write.
type fileTask struct {
	name string // output file name, relative to the target directory
	typ  string // type the file belongs to, for error reporting
	file *jen.File
}

func (w *writer) writeAll(ctx context.Context, tasks []fileTask) error {
	if err := os.MkdirAll(w.target, 0o755); err != nil {
		return fmt.Errorf("datamodel/gen: create target directory: %w", err)
	}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)
	for _, task := range tasks {
		task := task
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return w.write(task)
			}
		})
	}
	return eg.Wait()
}

func (w *writer) write(task fileTask) error {
	var buf bytes.Buffer
	if err := task.file.Render(&buf); err != nil {
		return NewGenerationError(task.typ, task.name, "render", err)
	}
	path := filepath.Join(w.target, task.name)
	// goimports pass: prunes unused imports and normalizes formatting.
	formatted, err := imports.Process(path, buf.Bytes(), nil)
	if err != nil {
		return NewGenerationError(task.typ, task.name, "format", err)
	}
	if err := os.WriteFile(path, formatted, 0o644); err != nil {
		return NewGenerationError(task.typ, task.name, "write", err)
	}
	return nil
}
