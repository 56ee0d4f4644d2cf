// Package stripper orchestrates comment removal over text, files and directory trees.
package stripper

import (
	"context"
	"os"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/seanhalberthal/decomment/internal/config"
	"github.com/seanhalberthal/decomment/internal/filter"
	"github.com/seanhalberthal/decomment/internal/source"
	"github.com/seanhalberthal/decomment/internal/types"
)

// Stripper applies the comment filter according to a configuration.
type Stripper struct {
	cfg    *config.Config
	filter *filter.Filter
}

// New creates a new stripper. A nil config uses the defaults.
func New(cfg *config.Config, opts ...filter.Option) *Stripper {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Stripper{
		cfg:    cfg,
		filter: filter.New(opts...),
	}
}

// Config returns the configuration in use.
func (s *Stripper) Config() *config.Config {
	return s.cfg
}

// Options configures a strip run.
type Options struct {
	Path      string
	Recursive bool
	// Write rewrites changed files in place.
	Write bool
	// IncludeOutput returns the filtered content with each file result.
	IncludeOutput bool
}

// StripText removes comments from a block of text.
func (s *Stripper) StripText(text string) types.TextResult {
	out := s.filter.RemoveComments(text)
	return types.TextResult{
		Text:         out,
		BytesIn:      len(text),
		BytesOut:     len(out),
		BytesRemoved: len(text) - len(out),
	}
}

// Strip removes comments from a file, or from every source file in a directory.
func (s *Stripper) Strip(ctx context.Context, opts Options) (*types.StripResult, error) {
	paths, err := s.collect(opts)
	if err != nil {
		return nil, err
	}

	files := make([]types.FileResult, len(paths))

	workers := s.cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			files[i] = s.stripFile(path, opts)
			return nil // Per-file failures are recorded in the result
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	return &types.StripResult{
		Path:    opts.Path,
		Summary: summarise(files),
		Files:   files,
	}, nil
}

// collect resolves the files a run will process.
func (s *Stripper) collect(opts Options) ([]string, error) {
	info, err := os.Stat(opts.Path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{opts.Path}, nil
	}

	return source.Find(opts.Path, source.FindOptions{
		Extensions:  s.cfg.Extensions,
		ExcludeDirs: s.cfg.ExcludeDirs,
		Recursive:   opts.Recursive || s.cfg.Recursive,
	})
}

// stripFile filters one file and optionally writes it back.
func (s *Stripper) stripFile(path string, opts Options) types.FileResult {
	result := types.FileResult{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	// #nosec G304 -- path comes from the caller or the directory walk
	data, err := os.ReadFile(path)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	text := s.StripText(string(data))
	result.BytesIn = text.BytesIn
	result.BytesOut = text.BytesOut
	result.BytesRemoved = text.BytesRemoved
	result.Changed = text.Text != string(data)

	if opts.IncludeOutput {
		result.Output = text.Text
	}

	if opts.Write && result.Changed {
		if err := os.WriteFile(path, []byte(text.Text), info.Mode().Perm()); err != nil {
			result.Error = err.Error()
			return result
		}
		result.Written = true
	}

	return result
}

// summarise totals the per-file results.
func summarise(files []types.FileResult) types.StripSummary {
	summary := types.StripSummary{FilesScanned: len(files)}
	for _, f := range files {
		if f.Error != "" {
			summary.Errors++
			continue
		}
		if f.Changed {
			summary.FilesChanged++
		}
		summary.BytesRemoved += f.BytesRemoved
	}
	return summary
}
