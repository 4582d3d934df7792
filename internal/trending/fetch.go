package trending

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/stahnma/gh-trending/internal/format"
	ghub "github.com/stahnma/gh-trending/internal/github"
)

// Fetcher runs one search per window and stores each raw response.
type Fetcher struct {
	Client ghub.Client
	RawDir string
	Out    io.Writer
	Now    func() time.Time
}

// FetchSummary counts the outcome of a fetch run.
type FetchSummary struct {
	Saved  int
	Failed int
}

// Run queries every window in order. A failed query is reported and the next one
// is attempted; nothing is retried.
func (f *Fetcher) Run(ctx context.Context) FetchSummary {
	now := time.Now()
	if f.Now != nil {
		now = f.Now()
	}

	fmt.Fprintln(f.Out, "Fetching trending repositories...")
	var summary FetchSummary
	for _, w := range Windows {
		path := filepath.Join(f.RawDir, w.RawFile)
		n, err := f.FetchWindow(ctx, w, now)
		if err != nil {
			format.Failure(f.Out, "Error fetching %s: %v", path, err)
			summary.Failed++
			continue
		}
		format.Success(f.Out, "Saved %d repos to %s", n, path)
		summary.Saved++
	}
	return summary
}

// FetchWindow runs the window's query and overwrites its raw file. It returns the
// number of items received.
func (f *Fetcher) FetchWindow(ctx context.Context, w Window, now time.Time) (int, error) {
	result, raw, err := ghub.SearchRepos(ctx, f.Client, w.Query(now))
	if err != nil {
		return 0, err
	}
	if err := format.WriteIndentedFile(filepath.Join(f.RawDir, w.RawFile), raw); err != nil {
		return 0, fmt.Errorf("writing raw file: %w", err)
	}
	return len(result.Items), nil
}
