package trending

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"time"

	"github.com/stahnma/gh-trending/internal/cache"
	"github.com/stahnma/gh-trending/internal/format"
	ghub "github.com/stahnma/gh-trending/internal/github"
)

// Enricher turns raw search files into sorted output files with follower counts.
type Enricher struct {
	Client    ghub.Client
	Memo      *cache.Cache
	RawDir    string
	OutputDir string
	Pace      time.Duration
	Out       io.Writer
	Debug     bool

	// pause replaces the pacing delay in tests.
	pause func(ctx context.Context, d time.Duration)
}

// EnrichSummary counts the outcome of an enrich run.
type EnrichSummary struct {
	Saved   int
	Skipped int
	Failed  int
}

// Run processes every window independently. A missing raw file skips that window only.
func (e *Enricher) Run(ctx context.Context) EnrichSummary {
	var summary EnrichSummary
	for _, w := range Windows {
		outPath := filepath.Join(e.OutputDir, w.OutputFile)
		n, err := e.EnrichWindow(ctx, w)
		switch {
		case errors.Is(err, ErrRawMissing):
			format.Failure(e.Out, "%s not found", filepath.Join(e.RawDir, w.RawFile))
			summary.Skipped++
		case err != nil:
			format.Failure(e.Out, "Error processing %s: %v", w.RawFile, err)
			summary.Failed++
		default:
			format.Success(e.Out, "Saved %d repos to %s", n, outPath)
			summary.Saved++
		}
	}
	return summary
}

// EnrichWindow reads the window's raw file, enriches every item and overwrites the
// output file. It returns the number of records written.
func (e *Enricher) EnrichWindow(ctx context.Context, w Window) (int, error) {
	result, err := ReadRawFile(filepath.Join(e.RawDir, w.RawFile))
	if err != nil {
		return 0, err
	}

	fmt.Fprintf(e.Out, "Processing %d repos from %s...\n", len(result.Items), w.RawFile)
	records := e.EnrichItems(ctx, result.Items)
	SortByFollowers(records)

	if err := format.WriteJSONFile(filepath.Join(e.OutputDir, w.OutputFile), records); err != nil {
		return 0, fmt.Errorf("writing output file: %w", err)
	}
	return len(records), nil
}

// EnrichItems looks up each item in order and merges the result. Lookup failures
// degrade that record to the search values with zero followers.
func (e *Enricher) EnrichItems(ctx context.Context, items []ghub.RawItem) []EnrichedRecord {
	pause := e.pause
	if pause == nil {
		pause = sleep
	}

	records := make([]EnrichedRecord, 0, len(items))
	for i, item := range items {
		if e.Debug {
			log.Printf("[%d/%d] %s", i+1, len(items), item.FullName)
		}
		detail, err := ghub.GetDetail(ctx, e.Client, e.Memo, item.FullName, e.Debug)
		if err != nil {
			if e.Debug {
				log.Printf("Detail lookup failed for %s: %v", item.FullName, err)
			}
			detail = nil
		}
		records = append(records, Merge(detail, item))
		pause(ctx, e.Pace)
	}
	return records
}

func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
