package scanner

import (
	"context"
	"sync"
	"time"

	"github.com/avgate/avgate/pkg/types"
)

// Runner fans scans for many paths out over a bounded pool of goroutines.
// Each path gets its own independent Scan; the runner imposes no ordering
// between them and keeps no history.
type Runner struct {
	registry    *DefaultRegistry
	concurrency int
}

// NewRunner creates a runner resolving strategies from the given registry.
func NewRunner(registry *DefaultRegistry, concurrency int) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Runner{registry: registry, concurrency: concurrency}
}

// RunAll scans every path and returns one report per path, in input order.
func (r *Runner) RunAll(ctx context.Context, paths []string) []types.ScanReport {
	reports := make([]types.ScanReport, len(paths))

	sem := make(chan struct{}, r.concurrency)
	var wg sync.WaitGroup

	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()

			report := types.ScanReport{Path: path, StartedAt: time.Now()}

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				report.Error = ctx.Err().Error()
				report.CompletedAt = time.Now()
				reports[i] = report
				return
			}

			verdict, err := NewScan(path, r.registry).Result(ctx)
			if err != nil {
				report.Error = err.Error()
			} else {
				report.Verdict = &verdict
			}
			report.CompletedAt = time.Now()
			reports[i] = report
		}(i, path)
	}

	wg.Wait()
	return reports
}
