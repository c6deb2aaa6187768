package scanner

import (
	"context"

	"github.com/avgate/avgate/pkg/types"
)

// Strategy is the capability every scanning backend implements: map a file
// path to a verdict, or fail. Implementations carry their own configuration
// (tool location, timeouts) but hold no per-path state, so one strategy value
// can serve any number of scans concurrently.
type Strategy interface {
	Scan(ctx context.Context, path string) (types.Verdict, error)
}

// StrategyFunc adapts a plain function to the Strategy interface.
type StrategyFunc func(ctx context.Context, path string) (types.Verdict, error)

func (f StrategyFunc) Scan(ctx context.Context, path string) (types.Verdict, error) {
	return f(ctx, path)
}
