package scanner

import (
	"context"
	"sync"

	"github.com/avgate/avgate/pkg/types"
)

// Scan binds one file path to a strategy and caches the outcome of the first
// run. A Scan asks its strategy at most once: later calls return the cached
// verdict or error, even when the instance is shared across goroutines. The
// cache is per instance — two Scans for the same path each scan on their own.
type Scan struct {
	path     string
	registry *DefaultRegistry
	explicit Strategy

	mu      sync.Mutex
	done    bool
	verdict types.Verdict
	err     error
}

// ScanOption configures a Scan at construction.
type ScanOption func(*Scan)

// WithStrategy pins the scan to an explicit strategy. The registry's default
// is never consulted, so later SetDefault calls cannot affect this scan.
func WithStrategy(s Strategy) ScanOption {
	return func(sc *Scan) { sc.explicit = s }
}

// NewScan creates a scan for path. The strategy is resolved lazily on the
// first Result call: the explicit one when supplied, otherwise whatever reg
// holds as the default at that moment.
func NewScan(path string, reg *DefaultRegistry, opts ...ScanOption) *Scan {
	sc := &Scan{path: path, registry: reg}
	for _, opt := range opts {
		opt(sc)
	}
	return sc
}

// Path returns the bound file path.
func (s *Scan) Path() string { return s.path }

// Result resolves the scan on first call and returns the cached outcome
// afterwards. The lock is held across the strategy invocation so concurrent
// callers cannot trigger a duplicate scan; they block and get the same
// result. Errors are the strategy's own, propagated untranslated — an error
// never means the file is clean.
func (s *Scan) Result(ctx context.Context) (types.Verdict, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done {
		return s.verdict, s.err
	}

	strategy := s.explicit
	if strategy == nil {
		strategy = s.registry.Default()
	}

	s.verdict, s.err = strategy.Scan(ctx, s.path)
	s.done = true
	return s.verdict, s.err
}

// IsInfected reports whether the bound file is infected, scanning on first
// call.
func (s *Scan) IsInfected(ctx context.Context) (bool, error) {
	v, err := s.Result(ctx)
	if err != nil {
		return false, err
	}
	return v.Infected, nil
}
