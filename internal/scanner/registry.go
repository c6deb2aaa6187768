package scanner

import "sync"

// DefaultRegistry holds the process-wide default Strategy used by scans that
// were not given an explicit one. It is safe for concurrent use: readers and
// writers are serialized, so no caller ever observes a half-installed
// strategy.
type DefaultRegistry struct {
	mu       sync.RWMutex
	current  Strategy
	baseline func() Strategy
}

// NewDefaultRegistry creates a registry whose initial default is produced by
// the baseline factory on first access. baseline may be nil when SetDefault
// is guaranteed to run before the first Default call.
func NewDefaultRegistry(baseline func() Strategy) *DefaultRegistry {
	return &DefaultRegistry{baseline: baseline}
}

// Default returns the current default strategy, building it from the
// baseline factory on first access if nothing was installed yet.
func (r *DefaultRegistry) Default() Strategy {
	r.mu.RLock()
	s := r.current
	r.mu.RUnlock()
	if s != nil {
		return s
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == nil && r.baseline != nil {
		r.current = r.baseline()
	}
	return r.current
}

// SetDefault replaces the current default strategy outright. The previous
// value is discarded — callers layering cross-cutting behavior on top of
// whatever is already installed should use Override instead, which hands
// them the prior strategy to delegate to.
func (r *DefaultRegistry) SetDefault(s Strategy) {
	r.mu.Lock()
	r.current = s
	r.mu.Unlock()
}

// Override installs wrap(previous default) as the new default. The wrap
// function receives the strategy being replaced and decides what to do with
// it, which makes the capture an explicit step rather than something a bare
// SetDefault silently skips. Installing a wrapper that drops its argument is
// still possible, but it has to be written down.
func (r *DefaultRegistry) Override(wrap func(prev Strategy) Strategy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev := r.current
	if prev == nil && r.baseline != nil {
		prev = r.baseline()
	}
	r.current = wrap(prev)
}
