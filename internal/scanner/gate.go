package scanner

import (
	"context"
	"path/filepath"

	"github.com/avgate/avgate/pkg/types"
)

// Gate is a strategy that resolves matching paths as clean without invoking
// the underlying scanner, and delegates everything else. The delegate is a
// required constructor argument: a gate cannot exist without deciding what
// happens to the paths it lets through.
type Gate struct {
	match func(path string) bool
	next  Strategy
}

// NewGate builds a gate over next. match is consulted once per scanned path.
func NewGate(match func(path string) bool, next Strategy) *Gate {
	if next == nil {
		panic("scanner: NewGate requires a delegate strategy")
	}
	return &Gate{match: match, next: next}
}

// NewGlobGate builds a gate that skips paths whose base name matches any of
// the given shell glob patterns.
func NewGlobGate(patterns []string, next Strategy) *Gate {
	return NewGate(func(path string) bool {
		base := filepath.Base(path)
		for _, p := range patterns {
			if ok, err := filepath.Match(p, base); err == nil && ok {
				return true
			}
		}
		return false
	}, next)
}

func (g *Gate) Scan(ctx context.Context, path string) (types.Verdict, error) {
	if g.match != nil && g.match(path) {
		return types.Verdict{}, nil
	}
	return g.next.Scan(ctx, path)
}
