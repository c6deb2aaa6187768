// Package clamav implements the process-backed scanning strategy. It drives
// the clamscan command-line tool as a child process and derives the verdict
// from its textual output, matching clamscan's documented behavior of
// exiting non-zero for infected files rather than for failures.
package clamav

import (
	"context"
	"time"

	"github.com/avgate/avgate/internal/scanner"
	"github.com/avgate/avgate/pkg/types"
)

const (
	defaultExe     = "clamscan"
	defaultTimeout = 60 * time.Second
)

// defaultArgs keeps clamscan's output to one summary line per scanned path.
var defaultArgs = []string{"--no-summary"}

// DefaultBenignPrefixes lists stderr prefixes clamscan emits as informational
// noise. Lines carrying these prefixes never fail a scan.
var DefaultBenignPrefixes = []string{"LibClamAV Warning:"}

// Config holds the tool invocation settings.
type Config struct {
	// Exe is the scanner binary name or path. Defaults to "clamscan".
	Exe string
	// Args are fixed flags placed before the scanned path. nil means the
	// default --no-summary; an empty non-nil slice means no flags at all.
	Args []string
	// Timeout bounds one tool run; the child is killed when exceeded.
	// Zero or negative means the 60s default.
	Timeout time.Duration
	// BenignPrefixes overrides DefaultBenignPrefixes when non-nil.
	BenignPrefixes []string
}

// Scanner runs clamscan against single files. It is stateless per path and
// safe for concurrent use.
type Scanner struct {
	exe     string
	args    []string
	timeout time.Duration
	benign  []string
}

var _ scanner.Strategy = (*Scanner)(nil)

// New builds a Scanner, filling unset Config fields with defaults.
func New(cfg Config) *Scanner {
	s := &Scanner{
		exe:     cfg.Exe,
		args:    cfg.Args,
		timeout: cfg.Timeout,
		benign:  cfg.BenignPrefixes,
	}
	if s.exe == "" {
		s.exe = defaultExe
	}
	if s.args == nil {
		s.args = defaultArgs
	}
	if s.timeout <= 0 {
		s.timeout = defaultTimeout
	}
	if s.benign == nil {
		s.benign = DefaultBenignPrefixes
	}
	return s
}

// Scan runs the tool against path and classifies its output.
func (s *Scanner) Scan(ctx context.Context, path string) (types.Verdict, error) {
	res, err := s.invoke(ctx, s.command(path))
	if err != nil {
		return types.Verdict{}, err
	}
	return s.classify(res)
}
