package clamav

import (
	"strings"

	"github.com/avgate/avgate/internal/scanner"
	"github.com/avgate/avgate/pkg/types"
)

// cleanToken is the literal success marker on the tool's summary line. Any
// other result token, including an empty one, means infected — the
// classifier is binary and special-cases nothing else.
const cleanToken = "OK"

// classify turns a finished run's two output streams into a verdict.
//
// Stderr wins: after dropping blank lines and known-benign vendor warnings,
// any remaining stderr content fails the run regardless of what stdout said.
// Otherwise the verdict comes from the last stdout line, expected to look
// like "<subject>: <result>" (earlier lines are progress noise); the file is
// clean iff the trimmed result token equals "OK".
func (s *Scanner) classify(res *execResult) (types.Verdict, error) {
	if diag := s.filterStderr(res.stderr); diag != "" {
		return types.Verdict{}, &scanner.ExecError{Tool: s.exe, Stderr: diag}
	}

	out := strings.TrimRight(res.stdout, "\r\n")
	if out == "" {
		return types.Verdict{}, &scanner.ParseError{
			Tool:   s.exe,
			Output: res.stdout,
			Reason: "no summary line on stdout",
		}
	}

	lines := strings.Split(out, "\n")
	last := strings.TrimRight(lines[len(lines)-1], "\r")

	_, result, found := strings.Cut(last, ":")
	if !found {
		return types.Verdict{}, &scanner.ParseError{
			Tool:   s.exe,
			Output: last,
			Reason: "summary line has no ':' separator",
		}
	}

	v := types.Verdict{
		Raw:      res.stdout,
		ExitCode: res.exitCode,
	}
	if token := strings.TrimSpace(result); token != cleanToken {
		v.Infected = true
		v.Signature = token
	}
	return v, nil
}

// filterStderr drops blank lines and benign vendor warnings, returning
// whatever diagnostic text remains.
func (s *Scanner) filterStderr(stderr string) string {
	var kept []string
	for _, line := range strings.Split(stderr, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || s.isBenign(trimmed) {
			continue
		}
		kept = append(kept, trimmed)
	}
	return strings.Join(kept, "\n")
}

func (s *Scanner) isBenign(line string) bool {
	for _, prefix := range s.benign {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
