package scanner

import (
	"fmt"
	"time"
)

// LaunchError reports that the external scanner binary could not be started
// at all (missing binary, bad permissions). Not retried here; retry policy
// belongs to callers.
type LaunchError struct {
	Tool string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launching %s: %v", e.Tool, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// ExecError reports that the tool ran but wrote standard-error output beyond
// its known-benign diagnostics. Stderr carries the offending text with the
// benign lines already filtered out.
type ExecError struct {
	Tool   string
	Stderr string
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Tool, e.Stderr)
}

// ParseError reports that the tool's standard output did not contain the
// expected summary line.
type ParseError struct {
	Tool   string
	Output string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s output: %s", e.Tool, e.Reason)
}

// TimeoutError reports that the tool exceeded its allotted run time and was
// terminated. No partial result survives a timeout.
type TimeoutError struct {
	Tool    string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s did not finish within %s", e.Tool, e.Timeout)
}
