package clamav

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"github.com/avgate/avgate/internal/scanner"
)

// waitGrace bounds how long a finished or killed tool may keep us waiting on
// its output pipes. clamscan can spawn helpers that inherit stdout/stderr;
// killing the direct child does not close a pipe a helper still holds, so
// without this cap Run would block until the helper exits.
const waitGrace = 100 * time.Millisecond

// execResult carries the raw observable outcome of one tool run.
type execResult struct {
	stdout   string
	stderr   string
	exitCode int
}

// invoke runs argv as a child process, capturing stdout and stderr as
// separate streams. No stdin pipe is opened: the tool takes no input, and an
// unread pipe is a resource leak waiting on a child that never reads it.
//
// A non-zero exit is not an error here — clamscan exits non-zero for
// infected files, so that call belongs to the classifier. Failing to start
// the process at all is a LaunchError. Overrunning the invoker's own timeout
// kills the child and returns a TimeoutError with no partial result; the
// caller's context expiring instead propagates that context's error
// untranslated, since the bound that fired was theirs, not ours.
func (s *Scanner) invoke(parent context.Context, argv []string) (*execResult, error) {
	ctx := parent
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(parent, s.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitGrace

	err := cmd.Run()

	if parent.Err() != nil {
		return nil, parent.Err()
	}
	if ctx.Err() == context.DeadlineExceeded {
		return nil, &scanner.TimeoutError{Tool: s.exe, Timeout: s.timeout}
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		// Exited zero.
	case errors.As(err, &exitErr):
		// Ran but exited non-zero; the classifier decides what that means.
	case errors.Is(err, exec.ErrWaitDelay):
		// The tool itself exited but something it spawned held the pipes
		// past the grace period. The captured output is all we will get.
	default:
		return nil, &scanner.LaunchError{Tool: s.exe, Err: err}
	}

	return &execResult{
		stdout:   stdout.String(),
		stderr:   stderr.String(),
		exitCode: cmd.ProcessState.ExitCode(),
	}, nil
}
