package types

import (
	"fmt"
	"strings"
	"time"
)

// ScanReport is the output of one file scan, as rendered by formatters and
// the HTTP API. Exactly one of Verdict and Error is set: a scan that failed
// has no verdict, and callers must not read a failure as "clean".
type ScanReport struct {
	Path        string    `json:"path"`
	Verdict     *Verdict  `json:"verdict,omitempty"`
	Error       string    `json:"error,omitempty"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
}

// ParsePath validates a raw path argument. The path is not required to
// exist — existence is the scanner's concern — but it must be non-empty and
// free of NUL bytes, which no filesystem path can contain.
func ParsePath(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("path cannot be empty")
	}
	if strings.ContainsRune(raw, 0) {
		return "", fmt.Errorf("path contains a NUL byte")
	}
	return raw, nil
}
