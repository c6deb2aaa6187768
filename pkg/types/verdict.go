package types

// Verdict is the binary outcome of scanning a single file.
type Verdict struct {
	// Infected reports whether the scanner flagged the file.
	Infected bool `json:"infected"`

	// Signature is the result token from the tool's summary line when the
	// file is infected (e.g. "Eicar-Test-Signature FOUND"). Empty when clean.
	Signature string `json:"signature,omitempty"`

	// Raw is the tool's full standard output, kept for diagnostics. Callers
	// must not derive meaning from it beyond Infected.
	Raw string `json:"raw,omitempty"`

	// ExitCode is the tool's exit status. Recorded for diagnostics only;
	// classification is driven by output content, never by exit code.
	ExitCode int `json:"exit_code"`
}

// Status returns a short status label for display.
func (v Verdict) Status() string {
	if v.Infected {
		return "INFECTED"
	}
	return "OK"
}
