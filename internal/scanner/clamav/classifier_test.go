package clamav

import (
	"testing"

	"github.com/avgate/avgate/internal/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	s := New(Config{})

	cases := []struct {
		name      string
		stdout    string
		stderr    string
		infected  bool
		signature string
	}{
		{
			name:   "clean file",
			stdout: "file.txt: OK\n",
		},
		{
			name:      "infected file",
			stdout:    "file.txt: Eicar-Test-Signature FOUND\n",
			infected:  true,
			signature: "Eicar-Test-Signature FOUND",
		},
		{
			name:   "benign stderr does not fail the run",
			stdout: "file.txt: OK\n",
			stderr: "LibClamAV Warning: your database is older than 7 days\nLibClamAV Warning: please update\n",
		},
		{
			name:   "only the last stdout line counts",
			stdout: "Loading signatures...\nScanning /tmp/file.txt\nfile.txt: OK\n",
		},
		{
			name:      "empty result token is not OK",
			stdout:    "file.txt:\n",
			infected:  true,
			signature: "",
		},
		{
			name:      "whitespace around the token is trimmed",
			stdout:    "file.txt:    Eicar-Test-Signature FOUND   \n",
			infected:  true,
			signature: "Eicar-Test-Signature FOUND",
		},
		{
			name:   "trailing blank stderr lines are ignored",
			stdout: "file.txt: OK\n",
			stderr: "\n\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := s.classify(&execResult{stdout: tc.stdout, stderr: tc.stderr})
			require.NoError(t, err)
			assert.Equal(t, tc.infected, v.Infected)
			assert.Equal(t, tc.signature, v.Signature)
			assert.Equal(t, tc.stdout, v.Raw)
		})
	}
}

func TestClassify_NonBenignStderrFailsRun(t *testing.T) {
	s := New(Config{})

	// Stdout says clean, but a real stderr diagnostic takes precedence.
	_, err := s.classify(&execResult{
		stdout: "file.txt: OK\n",
		stderr: "LibClamAV Warning: outdated database\nERROR: Can't open file descriptor\n",
	})
	require.Error(t, err)

	var execErr *scanner.ExecError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, "ERROR: Can't open file descriptor", execErr.Stderr)
	assert.NotContains(t, execErr.Stderr, "LibClamAV Warning")
}

func TestClassify_EmptyStdoutIsParseError(t *testing.T) {
	s := New(Config{})

	_, err := s.classify(&execResult{stdout: "", stderr: ""})
	var parseErr *scanner.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestClassify_MissingSeparatorIsParseError(t *testing.T) {
	s := New(Config{})

	_, err := s.classify(&execResult{stdout: "no separator here\n"})
	var parseErr *scanner.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Reason, "':'")
}

func TestClassify_CustomBenignPrefixes(t *testing.T) {
	s := New(Config{BenignPrefixes: []string{"note:"}})

	_, err := s.classify(&execResult{
		stdout: "file.txt: OK\n",
		stderr: "note: harmless\n",
	})
	assert.NoError(t, err)

	// The stock prefix is no longer benign once overridden.
	_, err = s.classify(&execResult{
		stdout: "file.txt: OK\n",
		stderr: "LibClamAV Warning: outdated database\n",
	})
	assert.Error(t, err)
}

func TestClassify_ExitCodeCarriedNotClassified(t *testing.T) {
	s := New(Config{})

	// clamscan exits 1 on FOUND; the verdict must come from the text.
	v, err := s.classify(&execResult{stdout: "file.txt: OK\n", exitCode: 1})
	require.NoError(t, err)
	assert.False(t, v.Infected)
	assert.Equal(t, 1, v.ExitCode)
}
