package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/avgate/avgate/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCmd(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

// writeStubScanner drops a fake clamscan into a temp dir. It is invoked as
// "<stub> --no-summary -- <path>", so "$3" is the scanned path.
func writeStubScanner(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub scanners are POSIX shell scripts")
	}

	path := filepath.Join(t.TempDir(), "fakeclam")
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755)
	require.NoError(t, err)
	return path
}

func TestVersionCommand(t *testing.T) {
	output, err := executeCmd("version")
	require.NoError(t, err)
	assert.Contains(t, output, "avgate version")
}

func TestScanMissingArgs(t *testing.T) {
	_, err := executeCmd("scan")
	assert.Error(t, err)
}

func TestScanEmptyPath(t *testing.T) {
	_, err := executeCmd("scan", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid path")
}

func TestScanCleanFile(t *testing.T) {
	stub := writeStubScanner(t, `printf '%s: OK\n' "$3"`)

	output, err := executeCmd("scan", "--clamscan", stub, "-o", "table", "/tmp/clean.txt")
	require.NoError(t, err)
	assert.Contains(t, output, "/tmp/clean.txt")
	assert.Contains(t, output, "1 scanned, 0 infected, 0 failed")
}

func TestScanInfectedFileFailsCommand(t *testing.T) {
	stub := writeStubScanner(t, `printf '%s: Eicar-Test-Signature FOUND\n' "$3"
exit 1`)

	output, err := executeCmd("scan", "--clamscan", stub, "-o", "table", "/tmp/eicar.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 infected")
	assert.Contains(t, output, "Eicar-Test-Signature FOUND")
}

func TestScanJSONOutput(t *testing.T) {
	stub := writeStubScanner(t, `printf '%s: OK\n' "$3"`)

	output, err := executeCmd("scan", "--clamscan", stub, "-o", "json", "/tmp/a.txt", "/tmp/b.txt")
	require.NoError(t, err)

	var reports []types.ScanReport
	err = json.Unmarshal([]byte(output), &reports)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "/tmp/a.txt", reports[0].Path)
	require.NotNil(t, reports[0].Verdict)
	assert.False(t, reports[0].Verdict.Infected)
}

func TestScanMissingBinaryFailsCommand(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-clamscan")

	output, err := executeCmd("scan", "--clamscan", missing, "-o", "table", "/tmp/a.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 failed")
	assert.Contains(t, output, "ERROR")
}

func TestScanUnknownOutputFormat(t *testing.T) {
	stub := writeStubScanner(t, `printf '%s: OK\n' "$3"`)

	_, err := executeCmd("scan", "--clamscan", stub, "-o", "xml", "/tmp/a.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestScanHelpListsServe(t *testing.T) {
	output, err := executeCmd("--help")
	require.NoError(t, err)
	assert.Contains(t, output, "serve")
	assert.Contains(t, output, "scan")
}

// Keep this test last in the file: --exclude sticks to the shared root
// command for the remainder of the process.
func TestScanExcludeGlobSkipsScanner(t *testing.T) {
	stub := writeStubScanner(t, `printf '%s: Eicar-Test-Signature FOUND\n' "$3"
exit 1`)

	output, err := executeCmd("scan", "--clamscan", stub, "--exclude", "*.log", "-o", "table", "/var/log/app.log")
	require.NoError(t, err, "excluded files resolve clean without running the tool")
	assert.Contains(t, output, "1 scanned, 0 infected, 0 failed")
}
