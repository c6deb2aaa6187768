package scanner

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate_ShortCircuitsMatches(t *testing.T) {
	var calls atomic.Int64
	g := NewGate(func(path string) bool { return path == "/tmp/skip.txt" }, cleanStrategy(&calls))

	v, err := g.Scan(context.Background(), "/tmp/skip.txt")
	require.NoError(t, err)
	assert.False(t, v.Infected)
	assert.Equal(t, int64(0), calls.Load(), "matching paths must not reach the delegate")
}

func TestGate_DelegatesNonMatches(t *testing.T) {
	g := NewGate(func(string) bool { return false }, infectedStrategy("Eicar-Test-Signature FOUND"))

	v, err := g.Scan(context.Background(), "/tmp/eicar.com")
	require.NoError(t, err)
	assert.True(t, v.Infected)
	assert.Equal(t, "Eicar-Test-Signature FOUND", v.Signature)
}

func TestGate_NilDelegatePanics(t *testing.T) {
	assert.Panics(t, func() {
		NewGate(func(string) bool { return true }, nil)
	})
}

func TestGlobGate_MatchesBaseName(t *testing.T) {
	g := NewGlobGate([]string{"*.log", "cache-*"}, infectedStrategy("FOUND"))

	cases := []struct {
		path    string
		skipped bool
	}{
		{"/var/log/app.log", true},
		{"/var/tmp/cache-0012", true},
		{"/var/log/app.txt", false},
		{"/home/user/notes.log.gpg", false},
	}

	for _, tc := range cases {
		v, err := g.Scan(context.Background(), tc.path)
		require.NoError(t, err, tc.path)
		assert.Equal(t, !tc.skipped, v.Infected, tc.path)
	}
}
