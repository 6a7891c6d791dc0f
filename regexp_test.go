package parsec_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/parsec"
)

func TestCompilePatternIsCached(t *testing.T) {
	a, err := parsec.CompilePattern(`[a-z]+\d`)
	require.NoError(t, err)
	b, err := parsec.CompilePattern(`[a-z]+\d`)
	require.NoError(t, err)
	require.Same(t, a, b)
	require.Equal(t, `^(?:[a-z]+\d)`, a.String())
}

func TestCompilePatternConcurrent(t *testing.T) {
	const workers = 32
	results := make([]any, workers)
	outcomes := make([]bool, workers)
	wg := sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			re, err := parsec.CompilePattern(`(concurrent|shared)+`)
			results[i] = re
			if err != nil {
				return
			}
			p := parsec.Match(`(concurrent|shared)+`)
			r := p.Parse(parsec.NewInput("", "sharedconcurrent!"), 0)
			outcomes[i] = r.OK() && r.Value == "sharedconcurrent"
		}(i)
	}
	wg.Wait()
	for i := 0; i < workers; i++ {
		require.NotNil(t, results[i])
		require.Same(t, results[0], results[i])
		require.True(t, outcomes[i], "worker %d", i)
	}
}

func TestAlternationInPatternIsAnchored(t *testing.T) {
	// Without grouping "a|b" would be anchored as "^a|b" and match b anywhere.
	r := parsec.Match(`a|b`).Parse(parsec.NewInput("", "xb"), 0)
	require.Equal(t, parsec.Recoverable, r.Outcome)
}
