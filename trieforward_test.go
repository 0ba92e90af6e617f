package seggo

import (
	"testing"

	"github.com/hupe1980/seggo/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrieForwardTableMonotonic(t *testing.T) {
	rng := testutil.NewRNG(1337)

	for trial := 0; trial < 10; trial++ {
		strand := rng.Strand(1 + rng.Intn(300))
		markers := rng.SubstringMarkers(strand, 10, 4)

		e, err := New(strand, markers, 4)
		require.NoError(t, err)

		dp := e.trieForwardTable()
		require.Len(t, dp, len(strand)+1)
		assert.Equal(t, 0, dp[0])
		for i := 0; i+1 < len(dp); i++ {
			assert.LessOrEqual(t, dp[i], dp[i+1], "dp must be non-decreasing at %d", i)
		}
	}
}

// walkFirstTable fills the same table as trieForwardTable but applies the
// marker-match walk before the carry-forward rule at each position. The two
// rules are order-independent for a fixed i because the walk only writes to
// indices greater than i; this variant exists to prove that.
func walkFirstTable(e *Engine) []int {
	n := e.n
	dp := make([]int, n+1)

	for i := 0; i < n; i++ {
		node := e.index.Root()
		limit := i + e.k
		if limit > n {
			limit = n
		}
		for j := i; j < limit; j++ {
			node = node.Child(e.strand[j])
			if node == nil {
				break
			}
			if node.Terminal() && dp[i]+1 > dp[j+1] {
				dp[j+1] = dp[i] + 1
			}
		}

		if dp[i] > dp[i+1] {
			dp[i+1] = dp[i]
		}
	}

	return dp
}

func TestTrieForwardUpdateRuleOrder(t *testing.T) {
	rng := testutil.NewRNG(99)

	for trial := 0; trial < 20; trial++ {
		strand := rng.Strand(1 + rng.Intn(200))
		markers := rng.SubstringMarkers(strand, 1+rng.Intn(15), 5)

		e, err := New(strand, markers, 5)
		require.NoError(t, err)

		assert.Equal(t, e.trieForwardTable(), walkFirstTable(e),
			"carry-first and walk-first fills must agree (strand=%q markers=%v)", strand, markers)
	}
}

func TestTrieForwardWalkStopsEarly(t *testing.T) {
	// Marker set shares no prefix with most of the strand; the walk at each
	// position must dead-end without affecting correctness.
	e, err := New("ACGTACGT", []string{"TTT"}, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, e.SolveTrieForward())

	e, err = New("ACGTTTAC", []string{"TTT"}, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, e.SolveTrieForward())
}

func TestTrieForwardMarkerAtStrandEnd(t *testing.T) {
	// The walk is clamped at the strand boundary even when k overshoots.
	e, err := New("AACG", []string{"ACG"}, 5)
	require.NoError(t, err)

	for _, s := range Strategies {
		assert.Equal(t, 1, e.Solve(s), "strategy %s", s)
	}
}
