package seggo

// SolveTrieForward computes the maximum marker count via prefix-anchored
// forward tabulation accelerated by the prefix index: dp[i] is the best
// count achievable using only strand[:i].
//
// Two update rules fire at every position i:
//
//  1. Carry-forward: dp[i+1] = max(dp[i+1], dp[i]). Fired unconditionally,
//     this propagates the score across skipped characters one position at a
//     time, so gaps of any length need no explicit loop.
//  2. Marker match: walk the prefix index from the root consuming
//     strand[i], strand[i+1], ... for at most k steps; at every terminal
//     node reached after consuming strand[i:j], dp[j] = max(dp[j], dp[i]+1).
//     The walk stops at the first missing child, since no longer extension
//     can match any marker.
//
// The early stop is what beats the brute-force strategies: instead of a
// guaranteed O(k) substring probe per position, each walk costs only the
// characters examined before its first dead end, which for sparse marker
// sets is typically far below k. Worst case remains O(n*k).
func (e *Engine) SolveTrieForward() int {
	return e.instrument(StrategyTrieForward, func() int {
		dp := e.trieForwardTable()
		return dp[e.n]
	})
}

// trieForwardTable fills and returns the full dp table. dp is non-decreasing
// in index: the carry-forward rule guarantees dp[i+1] >= dp[i].
func (e *Engine) trieForwardTable() []int {
	n := e.n
	dp := make([]int, n+1)

	for i := 0; i < n; i++ {
		if dp[i] > dp[i+1] {
			dp[i+1] = dp[i]
		}

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
	}

	return dp
}
