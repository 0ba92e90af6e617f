package seggo

// unsolved marks a memo cell whose score has not been computed yet. Scores
// are always >= 0, so -1 is outside the result range.
const unsolved = -1

// SolveTopDown computes the maximum marker count via recursive memoized
// search over suffix positions: score(i) is the best count achievable in
// strand[i:], and each position tries every split length in [1, k].
//
// Recursion depth can reach n. Go grows goroutine stacks on demand (up to
// the runtime's 1 GB default maximum), so native recursion is safe here for
// any strand that fits in memory; no explicit work-stack rewrite is needed.
//
// Cost is O(n*k) subproblem evaluations, each paying O(len) for the
// substring slice and set probe, so O(n*k^2) worst case.
func (e *Engine) SolveTopDown() int {
	return e.instrument(StrategyTopDown, func() int {
		memo := make([]int, e.n+1)
		for i := range memo {
			memo[i] = unsolved
		}
		memo[e.n] = 0
		return e.solveFrom(0, memo)
	})
}

func (e *Engine) solveFrom(idx int, memo []int) int {
	if memo[idx] != unsolved {
		return memo[idx]
	}

	score := 0
	for splitLen := 1; splitLen <= e.k; splitLen++ {
		if idx+splitLen > e.n {
			break
		}
		bonus := 0
		if _, ok := e.markers[e.strand[idx:idx+splitLen]]; ok {
			bonus = 1
		}
		if v := bonus + e.solveFrom(idx+splitLen, memo); v > score {
			score = v
		}
	}

	memo[idx] = score
	return score
}
