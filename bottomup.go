package seggo

// SolveBottomUp computes the same recurrence as SolveTopDown but
// iteratively, filling scores[i] for i from n-1 down to 0 so that every
// scores[i+len] is already known. It eliminates the recursion overhead and
// stack growth of the top-down strategy; results are identical for all
// inputs.
func (e *Engine) SolveBottomUp() int {
	return e.instrument(StrategyBottomUp, func() int {
		scores := make([]int, e.n+1)

		for idx := e.n - 1; idx >= 0; idx-- {
			cur := 0
			for splitLen := 1; splitLen <= e.k; splitLen++ {
				if idx+splitLen > e.n {
					break
				}
				bonus := 0
				if _, ok := e.markers[e.strand[idx:idx+splitLen]]; ok {
					bonus = 1
				}
				if v := bonus + scores[idx+splitLen]; v > cur {
					cur = v
				}
			}
			scores[idx] = cur
		}

		return scores[0]
	})
}
