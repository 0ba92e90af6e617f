// Package seggo solves a string-segmentation optimization problem: given a
// strand S and a set of marker patterns P (each of length at most k), it
// computes the maximum number of non-overlapping, left-to-right marker
// occurrences selectable within S. Unmatched characters between chosen
// markers are allowed and cost nothing; only the count of selected markers
// is optimized.
//
// # Quick Start
//
//	engine, err := seggo.New("ATGCGAT", []string{"ATG", "GCG", "AT", "T"}, 3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(engine.SolveTrieForward()) // 3
//
// # Strategies
//
// The same problem instance can be solved three independent ways:
//
//   - StrategyTopDown — recursive memoized search over suffix positions.
//   - StrategyBottomUp — iterative suffix tabulation, same recurrence
//     without the recursion.
//   - StrategyTrieForward — forward tabulation accelerated by a prefix
//     index (trie) over the marker set; walks stop at the first prefix no
//     marker shares, which is the asymptotic win over the brute-force
//     strategies.
//
// All strategies return the same value for the same engine. Engine.CrossCheck
// runs them concurrently and verifies the agreement.
//
// # Concurrency
//
// An Engine and its prefix index are immutable after construction. Every
// solve call allocates its own working table, so engines are safe for
// concurrent use without locking.
package seggo
