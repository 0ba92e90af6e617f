// Package testutil provides testing utilities for seggo.
//
// This package is intended for use in tests, benchmarks and the CLI harness
// only. It provides helpers for generating random strands and marker sets
// with a deterministic, seedable source.
//
// # Random Input Generation
//
//	rng := testutil.NewRNG(seed)
//	strand := rng.Strand(50000)
//	markers := rng.Markers(1000, 50)
//
// Markers sampled out of the strand itself (denser matches, deeper trie
// walks):
//
//	markers := rng.SubstringMarkers(strand, 1000, 50)
package testutil
