// Package scenario holds the fixed validation cases every solving strategy
// must agree on. The table is shared by the package tests and the verify
// subcommand of the CLI.
package scenario

// Case is one validation scenario with its known-correct score.
type Case struct {
	Strand   string
	Markers  []string
	K        int
	Expected int
}

// Cases lists the validation scenarios. K is the length of the longest
// marker (1 for the empty marker set, since k only needs to be positive
// when markers exist).
var Cases = []Case{
	{Strand: "ACGT", Markers: []string{"A", "CG", "GT"}, K: 2, Expected: 2},
	{Strand: "ACGCG", Markers: []string{"AC", "CG", "GCG"}, K: 3, Expected: 2},
	{Strand: "AAAA", Markers: []string{"A", "AA"}, K: 2, Expected: 4},
	{Strand: "ACGT", Markers: []string{"GG", "TT"}, K: 2, Expected: 0},
	{Strand: "ATGCGAT", Markers: []string{"ATG", "GCG", "AT", "T"}, K: 3, Expected: 3},
	{Strand: "ACGTAC", Markers: []string{}, K: 1, Expected: 0},
	{Strand: "ACGT", Markers: []string{"ACGT"}, K: 4, Expected: 1},
	{Strand: "", Markers: []string{"ACGT"}, K: 4, Expected: 0},
	{Strand: "ACGT", Markers: []string{"AC", "CG", "GT"}, K: 2, Expected: 2},
	{
		Strand:   "ATGCGTACGTTAGCTAGGCTACGTAGCTAG",
		Markers:  []string{"ATG", "GTT", "AGC", "TAG", "ACG"},
		K:        3,
		Expected: 7,
	},
}
