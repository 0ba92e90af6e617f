package testutil

import (
	"math/rand"
	"strings"
	"sync"
)

// AlphabetDNA is the default generation alphabet.
const AlphabetDNA = "ACGT"

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand     *rand.Rand
	seed     int64
	alphabet string
	mu       sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed, generating over
// AlphabetDNA.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand:     rand.New(rand.NewSource(seed)),
		seed:     seed,
		alphabet: AlphabetDNA,
	}
}

// NewRNGWithAlphabet creates a new RNG generating over the given alphabet.
// The alphabet must be non-empty; symbols are single bytes.
func NewRNGWithAlphabet(seed int64, alphabet string) *RNG {
	if alphabet == "" {
		alphabet = AlphabetDNA
	}
	return &RNG{
		rand:     rand.New(rand.NewSource(seed)),
		seed:     seed,
		alphabet: alphabet,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Strand generates a random strand of length n over the alphabet.
// Locks only once per call (preferred over per-symbol helpers in a loop).
func (r *RNG) Strand(n int) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(r.alphabet[r.rand.Intn(len(r.alphabet))])
	}
	return sb.String()
}

// Markers generates count distinct random markers with lengths in
// [1, maxLen]. It retries on duplicates, so count must not exceed the number
// of distinct sequences the alphabet can express up to maxLen.
func (r *RNG) Markers(count, maxLen int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, count)
	markers := make([]string, 0, count)
	for len(markers) < count {
		length := 1 + r.rand.Intn(maxLen)
		var sb strings.Builder
		sb.Grow(length)
		for i := 0; i < length; i++ {
			sb.WriteByte(r.alphabet[r.rand.Intn(len(r.alphabet))])
		}
		m := sb.String()
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		markers = append(markers, m)
	}
	return markers
}

// SubstringMarkers samples count markers directly out of strand, with
// lengths in [1, maxLen]. Unlike Markers the result is dense in the strand,
// which stresses the deep-walk paths of trie-based solvers.
func (r *RNG) SubstringMarkers(strand string, count, maxLen int) []string {
	if len(strand) == 0 || count <= 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, count)
	markers := make([]string, 0, count)
	// Bounded attempts: short strands may not contain count distinct substrings.
	for attempts := 0; len(markers) < count && attempts < count*16; attempts++ {
		start := r.rand.Intn(len(strand))
		length := 1 + r.rand.Intn(maxLen)
		if start+length > len(strand) {
			length = len(strand) - start
		}
		m := strand[start : start+length]
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		markers = append(markers, m)
	}
	return markers
}
