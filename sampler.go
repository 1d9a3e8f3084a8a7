package glyphswap

import (
	"fmt"
	"math/rand/v2"
)

// MinSequenceLength is the shortest sequence the sampler accepts.
const MinSequenceLength = 2

// SequencePair is one sampled substitution: Before with the symbol at
// Position replaced by New gives After.
type SequencePair struct {
	Before   []string
	After    []string
	Position int
	Old      string
	New      string
}

// Len returns the sequence length shared by Before and After.
func (p SequencePair) Len() int { return len(p.Before) }

// Validate checks the pair's structural invariants and reports a
// ConsistencyError when any of them is broken.
func (p SequencePair) Validate() error {
	fail := func(format string, args ...any) error {
		return &ConsistencyError{Op: "sequence pair", Detail: fmt.Sprintf(format, args...)}
	}
	if len(p.Before) != len(p.After) {
		return fail("before has %d symbols, after has %d", len(p.Before), len(p.After))
	}
	if p.Position < 0 || p.Position >= len(p.Before) {
		return fail("position %d outside [0, %d)", p.Position, len(p.Before))
	}
	if p.Before[p.Position] != p.Old {
		return fail("before[%d] = %q, old symbol is %q", p.Position, p.Before[p.Position], p.Old)
	}
	if p.After[p.Position] != p.New {
		return fail("after[%d] = %q, new symbol is %q", p.Position, p.After[p.Position], p.New)
	}
	seen := make(map[string]struct{}, len(p.Before))
	for i, s := range p.Before {
		if _, dup := seen[s]; dup {
			return fail("symbol %q repeated in before", s)
		}
		seen[s] = struct{}{}
		if s == p.New {
			return fail("new symbol %q already present in before", p.New)
		}
		if i != p.Position && p.After[i] != s {
			return fail("before and after differ at index %d", i)
		}
	}
	return nil
}

// Sampler draws sequence pairs from a catalog.
type Sampler struct {
	catalog *Catalog
	minLen  int
	maxLen  int
}

// NewSampler validates the length range against the catalog. A disjoint
// replacement must always exist, so maxLen may be at most catalog size - 1.
func NewSampler(catalog *Catalog, minLen, maxLen int) (*Sampler, error) {
	if catalog == nil || catalog.Len() == 0 {
		return nil, configErrorf("symbol catalog", "catalog is empty")
	}
	n := catalog.Len()
	switch {
	case minLen < MinSequenceLength:
		return nil, configErrorf("min_sequence_length", "%d is below %d", minLen, MinSequenceLength)
	case minLen > maxLen:
		return nil, configErrorf("min_sequence_length", "%d exceeds max_sequence_length %d", minLen, maxLen)
	case n < minLen:
		return nil, configErrorf("symbol catalog", "%s has %d symbols, fewer than min_sequence_length %d", catalog.Name(), n, minLen)
	case n-maxLen < 1:
		return nil, configErrorf("max_sequence_length", "%d leaves no replacement symbol in %s (%d symbols)", maxLen, catalog.Name(), n)
	}
	return &Sampler{catalog: catalog, minLen: minLen, maxLen: maxLen}, nil
}

// Catalog returns the sampler's catalog.
func (s *Sampler) Catalog() *Catalog { return s.catalog }

// Sample draws one SequencePair. Draws happen in a fixed order (length,
// symbols, position, replacement) so a seeded source reproduces the pair.
func (s *Sampler) Sample(r *rand.Rand) SequencePair {
	length := s.minLen + r.IntN(s.maxLen-s.minLen+1)

	// Partial Fisher-Yates: the first length slots hold the draw in order.
	pool := s.catalog.Symbols()
	for k := 0; k < length; k++ {
		j := k + r.IntN(len(pool)-k)
		pool[k], pool[j] = pool[j], pool[k]
	}
	before := pool[:length:length]

	pos := r.IntN(length)

	inBefore := make(map[string]struct{}, length)
	for _, sym := range before {
		inBefore[sym] = struct{}{}
	}
	candidates := make([]string, 0, s.catalog.Len()-length)
	for _, sym := range s.catalog.symbols {
		if _, ok := inBefore[sym]; !ok {
			candidates = append(candidates, sym)
		}
	}
	replacement := candidates[r.IntN(len(candidates))]

	after := make([]string, length)
	copy(after, before)
	after[pos] = replacement

	return SequencePair{
		Before:   before,
		After:    after,
		Position: pos,
		Old:      before[pos],
		New:      replacement,
	}
}
