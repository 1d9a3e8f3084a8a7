package glyphswap

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampler_FixedSeedScenario(t *testing.T) {
	catalog := mustCatalog(t, SetCustom, "●", "▲", "■", "★", "◆")
	s, err := NewSampler(catalog, 3, 3)
	require.NoError(t, err)

	r := NewRand(42)
	for i := 0; i < 200; i++ {
		pair := s.Sample(r)
		require.NoError(t, pair.Validate())
		require.Equal(t, 3, pair.Len())
		assert.True(t, catalog.Contains(pair.New))
		assert.NotContains(t, pair.Before, pair.New)
		assert.Equal(t, pair.Before[pair.Position], pair.Old)
	}
}

func TestSampler_Reproducible(t *testing.T) {
	catalog, err := LookupCatalog(SetMixed)
	require.NoError(t, err)
	s, err := NewSampler(catalog, 2, 9)
	require.NoError(t, err)

	r1, r2 := NewRand(7), NewRand(7)
	for i := 0; i < 50; i++ {
		if diff := cmp.Diff(s.Sample(r1), s.Sample(r2)); diff != "" {
			t.Fatalf("sample %d differs (-first +second):\n%s", i, diff)
		}
	}
}

func TestSampler_CoversLengthsAndPositions(t *testing.T) {
	catalog, err := LookupCatalog(SetShapes)
	require.NoError(t, err)
	s, err := NewSampler(catalog, 2, 4)
	require.NoError(t, err)

	lengths := map[int]bool{}
	positions := map[int]bool{}
	r := NewRand(1)
	for i := 0; i < 1000; i++ {
		pair := s.Sample(r)
		lengths[pair.Len()] = true
		positions[pair.Position] = true
	}
	assert.Equal(t, map[int]bool{2: true, 3: true, 4: true}, lengths)
	assert.Equal(t, map[int]bool{0: true, 1: true, 2: true, 3: true}, positions)
}

func TestSampler_LargestLengthUsesAllButOne(t *testing.T) {
	catalog, err := LookupCatalog(SetNumbers)
	require.NoError(t, err)
	s, err := NewSampler(catalog, 9, 9)
	require.NoError(t, err)

	pair := s.Sample(NewRand(3))
	require.NoError(t, pair.Validate())
	all := append(slices.Clone(pair.Before), pair.New)
	slices.Sort(all)
	assert.Equal(t, catalog.Symbols(), all)
}

func TestSampler_DoesNotMutateCatalog(t *testing.T) {
	catalog, err := LookupCatalog(SetLetters)
	require.NoError(t, err)
	want := catalog.Symbols()

	s, err := NewSampler(catalog, 5, 9)
	require.NoError(t, err)
	r := NewRand(11)
	for i := 0; i < 20; i++ {
		s.Sample(r)
	}
	assert.Equal(t, want, catalog.Symbols())
}

func TestNewSampler_Errors(t *testing.T) {
	five := mustCatalog(t, SetCustom, "a", "b", "c", "d", "e")
	tests := []struct {
		name     string
		catalog  *Catalog
		min, max int
		field    string
	}{
		{"nil catalog", nil, 2, 3, "symbol catalog"},
		{"min below two", five, 1, 3, "min_sequence_length"},
		{"min above max", five, 4, 3, "min_sequence_length"},
		{"catalog smaller than min", mustCatalog(t, SetCustom, "a", "b"), 3, 3, "symbol catalog"},
		{"no replacement left", five, 2, 5, "max_sequence_length"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSampler(tt.catalog, tt.min, tt.max)
			var ce *ConfigError
			require.True(t, errors.As(err, &ce), "got %v", err)
			assert.Equal(t, tt.field, ce.Field)
		})
	}
}

func TestSequencePair_Validate(t *testing.T) {
	valid := func() SequencePair {
		return SequencePair{
			Before:   []string{"a", "b", "c"},
			After:    []string{"a", "x", "c"},
			Position: 1,
			Old:      "b",
			New:      "x",
		}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		modify func(*SequencePair)
	}{
		{"length mismatch", func(p *SequencePair) { p.After = p.After[:2] }},
		{"position out of range", func(p *SequencePair) { p.Position = 3 }},
		{"wrong old", func(p *SequencePair) { p.Old = "a" }},
		{"wrong new", func(p *SequencePair) { p.New = "y" }},
		{"duplicate before", func(p *SequencePair) { p.Before[2] = "a"; p.After[2] = "a" }},
		{"new already present", func(p *SequencePair) { p.New = "c"; p.After[1] = "c" }},
		{"other position changed", func(p *SequencePair) { p.After[0] = "z" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.modify(&p)
			var ce *ConsistencyError
			assert.True(t, errors.As(p.Validate(), &ce))
		})
	}
}
