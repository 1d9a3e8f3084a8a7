package glyphswap

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#ffffff", White, false},
		{"000000", RGB{}, false},
		{"#F80", RGB{0xFF, 0x88, 0x00}, false},
		{"#1e90ff", RGB{0x1E, 0x90, 0xFF}, false},
		{"", RGB{}, true},
		{"#12345", RGB{}, true},
		{"#gggggg", RGB{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Hex(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRGB_NRGBA(t *testing.T) {
	assert.Equal(t, color.NRGBA{1, 2, 3, 128}, RGB{1, 2, 3}.NRGBA(128))
}

func TestNewColorAssignment(t *testing.T) {
	palette := Palette{{1, 0, 0}, {0, 1, 0}}
	ca := NewColorAssignment(palette, "a", "b", "a", "c")

	assert.Equal(t, []string{"a", "b", "c"}, ca.Symbols())
	assert.Equal(t, 3, ca.Len())

	c, ok := ca.Color("a")
	require.True(t, ok)
	assert.Equal(t, palette[0], c)
	c, _ = ca.Color("b")
	assert.Equal(t, palette[1], c)
	c, _ = ca.Color("c")
	assert.Equal(t, palette[0], c, "palette cycles")

	_, ok = ca.Color("z")
	assert.False(t, ok)
}

func TestNewColorAssignment_EmptyPalette(t *testing.T) {
	ca := NewColorAssignment(nil, "x")
	c, ok := ca.Color("x")
	require.True(t, ok)
	assert.Equal(t, DefaultPalette[0], c)
}

func TestAssignColors(t *testing.T) {
	pair := SequencePair{
		Before:   []string{"●", "▲", "■"},
		After:    []string{"●", "★", "■"},
		Position: 1,
		Old:      "▲",
		New:      "★",
	}
	ca := AssignColors(pair, DefaultPalette)
	assert.Equal(t, []string{"●", "▲", "■", "★"}, ca.Symbols())
	for i, s := range ca.Symbols() {
		c, ok := ca.Color(s)
		require.True(t, ok)
		assert.Equal(t, DefaultPalette[i], c)
	}

	mutated := ca.Symbols()
	mutated[0] = "x"
	assert.Equal(t, "●", ca.Symbols()[0])
}

func TestColorAssignment_Lookup(t *testing.T) {
	ca := NewColorAssignment(DefaultPalette, "a")

	_, err := ca.lookup("test", "b")
	var ce *ConsistencyError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "test", ce.Op)

	var none *ColorAssignment
	_, err = none.lookup("test", "a")
	assert.True(t, errors.As(err, &ce))
}
