package txt2braille

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLayoutDefaults(t *testing.T) {
	l := NewLayout()
	assert.Equal(t, Layout{
		DotSize:        1.0,
		DotSeparation:  2.5,
		CharSeparation: 6.0,
		LineSeparation: 10.0,
	}, l)

	l = NewLayout(WithDotSize(0.5), WithDotSeparation(2), WithCharSeparation(5), WithLineSeparation(8))
	assert.Equal(t, Layout{DotSize: 0.5, DotSeparation: 2, CharSeparation: 5, LineSeparation: 8}, l)
}

func TestLayoutDotsAllPositions(t *testing.T) {
	l := NewLayout()
	got := l.Dots(allDots, 0, 0)
	assert.Equal(t, []DotPosition{
		{Dot: 1, X: 0, Y: 0},
		{Dot: 2, X: 0, Y: -2.5},
		{Dot: 3, X: 0, Y: -5},
		{Dot: 4, X: 2.5, Y: 0},
		{Dot: 5, X: 2.5, Y: -2.5},
		{Dot: 6, X: 2.5, Y: -5},
	}, got)
}

func TestLayoutDotsColumnAndLine(t *testing.T) {
	l := NewLayout()
	p := mustPattern("14")

	got := l.Dots(p, 2, 1)
	want := []DotPosition{
		{Dot: 1, X: 12, Y: -10},
		{Dot: 4, X: 14.5, Y: -10},
	}
	assert.Equal(t, want, got)

	// Pure: the same inputs always give the same output
	for i := 0; i < 3; i++ {
		assert.Equal(t, want, l.Dots(p, 2, 1))
	}
}

func TestLayoutDotsBottomRow(t *testing.T) {
	l := NewLayout(WithDotSeparation(2), WithCharSeparation(7), WithLineSeparation(12))
	got := l.Dots(mustPattern("36"), 3, 2)
	assert.Equal(t, []DotPosition{
		{Dot: 3, X: 21, Y: -28},
		{Dot: 6, X: 23, Y: -28},
	}, got)
}

func TestLayoutBlankCell(t *testing.T) {
	assert.Empty(t, NewLayout().Dots(0, 5, 5))
}

func TestLayoutText(t *testing.T) {
	lines, err := EncodeText([]string{"A", "a"})
	require.NoError(t, err)

	l := NewLayout()
	got := l.Text(lines)
	require.Len(t, got, 4)

	// Capital-single indicator (dots 4 and 6) at column 0
	assert.Equal(t, DotPlacement{
		DotPosition: DotPosition{Dot: 4, X: 2.5, Y: 0},
		Column:      0, Line: 0, Indicator: CapitalSingle,
	}, got[0])
	assert.Equal(t, DotPlacement{
		DotPosition: DotPosition{Dot: 6, X: 2.5, Y: -5},
		Column:      0, Line: 0, Indicator: CapitalSingle,
	}, got[1])
	// 'A' at column 1
	assert.Equal(t, DotPlacement{
		DotPosition: DotPosition{Dot: 1, X: 6, Y: 0},
		Column:      1, Line: 0, Char: 'A',
	}, got[2])
	// 'a' on line 1
	assert.Equal(t, DotPlacement{
		DotPosition: DotPosition{Dot: 1, X: 0, Y: -10},
		Column:      0, Line: 1, Char: 'a',
	}, got[3])
}

func TestLayoutLineSkipsSpaces(t *testing.T) {
	el, err := EncodeLine("a a", 0)
	require.NoError(t, err)
	got := NewLayout().Line(el)
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].Column)
	assert.Equal(t, 2, got[1].Column)
	assert.Equal(t, 12.0, got[1].X)
}

func TestDotPlacementLabel(t *testing.T) {
	p := DotPlacement{DotPosition: DotPosition{Dot: 5}, Column: 3, Line: 1}
	assert.Equal(t, "dot_1_3_5", p.Label())
}

func TestLayoutBounds(t *testing.T) {
	l := NewLayout()

	_, ok := l.Bounds(nil)
	assert.False(t, ok)

	spaces, err := EncodeText([]string{"   "})
	require.NoError(t, err)
	_, ok = l.Bounds(spaces)
	assert.False(t, ok)

	lines, err := EncodeText([]string{"a", "  f"})
	require.NoError(t, err)
	r, ok := l.Bounds(lines)
	require.True(t, ok)
	// 'a' dot 1 at (0,0); 'f' (124) at column 2 of line 1: x 12..14.5, y -10..-12.5
	assert.Equal(t, Rect{MinX: -1, MinY: -13.5, MaxX: 15.5, MaxY: 1}, r)
	assert.Equal(t, 16.5, r.Dx())
	assert.Equal(t, 14.5, r.Dy())
	assert.False(t, r.Empty())
	assert.True(t, Rect{}.Empty())
}
