package txt2braille

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDotPatternBitOperations tests setting, clearing and reading dots
func TestDotPatternBitOperations(t *testing.T) {
	var p DotPattern

	p.setDot(1, true)
	assert.True(t, p.Has(1))

	p.setDot(6, true)
	assert.True(t, p.Has(6))
	assert.Equal(t, DotPattern(0b100001), p)

	p.setDot(1, false)
	assert.False(t, p.Has(1))

	// Out of range dots are ignored
	p.setDot(7, true)
	p.setDot(0, true)
	assert.False(t, p.Has(7))
	assert.False(t, p.Has(0))
	assert.Equal(t, []int{6}, p.Dots())
}

func TestParseDotPattern(t *testing.T) {
	cases := []struct {
		in   string
		dots []int
	}{
		{"", []int{}},
		{"1", []int{1}},
		{"145", []int{1, 4, 5}},
		{"541", []int{1, 4, 5}},
		{"123456", []int{1, 2, 3, 4, 5, 6}},
		{"3456", []int{3, 4, 5, 6}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			p, err := ParseDotPattern(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.dots, p.Dots())
			assert.Equal(t, len(tc.dots), p.Count())
			assert.Equal(t, len(tc.dots) == 0, p.IsBlank())
		})
	}
}

func TestParseDotPatternErrors(t *testing.T) {
	for _, in := range []string{"0", "7", "12a", "1 2", "9"} {
		_, err := ParseDotPattern(in)
		assert.ErrorIs(t, err, ErrInvalidDot, "input %q", in)
	}
}

func TestNewDotPattern(t *testing.T) {
	p, err := NewDotPattern(5, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, "145", p.String())

	_, err = NewDotPattern(1, 7)
	assert.ErrorIs(t, err, ErrInvalidDot)
	_, err = NewDotPattern(0)
	assert.ErrorIs(t, err, ErrInvalidDot)
}

func TestDotPatternString(t *testing.T) {
	assert.Equal(t, "", DotPattern(0).String())
	assert.Equal(t, "3456", mustPattern("6543").String())
}

func TestDotPatternValid(t *testing.T) {
	assert.True(t, DotPattern(0).Valid())
	assert.True(t, allDots.Valid())
	assert.False(t, DotPattern(1<<6).Valid())
	assert.False(t, DotPattern(0xff).Valid())
	// Stray high bits do not count as dots
	assert.Equal(t, 6, DotPattern(0xff).Count())
}

func TestDotRowAndColumn(t *testing.T) {
	rows := map[int]int{1: 0, 2: 1, 3: 2, 4: 0, 5: 1, 6: 2}
	cols := map[int]int{1: 0, 2: 0, 3: 0, 4: 1, 5: 1, 6: 1}
	for d := 1; d <= CellDots; d++ {
		assert.Equal(t, rows[d], dotRow(d), "row of dot %d", d)
		assert.Equal(t, cols[d], dotColumn(d), "column of dot %d", d)
	}
}
