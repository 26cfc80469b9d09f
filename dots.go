package txt2braille

import (
	"fmt"
	"math/bits"
	"strings"
)

const (
	// CellDots is the number of dot positions in a Braille cell.
	CellDots = 6
	// CellColumns and CellRows describe the 2x3 arrangement of a cell:
	//
	//	1 4
	//	2 5
	//	3 6
	CellColumns = 2
	CellRows    = 3
)

// DotPattern represents the raised dots of one Braille cell as a 6-bit mask.
// Bit n-1 is set when dot n is raised.
type DotPattern uint8

// allDots masks the bits that may legally be set in a DotPattern.
const allDots DotPattern = 1<<CellDots - 1

// NewDotPattern builds a pattern from dot indices in [1,6].
func NewDotPattern(dots ...int) (DotPattern, error) {
	var p DotPattern
	for _, d := range dots {
		if d < 1 || d > CellDots {
			return 0, fmt.Errorf("%w: %d", ErrInvalidDot, d)
		}
		p.setDot(d, true)
	}
	return p, nil
}

// ParseDotPattern parses the conventional digit notation, e.g. "145" for
// dots 1, 4 and 5. The empty string is the blank cell.
func ParseDotPattern(s string) (DotPattern, error) {
	var p DotPattern
	for _, r := range s {
		if r < '1' || r > '0'+CellDots {
			return 0, fmt.Errorf("%w: %q in %q", ErrInvalidDot, r, s)
		}
		p.setDot(int(r-'0'), true)
	}
	return p, nil
}

// mustPattern is ParseDotPattern for literal tables.
func mustPattern(s string) DotPattern {
	p, err := ParseDotPattern(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Has reports whether dot d is raised. Out of range dots are never raised.
func (p DotPattern) Has(d int) bool {
	if d < 1 || d > CellDots {
		return false
	}
	return p&(1<<(d-1)) != 0
}

// setDot raises or lowers dot d, ignoring out of range indices
func (p *DotPattern) setDot(d int, raised bool) {
	if d < 1 || d > CellDots {
		return
	}
	if raised {
		*p |= 1 << (d - 1)
	} else {
		*p &= ^(1 << (d - 1))
	}
}

// Dots returns the raised dot indices in ascending order.
func (p DotPattern) Dots() []int {
	dots := make([]int, 0, p.Count())
	for d := 1; d <= CellDots; d++ {
		if p.Has(d) {
			dots = append(dots, d)
		}
	}
	return dots
}

// Count returns the number of raised dots.
func (p DotPattern) Count() int {
	return bits.OnesCount8(uint8(p & allDots))
}

// IsBlank reports whether no dot is raised.
func (p DotPattern) IsBlank() bool {
	return p&allDots == 0
}

// Valid reports whether only dots 1-6 are set.
func (p DotPattern) Valid() bool {
	return p&^allDots == 0
}

// String returns the digit notation of the pattern ("145"), or "" for a
// blank cell.
func (p DotPattern) String() string {
	var sb strings.Builder
	for _, d := range p.Dots() {
		sb.WriteByte(byte('0' + d))
	}
	return sb.String()
}

// dotColumn returns 0 for the left column (dots 1-3) and 1 for the right
// column (dots 4-6).
func dotColumn(d int) int {
	return (d - 1) / CellRows
}

// dotRow returns 0, 1 or 2 for the top, middle and bottom row.
func dotRow(d int) int {
	return (d - 1) % CellRows
}
