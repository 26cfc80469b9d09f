package txt2braille

import (
	"fmt"
	"sort"
	"unicode"
)

// Indicator is a prefix cell inserted by the encoder. Indicators have their
// own patterns in a CharacterTable and are never produced by looking up a
// character of the input text.
type Indicator int

const (
	// NoIndicator marks a cell that carries a literal character.
	NoIndicator Indicator = iota
	// CapitalSingle precedes a single uppercase letter.
	CapitalSingle
	// CapitalSeries precedes a run of two or more uppercase letters.
	CapitalSeries
	// NumberPrefix precedes the first digit of a number.
	NumberPrefix
)

// indicatorCount sizes the indicator array of a CharacterTable.
const indicatorCount = int(NumberPrefix) + 1

// Indicators lists the indicator kinds every table must define.
var Indicators = []Indicator{CapitalSingle, CapitalSeries, NumberPrefix}

func (i Indicator) String() string {
	switch i {
	case NoIndicator:
		return "none"
	case CapitalSingle:
		return "capital-single"
	case CapitalSeries:
		return "capital-series"
	case NumberPrefix:
		return "number"
	}
	return fmt.Sprintf("Indicator(%d)", int(i))
}

// parseIndicator is the inverse of Indicator.String for the three
// insertable kinds.
func parseIndicator(s string) (Indicator, bool) {
	for _, i := range Indicators {
		if i.String() == s {
			return i, true
		}
	}
	return NoIndicator, false
}

// CharacterTable maps input characters to dot patterns for one Braille
// dialect. A table is immutable once built and safe for concurrent use.
type CharacterTable struct {
	name       string
	chars      map[rune]DotPattern
	indicators [indicatorCount]DotPattern
}

// NewCharacterTable validates and copies chars and indicators into a new
// table. Uppercase letters missing from chars inherit the pattern of their
// lowercase letter; an explicit uppercase entry must match it.
func NewCharacterTable(
	name string,
	chars map[rune]DotPattern,
	indicators map[Indicator]DotPattern,
) (*CharacterTable, error) {
	if len(chars) == 0 {
		return nil, ErrEmptyTable
	}
	t := &CharacterTable{
		name:  name,
		chars: make(map[rune]DotPattern, len(chars)*2),
	}
	for r, p := range chars {
		if !p.Valid() {
			return nil, fmt.Errorf("%w: pattern %#x for %q", ErrInvalidDot, uint8(p), r)
		}
		t.chars[r] = p
	}

	// Case is carried by indicators only, so both cases share a pattern
	for r, p := range chars {
		if !unicode.IsLower(r) {
			continue
		}
		upper := unicode.ToUpper(r)
		if upper == r {
			continue
		}
		if existing, ok := t.chars[upper]; ok {
			if existing != p {
				return nil, fmt.Errorf("%w: %q is %s, %q is %s",
					ErrCaseMismatch, r, p, upper, existing)
			}
			continue
		}
		t.chars[upper] = p
	}

	for _, i := range Indicators {
		p, ok := indicators[i]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingIndicator, i)
		}
		if !p.Valid() {
			return nil, fmt.Errorf("%w: pattern %#x for %s", ErrInvalidDot, uint8(p), i)
		}
		t.indicators[i] = p
	}
	return t, nil
}

// Name returns the dialect name given at construction.
func (t *CharacterTable) Name() string {
	return t.name
}

// Lookup returns the pattern for r. Characters without an entry fail with an
// *UnsupportedCharacterError that matches ErrUnsupportedCharacter.
func (t *CharacterTable) Lookup(r rune) (DotPattern, error) {
	p, ok := t.chars[r]
	if !ok {
		return 0, &UnsupportedCharacterError{Char: r, Line: -1, Column: -1, Offset: -1}
	}
	return p, nil
}

// Supports reports whether r has an entry.
func (t *CharacterTable) Supports(r rune) bool {
	_, ok := t.chars[r]
	return ok
}

// Indicator returns the pattern of an indicator kind. NoIndicator and
// unknown kinds yield the blank pattern.
func (t *CharacterTable) Indicator(i Indicator) DotPattern {
	if i <= NoIndicator || int(i) >= indicatorCount {
		return 0
	}
	return t.indicators[i]
}

// Chars returns every supported character in ascending order.
func (t *CharacterTable) Chars() []rune {
	out := make([]rune, 0, len(t.chars))
	for r := range t.chars {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the number of supported characters.
func (t *CharacterTable) Len() int {
	return len(t.chars)
}
