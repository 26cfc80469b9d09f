package txt2braille

import "unicode"

// padding stands in for the characters before the start and after the end
// of a line, so every character has a neighbour on both sides.
const padding = ' '

type scanMode int

const (
	modeNormal scanMode = iota
	modeCapsRun
)

// scanState is carried from one character to the next while a single line
// is encoded.
type scanState struct {
	prev rune
	mode scanMode
}

func newScanState() scanState {
	return scanState{prev: padding, mode: modeNormal}
}

// IndicatorFor decides which indicator, if any, must be inserted before cur
// given its neighbours in the line. At most one indicator applies
// since no character is both a digit and an uppercase letter.
//
//   - An uppercase letter after a non-uppercase character starts a capital
//     event: CapitalSeries when next is uppercase too, CapitalSingle
//     otherwise.
//   - A digit after anything but a digit or a comma starts a number, so
//     "1,000" carries a single NumberPrefix.
//   - Spaces never carry an indicator.
func IndicatorFor(prev, cur, next rune) Indicator {
	switch {
	case cur == padding:
		return NoIndicator
	case unicode.IsUpper(cur):
		if unicode.IsUpper(prev) {
			return NoIndicator
		}
		if unicode.IsUpper(next) {
			return CapitalSeries
		}
		return CapitalSingle
	case unicode.IsDigit(cur):
		if unicode.IsDigit(prev) || prev == ',' {
			return NoIndicator
		}
		return NumberPrefix
	}
	return NoIndicator
}

// step applies the indicator rules to cur and advances the state.
func (s *scanState) step(cur, next rune) Indicator {
	ind := IndicatorFor(s.prev, cur, next)
	switch {
	case ind == CapitalSeries:
		s.mode = modeCapsRun
	case !unicode.IsUpper(cur):
		s.mode = modeNormal
	}
	s.prev = cur
	return ind
}
