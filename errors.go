package txt2braille

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedCharacter indicates a character has no entry in the
	// character table.
	ErrUnsupportedCharacter = errors.New("txt2braille: unsupported character")
	// ErrInvalidDot indicates a dot index outside 1-6.
	ErrInvalidDot = errors.New("txt2braille: dot index must be between 1 and 6")
	// ErrMissingIndicator indicates a table lacks one of the three indicator
	// patterns.
	ErrMissingIndicator = errors.New("txt2braille: table must define every indicator")
	// ErrCaseMismatch indicates an uppercase letter mapped to a pattern that
	// differs from its lowercase letter.
	ErrCaseMismatch = errors.New("txt2braille: uppercase and lowercase patterns differ")
	// ErrEmptyTable indicates a table without any characters.
	ErrEmptyTable = errors.New("txt2braille: table has no characters")
)

// UnsupportedCharacterError reports where an unsupported character was found.
// Line and Column are -1 when the error comes from a bare table lookup.
type UnsupportedCharacterError struct {
	Char   rune
	Line   int // line index passed to the encoder
	Column int // column the character would have started at
	Offset int // rune offset within the line
}

func (e *UnsupportedCharacterError) Error() string {
	if e.Line < 0 {
		return fmt.Sprintf("%v: %q (%U)", ErrUnsupportedCharacter, e.Char, e.Char)
	}
	return fmt.Sprintf("%v: %q (%U) at line %d, column %d",
		ErrUnsupportedCharacter, e.Char, e.Char, e.Line, e.Column)
}

// Unwrap lets errors.Is match ErrUnsupportedCharacter.
func (e *UnsupportedCharacterError) Unwrap() error {
	return ErrUnsupportedCharacter
}
