package txt2braille

import (
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"sync"
)

// EncodedCell is one Braille cell of encoded output. Literal cells carry the
// source character in Char; inserted cells carry their kind in Indicator
// and a zero Char.
type EncodedCell struct {
	Dots      DotPattern
	Column    int
	Line      int
	Char      rune
	Indicator Indicator
}

// IsIndicator reports whether the cell was inserted by the encoder.
func (c EncodedCell) IsIndicator() bool {
	return c.Indicator != NoIndicator
}

// Label names the cell "<line> <column> <char>", or uses the indicator name
// in place of the character for inserted cells.
func (c EncodedCell) Label() string {
	if c.IsIndicator() {
		return fmt.Sprintf("%d %d %s", c.Line, c.Column, c.Indicator)
	}
	return fmt.Sprintf("%d %d %c", c.Line, c.Column, c.Char)
}

// EncodedLine is the ordered output for one input line. Cells[i].Column == i.
type EncodedLine struct {
	Line  int
	Text  string
	Cells []EncodedCell
}

// Width returns the number of columns the line occupies.
func (l EncodedLine) Width() int {
	return len(l.Cells)
}

// Label names the line "line <text>".
func (l EncodedLine) Label() string {
	return "line " + l.Text
}

// Encoder turns lines of text into Braille cells using a CharacterTable.
// An Encoder holds no per-call state and is safe for concurrent use.
type Encoder struct {
	table   *CharacterTable
	workers int
}

// EncoderOption is a functional option for configuring an Encoder.
type EncoderOption func(*Encoder)

// NewEncoder creates an Encoder. Defaults: the Flemish table and one worker
// per CPU for EncodeText.
func NewEncoder(opts ...EncoderOption) *Encoder {
	e := &Encoder{
		table:   DefaultTable(),
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WithTable sets the character table. A nil table keeps the default.
func WithTable(t *CharacterTable) EncoderOption {
	return func(e *Encoder) {
		if t != nil {
			e.table = t
		}
	}
}

// WithWorkers bounds how many lines EncodeText encodes at once. Values
// below 1 mean sequential encoding.
func WithWorkers(n int) EncoderOption {
	return func(e *Encoder) {
		if n < 1 {
			n = 1
		}
		e.workers = n
	}
}

// Table returns the table the encoder uses.
func (e *Encoder) Table() *CharacterTable {
	return e.table
}

// EncodeLine encodes a single line. lineIndex is recorded on every cell.
// An unsupported character aborts the whole line and no cells are
// returned.
func (e *Encoder) EncodeLine(line string, lineIndex int) (EncodedLine, error) {
	runes := []rune(line)
	cells := make([]EncodedCell, 0, len(runes)+len(runes)/4)
	state := newScanState()
	column := 0

	for i, cur := range runes {
		next := rune(padding)
		if i+1 < len(runes) {
			next = runes[i+1]
		}

		dots, err := e.table.Lookup(cur)
		if err != nil {
			return EncodedLine{}, &UnsupportedCharacterError{
				Char:   cur,
				Line:   lineIndex,
				Column: column,
				Offset: i,
			}
		}

		if ind := state.step(cur, next); ind != NoIndicator {
			cells = append(cells, EncodedCell{
				Dots:      e.table.Indicator(ind),
				Column:    column,
				Line:      lineIndex,
				Indicator: ind,
			})
			column++
		}
		cells = append(cells, EncodedCell{
			Dots:   dots,
			Column: column,
			Line:   lineIndex,
			Char:   cur,
		})
		column++
	}

	Logger().Debug("txt2braille: encoded line",
		slog.Int("line", lineIndex),
		slog.Int("chars", len(runes)),
		slog.Int("cells", len(cells)))
	return EncodedLine{Line: lineIndex, Text: line, Cells: cells}, nil
}

// EncodeText encodes lines, using the position in lines as the line index.
// Lines are encoded in parallel; if any line fails, the error of the lowest
// failing line index is returned together with a nil result.
func (e *Encoder) EncodeText(lines []string) ([]EncodedLine, error) {
	out, errs := e.encodeAll(lines)
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// EncodeEach encodes every line independently. errs[i] is non-nil when line
// i failed, in which case out[i] is the zero EncodedLine. Callers decide
// whether to keep the successful lines.
func (e *Encoder) EncodeEach(lines []string) (out []EncodedLine, errs []error) {
	out, errs = e.encodeAll(lines)
	for i, err := range errs {
		if err != nil {
			Logger().Warn("txt2braille: skipping line",
				slog.Int("line", i), slog.Any("error", err))
		}
	}
	return out, errs
}

// encodeAll runs EncodeLine for every line on up to e.workers goroutines.
// Lines are independent; only the scan within a line is sequential.
func (e *Encoder) encodeAll(lines []string) ([]EncodedLine, []error) {
	out := make([]EncodedLine, len(lines))
	errs := make([]error, len(lines))
	if e.workers <= 1 || len(lines) <= 1 {
		for i, line := range lines {
			out[i], errs[i] = e.EncodeLine(line, i)
		}
		return out, errs
	}

	sem := make(chan struct{}, e.workers)
	var wg sync.WaitGroup
	for i, line := range lines {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, line string) {
			defer wg.Done()
			defer func() { <-sem }()
			out[i], errs[i] = e.EncodeLine(line, i)
		}(i, line)
	}
	wg.Wait()
	return out, errs
}

var defaultEncoder = NewEncoder()

// EncodeLine encodes one line with the default encoder.
func EncodeLine(line string, lineIndex int) (EncodedLine, error) {
	return defaultEncoder.EncodeLine(line, lineIndex)
}

// EncodeText encodes lines with the default encoder.
func EncodeText(lines []string) ([]EncodedLine, error) {
	return defaultEncoder.EncodeText(lines)
}

// SplitLines splits text on "\n" or "\r\n". A single trailing newline does
// not produce an empty last line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
