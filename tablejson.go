package txt2braille

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// TableData is the JSON form of a CharacterTable. Patterns use digit
// notation ("145"); the blank cell is "".
//
//	{
//	  "name": "flemish",
//	  "indicators": {"capital-single": "46", "capital-series": "45", "number": "3456"},
//	  "chars": {"a": "1", "b": "12", " ": ""}
//	}
type TableData struct {
	Name       string            `json:"name"`
	Indicators map[string]string `json:"indicators"`
	Chars      map[string]string `json:"chars"`
}

// ReadTableJSON decodes a table from JSON and validates it with
// NewCharacterTable.
func ReadTableJSON(r io.Reader) (*CharacterTable, error) {
	var data TableData
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("error decoding table JSON: %w", err)
	}
	return data.Table()
}

// Table converts the decoded form into a validated CharacterTable.
func (d TableData) Table() (*CharacterTable, error) {
	chars := make(map[rune]DotPattern, len(d.Chars))
	for key, dots := range d.Chars {
		if utf8.RuneCountInString(key) != 1 {
			return nil, fmt.Errorf("table %q: key %q must be a single character", d.Name, key)
		}
		r, _ := utf8.DecodeRuneInString(key)
		p, err := ParseDotPattern(dots)
		if err != nil {
			return nil, fmt.Errorf("table %q: character %q: %w", d.Name, key, err)
		}
		chars[r] = p
	}

	indicators := make(map[Indicator]DotPattern, len(d.Indicators))
	for key, dots := range d.Indicators {
		i, ok := parseIndicator(key)
		if !ok {
			return nil, fmt.Errorf("table %q: unknown indicator %q", d.Name, key)
		}
		p, err := ParseDotPattern(dots)
		if err != nil {
			return nil, fmt.Errorf("table %q: indicator %q: %w", d.Name, key, err)
		}
		indicators[i] = p
	}
	return NewCharacterTable(d.Name, chars, indicators)
}

// Data returns the JSON form of t, including derived uppercase entries.
func (t *CharacterTable) Data() TableData {
	d := TableData{
		Name:       t.name,
		Indicators: make(map[string]string, len(Indicators)),
		Chars:      make(map[string]string, len(t.chars)),
	}
	for _, i := range Indicators {
		d.Indicators[i.String()] = t.indicators[i].String()
	}
	for r, p := range t.chars {
		d.Chars[string(r)] = p.String()
	}
	return d
}

// WriteTableJSON writes t as indented JSON.
func WriteTableJSON(w io.Writer, t *CharacterTable) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(t.Data())
}

// LoadTable returns a built-in table by name, or reads a JSON table from
// the filesystem.
func LoadTable(nameOrPath string) (*CharacterTable, error) {
	if strings.EqualFold(nameOrPath, Flemish.Name()) {
		return Flemish, nil
	}
	f, err := os.Open(nameOrPath)
	if err != nil {
		return nil, fmt.Errorf("error opening table: %w", err)
	}
	defer f.Close()
	return ReadTableJSON(f)
}
