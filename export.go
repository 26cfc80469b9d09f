package txt2braille

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

// csvHeader names the columns written by WriteCSV.
var csvHeader = []string{"line", "column", "char", "indicator", "dot", "x", "y"}

// placementRecord is the exported form of a DotPlacement. Char is empty for
// indicator cells.
type placementRecord struct {
	Line      int     `json:"line"`
	Column    int     `json:"column"`
	Char      string  `json:"char,omitempty"`
	Indicator string  `json:"indicator,omitempty"`
	Dot       int     `json:"dot"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
}

func newPlacementRecord(p DotPlacement) placementRecord {
	rec := placementRecord{
		Line:   p.Line,
		Column: p.Column,
		Dot:    p.Dot,
		X:      p.X,
		Y:      p.Y,
	}
	if p.Indicator != NoIndicator {
		rec.Indicator = p.Indicator.String()
	} else {
		rec.Char = string(p.Char)
	}
	return rec
}

// WriteCSV writes one row per dot with a header row.
func WriteCSV(w io.Writer, placements []DotPlacement) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range placements {
		rec := newPlacementRecord(p)
		row := []string{
			strconv.Itoa(rec.Line),
			strconv.Itoa(rec.Column),
			rec.Char,
			rec.Indicator,
			strconv.Itoa(rec.Dot),
			strconv.FormatFloat(rec.X, 'g', -1, 64),
			strconv.FormatFloat(rec.Y, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the placements as an indented JSON array.
func WriteJSON(w io.Writer, placements []DotPlacement) error {
	recs := make([]placementRecord, len(placements))
	for i, p := range placements {
		recs[i] = newPlacementRecord(p)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(recs)
}
