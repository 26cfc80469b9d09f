// Package txt2braille lays out text as six-dot Braille cells.
//
// Text is encoded line by line: every character is looked up in a
// CharacterTable and the encoder inserts capital and number indicators as
// separate cells. A Layout then turns each raised dot into an (x, y)
// coordinate that a renderer can draw, print or emboss:
//
//	lines, err := txt2braille.EncodeText([]string{"Hello 2024"})
//	if err != nil {
//		return err
//	}
//	dots := txt2braille.NewLayout().Text(lines)
//
// RenderPreview, WriteSCAD, WriteCSV and WriteJSON are ready-made
// renderers for the flat dot list.
package txt2braille

// DemoLines exercises letters, capital runs, punctuation and numbers of the
// Flemish table.
var DemoLines = []string{
	"quick brown fox jumps",
	"Over The laZy doG",
	"(haakjes) komma, punt.",
	"quote' dub: pkom; vr?",
	"ALLES HOOFDLETTERS!!!",
	"tel 1 2 3 of 1,2,3",
	"4+2=6 zwart/wit **",
	"pol@brol 1/2 €9.50",
}
