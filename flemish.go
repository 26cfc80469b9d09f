package txt2braille

// Flemish is the built-in table. Many characters are shared with French,
// Dutch, German and English Braille, but not all of them.
//
// Some patterns are shared on purpose: '!' and '+' (235), '"' and '=' (2356),
// and '€' with 'e' (15).
var Flemish = mustTable(NewCharacterTable("flemish", flemishChars(), map[Indicator]DotPattern{
	CapitalSingle: mustPattern("46"),
	CapitalSeries: mustPattern("45"),
	NumberPrefix:  mustPattern("3456"),
}))

// DefaultTable returns the table used when no other table is configured.
func DefaultTable() *CharacterTable {
	return Flemish
}

var flemishLetters = [26]string{
	"1",     // a
	"12",    // b
	"14",    // c
	"145",   // d
	"15",    // e
	"124",   // f
	"1245",  // g
	"125",   // h
	"24",    // i
	"245",   // j
	"13",    // k
	"123",   // l
	"134",   // m
	"1345",  // n
	"135",   // o
	"1234",  // p
	"12345", // q
	"1235",  // r
	"234",   // s
	"2345",  // t
	"136",   // u
	"1236",  // v
	"2456",  // w
	"1346",  // x
	"13456", // y
	"1356",  // z
}

var flemishPunctuation = map[rune]string{
	' ':  "",
	'-':  "36", // hyphen and minus
	',':  "2",
	';':  "23",
	'\'': "3",
	':':  "25",
	'!':  "235",
	'(':  "236",
	')':  "356",
	'"':  "2356",
	'?':  "26",
	'.':  "256",
	'*':  "35",
	'@':  "345",
	'€':  "15",
	'/':  "34", // slash, not the division sign
	'+':  "235",
	'=':  "2356",
}

func flemishChars() map[rune]DotPattern {
	chars := make(map[rune]DotPattern, 26+10+len(flemishPunctuation))
	for i, s := range flemishLetters {
		chars[rune('a'+i)] = mustPattern(s)
	}
	// 1-9 reuse a-i, 0 reuses j
	for d := 1; d <= 9; d++ {
		chars[rune('0'+d)] = chars[rune('a'+d-1)]
	}
	chars['0'] = chars['j']
	for r, s := range flemishPunctuation {
		chars[r] = mustPattern(s)
	}
	return chars
}

func mustTable(t *CharacterTable, err error) *CharacterTable {
	if err != nil {
		panic(err)
	}
	return t
}
