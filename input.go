package txt2braille

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// ErrUnknownEncoding indicates an input encoding name ReadLines does not know.
var ErrUnknownEncoding = errors.New("txt2braille: unknown text encoding")

// InputOptions controls how ReadLines decodes text.
type InputOptions struct {
	// Encoding names the input code page: "utf-8" (default),
	// "windows-1252", "iso-8859-1" or "iso-8859-15". The legacy code pages
	// are the usual source of '€' in older documents.
	Encoding string
	// FoldWidth maps full-width forms such as 'Ａ' to their ASCII
	// counterparts.
	FoldWidth bool
}

// Encodings lists the names accepted by InputOptions.Encoding.
var Encodings = []string{"utf-8", "windows-1252", "iso-8859-1", "iso-8859-15"}

func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return unicode.UTF8BOM, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1, nil
	case "iso-8859-15", "latin9":
		return charmap.ISO8859_15, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
}

// ReadLines decodes r into lines ready for encoding. Text is converted to
// UTF-8 and composed to NFC so that "e" followed by a combining accent is
// looked up as one character. Lines are split with SplitLines.
func ReadLines(r io.Reader, opts InputOptions) ([]string, error) {
	enc, err := lookupEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}
	chain := []transform.Transformer{enc.NewDecoder(), norm.NFC}
	if opts.FoldWidth {
		chain = append(chain, width.Fold)
	}
	tr := transform.NewReader(r, transform.Chain(chain...))

	text, err := io.ReadAll(tr)
	if err != nil {
		return nil, fmt.Errorf("error reading text: %w", err)
	}
	return SplitLines(string(text)), nil
}
