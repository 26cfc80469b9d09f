package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/wbrown/txt2braille"
	"github.com/wbrown/txt2braille/imageutil"
)

func main() {
	inputFile := flag.String("input", "",
		"Path to the input text file, '-' for stdin (default: demo text)")
	outputFile := flag.String("output", "",
		"Path to save the output; the extension selects the format "+
			"(png, jpg, gif, tif, bmp, scad, csv, json). Empty prints CSV to stdout")
	encodingName := flag.String("encoding", "utf-8",
		"Input encoding: "+strings.Join(txt2braille.Encodings, ", "))
	foldWidth := flag.Bool("foldwidth", false,
		"Fold full-width characters to ASCII before encoding")
	tableName := flag.String("table", "flemish",
		"Character table: 'flemish' (built in) or path to a JSON table")
	dumpTable := flag.String("dumptable", "",
		"Write the active character table as JSON to this path ('-' for stdout) and exit")
	dotSize := flag.Float64("dotsize", txt2braille.DefaultDotSize,
		"Radius of a dot")
	dotSep := flag.Float64("dotsep", txt2braille.DefaultDotSeparation,
		"Distance between dots within a cell")
	charSep := flag.Float64("charsep", txt2braille.DefaultCharSeparation,
		"Distance between cells")
	lineSep := flag.Float64("linesep", txt2braille.DefaultLineSeparation,
		"Distance between lines")
	scale := flag.Float64("scale", 8,
		"Pixels per unit for image output")
	caption := flag.Bool("caption", false,
		"Print the source text under each line in image output")
	maxWidth := flag.Int("maxwidth", 0,
		"Shrink image output to at most this many pixels wide, 0 to disable")
	gray := flag.Bool("gray", false,
		"Save image output as grayscale")
	segments := flag.Int("segments", 24,
		"Sphere segments ($fn) for OpenSCAD output")
	keepGoing := flag.Bool("keepgoing", false,
		"Skip lines with unsupported characters instead of failing")
	workers := flag.Int("workers", 0,
		"Lines encoded in parallel, 0 for one per CPU")
	verbose := flag.Bool("v", false,
		"Log debug output to stderr")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	txt2braille.SetLogger(logger)

	table, err := txt2braille.LoadTable(*tableName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading table: %v\n", err)
		os.Exit(1)
	}

	if *dumpTable != "" {
		if err := writeTable(*dumpTable, table); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing table: %v\n", err)
			os.Exit(1)
		}
		return
	}

	beginInit := time.Now()
	lines, err := readInput(*inputFile, txt2braille.InputOptions{
		Encoding:  *encodingName,
		FoldWidth: *foldWidth,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	encOpts := []txt2braille.EncoderOption{txt2braille.WithTable(table)}
	if *workers > 0 {
		encOpts = append(encOpts, txt2braille.WithWorkers(*workers))
	}
	enc := txt2braille.NewEncoder(encOpts...)

	var encoded []txt2braille.EncodedLine
	if *keepGoing {
		all, errs := enc.EncodeEach(lines)
		// EncodeEach logs the skipped lines
		for i, lineErr := range errs {
			if lineErr == nil {
				encoded = append(encoded, all[i])
			}
		}
	} else {
		encoded, err = enc.EncodeText(lines)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding text: %v\n", err)
			os.Exit(1)
		}
	}
	endEncode := time.Now()

	layout := txt2braille.NewLayout(
		txt2braille.WithDotSize(*dotSize),
		txt2braille.WithDotSeparation(*dotSep),
		txt2braille.WithCharSeparation(*charSep),
		txt2braille.WithLineSeparation(*lineSep),
	)

	if err := writeOutput(*outputFile, encoded, layout, outputOptions{
		scale:    *scale,
		caption:  *caption,
		maxWidth: *maxWidth,
		gray:     *gray,
		segments: *segments,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}

	logger.Info("done",
		slog.String("table", table.Name()),
		slog.Int("lines", len(encoded)),
		slog.Int("dots", len(layout.Text(encoded))),
		slog.Duration("encode", endEncode.Sub(beginInit)),
		slog.Duration("total", time.Since(beginInit)))
}

// readInput reads the lines to encode. An empty path selects the demo text.
func readInput(path string, opts txt2braille.InputOptions) ([]string, error) {
	switch path {
	case "":
		return txt2braille.DemoLines, nil
	case "-":
		return txt2braille.ReadLines(os.Stdin, opts)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return txt2braille.ReadLines(f, opts)
}

func writeTable(path string, table *txt2braille.CharacterTable) error {
	if path == "-" {
		return txt2braille.WriteTableJSON(os.Stdout, table)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := txt2braille.WriteTableJSON(f, table); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

type outputOptions struct {
	scale    float64
	caption  bool
	maxWidth int
	gray     bool
	segments int
}

// writeOutput dispatches on the extension of path.
func writeOutput(
	path string,
	lines []txt2braille.EncodedLine,
	layout txt2braille.Layout,
	opts outputOptions,
) error {
	if path == "" {
		return txt2braille.WriteCSV(os.Stdout, layout.Text(lines))
	}
	if imageutil.IsImagePath(path) {
		previewOpts := txt2braille.DefaultPreviewOptions()
		previewOpts.Scale = opts.scale
		previewOpts.Caption = opts.caption
		previewOpts.MaxWidth = opts.maxWidth
		previewOpts.Gray = opts.gray
		return txt2braille.SavePreview(path, lines, layout, previewOpts)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".scad":
		return txt2braille.SaveSCAD(path, lines, layout,
			txt2braille.SCADOptions{Segments: opts.segments})
	case ".csv":
		return writeFile(path, func(w io.Writer) error {
			return txt2braille.WriteCSV(w, layout.Text(lines))
		})
	case ".json":
		return writeFile(path, func(w io.Writer) error {
			return txt2braille.WriteJSON(w, layout.Text(lines))
		})
	}
	return fmt.Errorf("unsupported output format %q", filepath.Ext(path))
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
