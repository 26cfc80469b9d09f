package txt2braille

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// SCADOptions controls WriteSCAD.
type SCADOptions struct {
	// Segments sets OpenSCAD's $fn for the dot spheres. Zero leaves the
	// OpenSCAD default.
	Segments int
}

// WriteSCAD writes an OpenSCAD model with one hemisphere of radius
// layout.DotSize per raised dot, flat side down on z=0. Dots are grouped in
// a union per cell and cells in a union per line; every group is labelled
// with a comment. Blank cells produce no group.
func WriteSCAD(w io.Writer, lines []EncodedLine, layout Layout, opts SCADOptions) error {
	bw := bufio.NewWriter(w)
	r := layout.DotSize

	fmt.Fprintf(bw, "// generated by txt2braille, %d lines\n", len(lines))
	if opts.Segments > 0 {
		fmt.Fprintf(bw, "$fn = %d;\n", opts.Segments)
	}
	fmt.Fprintf(bw, "\nmodule dot() {\n")
	fmt.Fprintf(bw, "  difference() {\n")
	fmt.Fprintf(bw, "    sphere(r = %g);\n", r)
	fmt.Fprintf(bw, "    translate([0, 0, %g]) cube([%g, %g, %g], center = true);\n", -r, 2*r, 2*r, 2*r)
	fmt.Fprintf(bw, "  }\n}\n")

	for _, el := range lines {
		fmt.Fprintf(bw, "\n// %s\nunion() {\n", el.Label())
		for _, c := range el.Cells {
			dots := layout.Cell(c)
			if len(dots) == 0 {
				continue
			}
			fmt.Fprintf(bw, "  // %s\n  union() {\n", c.Label())
			for _, p := range dots {
				fmt.Fprintf(bw, "    translate([%g, %g, 0]) dot(); // %s\n", p.X, p.Y, p.Label())
			}
			fmt.Fprintf(bw, "  }\n")
		}
		fmt.Fprintf(bw, "}\n")
	}
	return bw.Flush()
}

// SaveSCAD writes the OpenSCAD model for lines to path.
func SaveSCAD(path string, lines []EncodedLine, layout Layout, opts SCADOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := WriteSCAD(f, lines, layout, opts); err != nil {
		f.Close()
		return fmt.Errorf("failed to write model: %w", err)
	}
	return f.Close()
}
