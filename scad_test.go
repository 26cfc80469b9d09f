package txt2braille

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSCAD(t *testing.T) {
	lines, err := EncodeText([]string{"A b", "1"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSCAD(&buf, lines, NewLayout(), SCADOptions{Segments: 24}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "// generated by txt2braille, 2 lines\n"))
	assert.Contains(t, out, "$fn = 24;\n")
	assert.Contains(t, out, "module dot() {")
	assert.Contains(t, out, "sphere(r = 1);")
	assert.Contains(t, out, "translate([0, 0, -1]) cube([2, 2, 2], center = true);")

	assert.Contains(t, out, "// line A b\nunion() {\n")
	assert.Contains(t, out, "  // 0 0 capital-single\n  union() {\n")
	assert.Contains(t, out, "    translate([2.5, -5, 0]) dot(); // dot_0_0_6\n")
	assert.Contains(t, out, "  // 0 3 b\n")
	assert.Contains(t, out, "    translate([18, -2.5, 0]) dot(); // dot_0_3_2\n")
	assert.Contains(t, out, "// line 1\n")
	assert.Contains(t, out, "    translate([0, -15, 0]) dot(); // dot_1_0_3\n")

	// the space at column 2 has no group
	assert.NotContains(t, out, "// 0 2")
	assert.Equal(t, 2+1+2+4+1, strings.Count(out, "dot();"))
}

func TestWriteSCADDefaultSegments(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSCAD(&buf, nil, NewLayout(WithDotSize(0.75)), SCADOptions{}))
	assert.NotContains(t, buf.String(), "$fn")
	assert.Contains(t, buf.String(), "sphere(r = 0.75);")
	assert.NotContains(t, buf.String(), "union()")
}

func TestSaveSCAD(t *testing.T) {
	lines, err := EncodeText([]string{"a"})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "plate.scad")
	require.NoError(t, SaveSCAD(path, lines, NewLayout(), SCADOptions{}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "dot_0_0_1")

	err = SaveSCAD(filepath.Join(t.TempDir(), "missing", "plate.scad"), lines, NewLayout(), SCADOptions{})
	assert.Error(t, err)
}
