package txt2braille

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"math"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/vector"

	"github.com/wbrown/txt2braille/imageutil"
)

// PreviewOptions controls RenderPreview.
type PreviewOptions struct {
	Scale    float64 // pixels per layout unit
	Margin   float64 // layout units of empty border
	Caption  bool    // print each line's source text below its cells
	FontSize float64 // caption size in pixels
	FG, BG   color.Color

	// Applied by SavePreview only.
	MaxWidth int  // shrink wider images to this many pixels, 0 keeps the size
	Gray     bool // save as 8-bit grayscale
}

// DefaultPreviewOptions returns 8 pixels per unit, a 4 unit margin, black
// dots on white and no captions.
func DefaultPreviewOptions() PreviewOptions {
	return PreviewOptions{
		Scale:    8,
		Margin:   4,
		FontSize: 12,
		FG:       color.Black,
		BG:       color.White,
	}
}

// captionFont parses the embedded Go Regular font once.
var captionFont = sync.OnceValues(func() (*truetype.Font, error) {
	return freetype.ParseFont(goregular.TTF)
})

// previewFrame maps layout coordinates (Y up) to pixels (Y down).
type previewFrame struct {
	bounds Rect
	margin float64
	scale  float64
}

func (f previewFrame) px(x, y float64) (float32, float32) {
	return float32((x - f.bounds.MinX + f.margin) * f.scale),
		float32((f.bounds.MaxY - y + f.margin) * f.scale)
}

func (f previewFrame) size() (w, h int) {
	w = int(math.Ceil((f.bounds.Dx() + 2*f.margin) * f.scale))
	h = int(math.Ceil((f.bounds.Dy() + 2*f.margin) * f.scale))
	return max(w, 1), max(h, 1)
}

// RenderPreview draws one filled disc of radius layout.DotSize per raised
// dot, fitted to the extent of lines.
func RenderPreview(lines []EncodedLine, layout Layout, opts PreviewOptions) (*image.RGBA, error) {
	if opts.Scale <= 0 {
		return nil, fmt.Errorf("preview scale must be positive, got %v", opts.Scale)
	}
	if opts.FG == nil {
		opts.FG = color.Black
	}
	if opts.BG == nil {
		opts.BG = color.White
	}

	bounds, _ := layout.Bounds(lines)

	var face font.Face
	var ttf *truetype.Font
	if opts.Caption {
		var err error
		ttf, err = captionFont()
		if err != nil {
			return nil, fmt.Errorf("failed to parse caption font: %w", err)
		}
		face = truetype.NewFace(ttf, &truetype.Options{
			Size:    opts.FontSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		defer face.Close()
		bounds = captionBounds(bounds, lines, layout, face, opts)
	}

	frame := previewFrame{bounds: bounds, margin: opts.Margin, scale: opts.Scale}
	w, h := frame.size()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.BG), image.Point{}, draw.Src)

	placements := layout.Text(lines)
	z := vector.NewRasterizer(w, h)
	radius := float32(layout.DotSize * opts.Scale)
	for _, p := range placements {
		cx, cy := frame.px(p.X, p.Y)
		addCircle(z, cx, cy, radius)
	}
	z.Draw(img, img.Bounds(), image.NewUniform(opts.FG), image.Point{})

	if opts.Caption {
		ctx := freetype.NewContext()
		ctx.SetDPI(72)
		ctx.SetFont(ttf)
		ctx.SetFontSize(opts.FontSize)
		ctx.SetClip(img.Bounds())
		ctx.SetDst(img)
		ctx.SetSrc(image.NewUniform(opts.FG))
		ctx.SetHinting(font.HintingFull)
		for _, el := range lines {
			x, y := frame.px(0, captionBaseline(el.Line, layout, opts))
			if _, err := ctx.DrawString(el.Text, freetype.Pt(int(x), int(y))); err != nil {
				return nil, fmt.Errorf("failed to draw caption for line %d: %w", el.Line, err)
			}
		}
	}

	Logger().Debug("txt2braille: rendered preview",
		slog.Int("lines", len(lines)),
		slog.Int("dots", len(placements)),
		slog.Int("width", w),
		slog.Int("height", h))
	return img, nil
}

// captionBaseline returns the layout Y of a caption baseline: one font
// height below the bottom dot row of the line.
func captionBaseline(line int, layout Layout, opts PreviewOptions) float64 {
	bottom := -layout.DotSeparation*float64(CellRows-1) - layout.DotSize
	return bottom - opts.FontSize/opts.Scale - layout.LineSeparation*float64(line)
}

// captionBounds grows r to include every caption.
func captionBounds(r Rect, lines []EncodedLine, layout Layout, face font.Face, opts PreviewOptions) Rect {
	if len(lines) == 0 {
		return r
	}
	r.MinX = math.Min(r.MinX, 0)
	descent := float64(face.Metrics().Descent.Ceil()) / opts.Scale
	for _, el := range lines {
		width := float64(font.MeasureString(face, el.Text).Ceil()) / opts.Scale
		r.MaxX = math.Max(r.MaxX, width)
		r.MinY = math.Min(r.MinY, captionBaseline(el.Line, layout, opts)-descent)
	}
	return r
}

// addCircle appends a closed circle approximated by four cubic Béziers.
func addCircle(z *vector.Rasterizer, cx, cy, r float32) {
	const kappa = 0.5522847498
	k := kappa * r
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()
}

// SavePreview renders lines, applies MaxWidth and Gray, and writes the
// image to path. The extension selects the format, see imageutil.SaveImage.
func SavePreview(path string, lines []EncodedLine, layout Layout, opts PreviewOptions) error {
	img, err := RenderPreview(lines, layout, opts)
	if err != nil {
		return err
	}
	out := imageutil.FitWidth(img, opts.MaxWidth, imageutil.InterpolationArea)
	if opts.Gray {
		out = imageutil.Grayscale(out)
	}
	return imageutil.SaveImage(out, path)
}
