package imageutil

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom, the best choice for shrinking
	// antialiased dots.
	InterpolationArea Interpolation = iota
	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear
	// InterpolationNearest keeps hard pixel edges.
	InterpolationNearest
)

func (i Interpolation) scaler() draw.Scaler {
	switch i {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationNearest:
		return draw.NearestNeighbor
	}
	return draw.CatmullRom
}

// Resize scales img to width x height.
func Resize(img image.Image, width, height int, interp Interpolation) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	interp.scaler().Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// FitWidth shrinks img to at most maxWidth pixels wide, keeping the aspect
// ratio. Images already narrow enough, and maxWidth <= 0, return img as is.
func FitWidth(img image.Image, maxWidth int, interp Interpolation) image.Image {
	b := img.Bounds()
	if maxWidth <= 0 || b.Dx() <= maxWidth {
		return img
	}
	height := int(float64(b.Dy()) * float64(maxWidth) / float64(b.Dx()))
	return Resize(img, maxWidth, max(height, 1), interp)
}

// Grayscale converts img using the BT.601 luminance weights
// Y = 0.299*R + 0.587*G + 0.114*B.
func Grayscale(img image.Image) *image.Gray {
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			// integer math, rounded
			lum := (299*int(c.R) + 587*int(c.G) + 114*int(c.B) + 500) / 1000
			gray.SetGray(x-b.Min.X, y-b.Min.Y, color.Gray{Y: uint8(min(lum, 255))})
		}
	}
	return gray
}
