// Package imageutil samples images against a named color table and draws
// PNG swatches of lookup results.
package imageutil

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/wbrown/namedcolor"
)

// RGBAImage wraps image.RGBA with convenience methods for pixel access.
type RGBAImage struct {
	*image.RGBA
}

// NewRGBAImage creates a new RGBAImage with the specified dimensions.
func NewRGBAImage(width, height int) *RGBAImage {
	return &RGBAImage{
		RGBA: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// RGBAImageFromImage converts any image.Image to RGBAImage.
func RGBAImageFromImage(img image.Image) *RGBAImage {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return &RGBAImage{RGBA: rgba}
	}
	bounds := img.Bounds()
	rgba := NewRGBAImage(bounds.Dx(), bounds.Dy())
	draw.Draw(rgba.RGBA, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba
}

// Width returns the image width.
func (img *RGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *RGBAImage) Height() int {
	return img.Bounds().Dy()
}

// PointAt returns the pixel at (x, y) as an unnamed point. Alpha is
// ignored.
func (img *RGBAImage) PointAt(x, y int) namedcolor.Point {
	c := img.RGBAAt(x, y)
	return namedcolor.Point{R: int(c.R), G: int(c.G), B: int(c.B)}
}

// FillRect paints the rectangle r with p's color.
func (img *RGBAImage) FillRect(r image.Rectangle, p namedcolor.Point) {
	draw.Draw(img.RGBA, r, &image.Uniform{C: ToColor(p)}, image.Point{}, draw.Src)
}

// ToColor converts a point to color.RGBA, clamping 256 to 255.
func ToColor(p namedcolor.Point) color.RGBA {
	return color.RGBA{R: clamp(p.R), G: clamp(p.G), B: clamp(p.B), A: 255}
}

func clamp(c int) uint8 {
	if c < 0 {
		return 0
	}
	if c > 255 {
		return 255
	}
	return uint8(c)
}
