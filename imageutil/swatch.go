package imageutil

import (
	"fmt"
	"image"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/wbrown/namedcolor"
)

// SwatchOptions controls the layout of a rendered swatch.
type SwatchOptions struct {
	Width    int
	Height   int
	FontSize float64
	// FontPath selects a TrueType font. Empty uses Go Regular.
	FontPath string
}

// DefaultSwatchOptions returns a 320x120 swatch with a 14 point label.
func DefaultSwatchOptions() SwatchOptions {
	return SwatchOptions{Width: 320, Height: 120, FontSize: 14}
}

// RenderSwatch draws the query color on the left, the matched color on
// the right and a label band underneath naming the match.
func RenderSwatch(m namedcolor.Match, opts SwatchOptions) (*RGBAImage, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid swatch size %dx%d", opts.Width, opts.Height)
	}
	if opts.FontSize <= 0 {
		opts.FontSize = DefaultSwatchOptions().FontSize
	}
	ttf, err := loadFont(opts.FontPath)
	if err != nil {
		return nil, err
	}

	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    opts.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()
	band := ascent + descent + 8
	if band >= opts.Height {
		return nil, fmt.Errorf("font size %.1f too large for swatch height %d",
			opts.FontSize, opts.Height)
	}

	img := NewRGBAImage(opts.Width, opts.Height)
	panel := opts.Height - band
	half := opts.Width / 2
	img.FillRect(image.Rect(0, 0, half, panel), m.Query)
	img.FillRect(image.Rect(half, 0, opts.Width, panel), m.Color)
	img.FillRect(image.Rect(0, panel, opts.Width, opts.Height), namedcolor.NewPoint("", 255, 255, 255))

	label := fmt.Sprintf("#%s -> %s (#%s)", m.Query.Hex(), m.Name(), m.Color.Hex())
	textWidth := font.MeasureString(face, label).Ceil()
	x := (opts.Width - textWidth) / 2
	if x < 4 {
		x = 4
	}

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(opts.FontSize)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img.RGBA)
	ctx.SetSrc(image.Black)
	ctx.SetHinting(font.HintingFull)
	if _, err := ctx.DrawString(label, freetype.Pt(x, panel+4+ascent)); err != nil {
		return nil, fmt.Errorf("failed to draw label: %w", err)
	}
	return img, nil
}

// loadFont loads a TrueType font from file, or Go Regular when path is
// empty.
func loadFont(path string) (*truetype.Font, error) {
	fontBytes := goregular.TTF
	if path != "" {
		var err error
		fontBytes, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font: %w", err)
		}
	}
	ttf, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return ttf, nil
}
