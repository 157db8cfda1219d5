package imageutil

import (
	"testing"

	"github.com/wbrown/namedcolor"
)

func TestRenderSwatch(t *testing.T) {
	m, err := testTable(t).LookupHex("f01010")
	if err != nil {
		t.Fatalf("LookupHex failed: %v", err)
	}
	opts := DefaultSwatchOptions()
	img, err := RenderSwatch(m, opts)
	if err != nil {
		t.Fatalf("RenderSwatch failed: %v", err)
	}
	if img.Width() != opts.Width || img.Height() != opts.Height {
		t.Fatalf("Expected %dx%d, got %dx%d", opts.Width, opts.Height, img.Width(), img.Height())
	}
	if got := img.PointAt(5, 5); got != (namedcolor.Point{R: 240, G: 16, B: 16}) {
		t.Errorf("Expected the query color on the left, got %v", got)
	}
	if got := img.PointAt(opts.Width-5, 5); got != (namedcolor.Point{R: 255}) {
		t.Errorf("Expected the matched color on the right, got %v", got)
	}

	dark := false
	for y := opts.Height - 20; y < opts.Height && !dark; y++ {
		for x := 0; x < opts.Width; x++ {
			if p := img.PointAt(x, y); p.R < 128 && p.G < 128 && p.B < 128 {
				dark = true
				break
			}
		}
	}
	if !dark {
		t.Error("Expected label text in the bottom band")
	}
}

func TestRenderSwatchErrors(t *testing.T) {
	m := namedcolor.Match{}
	testCases := map[string]SwatchOptions{
		"zero size":    {Width: 0, Height: 10, FontSize: 12},
		"font too big": {Width: 100, Height: 20, FontSize: 48},
		"missing font": {Width: 100, Height: 100, FontSize: 12, FontPath: "/nonexistent/font.ttf"},
	}
	for name, opts := range testCases {
		t.Run(name, func(t *testing.T) {
			if _, err := RenderSwatch(m, opts); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}
