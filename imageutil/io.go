package imageutil

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	"image/png"
	"os"

	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// LoadImage decodes the image at path and reports the name of the format
// it was decoded from. PNG, JPEG, GIF, BMP, TIFF and WebP are registered.
func LoadImage(path string) (*RGBAImage, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return RGBAImageFromImage(img), format, nil
}

// TallyFile loads the image at path and counts the names every step-th
// pixel resolves to.
func TallyFile(path string, m Matcher, step int) ([]NameCount, error) {
	img, _, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return Tally(img, m, step), nil
}

// SavePNG writes img to path as PNG. Swatches are always written as PNG
// so the label stays lossless.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return f.Close()
}
