// Package cv tallies the named colors of image files decoded with
// OpenCV. It needs cgo and an OpenCV installation; imageutil.TallyFile
// covers the common formats in pure Go.
package cv

import (
	"fmt"

	"gocv.io/x/gocv"

	"github.com/wbrown/namedcolor"
	"github.com/wbrown/namedcolor/imageutil"
)

// pointFromVecb converts a BGR gocv.Vecb to an unnamed point.
func pointFromVecb(color gocv.Vecb) namedcolor.Point {
	return namedcolor.Point{
		R: int(color[2]),
		G: int(color[1]),
		B: int(color[0]),
	}
}

// ScanFile reads the image at path and counts the names that every
// step-th pixel resolves to.
func ScanFile(path string, m imageutil.Matcher, step int) ([]imageutil.NameCount, error) {
	img := gocv.IMRead(path, gocv.IMReadColor)
	defer img.Close()
	if img.Empty() {
		return nil, fmt.Errorf("could not read image from %s", path)
	}
	return ScanMat(img, m, step), nil
}

// ScanMat counts the names that every step-th pixel of a 3 channel BGR
// Mat resolves to.
func ScanMat(img gocv.Mat, m imageutil.Matcher, step int) []imageutil.NameCount {
	if step < 1 {
		step = 1
	}
	c := imageutil.NewCounter(m)
	for y := 0; y < img.Rows(); y += step {
		for x := 0; x < img.Cols(); x += step {
			c.Add(pointFromVecb(img.GetVecbAt(y, x)))
		}
	}
	return c.Counts()
}
