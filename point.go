package namedcolor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Axis identifies one of the three channels of the working cube.
type Axis int

const (
	AxisR Axis = iota
	AxisG
	AxisB
)

// Axes lists the channels in scan order. Ties between axes always resolve
// towards the earlier entry.
var Axes = [3]Axis{AxisR, AxisG, AxisB}

func (a Axis) String() string {
	switch a {
	case AxisR:
		return "R"
	case AxisG:
		return "G"
	default:
		return "B"
	}
}

const (
	// CubeMin and CubeMax bound every channel of the working cube.
	CubeMin = 0
	CubeMax = 256
)

// Point represents a color in the additive RGB space, optionally carrying
// the display name it is known by in a palette. Query points have no name.
// A Point is a value and is never mutated after construction.
type Point struct {
	R, G, B int
	Name    string
}

// NewPoint returns a named point. Channels are not validated; palette
// loaders only produce values in [0,255].
func NewPoint(name string, r, g, b int) Point {
	return Point{R: r, G: g, B: b, Name: name}
}

// PointFromRGB builds an unnamed query point, rejecting channels outside
// the working cube.
func PointFromRGB(r, g, b int) (Point, error) {
	for _, c := range [3]int{r, g, b} {
		if c < CubeMin || c > CubeMax {
			return Point{}, fmt.Errorf("%w: %d,%d,%d", ErrChannelRange, r, g, b)
		}
	}
	return Point{R: r, G: g, B: b}, nil
}

// ParseHex parses a six digit hex code, with or without a leading '#'.
// Case is ignored. Anything that is not exactly three hex bytes is
// rejected with ErrMalformedHex.
func ParseHex(code string) (Point, error) {
	s := strings.TrimPrefix(strings.TrimSpace(code), "#")
	if len(s) != 6 {
		return Point{}, fmt.Errorf("%w: %q", ErrMalformedHex, code)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q", ErrMalformedHex, code)
	}
	return pointFromUint32(uint32(v)), nil
}

// pointFromUint32 converts a packed 0xRRGGBB value to a point
func pointFromUint32(color uint32) Point {
	return Point{
		R: int(uint8(color >> 16)),
		G: int(uint8(color >> 8)),
		B: int(uint8(color)),
	}
}

// Named returns a copy of p carrying the given name.
func (p Point) Named(name string) Point {
	p.Name = name
	return p
}

// Axis returns the channel value of p along a.
func (p Point) Axis(a Axis) int {
	switch a {
	case AxisR:
		return p.R
	case AxisG:
		return p.G
	default:
		return p.B
	}
}

// Key packs the channels into a single integer. Nine bits per channel
// keep the value 256 distinct from 255, so Key is exact over the whole
// working cube. Hex is not: it prints 256 as ff.
func (p Point) Key() uint32 {
	return uint32(p.R)<<18 | uint32(p.G)<<9 | uint32(p.B)
}

// Hex returns the lower case RRGGBB encoding of p. The channel value 256
// prints as ff.
func (p Point) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", clampByte(p.R), clampByte(p.G), clampByte(p.B))
}

func clampByte(c int) uint8 {
	if c < 0 {
		return 0
	}
	if c > 255 {
		return 255
	}
	return uint8(c)
}

// Equal reports whether p and other sit on the same coordinates. Names
// are not compared.
func (p Point) Equal(other Point) bool {
	return p.Key() == other.Key()
}

// Less orders points by their packed channel key: red, then green, then
// blue. Unlike Hex it keeps 256 above 255.
func (p Point) Less(other Point) bool {
	return p.Key() < other.Key()
}

// Distance calculates the Euclidean distance between two points in RGB
// space.
func (p Point) Distance(other Point) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(float64(dr*dr + dg*dg + db*db))
}

// Colorful converts p to a go-colorful color for perceptual comparisons.
func (p Point) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(clampByte(p.R)) / 255.0,
		G: float64(clampByte(p.G)) / 255.0,
		B: float64(clampByte(p.B)) / 255.0,
	}
}

func (p Point) String() string {
	if p.Name == "" {
		return "#" + p.Hex()
	}
	return fmt.Sprintf("%s (#%s)", p.Name, p.Hex())
}
