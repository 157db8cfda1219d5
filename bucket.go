package namedcolor

import "fmt"

// Bucket is an axis-aligned cuboid of the working cube together with the
// palette points that fall inside it. Start and end are inclusive on every
// axis. Besides its static bounds a bucket tracks the observed spread of
// its points, the running per-axis minimum and maximum, which starts out
// collapsed onto the cuboid's center.
type Bucket struct {
	start, end [3]int
	lo, hi     [3]int
	points     []Point
}

// NewBucket creates an empty bucket spanning start..end.
func NewBucket(start, end [3]int) *Bucket {
	b := &Bucket{start: start, end: end}
	for i := range b.start {
		center := start[i] + (end[i]-start[i])/2
		b.lo[i] = center
		b.hi[i] = center
	}
	return b
}

// Contains reports whether p lies within the bucket's cuboid, bounds
// included.
func (b *Bucket) Contains(p Point) bool {
	for _, a := range Axes {
		v := p.Axis(a)
		if v < b.start[a] || v > b.end[a] {
			return false
		}
	}
	return true
}

// Insert appends p and widens the observed spread where p falls outside
// it. The caller is responsible for checking Contains first.
func (b *Bucket) Insert(p Point) {
	b.points = append(b.points, p)
	for _, a := range Axes {
		v := p.Axis(a)
		if v < b.lo[a] {
			b.lo[a] = v
		}
		if v > b.hi[a] {
			b.hi[a] = v
		}
	}
}

// Len returns the number of points held.
func (b *Bucket) Len() int {
	return len(b.points)
}

// Points returns the points held by the bucket in insertion order. The
// slice must not be modified.
func (b *Bucket) Points() []Point {
	return b.points
}

// Bounds returns the inclusive start and end corners of the cuboid.
func (b *Bucket) Bounds() (start, end [3]int) {
	return b.start, b.end
}

// Spread returns the running minimum and maximum of the inserted points.
func (b *Bucket) Spread() (lo, hi [3]int) {
	return b.lo, b.hi
}

// Volume returns the number of integer lattice points in the cuboid.
func (b *Bucket) Volume() int64 {
	v := int64(1)
	for i := range b.start {
		v *= int64(b.end[i] - b.start[i] + 1)
	}
	return v
}

// WidestAxis returns the axis with the largest observed spread. R wins
// ties with G, and B only wins when strictly wider than both.
func (b *Bucket) WidestAxis() Axis {
	r := b.hi[AxisR] - b.lo[AxisR]
	g := b.hi[AxisG] - b.lo[AxisG]
	bl := b.hi[AxisB] - b.lo[AxisB]
	axis := AxisR
	if g > r {
		axis = AxisG
	}
	if bl > r && bl > g {
		axis = AxisB
	}
	return axis
}

// SplitPlane returns the midpoint of the observed spread along axis,
// rounded towards the maximum.
func (b *Bucket) SplitPlane(axis Axis) int {
	return b.hi[axis] - (b.hi[axis]-b.lo[axis])/2
}

// Split returns the two empty children produced by cutting the cuboid
// after plane on axis. The low child ends at plane and the high child
// starts at plane+1; all other bounds are copied.
func (b *Bucket) Split(axis Axis, plane int) (low, high *Bucket) {
	lowEnd := b.end
	lowEnd[axis] = plane
	highStart := b.start
	highStart[axis] = plane + 1
	return NewBucket(b.start, lowEnd), NewBucket(highStart, b.end)
}

// cut picks the axis and plane a full bucket should be split at to make
// room for incoming. The widest axis is preferred; when the plane would
// leave the high child empty it is pulled back by one, and axes of unit
// width are skipped. It reports false when splitting cannot help, either
// because every held point sits on incoming's coordinates or because the
// cuboid is a single lattice point.
func (b *Bucket) cut(incoming Point) (Axis, int, bool) {
	if b.coincident(incoming) {
		return 0, 0, false
	}
	widest := b.WidestAxis()
	candidates := []Axis{widest}
	for _, a := range Axes {
		if a != widest {
			candidates = append(candidates, a)
		}
	}
	for _, a := range candidates {
		if b.start[a] == b.end[a] {
			continue
		}
		plane := b.SplitPlane(a)
		if plane >= b.end[a] {
			plane = b.end[a] - 1
		}
		if plane < b.start[a] {
			plane = b.start[a]
		}
		return a, plane, true
	}
	return 0, 0, false
}

// coincident reports whether all held points sit on p's coordinates.
func (b *Bucket) coincident(p Point) bool {
	key := p.Key()
	for _, q := range b.points {
		if q.Key() != key {
			return false
		}
	}
	return true
}

// sideDistance returns the smallest distance from p to any of the six
// faces of the cuboid.
func (b *Bucket) sideDistance(p Point) int {
	d := CubeMax
	for _, a := range Axes {
		v := p.Axis(a)
		if lower := v - b.start[a]; lower < d {
			d = lower
		}
		if upper := b.end[a] - v; upper < d {
			d = upper
		}
	}
	return d
}

func (b *Bucket) String() string {
	return fmt.Sprintf("bucket[%v-%v] %d points", b.start, b.end, len(b.points))
}
