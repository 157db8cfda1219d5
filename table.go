package namedcolor

import (
	"fmt"

	"github.com/rs/zerolog"
)

const (
	// DefaultCapacity is the number of points a bucket holds before an
	// insertion splits it.
	DefaultCapacity = 8
	// DefaultMaxSplits bounds the splits a single insertion may trigger:
	// nine bits resolve 257 levels on one axis, times three axes.
	DefaultMaxSplits = 9 * 3
)

// Table resolves colors to the nearest named color of a palette. The
// palette is partitioned into buckets that tile the working cube
// [0,256]^3; a bucket splits along the axis of its widest observed spread
// once it holds more than the configured capacity.
//
// A Table is built once by New and never mutated afterwards, so it is safe
// for concurrent lookups.
type Table struct {
	capacity  int
	maxSplits int
	log       zerolog.Logger

	palette []Point
	// buckets is an arena addressed by index. A split replaces the parent
	// slot with its low child and appends the high child.
	buckets []*Bucket

	splits     int
	overflowed int
}

// Option is a functional option for configuring a Table.
type Option func(*Table)

// WithCapacity sets the number of points a bucket may hold before it is
// split.
func WithCapacity(n int) Option {
	return func(t *Table) {
		t.capacity = n
	}
}

// WithMaxSplits bounds how many splits one insertion may cause before the
// point is stored in an overfull bucket.
func WithMaxSplits(n int) Option {
	return func(t *Table) {
		t.maxSplits = n
	}
}

// WithLogger sets the logger used while building the table.
func WithLogger(l zerolog.Logger) Option {
	return func(t *Table) {
		t.log = l
	}
}

// New builds a table from the given named points, inserted in order.
// Duplicate names and coordinates are kept.
func New(points []Point, opts ...Option) (*Table, error) {
	t := &Table{
		capacity:  DefaultCapacity,
		maxSplits: DefaultMaxSplits,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if len(points) == 0 {
		return nil, ErrEmptyPalette
	}
	if t.capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrCapacity, t.capacity)
	}

	t.palette = make([]Point, len(points))
	copy(t.palette, points)
	t.buckets = []*Bucket{NewBucket(
		[3]int{CubeMin, CubeMin, CubeMin},
		[3]int{CubeMax, CubeMax, CubeMax},
	)}
	for _, p := range t.palette {
		t.insert(p)
	}

	t.log.Debug().
		Int("points", len(t.palette)).
		Int("buckets", len(t.buckets)).
		Int("splits", t.splits).
		Int("overflowed", t.overflowed).
		Int("capacity", t.capacity).
		Msg("table_built")
	return t, nil
}

// locate returns the arena index of the bucket containing p. It never
// mutates the table. A miss means the partition is broken, which is a
// programming error rather than bad input.
func (t *Table) locate(p Point) int {
	for i, b := range t.buckets {
		if b.Contains(p) {
			return i
		}
	}
	panic(fmt.Errorf("%w: no bucket contains %v", ErrBrokenPartition, p))
}

// insert routes p into its bucket, splitting full buckets first. The
// number of splits per insertion is bounded; past the bound, or when a
// bucket cannot be split any further, p is stored over capacity.
func (t *Table) insert(p Point) {
	for attempt := 0; ; attempt++ {
		i := t.locate(p)
		b := t.buckets[i]
		if b.Len() < t.capacity {
			b.Insert(p)
			return
		}
		axis, plane, ok := b.cut(p)
		if !ok || attempt >= t.maxSplits {
			if b.Len() == t.capacity {
				t.overflowed++
			}
			t.log.Trace().
				Str("point", p.String()).
				Str("bucket", b.String()).
				Bool("splittable", ok).
				Msg("bucket_overflow")
			b.Insert(p)
			return
		}
		t.split(i, axis, plane)
	}
}

// split replaces the bucket at index i with its two children and
// redistributes its points. Children of a full bucket hold at most
// capacity points between them, so no further split is needed here.
func (t *Table) split(i int, axis Axis, plane int) {
	parent := t.buckets[i]
	low, high := parent.Split(axis, plane)
	t.buckets[i] = low
	t.buckets = append(t.buckets, high)
	t.splits++
	for _, q := range parent.points {
		if low.Contains(q) {
			low.Insert(q)
		} else {
			high.Insert(q)
		}
	}
	t.log.Trace().
		Stringer("axis", axis).
		Int("plane", plane).
		Int("low", low.Len()).
		Int("high", high.Len()).
		Msg("bucket_split")
}

// Capacity returns the configured bucket capacity.
func (t *Table) Capacity() int {
	return t.capacity
}

// Len returns the number of palette points.
func (t *Table) Len() int {
	return len(t.palette)
}

// Palette returns a copy of the palette in load order.
func (t *Table) Palette() []Point {
	out := make([]Point, len(t.palette))
	copy(out, t.palette)
	return out
}

// Buckets returns the current buckets in arena order. The buckets must
// not be modified.
func (t *Table) Buckets() []*Bucket {
	out := make([]*Bucket, len(t.buckets))
	copy(out, t.buckets)
	return out
}

// TableStats summarises the shape of a built table.
type TableStats struct {
	Points         int     `json:"points"`
	Buckets        int     `json:"buckets"`
	EmptyBuckets   int     `json:"emptyBuckets"`
	Splits         int     `json:"splits"`
	Overflowed     int     `json:"overflowed"`
	MinPopulation  int     `json:"minPopulation"`
	MaxPopulation  int     `json:"maxPopulation"`
	MeanPopulation float64 `json:"meanPopulation"`
}

// Stats reports bucket population figures.
func (t *Table) Stats() TableStats {
	s := TableStats{
		Points:        len(t.palette),
		Buckets:       len(t.buckets),
		Splits:        t.splits,
		Overflowed:    t.overflowed,
		MinPopulation: -1,
	}
	for _, b := range t.buckets {
		n := b.Len()
		if n == 0 {
			s.EmptyBuckets++
		}
		if s.MinPopulation < 0 || n < s.MinPopulation {
			s.MinPopulation = n
		}
		if n > s.MaxPopulation {
			s.MaxPopulation = n
		}
	}
	s.MeanPopulation = float64(s.Points) / float64(s.Buckets)
	return s
}
