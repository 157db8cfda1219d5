package imageutil

import (
	"sort"

	"github.com/wbrown/namedcolor"
)

// Matcher resolves a color to its nearest named color. Both
// *namedcolor.Table and *namedcolor.CachedTable implement it.
type Matcher interface {
	Nearest(target namedcolor.Point) namedcolor.Match
}

// NameCount is the number of sampled pixels that resolved to one palette
// color.
type NameCount struct {
	Color namedcolor.Point
	Count int
	Share float64
}

// Name returns the palette name of the counted color.
func (nc NameCount) Name() string {
	return nc.Color.Name
}

// Counter accumulates how often sampled colors resolve to each name.
type Counter struct {
	m      Matcher
	counts map[string]*NameCount
	total  int
}

// NewCounter returns an empty counter resolving colors with m.
func NewCounter(m Matcher) *Counter {
	return &Counter{m: m, counts: make(map[string]*NameCount)}
}

// Add resolves p and bumps the counter of its name.
func (c *Counter) Add(p namedcolor.Point) {
	match := c.m.Nearest(p)
	nc, ok := c.counts[match.Name()]
	if !ok {
		nc = &NameCount{Color: match.Color}
		c.counts[match.Name()] = nc
	}
	nc.Count++
	c.total++
}

// Total returns the number of samples added.
func (c *Counter) Total() int {
	return c.total
}

// Counts returns the tallies sorted by count, most frequent first, then
// by name.
func (c *Counter) Counts() []NameCount {
	out := make([]NameCount, 0, len(c.counts))
	for _, nc := range c.counts {
		entry := *nc
		if c.total > 0 {
			entry.Share = float64(entry.Count) / float64(c.total)
		}
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name() < out[j].Name()
	})
	return out
}

// Tally samples every step-th pixel on both axes of img and counts the
// names they resolve to.
func Tally(img *RGBAImage, m Matcher, step int) []NameCount {
	if step < 1 {
		step = 1
	}
	c := NewCounter(m)
	for y := 0; y < img.Height(); y += step {
		for x := 0; x < img.Width(); x += step {
			c.Add(img.PointAt(x, y))
		}
	}
	return c.Counts()
}
