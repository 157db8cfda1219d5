// Package plot charts the bucket layout of a built table.
package plot

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/wbrown/namedcolor"
)

const glyphSize = 2

func newPlot(title, x, y string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = x
	p.Y.Label.Text = y
	grid := plotter.NewGrid()
	grid.Horizontal.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	grid.Vertical.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(grid)
	return p
}

// Populations returns the number of points per bucket, largest first.
func Populations(t *namedcolor.Table) plotter.Values {
	buckets := t.Buckets()
	values := make(plotter.Values, len(buckets))
	for i, b := range buckets {
		values[i] = float64(b.Len())
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(values)))
	return values
}

// VolumeVsPopulation returns one point per bucket: log2 of its cuboid
// volume against the number of points it holds.
func VolumeVsPopulation(t *namedcolor.Table) plotter.XYs {
	buckets := t.Buckets()
	xys := make(plotter.XYs, len(buckets))
	for i, b := range buckets {
		xys[i].X = math.Log2(float64(b.Volume()))
		xys[i].Y = float64(b.Len())
	}
	return xys
}

// BucketPopulation builds a bar chart of bucket populations.
func BucketPopulation(t *namedcolor.Table) (*plot.Plot, error) {
	stats := t.Stats()
	p := newPlot(
		fmt.Sprintf("%d points in %d buckets (capacity %d)", stats.Points, stats.Buckets, t.Capacity()),
		"bucket (by population)", "points")
	bars, err := plotter.NewBarChart(Populations(t), vg.Points(4))
	if err != nil {
		return nil, err
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = color.RGBA{R: 0, G: 130, B: 200, A: 255}
	p.Add(bars)

	limit, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: float64(t.Capacity())},
		{X: float64(stats.Buckets), Y: float64(t.Capacity())},
	})
	if err != nil {
		return nil, err
	}
	limit.LineStyle.Color = color.RGBA{R: 230, G: 25, B: 75, A: 255}
	limit.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
	p.Add(limit)
	p.Legend.Add("capacity", limit)
	return p, nil
}

// BucketVolumes builds a scatter plot of bucket volume against population.
func BucketVolumes(t *namedcolor.Table) (*plot.Plot, error) {
	p := newPlot("bucket volume vs population", "log2(volume)", "points")
	scatter, err := plotter.NewScatter(VolumeVsPopulation(t))
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Color = color.RGBA{R: 60, G: 180, B: 75, A: 255}
	scatter.GlyphStyle.Radius = vg.Points(glyphSize)
	p.Add(scatter)
	return p, nil
}

// Save renders both charts of t next to path: <path>-population.png and
// <path>-volume.png.
func Save(t *namedcolor.Table, path string) error {
	population, err := BucketPopulation(t)
	if err != nil {
		return fmt.Errorf("population plot: %w", err)
	}
	if err := population.Save(8*vg.Inch, 4*vg.Inch, path+"-population.png"); err != nil {
		return fmt.Errorf("population plot: %w", err)
	}
	volume, err := BucketVolumes(t)
	if err != nil {
		return fmt.Errorf("volume plot: %w", err)
	}
	if err := volume.Save(6*vg.Inch, 4*vg.Inch, path+"-volume.png"); err != nil {
		return fmt.Errorf("volume plot: %w", err)
	}
	return nil
}
