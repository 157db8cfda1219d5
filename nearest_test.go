package namedcolor

import (
	"math"
	"math/rand"
	"sync"
	"testing"
)

// bruteForceDistance returns the smallest distance from target to any
// palette point.
func bruteForceDistance(palette []Point, target Point) float64 {
	best := math.Inf(1)
	for _, p := range palette {
		if d := p.Distance(target); d < best {
			best = d
		}
	}
	return best
}

func primaries(t *testing.T) *Table {
	t.Helper()
	table, err := New([]Point{
		NewPoint("Red", 255, 0, 0),
		NewPoint("Lime", 0, 255, 0),
		NewPoint("Blue", 0, 0, 255),
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return table
}

func TestNearestPrimaries(t *testing.T) {
	table := primaries(t)
	testCases := []struct {
		query    string
		expected string
	}{
		{"ff0000", "Red"},
		{"fe0101", "Red"},
		{"00fe01", "Lime"},
		{"#0000FF", "Blue"},
		{"1010f0", "Blue"},
	}
	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			name, err := table.NameOfHex(tc.query)
			if err != nil {
				t.Fatalf("NameOfHex failed: %v", err)
			}
			if name != tc.expected {
				t.Errorf("Expected %s, got %s", tc.expected, name)
			}
		})
	}

	name, err := table.NameOfRGB(0, 254, 1)
	if err != nil || name != "Lime" {
		t.Errorf("Expected Lime, got %q (%v)", name, err)
	}
	if _, err := table.LookupHex("zz0000"); err == nil {
		t.Error("Expected an error for a malformed code")
	}
	if _, err := table.LookupRGB(0, 0, 300); err == nil {
		t.Error("Expected an error for an out of range channel")
	}
}

func TestNearestSelfLookup(t *testing.T) {
	for _, palette := range [][]Point{SVGPalette(), randomPalette(t, 200, 3)} {
		for _, capacity := range []int{1, 4, 8} {
			table, err := New(palette, WithCapacity(capacity))
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			for _, p := range palette {
				m := table.Nearest(Point{R: p.R, G: p.G, B: p.B})
				if m.Distance != 0 || !m.Color.Equal(p) {
					t.Errorf("capacity %d: expected %v itself, got %v at %f",
						capacity, p, m.Color, m.Distance)
				}
			}
		}
	}
}

func TestNearestCrossesBucketBoundary(t *testing.T) {
	table, err := New([]Point{
		NewPoint("A", 10, 10, 10),
		NewPoint("B", 250, 250, 250),
	}, WithCapacity(1))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if n := len(table.Buckets()); n != 2 {
		t.Fatalf("Expected 2 buckets, got %d", n)
	}

	query := Point{R: 120, G: 120, B: 120}
	if table.locate(query) == table.locate(Point{R: 10, G: 10, B: 10}) {
		t.Fatal("Expected the query to fall outside A's bucket")
	}
	m := table.Nearest(query)
	if m.Name() != "A" {
		t.Errorf("Expected A, got %s", m.Name())
	}
	if want := bruteForceDistance(table.Palette(), query); m.Distance != want {
		t.Errorf("Expected distance %f, got %f", want, m.Distance)
	}
}

func TestNearestMatchesBruteForce(t *testing.T) {
	palette := randomPalette(t, 500, 4)
	rng := rand.New(rand.NewSource(5))
	for _, capacity := range []int{1, 3, 8, 32} {
		table, err := New(palette, WithCapacity(capacity))
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		for i := 0; i < 2000; i++ {
			q := Point{R: rng.Intn(257), G: rng.Intn(257), B: rng.Intn(257)}
			m := table.Nearest(q)
			if want := bruteForceDistance(palette, q); m.Distance != want {
				t.Fatalf("capacity %d, query %v: expected distance %f, got %f (%s)",
					capacity, q, want, m.Distance, m.Name())
			}
		}
	}
}

func TestNearestSinglePoint(t *testing.T) {
	table, err := New([]Point{NewPoint("Only", 100, 100, 100)}, WithCapacity(1))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for _, q := range []Point{{}, {R: 256, G: 256, B: 256}, {R: 100, G: 100, B: 100}, {R: 3, G: 250, B: 17}} {
		if name := table.Nearest(q).Name(); name != "Only" {
			t.Errorf("%v: expected Only, got %s", q, name)
		}
	}
}

func TestNearestTieBreaksByName(t *testing.T) {
	table, err := New([]Point{
		NewPoint("Zeta", 100, 100, 100),
		NewPoint("Alpha", 100, 100, 100),
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if name := table.Nearest(Point{R: 100, G: 100, B: 100}).Name(); name != "Alpha" {
			t.Errorf("Expected Alpha, got %s", name)
		}
	}
}

func TestNearestReportsDeltaE(t *testing.T) {
	table := primaries(t)
	exact, _ := table.LookupHex("ff0000")
	if exact.DeltaE > 1e-9 {
		t.Errorf("Expected zero ΔE for an exact match, got %f", exact.DeltaE)
	}
	near, _ := table.LookupHex("f01010")
	if near.DeltaE <= 0 {
		t.Errorf("Expected positive ΔE, got %f", near.DeltaE)
	}
	if near.Query != (Point{R: 240, G: 16, B: 16}) {
		t.Errorf("Expected the query to be echoed, got %v", near.Query)
	}
}

func TestNearestConcurrentReads(t *testing.T) {
	palette := randomPalette(t, 300, 6)
	table, err := New(palette, WithCapacity(4))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	queries := randomPalette(t, 200, 7)
	want := make([]string, len(queries))
	for i, q := range queries {
		want[i] = table.Nearest(q).Name()
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, q := range queries {
				if got := table.Nearest(q).Name(); got != want[i] {
					t.Errorf("%v: expected %s, got %s", q, want[i], got)
				}
			}
		}()
	}
	wg.Wait()
}

func TestNearestDeterministic(t *testing.T) {
	palette := randomPalette(t, 150, 11)
	first, err := New(palette, WithCapacity(2))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	second, err := New(palette, WithCapacity(2))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	rng := rand.New(rand.NewSource(12))
	for i := 0; i < 500; i++ {
		q := Point{R: rng.Intn(257), G: rng.Intn(257), B: rng.Intn(257)}
		a, b, c := first.Nearest(q), first.Nearest(q), second.Nearest(q)
		if a != b || a != c {
			t.Fatalf("%v: lookups disagree: %v / %v / %v", q, a.Color, b.Color, c.Color)
		}
	}
}
