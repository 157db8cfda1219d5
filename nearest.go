package namedcolor

import "math"

// Match is the result of a nearest named color lookup.
type Match struct {
	// Query is the point that was looked up.
	Query Point
	// Color is the matched palette entry, name included.
	Color Point
	// Distance is the Euclidean RGB distance between Query and Color.
	Distance float64
	// DeltaE is the CIE76 distance in Lab space, for reporting only.
	DeltaE float64
}

// Name returns the name of the matched palette color.
func (m Match) Name() string {
	return m.Color.Name
}

// Nearest returns the palette color closest to target.
//
// The search first considers only the bucket containing target. When the
// nearest of those is closer than any face of the bucket, nothing outside
// can beat it. Otherwise the whole palette is filtered through a cube of
// half-width floor(d) around target, d being the best distance so far.
// Coordinates are integers, so every point strictly closer than d lies
// inside that cube.
func (t *Table) Nearest(target Point) Match {
	b := t.buckets[t.locate(target)]
	area := b.Points()
	if len(area) == 0 {
		best, dist := nearestOf(t.palette, target)
		return newMatch(target, best, dist)
	}

	best, dist := nearestOf(area, target)
	if float64(b.sideDistance(target)) > dist {
		return newMatch(target, best, dist)
	}

	radius := int(math.Floor(dist))
	var start, end [3]int
	for _, a := range Axes {
		start[a] = target.Axis(a) - radius
		end[a] = target.Axis(a) + radius
	}
	probe := NewBucket(start, end)

	seen := make(map[uint32]struct{}, len(area))
	for _, p := range area {
		seen[p.Key()] = struct{}{}
	}
	var second []Point
	for _, p := range t.palette {
		if _, ok := seen[p.Key()]; ok {
			continue
		}
		if probe.Contains(p) {
			second = append(second, p)
		}
	}
	if len(second) == 0 {
		return newMatch(target, best, dist)
	}

	other, otherDist := nearestOf(second, target)
	if otherDist < dist {
		return newMatch(target, other, otherDist)
	}
	return newMatch(target, best, dist)
}

// nearestOf returns the candidate closest to target. Equal distances go
// to the lexicographically smaller name, then to the earlier candidate.
func nearestOf(candidates []Point, target Point) (Point, float64) {
	best := candidates[0]
	bestDist := best.Distance(target)
	for _, c := range candidates[1:] {
		d := c.Distance(target)
		if d < bestDist || (d == bestDist && c.Name < best.Name) {
			best, bestDist = c, d
		}
	}
	return best, bestDist
}

func newMatch(target, color Point, dist float64) Match {
	return Match{
		Query:    target,
		Color:    color,
		Distance: dist,
		DeltaE:   target.Colorful().DistanceLab(color.Colorful()),
	}
}

// LookupHex finds the nearest named color to a RRGGBB code.
func (t *Table) LookupHex(code string) (Match, error) {
	p, err := ParseHex(code)
	if err != nil {
		return Match{}, err
	}
	return t.Nearest(p), nil
}

// LookupRGB finds the nearest named color to the given channels, each in
// [0,256].
func (t *Table) LookupRGB(r, g, b int) (Match, error) {
	p, err := PointFromRGB(r, g, b)
	if err != nil {
		return Match{}, err
	}
	return t.Nearest(p), nil
}

// NameOfHex returns only the name of the nearest color to code.
func (t *Table) NameOfHex(code string) (string, error) {
	m, err := t.LookupHex(code)
	if err != nil {
		return "", err
	}
	return m.Name(), nil
}

// NameOfRGB returns only the name of the nearest color to r, g, b.
func (t *Table) NameOfRGB(r, g, b int) (string, error) {
	m, err := t.LookupRGB(r, g, b)
	if err != nil {
		return "", err
	}
	return m.Name(), nil
}
