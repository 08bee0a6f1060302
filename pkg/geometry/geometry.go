// Package geometry provides the coordinate primitives shared by the
// extraction pipeline: polygon measurements and axis-aligned bounding
// boxes in the two conventions used by layout-analysis output.
//
// Coordinates are either normalized (all values in [0,1], relative to the
// page) or absolute (pixels or points). Conversion between the two spaces
// is always explicit, see Normalize.
package geometry

import "math"

// Point is a single 2D coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Polygon is an ordered list of vertices, typically the 4-point bounding
// polygon reported for a detected element.
type Polygon []Point

// Centroid returns the arithmetic mean of the polygon's vertices.
// An empty polygon yields the origin.
func (p Polygon) Centroid() Point {
	if len(p) == 0 {
		return Point{}
	}
	var c Point
	for _, v := range p {
		c.X += v.X
		c.Y += v.Y
	}
	c.X /= float64(len(p))
	c.Y /= float64(len(p))
	return c
}

// Bounds returns the axis-aligned bounding box enclosing the polygon.
func (p Polygon) Bounds() BBox {
	if len(p) == 0 {
		return BBox{}
	}
	b := BBox{Left: p[0].X, Top: p[0].Y, Right: p[0].X, Bottom: p[0].Y}
	for _, v := range p[1:] {
		b.Left = math.Min(b.Left, v.X)
		b.Top = math.Min(b.Top, v.Y)
		b.Right = math.Max(b.Right, v.X)
		b.Bottom = math.Max(b.Bottom, v.Y)
	}
	return b
}

// AspectRatio returns width divided by height of the polygon's bounding
// box, or 0 when the box is degenerate.
func (p Polygon) AspectRatio() float64 {
	b := p.Bounds()
	w, h := b.Width(), b.Height()
	if w <= 0 || h <= 0 {
		return 0
	}
	return w / h
}

// Rotated reports whether a 4-vertex polygon is not axis-aligned.
// An axis-aligned rectangle has at most two distinct x values and two
// distinct y values among its corners; anything beyond that means the
// box has been rotated. Polygons that are not quadrilaterals report false.
func (p Polygon) Rotated() bool {
	if len(p) != 4 {
		return false
	}
	return distinct(p[0].X, p[1].X, p[2].X, p[3].X) > 2 &&
		distinct(p[0].Y, p[1].Y, p[2].Y, p[3].Y) > 2
}

func distinct(vals ...float64) int {
	seen := make(map[float64]struct{}, len(vals))
	for _, v := range vals {
		seen[v] = struct{}{}
	}
	return len(seen)
}
