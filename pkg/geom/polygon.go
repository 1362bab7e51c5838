package geom

import "math"

// Polygon is a closed, ordered sequence of points. The adjacency manager
// only ever intersects convex polygons (triangle footprints), so
// Intersection implements Sutherland-Hodgman clipping rather than a general
// polygon-boolean algorithm.
type Polygon []Point

// SignedArea returns the shoelace-formula signed area of a closed polygon.
// Positive means counter-clockwise winding.
func SignedArea(pts []Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	var sum int64
	for i := range pts {
		j := (i + 1) % len(pts)
		sum += int64(pts[i].X)*int64(pts[j].Y) - int64(pts[j].X)*int64(pts[i].Y)
	}
	return float64(sum) / 2
}

// Area returns the unsigned area of the polygon, in squared microns.
func (p Polygon) Area() float64 {
	return math.Abs(SignedArea(p))
}

// clipConvex clips the subject convex polygon against one edge (a->b) of a
// convex clip polygon, keeping the portion on the left of a->b (i.e. inside
// for a counter-clockwise-wound clip polygon).
func clipConvex(subject []Point, a, b Point) []Point {
	if len(subject) == 0 {
		return nil
	}
	edge := b.Sub(a)
	inside := func(p Point) bool {
		return p.Sub(a).Dot(edge.Perp()) >= 0
	}
	var out []Point
	for i := range subject {
		cur := subject[i]
		prev := subject[(i-1+len(subject))%len(subject)]
		curIn := inside(cur)
		prevIn := inside(prev)
		if curIn {
			if !prevIn {
				out = append(out, intersectLine(prev, cur, a, b))
			}
			out = append(out, cur)
		} else if prevIn {
			out = append(out, intersectLine(prev, cur, a, b))
		}
	}
	return out
}

// Perp returns the vector rotated 90 degrees counter-clockwise.
func (p Point) Perp() Point {
	return Point{-p.Y, p.X}
}

// intersectLine returns the intersection of segment p0-p1 with the infinite
// line through a-b. Callers only invoke this when the segment is known to
// cross the line.
func intersectLine(p0, p1, a, b Point) Point {
	d1 := p1.Sub(p0)
	d2 := b.Sub(a)
	denom := float64(d1.X)*float64(d2.Y) - float64(d1.Y)*float64(d2.X)
	if denom == 0 {
		return p0
	}
	t := (float64(a.X-p0.X)*float64(d2.Y) - float64(a.Y-p0.Y)*float64(d2.X)) / denom
	return Point{
		X: p0.X + Coord(float64(d1.X)*t),
		Y: p0.Y + Coord(float64(d1.Y)*t),
	}
}

// Intersection returns the intersection polygon of two convex polygons.
// Both must be wound consistently (this package always produces
// counter-clockwise triangles via Triangle.ToPolygon).
func (p Polygon) Intersection(clip Polygon) Polygon {
	subject := []Point(p)
	if SignedArea(clip) < 0 {
		clip = reversed(clip)
	}
	if SignedArea(subject) < 0 {
		subject = reversed(subject)
	}
	for i := range clip {
		a := clip[i]
		b := clip[(i+1)%len(clip)]
		subject = clipConvex(subject, a, b)
		if len(subject) == 0 {
			break
		}
	}
	return Polygon(subject)
}

func reversed(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// IntersectionArea is a convenience wrapper returning the area of a's
// intersection with b directly.
func IntersectionArea(a, b Polygon) float64 {
	return a.Intersection(b).Area()
}
