package geom

import "math"

// Point is a 2D point in integer microns.
type Point struct {
	X, Y Coord
}

// Add returns p + o.
func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

// Sub returns p - o.
func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

// Mul returns p scaled by f.
func (p Point) Mul(f float64) Point {
	return Point{Coord(float64(p.X) * f), Coord(float64(p.Y) * f)}
}

// Div returns p divided by n using integer division.
func (p Point) Div(n Coord) Point {
	return Point{p.X / n, p.Y / n}
}

// Dot returns the dot product of p and o.
func (p Point) Dot(o Point) int64 {
	return int64(p.X)*int64(o.X) + int64(p.Y)*int64(o.Y)
}

// Size returns the Euclidean length of p treated as a vector.
func (p Point) Size() Coord {
	return Coord(math.Sqrt(float64(p.Size2())))
}

// Size2 returns the squared length of p treated as a vector.
func (p Point) Size2() int64 {
	return int64(p.X)*int64(p.X) + int64(p.Y)*int64(p.Y)
}

// Midpoint returns the midpoint of a and b.
func Midpoint(a, b Point) Point {
	return Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// Centroid3 returns the centroid of three points, using the same
// sum-then-divide integer order throughout so repeated calls are
// deterministic.
func Centroid3(a, b, c Point) Point {
	return Point{(a.X + b.X + c.X) / 3, (a.Y + b.Y + c.Y) / 3}
}

// Point3 is a 3D point in integer microns.
type Point3 struct {
	X, Y, Z Coord
}

// Sub returns p - o.
func (p Point3) Sub(o Point3) Point3 {
	return Point3{p.X - o.X, p.Y - o.Y, p.Z - o.Z}
}
