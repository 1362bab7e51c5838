// Package debugsvg renders a Cross3D tree, slice sequence, and adjacency
// graph to SVG for offline inspection, using github.com/ajstarks/svgo.
package debugsvg

import (
	"container/list"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/chazu/cross3d/pkg/cross3d"
	"github.com/chazu/cross3d/pkg/geom"
)

// Options controls how much of the tree a render call draws and at what
// scale.
type Options struct {
	Width, Height int

	// Scale converts a geom.Coord (microns) to SVG pixels.
	Scale float64

	// LineWidth is the stroke width, in pixels, used for the cell's red
	// entry/exit line.
	LineWidth float64

	// HorizontalConnectionsOnly skips UP/DOWN adjacency links, leaving just
	// the in-plane links relevant to a single horizontal slice.
	HorizontalConnectionsOnly bool
}

// DefaultOptions returns Options sized for a tree built over aabb.
func DefaultOptions(aabb geom.AABB3D) Options {
	footprint := aabb.Flatten()
	size := footprint.Max.Sub(footprint.Min)
	const targetPixels = 1000.0
	scale := targetPixels / math.Max(float64(size.X), float64(size.Y))
	return Options{
		Width:     int(float64(size.X) * scale),
		Height:    int(float64(size.Y) * scale),
		Scale:     scale,
		LineWidth: 2,
	}
}

func (o Options) px(c geom.Coord) int {
	return int(float64(c) * o.Scale)
}

// RenderTree writes every cell's triangle outline in the tree to w as one
// SVG document.
func RenderTree(w io.Writer, t *cross3d.Tree, opt Options) {
	canvas := svg.New(w)
	canvas.Start(opt.Width, opt.Height)
	defer canvas.End()

	for _, cell := range t.Cells[1:] {
		drawTriangle(canvas, cell.Prism.Triangle, opt)
	}
}

// RenderSequence writes every cell currently in indices (a SliceWalker's
// Sequence()): triangle plus in-plane (LEFT/RIGHT) adjacency arrows only.
func RenderSequence(w io.Writer, t *cross3d.Tree, indices []int, opt Options) {
	opt.HorizontalConnectionsOnly = true
	canvas := svg.New(w)
	canvas.Start(opt.Width, opt.Height)
	defer canvas.End()

	for _, idx := range indices {
		drawCell(canvas, t, t.Cells[idx], opt)
	}
}

func drawCell(canvas *svg.SVG, t *cross3d.Tree, cell *cross3d.Cell, opt Options) {
	drawTriangle(canvas, cell.Prism.Triangle, opt)

	maxDir := cross3d.Direction(4)
	if opt.HorizontalConnectionsOnly {
		maxDir = cross3d.Up
	}
	for dir := cross3d.Direction(0); dir < maxDir; dir++ {
		side := cell.AdjacentCells[dir]
		for el := side.Front(); el != nil; el = el.Next() {
			drawLink(canvas, t, el, opt)
		}
	}
}

func drawTriangle(canvas *svg.SVG, tri cross3d.Triangle, opt Options) {
	xs := []int{opt.px(tri.A.X), opt.px(tri.B.X), opt.px(tri.StraightCorner.X)}
	ys := []int{opt.px(tri.A.Y), opt.px(tri.B.Y), opt.px(tri.StraightCorner.Y)}
	canvas.Polygon(xs, ys, "fill:none;stroke:gray")

	from := tri.GetFromEdge().Middle()
	to := tri.GetToEdge().Middle()
	canvas.Line(opt.px(from.X), opt.px(from.Y), opt.px(to.X), opt.px(to.Y),
		fmt.Sprintf("stroke:red;stroke-width:%v", opt.LineWidth))
}

// drawLink draws a short blue arrow from the link's reverse-end cell
// centroid towards the link's target centroid, shifted sideways so the
// forward and backward arrow along the same edge don't overlap: shift by
// the edge normal scaled to 1/20th the edge length, and shorten each end
// by 1/10th.
func drawLink(canvas *svg.SVG, t *cross3d.Tree, el *list.Element, opt Options) {
	link := el.Value.(*cross3d.Link)
	back := link.Reverse.Value.(*cross3d.Link)

	a := t.Cells[back.ToIndex].Prism.Triangle.GetMiddle()
	b := t.Cells[link.ToIndex].Prism.Triangle.GetMiddle()
	ab := b.Sub(a)
	size := ab.Size()
	if size == 0 {
		return
	}

	shift := normal(negate(ab).Perp(), size/20)
	shortening := size / 10

	c := a.Add(shift).Add(normal(ab, shortening))
	d := a.Add(shift).Add(normal(ab, size-shortening))

	canvas.Line(opt.px(c.X), opt.px(c.Y), opt.px(d.X), opt.px(d.Y), "stroke:blue")
	canvas.Circle(opt.px(c.X), opt.px(c.Y), 3, "fill:blue")
}

func negate(p geom.Point) geom.Point {
	return geom.Point{X: -p.X, Y: -p.Y}
}

// normal scales vec to length size.
func normal(vec geom.Point, size geom.Coord) geom.Point {
	cur := vec.Size()
	if cur == 0 {
		return geom.Point{}
	}
	return vec.Mul(float64(size) / float64(cur))
}
