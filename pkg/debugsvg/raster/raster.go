// Package raster renders a Cross3D tree to a raster image using
// github.com/llgcode/draw2d, an alternative to package debugsvg's vector
// output for callers that want a PNG rather than an SVG (for example,
// embedding a preview in a non-browser UI).
package raster

import (
	"image"
	"image/color"

	"github.com/llgcode/draw2d/draw2dimg"

	"github.com/chazu/cross3d/pkg/cross3d"
	"github.com/chazu/cross3d/pkg/geom"
)

// Render draws every cell's triangle outline in t onto a width x height RGBA
// image, scaling the tree's footprint to fit.
func Render(t *cross3d.Tree, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gc := draw2dimg.NewGraphicContext(img)
	gc.SetFillColor(color.White)
	gc.Clear()

	footprint := t.AABB.Flatten()
	size := footprint.Max.Sub(footprint.Min)
	scaleX := float64(width) / float64(size.X)
	scaleY := float64(height) / float64(size.Y)
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}

	px := func(p geom.Point) (float64, float64) {
		return float64(p.X-footprint.Min.X) * scale, float64(p.Y-footprint.Min.Y) * scale
	}

	gc.SetStrokeColor(color.RGBA{R: 96, G: 96, B: 96, A: 255})
	gc.SetLineWidth(1)
	for _, cell := range t.Cells[1:] {
		tri := cell.Prism.Triangle
		ax, ay := px(tri.A)
		bx, by := px(tri.B)
		cx, cy := px(tri.StraightCorner)

		gc.MoveTo(ax, ay)
		gc.LineTo(bx, by)
		gc.LineTo(cx, cy)
		gc.LineTo(ax, ay)
		gc.Stroke()
	}

	return img
}
