// Package render paints piece bitmaps: a region of the source image
// sampled through the piece's tab/blank boundary, finished with a
// faint separator stroke. Each piece is rendered exactly once; the
// resulting bitmap is its persistent visual identity and is never
// re-sampled on reposition.
package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
	"honnef.co/go/curve"

	"github.com/pieceworks/jigsaw/internal/model"
	"github.com/pieceworks/jigsaw/internal/outline"
)

// strokeColor is the low-opacity separator painted along the boundary
// so adjacent pieces stay distinguishable once assembled.
var strokeColor = color.NRGBA{R: 255, G: 255, B: 255, A: 80}

// strokeTolerance bounds the error of stroke expansion and flattening
// in device pixels.
const strokeTolerance = 0.25

// Renderer renders the pieces of one puzzle. The source image is
// padded once up front so that tab oversampling near the rim never
// reads outside the image.
type Renderer struct {
	src *image.RGBA
	pad int
	m   model.Metrics
}

// New prepares a renderer for the given source image and metrics. The
// image must already be decoded; no validation is performed.
func New(src image.Image, m model.Metrics) *Renderer {
	pad := int(math.Ceil(m.SamplePad()))
	b := src.Bounds()
	padded := image.NewRGBA(image.Rect(0, 0, b.Dx()+2*pad, b.Dy()+2*pad))
	draw.Draw(padded, image.Rect(pad, pad, pad+b.Dx(), pad+b.Dy()), src, b.Min, draw.Src)
	return &Renderer{src: padded, pad: pad, m: m}
}

// Piece renders one piece bitmap: a square of side FullSize*Scale
// device pixels holding the sampled grid cell (plus tab overhang)
// clipped to the piece boundary.
func (r *Renderer) Piece(coord model.GridCoord, borders model.BorderSpec) *image.RGBA {
	m := r.m
	side := int(math.Round(m.FullSize * m.Scale))
	bounds := image.Rect(0, 0, side, side)

	boundary := outline.Piece(borders, m.Size, m.Padding).
		Transform(curve.Scale(m.Scale, m.Scale))
	clip := rasterize(boundary, side)

	// Sample the cell square grown by the tab overhang and scale it
	// onto the destination square. Coordinates shift by the pad added
	// around the source.
	sx, sy, sside := m.SampleRect(coord)
	srcRect := image.Rect(
		int(math.Round(sx))+r.pad,
		int(math.Round(sy))+r.pad,
		int(math.Round(sx+sside))+r.pad,
		int(math.Round(sy+sside))+r.pad,
	)
	sampled := image.NewRGBA(bounds)
	draw.ApproxBiLinear.Scale(sampled, bounds, r.src, srcRect, draw.Src, nil)

	out := image.NewRGBA(bounds)
	draw.DrawMask(out, bounds, sampled, image.Point{}, clip, image.Point{}, draw.Over)

	// Separator stroke, expanded to a fill and masked on top.
	stroke := curve.StrokePath(
		boundary.Elements(),
		curve.DefaultStroke.WithWidth(m.Scale),
		curve.StrokeOpts{},
		strokeTolerance,
	)
	var strokePath curve.BezPath
	for el := range stroke {
		strokePath.Push(el)
	}
	strokeMask := rasterize(strokePath, side)
	draw.DrawMask(out, bounds, image.NewUniform(strokeColor), image.Point{}, strokeMask, image.Point{}, draw.Over)

	return out
}

// rasterize fills a path into an alpha coverage mask of the given
// square side.
func rasterize(p curve.BezPath, side int) *image.Alpha {
	z := vector.NewRasterizer(side, side)
	for _, el := range p {
		switch el.Kind {
		case curve.MoveToKind:
			z.MoveTo(float32(el.P0.X), float32(el.P0.Y))
		case curve.LineToKind:
			z.LineTo(float32(el.P0.X), float32(el.P0.Y))
		case curve.QuadToKind:
			z.QuadTo(
				float32(el.P0.X), float32(el.P0.Y),
				float32(el.P1.X), float32(el.P1.Y),
			)
		case curve.CubicToKind:
			z.CubeTo(
				float32(el.P0.X), float32(el.P0.Y),
				float32(el.P1.X), float32(el.P1.Y),
				float32(el.P2.X), float32(el.P2.Y),
			)
		case curve.ClosePathKind:
			z.ClosePath()
		}
	}
	mask := image.NewAlpha(image.Rect(0, 0, side, side))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}
