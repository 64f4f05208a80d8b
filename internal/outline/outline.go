// Package outline generates the interlocking tab/blank boundary of a
// jigsaw piece as a closed cubic-bezier path.
//
// Every edge is drawn in a local coordinate system running from (0,0)
// to (size,0) with negative y pointing out of the piece, then mapped
// into place with an explicit affine transform per control point. No
// drawing-context transform stack is involved, so the generator is a
// pure function of its inputs.
package outline

import (
	"math"

	"honnef.co/go/curve"

	"github.com/pieceworks/jigsaw/internal/model"
)

// Edge orientations in half-pi units: rotating the local horizontal
// edge by QuarterTurns*pi gives the edge's world direction. The four
// edges walk the boundary clockwise.
const (
	TurnTop    = 0
	TurnRight  = 0.5
	TurnBottom = 1
	TurnLeft   = 1.5
)

// descriptor is one cubic-bezier segment of the tab silhouette,
// expressed in percent of the edge length. Negative y bulges out of
// the piece.
type descriptor struct {
	cx1, cy1, cx2, cy2, ex, ey float64
}

// tabCurve is the fixed double-bump tab silhouette shared by every
// piece: shoulder, neck, head, head, neck, shoulder. Each segment's
// first control point coincides with the previous segment's endpoint,
// keeping the silhouette smooth.
var tabCurve = [6]descriptor{
	{0, 0, 35, 15, 37, 5},
	{37, 5, 40, 0, 38, -5},
	{38, -5, 20, -20, 50, -20},
	{50, -20, 80, -20, 62, -5},
	{62, -5, 60, 0, 63, 5},
	{63, 5, 65, 15, 100, 0},
}

// AppendEdge appends one edge to a boundary under construction. The
// edge starts at (originX, originY) and runs along the local +x axis
// rotated by quarterTurns*pi. A zero border emits the flat rim line to
// the far corner; otherwise the six tab segments are emitted, with
// their y offsets negated when border is negative so the bump mirrors
// through the edge's tangent line (blank instead of tab).
func AppendEdge(path *curve.BezPath, originX, originY, quarterTurns float64, border int, size float64) {
	aff := curve.Translate(curve.Vec2{X: originX, Y: originY}).
		Mul(curve.Rotate(quarterTurns * math.Pi))

	if border == 0 {
		path.LineTo(curve.Pt(size, 0).Transform(aff))
		return
	}

	mirror := 1.0
	if border < 0 {
		mirror = -1.0
	}
	s := size / 100
	for _, d := range tabCurve {
		path.CubicTo(
			curve.Pt(d.cx1*s, mirror*d.cy1*s).Transform(aff),
			curve.Pt(d.cx2*s, mirror*d.cy2*s).Transform(aff),
			curve.Pt(d.ex*s, mirror*d.ey*s).Transform(aff),
		)
	}
}

// Piece builds the closed boundary of a whole piece: the logical
// square of the given size inset by padding, walked clockwise from the
// top-left corner with each edge shaped by its border value. The last
// edge terminates exactly at the starting corner; ClosePath makes the
// loop explicit.
func Piece(borders model.BorderSpec, size, padding float64) curve.BezPath {
	var p curve.BezPath
	p.MoveTo(curve.Pt(padding, padding))
	AppendEdge(&p, padding, padding, TurnTop, borders.Top, size)
	AppendEdge(&p, padding+size, padding, TurnRight, borders.Right, size)
	AppendEdge(&p, padding+size, padding+size, TurnBottom, borders.Bottom, size)
	AppendEdge(&p, padding, padding+size, TurnLeft, borders.Left, size)
	p.ClosePath()
	return p
}

// Flatten approximates a boundary as a polygon within the given
// tolerance. Used by the DXF exporter and by geometric tests.
func Flatten(p curve.BezPath, tolerance float64) []curve.Point {
	var pts []curve.Point
	for el := range p.Flatten(tolerance) {
		switch el.Kind {
		case curve.MoveToKind, curve.LineToKind:
			pts = append(pts, el.P0)
		}
	}
	return pts
}
