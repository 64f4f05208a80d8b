// Package model defines the core domain types of the puzzle: grid
// coordinates, border specifications, screen positions, and the Piece
// aggregate that ties geometry, rendering, and placement together.
package model

import (
	"image"
	"math"

	"github.com/google/uuid"
)

// Position is a screen offset in pixels, expressed as top/left the way
// the table lays pieces out. Which coordinate frame it lives in (table
// or drag-relative) depends on the operation using it.
type Position struct {
	Top  float64 `json:"top"`
	Left float64 `json:"left"`
}

// Dist returns the Euclidean distance to another position.
func (p Position) Dist(o Position) float64 {
	return math.Hypot(p.Top-o.Top, p.Left-o.Left)
}

// GridCoord is a zero-based column/row cell in the puzzle grid. It is
// fixed for a piece's lifetime and selects both the image
// sub-rectangle the piece samples and which pieces are its neighbors.
type GridCoord struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// BorderSpec describes the four edges of a piece. Zero means a flat
// edge on the puzzle rim; +1 a tab bulging outward, -1 a blank curving
// inward. The two pieces sharing an interior edge always carry
// opposite signs so a tab mates with a blank.
type BorderSpec struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}

// IsBoundary reports whether the piece sits on the puzzle rim, i.e. at
// least one of its edges is flat.
func (b BorderSpec) IsBoundary() bool {
	return b.Top == 0 || b.Right == 0 || b.Bottom == 0 || b.Left == 0
}

// Piece is one puzzle piece: immutable identity and geometry assigned
// at construction, a bitmap rendered exactly once, and mutable
// placement state.
type Piece struct {
	ID      string
	Coord   GridCoord
	Borders BorderSpec

	PiecePosition

	// Bitmap is the piece's rendered visual identity. It is painted
	// once at construction and never re-sampled on reposition.
	Bitmap *image.RGBA
}

// NewPiece creates a piece with a generated ID. The bitmap is assigned
// separately by the renderer.
func NewPiece(coord GridCoord, borders BorderSpec) *Piece {
	return &Piece{
		ID:            uuid.New().String()[:8],
		Coord:         coord,
		Borders:       borders,
		PiecePosition: NewPiecePosition(),
	}
}

// IsBoundary reports whether the piece sits on the puzzle rim.
func (p *Piece) IsBoundary() bool {
	return p.Borders.IsBoundary()
}

// Puzzle is a full set of pieces cut from one source image, together
// with the shared metrics they were cut with.
type Puzzle struct {
	Cols    int
	Rows    int
	Metrics Metrics
	Pieces  []*Piece
}

// PieceAt returns the piece at the given grid cell, or nil when the
// cell is out of range.
func (pz *Puzzle) PieceAt(col, row int) *Piece {
	if col < 0 || col >= pz.Cols || row < 0 || row >= pz.Rows {
		return nil
	}
	return pz.Pieces[row*pz.Cols+col]
}
