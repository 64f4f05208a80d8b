package model

import (
	"errors"
	"math"
)

// ErrNoActiveDrag is returned by drag-relative operations when no drag
// is in progress. Drag continuation without a preceding BeginDrag is a
// programming error on the caller's side, surfaced instead of
// producing a garbage offset.
var ErrNoActiveDrag = errors.New("no active drag: BeginDrag must be called first")

// LocationTable is the Location of a piece lying on the assembly
// table. Any other Location value is the name of a holding drawer.
const LocationTable = "table"

// TableMargin is the minimum top/left coordinate of a piece placed on
// the table; it keeps pieces clear of the control strip.
const TableMargin = 100

// PiecePosition tracks a piece's screen placement through pick, drag,
// and drop. Top and Left are table-frame coordinates. While a drag is
// in progress the anchor recorded at pick-up translates pointer
// positions into table positions; the anchor is explicit state and is
// nil between drags, so the two coordinate frames can never be
// silently confused.
type PiecePosition struct {
	Top  float64
	Left float64

	// Location is LocationTable or a drawer name. It changes only on
	// explicit drop operations.
	Location string

	// anchor is the pointer's offset from the piece origin at
	// pick-up. Valid only while a drag is in progress.
	anchor *Position
}

// NewPiecePosition returns the initial placement state: origin of the
// table frame, on the table.
func NewPiecePosition() PiecePosition {
	return PiecePosition{Location: LocationTable}
}

// Pos returns the current table-frame position.
func (pp *PiecePosition) Pos() Position {
	return Position{Top: pp.Top, Left: pp.Left}
}

// Dragging reports whether a drag is in progress.
func (pp *PiecePosition) Dragging() bool {
	return pp.anchor != nil
}

// PlaceOnTable puts the piece on the table at the given coordinates,
// clamped to TableMargin.
func (pp *PiecePosition) PlaceOnTable(top, left float64) {
	pp.Top = math.Max(top, TableMargin)
	pp.Left = math.Max(left, TableMargin)
	pp.Location = LocationTable
}

// BeginDrag starts a drag: the anchor becomes the pointer's offset
// from the piece's visual origin, and the same pointer position is
// applied immediately so the piece does not jump under the cursor.
// Raising the piece above its siblings is the widget layer's job.
func (pp *PiecePosition) BeginDrag(pointer, origin Position) {
	pp.anchor = &Position{
		Top:  pointer.Top - origin.Top,
		Left: pointer.Left - origin.Left,
	}
	pp.Top = pointer.Top - pp.anchor.Top
	pp.Left = pointer.Left - pp.anchor.Left
}

// ContinueDrag moves the piece so the anchor stays under the pointer.
func (pp *PiecePosition) ContinueDrag(pointer Position) error {
	if pp.anchor == nil {
		return ErrNoActiveDrag
	}
	pp.Top = pointer.Top - pp.anchor.Top
	pp.Left = pointer.Left - pp.anchor.Left
	return nil
}

// DropToDrawer moves the piece into the named drawer and ends any
// drag. The drawer layout owns the visual position from here on.
func (pp *PiecePosition) DropToDrawer(name string) {
	pp.Location = name
	pp.anchor = nil
}

// DropToTable drops the piece on the table at the given pointer
// position, still relative to the active drag's anchor, and ends the
// drag.
func (pp *PiecePosition) DropToTable(pointer Position) error {
	if pp.anchor == nil {
		return ErrNoActiveDrag
	}
	pp.Location = LocationTable
	pp.Top = pointer.Top - pp.anchor.Top
	pp.Left = pointer.Left - pp.anchor.Left
	pp.anchor = nil
	return nil
}
