// Package engine assembles puzzles: it assigns interlocking borders
// across the grid, builds the piece set, and evaluates whether a
// dropped piece sits close enough to its correct slot.
package engine

import (
	"github.com/pieceworks/jigsaw/internal/model"
)

// IsNeighbor reports 4-connected grid adjacency: same row with a
// column difference of one, or same column with a row difference of
// one. Diagonal cells are never adjacent, nor is a cell its own
// neighbor.
func IsNeighbor(a, b model.GridCoord) bool {
	dc := abs(a.Col - b.Col)
	dr := abs(a.Row - b.Row)
	return dc+dr == 1
}

// CanFit reports whether candidate currently sits close enough to the
// slot it should occupy relative to anchor's actual position. The
// expected slot follows from the two grid coordinates and the puzzle
// pitch; the candidate fits when its Euclidean distance to that slot
// is strictly below the snap tolerance. The test is evaluated against
// the anchor's current position, so no symmetry between the two pieces
// is guaranteed. It reports only; the caller decides what to do with
// the result.
func CanFit(m model.Metrics, anchor, candidate *model.Piece) bool {
	expected := m.CalcPiecePos(candidate.Coord, anchor.Pos(), anchor.Coord)
	return expected.Dist(candidate.Pos()) < m.Delta
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
