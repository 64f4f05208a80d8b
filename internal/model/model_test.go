package model

import (
	"testing"
)

func TestBorderSpecIsBoundary(t *testing.T) {
	tests := []struct {
		name     string
		spec     BorderSpec
		expected bool
	}{
		{"corner piece, two flat edges", BorderSpec{Top: 0, Right: 1, Bottom: -1, Left: 0}, true},
		{"edge piece, one flat edge", BorderSpec{Top: 0, Right: 1, Bottom: -1, Left: 1}, true},
		{"interior piece, no flat edge", BorderSpec{Top: 1, Right: -1, Bottom: 1, Left: -1}, false},
		{"all flat (1x1 puzzle)", BorderSpec{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.IsBoundary(); got != tt.expected {
				t.Errorf("IsBoundary() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNewPieceDefaults(t *testing.T) {
	p := NewPiece(GridCoord{Col: 1, Row: 2}, BorderSpec{Top: 1, Right: -1, Bottom: 1, Left: -1})

	if len(p.ID) != 8 {
		t.Errorf("expected 8-char ID, got %q", p.ID)
	}
	if p.Coord.Col != 1 || p.Coord.Row != 2 {
		t.Errorf("unexpected coord: %+v", p.Coord)
	}
	if p.Location != LocationTable {
		t.Errorf("expected new piece on the table, got %q", p.Location)
	}
	if p.IsBoundary() {
		t.Error("interior piece classified as boundary")
	}
	if p.Bitmap != nil {
		t.Error("bitmap should be unset before rendering")
	}
}

func TestPieceAtMapping(t *testing.T) {
	pz := &Puzzle{Cols: 3, Rows: 2}
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			pz.Pieces = append(pz.Pieces, NewPiece(GridCoord{Col: c, Row: r}, BorderSpec{}))
		}
	}

	p := pz.PieceAt(2, 1)
	if p == nil || p.Coord.Col != 2 || p.Coord.Row != 1 {
		t.Errorf("PieceAt(2,1) returned wrong piece: %+v", p)
	}
	if pz.PieceAt(3, 0) != nil {
		t.Error("expected nil for out-of-range column")
	}
	if pz.PieceAt(0, -1) != nil {
		t.Error("expected nil for out-of-range row")
	}
}

func TestPositionDist(t *testing.T) {
	a := Position{Top: 200, Left: 200}
	b := Position{Top: 203, Left: 204}
	if d := a.Dist(b); d != 5 {
		t.Errorf("expected distance 5, got %f", d)
	}
	if d := a.Dist(a); d != 0 {
		t.Errorf("expected zero distance to self, got %f", d)
	}
}
