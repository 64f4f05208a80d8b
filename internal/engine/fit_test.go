package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pieceworks/jigsaw/internal/model"
)

func TestIsNeighbor(t *testing.T) {
	tests := []struct {
		name     string
		a, b     model.GridCoord
		expected bool
	}{
		{"right", model.GridCoord{Col: 1, Row: 1}, model.GridCoord{Col: 2, Row: 1}, true},
		{"left", model.GridCoord{Col: 1, Row: 1}, model.GridCoord{Col: 0, Row: 1}, true},
		{"below", model.GridCoord{Col: 1, Row: 1}, model.GridCoord{Col: 1, Row: 2}, true},
		{"above", model.GridCoord{Col: 1, Row: 1}, model.GridCoord{Col: 1, Row: 0}, true},
		{"self", model.GridCoord{Col: 1, Row: 1}, model.GridCoord{Col: 1, Row: 1}, false},
		{"diagonal", model.GridCoord{Col: 1, Row: 1}, model.GridCoord{Col: 2, Row: 2}, false},
		{"two apart", model.GridCoord{Col: 1, Row: 1}, model.GridCoord{Col: 3, Row: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNeighbor(tt.a, tt.b))
			assert.Equal(t, tt.expected, IsNeighbor(tt.b, tt.a), "adjacency is symmetric")
		})
	}
}

func TestCanFit(t *testing.T) {
	m := model.Metrics{Size: 50, Delta: 5}

	anchor := model.NewPiece(model.GridCoord{Col: 1, Row: 1}, model.BorderSpec{})
	anchor.PlaceOnTable(200, 200)

	// The slot below the anchor is (top 250, left 200).
	below := model.NewPiece(model.GridCoord{Col: 1, Row: 2}, model.BorderSpec{})

	below.PlaceOnTable(253, 200)
	assert.True(t, CanFit(m, anchor, below), "3px off is within a 5px tolerance")

	below.PlaceOnTable(210, 200)
	assert.False(t, CanFit(m, anchor, below), "40px off is far outside the tolerance")

	// Exactly Delta away does not fit: the comparison is strict.
	below.PlaceOnTable(255, 200)
	assert.False(t, CanFit(m, anchor, below))
}

func TestCanFitAnchorRelative(t *testing.T) {
	m := model.Metrics{Size: 50, Delta: 5}

	anchor := model.NewPiece(model.GridCoord{Col: 0, Row: 0}, model.BorderSpec{})
	right := model.NewPiece(model.GridCoord{Col: 1, Row: 0}, model.BorderSpec{})

	anchor.PlaceOnTable(100, 100)
	right.PlaceOnTable(100, 150)
	assert.True(t, CanFit(m, anchor, right))

	// Fit is judged against where the anchor actually sits, so moving
	// the anchor takes the slot with it.
	anchor.PlaceOnTable(100, 300)
	assert.False(t, CanFit(m, anchor, right))
	right.PlaceOnTable(100, 350)
	assert.True(t, CanFit(m, anchor, right))
}
