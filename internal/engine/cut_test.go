package engine

import (
	"image"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pieceworks/jigsaw/internal/model"
)

func TestGenerateBordersRimFlat(t *testing.T) {
	specs := GenerateBorders(4, 3, rand.New(rand.NewSource(1)))

	for c := 0; c < 4; c++ {
		assert.Zero(t, specs[0][c].Top, "top rim col %d", c)
		assert.Zero(t, specs[2][c].Bottom, "bottom rim col %d", c)
	}
	for r := 0; r < 3; r++ {
		assert.Zero(t, specs[r][0].Left, "left rim row %d", r)
		assert.Zero(t, specs[r][3].Right, "right rim row %d", r)
	}
}

func TestGenerateBordersComplementary(t *testing.T) {
	specs := GenerateBorders(4, 3, rand.New(rand.NewSource(42)))

	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			if c < 3 {
				right := specs[r][c].Right
				assert.Contains(t, []int{1, -1}, right, "interior edge (%d,%d) right", c, r)
				assert.Equal(t, -right, specs[r][c+1].Left, "edge between (%d,%d) and (%d,%d)", c, r, c+1, r)
			}
			if r < 2 {
				bottom := specs[r][c].Bottom
				assert.Contains(t, []int{1, -1}, bottom, "interior edge (%d,%d) bottom", c, r)
				assert.Equal(t, -bottom, specs[r+1][c].Top, "edge between (%d,%d) and (%d,%d)", c, r, c, r+1)
			}
		}
	}
}

func TestGeneratePiecesDeterministic(t *testing.T) {
	m := model.NewMetrics(600, 4, 1200, 1)

	a := GeneratePieces(4, 3, m, 7)
	b := GeneratePieces(4, 3, m, 7)
	require.Len(t, a.Pieces, 12)
	require.Len(t, b.Pieces, 12)
	for i := range a.Pieces {
		assert.Equal(t, a.Pieces[i].Borders, b.Pieces[i].Borders, "piece %d", i)
	}

	c := GeneratePieces(4, 3, m, 8)
	same := true
	for i := range a.Pieces {
		if a.Pieces[i].Borders != c.Pieces[i].Borders {
			same = false
			break
		}
	}
	assert.False(t, same, "different seeds should cut different layouts")
}

func TestGeneratePiecesGrid(t *testing.T) {
	m := model.NewMetrics(600, 3, 900, 1)
	pz := GeneratePieces(3, 2, m, 1)

	assert.Equal(t, 3, pz.Cols)
	assert.Equal(t, 2, pz.Rows)
	assert.Equal(t, m, pz.Metrics)
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			p := pz.PieceAt(c, r)
			require.NotNil(t, p, "cell (%d,%d)", c, r)
			assert.Equal(t, model.GridCoord{Col: c, Row: r}, p.Coord)
			assert.Nil(t, p.Bitmap)
		}
	}

	// Corners have two flat edges; in a 3x2 grid every piece is on
	// the rim.
	for _, p := range pz.Pieces {
		assert.True(t, p.IsBoundary())
	}
}

func TestBuildPuzzleRendersBitmaps(t *testing.T) {
	m := model.NewMetrics(100, 2, 200, 1)
	src := image.NewRGBA(image.Rect(0, 0, 200, 200))

	pz := BuildPuzzle(src, 2, 2, m, 1)
	require.Len(t, pz.Pieces, 4)
	side := int(m.FullSize)
	for _, p := range pz.Pieces {
		require.NotNil(t, p.Bitmap)
		assert.Equal(t, image.Rect(0, 0, side, side), p.Bitmap.Bounds())
	}
}
