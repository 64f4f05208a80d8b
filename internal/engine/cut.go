package engine

import (
	"image"
	"math/rand"

	"github.com/pieceworks/jigsaw/internal/model"
	"github.com/pieceworks/jigsaw/internal/render"
)

// GenerateBorders assigns a BorderSpec to every grid cell, indexed
// [row][col]. Rim edges are flat; every interior edge gets a random
// tab direction with the complementary sign on the neighbor sharing
// the edge, so a tab always mates with a blank.
func GenerateBorders(cols, rows int, rng *rand.Rand) [][]model.BorderSpec {
	specs := make([][]model.BorderSpec, rows)
	for r := range specs {
		specs[r] = make([]model.BorderSpec, cols)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c < cols-1 {
				v := tabDirection(rng)
				specs[r][c].Right = v
				specs[r][c+1].Left = -v
			}
			if r < rows-1 {
				v := tabDirection(rng)
				specs[r][c].Bottom = v
				specs[r+1][c].Top = -v
			}
		}
	}
	return specs
}

func tabDirection(rng *rand.Rand) int {
	if rng.Intn(2) == 0 {
		return 1
	}
	return -1
}

// GeneratePieces builds the piece set for a cols x rows puzzle without
// rendering any bitmaps. The seed makes the tab layout reproducible.
func GeneratePieces(cols, rows int, m model.Metrics, seed int64) *model.Puzzle {
	rng := rand.New(rand.NewSource(seed))
	specs := GenerateBorders(cols, rows, rng)

	pz := &model.Puzzle{Cols: cols, Rows: rows, Metrics: m}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pz.Pieces = append(pz.Pieces, model.NewPiece(
				model.GridCoord{Col: c, Row: r},
				specs[r][c],
			))
		}
	}
	return pz
}

// BuildPuzzle cuts the source image into cols x rows interlocking
// pieces, rendering each piece's bitmap exactly once.
func BuildPuzzle(src image.Image, cols, rows int, m model.Metrics, seed int64) *model.Puzzle {
	pz := GeneratePieces(cols, rows, m, seed)
	rd := render.New(src, m)
	for _, p := range pz.Pieces {
		p.Bitmap = rd.Piece(p.Coord, p.Borders)
	}
	return pz
}
