package model

// Metrics holds the shared sizing values for one puzzle. All pieces of
// a puzzle are cut and placed with the same metrics; the values are
// assumed positive and internally consistent.
type Metrics struct {
	// Size is the logical edge length of a piece square on the table.
	Size float64 `json:"size"`
	// Padding is the tab overhang around the logical square. The
	// rendered bitmap extends Padding on every side of the square so
	// tabs are not clipped.
	Padding float64 `json:"padding"`
	// FullSize is Size + 2*Padding, the logical side of a piece bitmap.
	FullSize float64 `json:"full_size"`
	// Scale is device pixels per logical pixel (high-density displays).
	Scale float64 `json:"scale"`
	// ImgSize is the source-image pixels covered by one grid cell.
	ImgSize float64 `json:"img_size"`
	// Delta is the snap tolerance in table pixels: a dropped piece
	// closer than this to its correct slot fits.
	Delta float64 `json:"delta"`
}

// NewMetrics derives the shared piece metrics from the table's pixel
// budget for one row of pieces, the column count, the source image
// width, and the display scale.
func NewMetrics(boardPx float64, cols int, imgWidth int, scale float64) Metrics {
	size := boardPx / float64(cols)
	padding := size / 4
	return Metrics{
		Size:     size,
		Padding:  padding,
		FullSize: size + 2*padding,
		Scale:    scale,
		ImgSize:  float64(imgWidth) / float64(cols),
		Delta:    size / 5,
	}
}

// SamplePad is the source-image padding corresponding to the on-table
// tab overhang. Scaling it by ImgSize/Size keeps the oversampled tab
// region proportionally correct regardless of display size.
func (m Metrics) SamplePad() float64 {
	return m.Padding * m.ImgSize / m.Size
}

// SampleRect returns the origin and side length of the source-image
// rectangle a piece at the given cell samples: the cell square grown
// by SamplePad on every side.
func (m Metrics) SampleRect(c GridCoord) (x, y, side float64) {
	pad := m.SamplePad()
	x = float64(c.Col)*m.ImgSize - pad
	y = float64(c.Row)*m.ImgSize - pad
	side = m.ImgSize + 2*pad
	return x, y, side
}

// CalcPiecePos returns the position target should occupy if correctly
// placed relative to an anchor piece's actual position: one Size step
// per grid step in each axis.
func (m Metrics) CalcPiecePos(target GridCoord, anchorPos Position, anchor GridCoord) Position {
	return Position{
		Top:  anchorPos.Top + float64(target.Row-anchor.Row)*m.Size,
		Left: anchorPos.Left + float64(target.Col-anchor.Col)*m.Size,
	}
}
