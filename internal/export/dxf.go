// Package export writes puzzle piece geometry to fabrication-oriented
// file formats: DXF outlines for laser cutters, PDF reference sheets,
// and QR-coded piece labels.
package export

import (
	"fmt"

	"github.com/yofu/dxf"

	"github.com/pieceworks/jigsaw/internal/model"
	"github.com/pieceworks/jigsaw/internal/outline"
)

// dxfLayer is the layer all piece outlines are written to.
const dxfLayer = "PIECES"

// ExportDXF writes every piece outline as LINE entities, laid out in
// the assembled grid. Curves are flattened to segments within the
// given tolerance (in table pixels); a tolerance around 0.1 keeps tab
// silhouettes smooth at typical cutting sizes.
func ExportDXF(path string, pz *model.Puzzle, tolerance float64) error {
	if len(pz.Pieces) == 0 {
		return fmt.Errorf("no pieces to export")
	}

	d := dxf.NewDrawing()
	if _, err := d.AddLayer(dxfLayer, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add layer: %w", err)
	}

	m := pz.Metrics
	for _, p := range pz.Pieces {
		boundary := outline.Piece(p.Borders, m.Size, m.Padding)
		pts := outline.Flatten(boundary, tolerance)
		if len(pts) < 2 {
			continue
		}

		// Pieces interlock at Size pitch; Padding overlaps cancel out.
		ox := float64(p.Coord.Col) * m.Size
		oy := float64(p.Coord.Row) * m.Size
		for i := range pts {
			a := pts[i]
			b := pts[(i+1)%len(pts)]
			if _, err := d.Line(ox+a.X, oy+a.Y, 0, ox+b.X, oy+b.Y, 0); err != nil {
				return fmt.Errorf("failed to write outline for piece %s: %w", p.ID, err)
			}
		}
	}

	return d.SaveAs(path)
}
