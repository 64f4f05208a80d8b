package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"
	"honnef.co/go/curve"

	"github.com/pieceworks/jigsaw/internal/model"
	"github.com/pieceworks/jigsaw/internal/outline"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a reference sheet for a puzzle: one page with
// the assembled cutting diagram (every piece outline in place) and a
// summary page with the puzzle's metrics.
func ExportPDF(path string, pz *model.Puzzle) error {
	if len(pz.Pieces) == 0 {
		return fmt.Errorf("no pieces to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderDiagramPage(pdf, pz)

	pdf.AddPage()
	renderSummaryPage(pdf, pz)

	return pdf.OutputFileAndClose(path)
}

// renderDiagramPage draws the assembled puzzle grid with every piece
// outline on the current page.
func renderDiagramPage(pdf *fpdf.Fpdf, pz *model.Puzzle) {
	m := pz.Metrics

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Cutting diagram: %d x %d pieces", pz.Cols, pz.Rows)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Scale the assembled puzzle (plus tab overhang on the rim) into
	// the drawing area.
	puzzleW := float64(pz.Cols)*m.Size + 2*m.Padding
	puzzleH := float64(pz.Rows)*m.Size + 2*m.Padding
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom
	scale := drawWidth / puzzleW
	if s := drawHeight / puzzleH; s < scale {
		scale = s
	}
	offX := marginLeft + (drawWidth-puzzleW*scale)/2
	offY := drawAreaTop

	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.2)
	for _, p := range pz.Pieces {
		ox := offX + float64(p.Coord.Col)*m.Size*scale
		oy := offY + float64(p.Coord.Row)*m.Size*scale
		boundary := outline.Piece(p.Borders, m.Size, m.Padding)
		drawOutline(pdf, boundary, ox, oy, scale)
	}
}

// drawOutline traces one piece boundary with fpdf's path primitives.
func drawOutline(pdf *fpdf.Fpdf, p curve.BezPath, offX, offY, s float64) {
	for _, el := range p {
		switch el.Kind {
		case curve.MoveToKind:
			pdf.MoveTo(offX+el.P0.X*s, offY+el.P0.Y*s)
		case curve.LineToKind:
			pdf.LineTo(offX+el.P0.X*s, offY+el.P0.Y*s)
		case curve.CubicToKind:
			pdf.CurveBezierCubicTo(
				offX+el.P0.X*s, offY+el.P0.Y*s,
				offX+el.P1.X*s, offY+el.P1.Y*s,
				offX+el.P2.X*s, offY+el.P2.Y*s,
			)
		case curve.ClosePathKind:
			pdf.ClosePath()
		}
	}
	pdf.DrawPath("D")
}

// renderSummaryPage writes the puzzle statistics and metrics.
func renderSummaryPage(pdf *fpdf.Fpdf, pz *model.Puzzle) {
	m := pz.Metrics

	boundary := 0
	for _, p := range pz.Pieces {
		if p.IsBoundary() {
			boundary++
		}
	}

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "Puzzle summary", "", 0, "L", false, 0, "")

	lines := []string{
		fmt.Sprintf("Pieces: %d (%d columns x %d rows)", len(pz.Pieces), pz.Cols, pz.Rows),
		fmt.Sprintf("Boundary pieces: %d | Interior pieces: %d", boundary, len(pz.Pieces)-boundary),
		fmt.Sprintf("Piece size: %.1f px | Tab overhang: %.1f px | Bitmap side: %.1f px", m.Size, m.Padding, m.FullSize),
		fmt.Sprintf("Source pixels per cell: %.1f | Snap tolerance: %.1f px", m.ImgSize, m.Delta),
	}
	pdf.SetFont("Helvetica", "", 10)
	y := marginTop + headerHeight + 5
	for _, line := range lines {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 6, line, "", 0, "L", false, 0, "")
		y += 7
	}
}
