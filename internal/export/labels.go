package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/pieceworks/jigsaw/internal/model"
)

// LabelInfo holds the data encoded into each piece label's QR code.
type LabelInfo struct {
	PieceID  string `json:"id"`
	Col      int    `json:"col"`
	Row      int    `json:"row"`
	Top      int    `json:"top"`
	Right    int    `json:"right"`
	Bottom   int    `json:"bottom"`
	Left     int    `json:"left"`
	Boundary bool   `json:"boundary"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns,
// 10 rows per page) on US Letter paper.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded labels, one per piece. Each
// label carries the piece's grid cell and a QR code encoding its
// identity and border layout as JSON, so physically cut pieces can be
// matched back to their slots.
func ExportLabels(path string, pz *model.Puzzle) error {
	if len(pz.Pieces) == 0 {
		return fmt.Errorf("no pieces to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, p := range pz.Pieces {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		info := LabelInfo{
			PieceID:  p.ID,
			Col:      p.Coord.Col,
			Row:      p.Coord.Row,
			Top:      p.Borders.Top,
			Right:    p.Borders.Right,
			Bottom:   p.Borders.Bottom,
			Left:     p.Borders.Left,
			Boundary: p.IsBoundary(),
		}
		if err := renderLabel(pdf, x, y, info); err != nil {
			return fmt.Errorf("failed to render label for piece %s: %w", p.ID, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Light border as a cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s", info.PieceID)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	// QR code on the right side of the label
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Text block on the left
	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(textX, y+labelPadding)
	pdf.CellFormat(textW, 4, fmt.Sprintf("Piece %s", info.PieceID), "", 0, "L", false, 0, "")

	kind := "interior"
	if info.Boundary {
		kind = "boundary"
	}
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetXY(textX, y+labelPadding+5)
	pdf.CellFormat(textW, 4, fmt.Sprintf("Cell (%d, %d) - %s", info.Col, info.Row, kind), "", 0, "L", false, 0, "")

	pdf.SetXY(textX, y+labelPadding+10)
	pdf.CellFormat(textW, 4, fmt.Sprintf("Edges T%+d R%+d B%+d L%+d", info.Top, info.Right, info.Bottom, info.Left), "", 0, "L", false, 0, "")

	return nil
}
