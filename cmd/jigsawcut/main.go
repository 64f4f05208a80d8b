// jigsawcut cuts a puzzle headlessly and writes fabrication files:
// DXF piece outlines, a PDF reference sheet, and QR piece labels.
//
//	jigsawcut -image photo.jpg -cols 6 -rows 4 -dxf pieces.dxf -pdf sheet.pdf
package main

import (
	"flag"
	"image"
	"log"
	"os"

	_ "image/jpeg"
	_ "image/png"

	"github.com/pieceworks/jigsaw/internal/engine"
	"github.com/pieceworks/jigsaw/internal/export"
	"github.com/pieceworks/jigsaw/internal/model"
)

func main() {
	var (
		imagePath = flag.String("image", "", "source image (png or jpeg); only its dimensions matter for outlines")
		cols      = flag.Int("cols", 6, "puzzle columns")
		rows      = flag.Int("rows", 4, "puzzle rows")
		boardPx   = flag.Float64("board", 600, "table pixels per row of pieces")
		seed      = flag.Int64("seed", 1, "tab layout seed")
		tolerance = flag.Float64("tolerance", 0.1, "curve flattening tolerance for DXF")
		dxfOut    = flag.String("dxf", "", "write piece outlines to this DXF file")
		pdfOut    = flag.String("pdf", "", "write a reference sheet to this PDF file")
		labelsOut = flag.String("labels", "", "write QR piece labels to this PDF file")
	)
	flag.Parse()

	if *imagePath == "" {
		log.Fatal("-image is required")
	}
	if *cols < 2 || *rows < 2 {
		log.Fatal("-cols and -rows must be at least 2")
	}
	if *dxfOut == "" && *pdfOut == "" && *labelsOut == "" {
		log.Fatal("nothing to do: pass at least one of -dxf, -pdf, -labels")
	}

	f, err := os.Open(*imagePath)
	if err != nil {
		log.Fatalf("cannot open image: %v", err)
	}
	cfg, _, err := image.DecodeConfig(f)
	f.Close()
	if err != nil {
		log.Fatalf("cannot decode image: %v", err)
	}

	m := model.NewMetrics(*boardPx, *cols, cfg.Width, 1)
	pz := engine.GeneratePieces(*cols, *rows, m, *seed)
	log.Printf("cut %d pieces (%d x %d, piece size %.1f px)", len(pz.Pieces), *cols, *rows, m.Size)

	if *dxfOut != "" {
		if err := export.ExportDXF(*dxfOut, pz, *tolerance); err != nil {
			log.Fatalf("DXF export failed: %v", err)
		}
		log.Printf("wrote %s", *dxfOut)
	}
	if *pdfOut != "" {
		if err := export.ExportPDF(*pdfOut, pz); err != nil {
			log.Fatalf("PDF export failed: %v", err)
		}
		log.Printf("wrote %s", *pdfOut)
	}
	if *labelsOut != "" {
		if err := export.ExportLabels(*labelsOut, pz); err != nil {
			log.Fatalf("label export failed: %v", err)
		}
		log.Printf("wrote %s", *labelsOut)
	}
}
