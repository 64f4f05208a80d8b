package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/pieceworks/jigsaw/internal/engine"
	"github.com/pieceworks/jigsaw/internal/model"
)

func testPuzzle(t *testing.T) *model.Puzzle {
	t.Helper()
	m := model.NewMetrics(600, 3, 900, 1)
	return engine.GeneratePieces(3, 2, m, 42)
}

func TestExportDXF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puzzle.dxf")
	if err := ExportDXF(path, testPuzzle(t), 0.1); err != nil {
		t.Fatalf("ExportDXF failed: %v", err)
	}

	drawing, err := dxf.Open(path)
	if err != nil {
		t.Fatalf("cannot reopen exported DXF: %v", err)
	}

	lines := 0
	for _, ent := range drawing.Entities() {
		if _, ok := ent.(*entity.Line); ok {
			lines++
		}
	}
	if lines == 0 {
		t.Error("exported DXF contains no LINE entities")
	}
	// Six pieces of four edges each; every edge flattens to at least
	// one segment.
	if lines < 24 {
		t.Errorf("expected at least 24 line segments, got %d", lines)
	}
}

func TestExportDXFEmptyPuzzle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.dxf")
	pz := &model.Puzzle{Cols: 2, Rows: 2, Metrics: model.NewMetrics(600, 2, 600, 1)}
	if err := ExportDXF(path, pz, 0.1); err == nil {
		t.Error("expected error for puzzle without pieces")
	}
}

func TestExportPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puzzle.pdf")
	if err := ExportPDF(path, testPuzzle(t)); err != nil {
		t.Fatalf("ExportPDF failed: %v", err)
	}
	assertPDFFile(t, path)
}

func TestExportPDFEmptyPuzzle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	pz := &model.Puzzle{Cols: 2, Rows: 2, Metrics: model.NewMetrics(600, 2, 600, 1)}
	if err := ExportPDF(path, pz); err == nil {
		t.Error("expected error for puzzle without pieces")
	}
}

func TestExportLabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")
	if err := ExportLabels(path, testPuzzle(t)); err != nil {
		t.Fatalf("ExportLabels failed: %v", err)
	}
	assertPDFFile(t, path)
}

func TestExportLabelsEmptyPuzzle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	pz := &model.Puzzle{Cols: 2, Rows: 2, Metrics: model.NewMetrics(600, 2, 600, 1)}
	if err := ExportLabels(path, pz); err == nil {
		t.Error("expected error for puzzle without pieces")
	}
}

// assertPDFFile checks the file exists, is non-trivial, and starts
// with the PDF magic.
func assertPDFFile(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("cannot read exported file: %v", err)
	}
	if len(data) < 1000 {
		t.Errorf("exported file suspiciously small: %d bytes", len(data))
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("exported file does not start with %PDF")
	}
}
