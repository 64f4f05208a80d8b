// Package ui builds the Fyne user interface: the puzzle table, the
// piece drawers, menus, and export dialogs.
package ui

import (
	"fmt"
	"image"
	"strconv"
	"time"

	_ "image/jpeg"
	_ "image/png"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/pieceworks/jigsaw/internal/engine"
	"github.com/pieceworks/jigsaw/internal/export"
	"github.com/pieceworks/jigsaw/internal/model"
	"github.com/pieceworks/jigsaw/internal/project"
	"github.com/pieceworks/jigsaw/internal/ui/widgets"
)

// The two holding drawers stacked in the control strip on the left of
// the table. The strip is model.TableMargin wide, which is exactly the
// region table placement clamps away from.
const (
	drawerA = "drawer-a"
	drawerB = "drawer-b"
)

// dxfTolerance is the curve flattening tolerance for outline export.
const dxfTolerance = 0.1

// App holds all application state and UI references.
type App struct {
	app    fyne.App
	window fyne.Window
	config model.AppConfig

	puzzle *model.Puzzle
	pieces []*widgets.PieceWidget

	table  *fyne.Container // absolute layout holding every piece widget
	status *widget.Label
}

func NewApp(application fyne.App, window fyne.Window, config model.AppConfig) *App {
	return &App{
		app:    application,
		window: window,
		config: config,
	}
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Image...", func() {
			a.openImage()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Outlines (DXF)...", func() {
			a.exportFile("puzzle.dxf", func(path string) error {
				return export.ExportDXF(path, a.puzzle, dxfTolerance)
			})
		}),
		fyne.NewMenuItem("Export Reference Sheet (PDF)...", func() {
			a.exportFile("puzzle.pdf", func(path string) error {
				return export.ExportPDF(path, a.puzzle)
			})
		}),
		fyne.NewMenuItem("Export Piece Labels (PDF)...", func() {
			a.exportFile("labels.pdf", func(path string) error {
				return export.ExportLabels(path, a.puzzle)
			})
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.saveConfig()
			a.window.Close()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			dialog.ShowInformation("Jigsaw",
				"Cut an image into interlocking pieces and put it back together.\n"+
					"Piece outlines can be exported for laser cutting.", a.window)
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))
}

// Build assembles the window content: the table with its drawer strip
// and a status line.
func (a *App) Build() fyne.CanvasObject {
	a.table = container.NewWithoutLayout()
	a.status = widget.NewLabel("Open an image to start a puzzle.")
	return container.NewBorder(nil, a.status, nil, nil, container.NewScroll(a.table))
}

// openImage asks for a source image and then for the grid dimensions.
func (a *App) openImage() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		img, _, err := image.Decode(reader)
		if err != nil {
			dialog.ShowError(fmt.Errorf("cannot decode image: %w", err), a.window)
			return
		}
		a.config.RememberImage(reader.URI().Path())
		a.askGrid(img)
	}, a.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg"}))
	fd.Show()
}

// askGrid prompts for the puzzle grid size, then cuts the image.
func (a *App) askGrid(img image.Image) {
	colsEntry := widget.NewEntry()
	colsEntry.SetText(strconv.Itoa(a.config.DefaultCols))
	rowsEntry := widget.NewEntry()
	rowsEntry.SetText(strconv.Itoa(a.config.DefaultRows))

	form := dialog.NewForm("New Puzzle", "Cut", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Columns", colsEntry),
			widget.NewFormItem("Rows", rowsEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			cols, err1 := strconv.Atoi(colsEntry.Text)
			rows, err2 := strconv.Atoi(rowsEntry.Text)
			if err1 != nil || err2 != nil || cols < 2 || rows < 2 {
				dialog.ShowError(fmt.Errorf("columns and rows must be whole numbers of at least 2"), a.window)
				return
			}
			a.config.DefaultCols = cols
			a.config.DefaultRows = rows
			a.buildPuzzle(img, cols, rows)
		}, a.window)
	form.Show()
}

// buildPuzzle cuts the image, scatters the pieces into the drawers,
// and rebuilds the table.
func (a *App) buildPuzzle(img image.Image, cols, rows int) {
	scale := float64(a.window.Canvas().Scale())
	if scale <= 0 {
		scale = 1
	}
	m := model.NewMetrics(a.config.DefaultBoardPx, cols, img.Bounds().Dx(), scale)
	a.config.Apply(&m)

	a.puzzle = engine.BuildPuzzle(img, cols, rows, m, time.Now().UnixNano())

	a.table.RemoveAll()
	a.pieces = a.pieces[:0]
	for i, p := range a.puzzle.Pieces {
		if i%2 == 0 {
			p.DropToDrawer(drawerA)
		} else {
			p.DropToDrawer(drawerB)
		}
		w := widgets.NewPieceWidget(p, m)
		w.OnPick = a.raise
		w.OnDrop = a.dropPiece
		w.Resize(w.MinSize())
		a.pieces = append(a.pieces, w)
		a.table.Add(w)
	}
	a.layoutDrawers()
	a.table.Refresh()
	a.status.SetText(fmt.Sprintf("%d pieces cut. Drag them out of the drawers.", len(a.puzzle.Pieces)))
}

// raise moves a picked widget to the end of the table's object list so
// it renders above every sibling.
func (a *App) raise(w *widgets.PieceWidget) {
	a.table.Remove(w)
	a.table.Add(w)
}

// dropPiece decides what a released piece does: return to a drawer
// when released over the control strip, otherwise land on the table,
// snapping onto its correct slot when a placed neighbor is close
// enough.
func (a *App) dropPiece(w *widgets.PieceWidget, pointer model.Position) {
	p := w.Piece

	if pointer.Left < model.TableMargin {
		if pointer.Top < float64(a.table.Size().Height)/2 {
			p.DropToDrawer(drawerA)
		} else {
			p.DropToDrawer(drawerB)
		}
		a.layoutDrawers()
		return
	}

	if err := p.DropToTable(pointer); err != nil {
		// The gesture never established an anchor; leave the piece be.
		return
	}
	a.snap(w)
	a.layoutDrawers()
}

// snap tests the dropped piece against every placed neighbor and moves
// it onto the exact slot when one fits.
func (a *App) snap(w *widgets.PieceWidget) {
	p := w.Piece
	m := a.puzzle.Metrics
	for _, other := range a.pieces {
		anchor := other.Piece
		if anchor == p || anchor.Location != model.LocationTable {
			continue
		}
		if !engine.IsNeighbor(anchor.Coord, p.Coord) {
			continue
		}
		if engine.CanFit(m, anchor, p) {
			slot := m.CalcPiecePos(p.Coord, anchor.Pos(), anchor.Coord)
			p.PlaceOnTable(slot.Top, slot.Left)
			a.status.SetText(fmt.Sprintf("Piece %s snapped into place.", p.ID))
			break
		}
	}
	w.ApplyPos()
}

// layoutDrawers stacks drawer pieces in the control strip; the drawer
// owns their visual position, not the tracker.
func (a *App) layoutDrawers() {
	if a.puzzle == nil {
		return
	}
	step := float32(a.puzzle.Metrics.FullSize) * 0.6
	half := a.table.Size().Height / 2
	var nA, nB float32
	for _, w := range a.pieces {
		switch w.Piece.Location {
		case drawerA:
			w.Move(fyne.NewPos(0, nA*step))
			nA++
		case drawerB:
			w.Move(fyne.NewPos(0, half+nB*step))
			nB++
		case model.LocationTable:
			w.ApplyPos()
		}
	}
}

// exportFile runs an exporter behind a save dialog.
func (a *App) exportFile(suggested string, run func(path string) error) {
	if a.puzzle == nil {
		dialog.ShowError(fmt.Errorf("no puzzle to export - open an image first"), a.window)
		return
	}
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if err := run(path); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.status.SetText("Exported " + path)
	}, a.window)
	fd.SetFileName(suggested)
	fd.Show()
}

// saveConfig persists preferences; failures are not fatal on exit.
func (a *App) saveConfig() {
	size := a.window.Canvas().Size()
	a.config.WindowWidth = size.Width
	a.config.WindowHeight = size.Height
	_ = project.SaveAppConfig(project.DefaultConfigPath(), a.config)
}
