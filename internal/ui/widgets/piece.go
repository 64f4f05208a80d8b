// Package widgets contains the custom Fyne widgets of the puzzle
// table.
package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/pieceworks/jigsaw/internal/model"
)

// PieceWidget displays one rendered puzzle piece and translates Fyne
// drag gestures into the piece's placement state machine. The widget
// never re-renders the piece bitmap; it only moves it.
type PieceWidget struct {
	widget.BaseWidget

	Piece *model.Piece

	img  *canvas.Image
	side fyne.Size

	dragging    bool
	lastPointer model.Position

	// OnPick is called at drag start so the owner can raise the
	// widget above its siblings.
	OnPick func(*PieceWidget)
	// OnDrop is called when the gesture ends, with the last pointer
	// position in table coordinates. The owner decides between
	// snapping, a free table drop, and a drawer return.
	OnDrop func(*PieceWidget, model.Position)
}

// NewPieceWidget wraps a piece whose bitmap has already been rendered.
func NewPieceWidget(p *model.Piece, m model.Metrics) *PieceWidget {
	img := canvas.NewImageFromImage(p.Bitmap)
	img.FillMode = canvas.ImageFillStretch
	w := &PieceWidget{
		Piece: p,
		img:   img,
		side:  fyne.NewSize(float32(m.FullSize), float32(m.FullSize)),
	}
	w.ExtendBaseWidget(w)
	return w
}

func (w *PieceWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(w.img)
}

func (w *PieceWidget) MinSize() fyne.Size {
	return w.side
}

// ApplyPos moves the widget to the piece's current table position.
func (w *PieceWidget) ApplyPos() {
	w.Move(fyne.NewPos(float32(w.Piece.Left), float32(w.Piece.Top)))
}

// pointer converts a drag event to table coordinates.
func (w *PieceWidget) pointer(ev *fyne.DragEvent) model.Position {
	pos := w.Position()
	return model.Position{
		Top:  float64(pos.Y + ev.Position.Y),
		Left: float64(pos.X + ev.Position.X),
	}
}

// Dragged implements fyne.Draggable. The first event of a gesture
// establishes the drag anchor at the pointer's offset inside the
// piece; later events keep the anchor under the pointer.
func (w *PieceWidget) Dragged(ev *fyne.DragEvent) {
	p := w.pointer(ev)
	w.lastPointer = p
	if !w.dragging {
		w.dragging = true
		origin := w.Position()
		w.Piece.BeginDrag(p, model.Position{
			Top:  float64(origin.Y),
			Left: float64(origin.X),
		})
		if w.OnPick != nil {
			w.OnPick(w)
		}
	} else if err := w.Piece.ContinueDrag(p); err != nil {
		return
	}
	w.ApplyPos()
}

// DragEnd implements fyne.Draggable.
func (w *PieceWidget) DragEnd() {
	if !w.dragging {
		return
	}
	w.dragging = false
	if w.OnDrop != nil {
		w.OnDrop(w, w.lastPointer)
	}
}
