package draw

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

//go:generate go tool mockgen -destination=./mocks/renderer_mock.go -package=mocks . Renderer

// Renderer draws primitives in screen pixel space.
type Renderer interface {
	FillRect(x, y, w, h float64, c Color)
	DrawCircle(x, y, r float64, c Color)
	DrawLine(x1, y1, x2, y2 float64, c Color)
	DrawText(s string, x, y float64)
}

// textItem is a queued text overlay, written after the canvas so it stays on top.
type textItem struct {
	s    string
	x, y float64
}

// CanvasRenderer implements Renderer on top of a half-block Canvas.
// Shapes go straight to the canvas; text is queued and emitted by Flush.
type CanvasRenderer struct {
	canvas *Canvas
	text   []textItem
	style  lipgloss.Style
}

// NewCanvasRenderer creates a renderer drawing onto canvas. Text is styled for
// the terminal behind w (color support is detected per writer, so SSH sessions
// get their own profile).
func NewCanvasRenderer(canvas *Canvas, w io.Writer) *CanvasRenderer {
	lr := lipgloss.NewRenderer(w)
	return &CanvasRenderer{
		canvas: canvas,
		style:  lr.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
	}
}

// Canvas returns the underlying canvas.
func (r *CanvasRenderer) Canvas() *Canvas {
	return r.canvas
}

// Begin starts a new frame.
func (r *CanvasRenderer) Begin() {
	r.canvas.Clear()
	r.text = r.text[:0]
}

// FillRect fills a rectangle.
func (r *CanvasRenderer) FillRect(x, y, w, h float64, c Color) {
	r.canvas.FillRect(x, y, w, h, c)
}

// DrawCircle fills a disc.
func (r *CanvasRenderer) DrawCircle(x, y, radius float64, c Color) {
	r.canvas.FillCircle(x, y, radius, c)
}

// DrawLine draws a line segment.
func (r *CanvasRenderer) DrawLine(x1, y1, x2, y2 float64, c Color) {
	r.canvas.DrawLine(Point{X: x1, Y: y1}, Point{X: x2, Y: y2}, c)
}

// DrawText queues s with its top-left corner at (x, y).
func (r *CanvasRenderer) DrawText(s string, x, y float64) {
	r.text = append(r.text, textItem{s: s, x: x, y: y})
}

// Flush renders the canvas, the border and queued text into cw and flushes it.
// Text is cut at the right edge of the canvas so it never wraps.
func (r *CanvasRenderer) Flush(cw *ChunkWriter) error {
	ClearScreen(cw)
	r.canvas.Render(cw)
	r.canvas.RenderBorder(cw)
	for _, t := range r.text {
		col, row := r.canvas.LogicalToTerminal(t.x, t.y)
		width := r.canvas.TerminalWidth() - col + 1
		if col < 1 || row < 1 || row > r.canvas.TerminalHeight() || width < 1 {
			continue
		}
		cw.WriteAt(col, row, r.style.MaxWidth(width).Render(t.s))
	}
	return cw.Flush()
}

var _ Renderer = (*CanvasRenderer)(nil)
