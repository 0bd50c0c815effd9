package object

import (
	"errors"
	"math"

	"github.com/golang/geo/r2"
	"github.com/tomz197/trajectory/internal/draw"
)

// ErrDegenerateBlock is returned when a block would have zero (or negative) area.
var ErrDegenerateBlock = errors.New("block must have positive width and height")

// Block is a static axis-aligned obstacle in world pixels.
type Block struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewBlock creates a block, rejecting zero-area rectangles.
func NewBlock(x, y, w, h float64) (*Block, error) {
	b := Block{X: x, Y: y, W: w, H: h}
	if b.IsDegenerate() {
		return nil, ErrDegenerateBlock
	}
	return &b, nil
}

// BlockFromCorners spans the rectangle between two opposite corners in any order.
// The origin is the component-wise minimum and the size the absolute difference,
// so width and height are never negative. The result may be degenerate.
func BlockFromCorners(ax, ay, bx, by float64) Block {
	return Block{
		X: math.Min(ax, bx),
		Y: math.Min(ay, by),
		W: math.Abs(bx - ax),
		H: math.Abs(by - ay),
	}
}

// IsDegenerate reports whether the block has no area (NaN sizes count as degenerate).
func (b Block) IsDegenerate() bool {
	return !(b.W > 0) || !(b.H > 0)
}

// Rect returns the block bounds.
func (b Block) Rect() r2.Rect {
	return r2.RectFromPoints(r2.Point{X: b.X, Y: b.Y}, r2.Point{X: b.X + b.W, Y: b.Y + b.H})
}

// Contains reports whether a world point lies within the block, edges included.
func (b Block) Contains(x, y float64) bool {
	return b.Rect().ContainsPoint(r2.Point{X: x, Y: y})
}

// CenterOn moves the block so its center is at (x, y). Size is unchanged.
func (b *Block) CenterOn(x, y float64) {
	b.X = x - b.W/2
	b.Y = y - b.H/2
}

// Draw renders the block.
func (b *Block) Draw(ctx DrawContext) {
	b.DrawColor(ctx, draw.ColorBlock)
}

// DrawColor renders the block in the given color.
func (b *Block) DrawColor(ctx DrawContext, col draw.Color) {
	sx, sy := ctx.Camera.WorldToScreen(b.X, b.Y)
	ctx.Renderer.FillRect(sx, sy, b.W, b.H, col)
}
