package draw

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Supports scaling from logical coordinates to actual terminal pixels.
type Canvas struct {
	termWidth      int     // Actual terminal columns
	termHeight     int     // Actual terminal rows
	subPixelHeight int     // termHeight * 2
	pixels         []Color // Flat slice: [y * termWidth + x], ColorNone if unset

	// Scaling from logical to pixel coordinates
	logicalWidth  float64 // Target/logical width
	logicalHeight float64 // Target/logical height
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area when terminal is larger than max resolution.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	renderBuf strings.Builder // Reused between frames
}

// NewCanvas creates a canvas for the given terminal dimensions.
// No scaling is applied (1:1 mapping onto sub-pixels).
func NewCanvas(width, height int) *Canvas {
	return NewScaledCanvas(width, height, float64(width), float64(height*2))
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by the scene.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	subPixelHeight := termHeight * 2
	return &Canvas{
		termWidth:      termWidth,
		termHeight:     termHeight,
		subPixelHeight: subPixelHeight,
		pixels:         make([]Color, subPixelHeight*termWidth),
		logicalWidth:   logicalWidth,
		logicalHeight:  logicalHeight,
		scaleX:         float64(termWidth) / logicalWidth,
		scaleY:         float64(subPixelHeight) / logicalHeight,
	}
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]Color, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// At returns the color of a pixel in terminal sub-pixel coordinates.
func (c *Canvas) At(x, y int) Color {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return ColorNone
	}
	return c.pixels[y*c.termWidth+x]
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = col
	}
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels. The segment is
// clipped to the canvas first; segments with a non-finite endpoint are dropped.
func (c *Canvas) DrawLine(p1, p2 Point, col Color) {
	fx1, fy1 := p1.X*c.scaleX, p1.Y*c.scaleY
	fx2, fy2 := p2.X*c.scaleX, p2.Y*c.scaleY
	if !isFinite(fx1) || !isFinite(fy1) || !isFinite(fx2) || !isFinite(fy2) {
		return
	}
	fx1, fy1, fx2, fy2, ok := clipSegment(fx1, fy1, fx2, fy2, float64(c.termWidth), float64(c.subPixelHeight))
	if !ok {
		return
	}

	x1 := clampInt(int(math.Floor(fx1)), 0, c.termWidth-1)
	y1 := clampInt(int(math.Floor(fy1)), 0, c.subPixelHeight-1)
	x2 := clampInt(int(math.Floor(fx2)), 0, c.termWidth-1)
	y2 := clampInt(int(math.Floor(fy2)), 0, c.subPixelHeight-1)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// clipSegment clips a segment to [0, w]x[0, h] (Liang-Barsky).
// ok is false when the segment lies entirely outside.
func clipSegment(x1, y1, x2, y2, w, h float64) (cx1, cy1, cx2, cy2 float64, ok bool) {
	dx, dy := x2-x1, y2-y1
	t0, t1 := 0.0, 1.0
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x1, w - x1, y1, h - y1}

	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false // Parallel and outside
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = min(t1, t)
		}
	}
	return x1 + t0*dx, y1 + t0*dy, x1 + t1*dx, y1 + t1*dy, true
}

// FillRect fills an axis-aligned rectangle given in logical space.
// A rectangle with positive size always covers at least one pixel.
func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x0 := int(math.Floor(x * c.scaleX))
	y0 := int(math.Floor(y * c.scaleY))
	x1 := int(math.Ceil((x + w) * c.scaleX))
	y1 := int(math.Ceil((y + h) * c.scaleY))
	if x1 == x0 {
		x1++
	}
	if y1 == y0 {
		y1++
	}

	// Clip to the canvas before iterating so huge rectangles stay cheap
	x0, x1 = max(x0, 0), min(x1, c.termWidth)
	y0, y1 = max(y0, 0), min(y1, c.subPixelHeight)

	for py := y0; py < y1; py++ {
		row := py * c.termWidth
		for px := x0; px < x1; px++ {
			c.pixels[row+px] = col
		}
	}
}

// FillCircle fills a disc given in logical space. Non-uniform scaling turns it
// into an ellipse in pixel space; the center pixel is always set.
func (c *Canvas) FillCircle(cx, cy, r float64, col Color) {
	pcx := cx * c.scaleX
	pcy := cy * c.scaleY
	c.setPixel(int(math.Floor(pcx)), int(math.Floor(pcy)), col)

	rx := r * c.scaleX
	ry := r * c.scaleY
	if rx <= 0 || ry <= 0 {
		return
	}

	xStart := max(int(math.Floor(pcx-rx)), 0)
	xEnd := min(int(math.Ceil(pcx+rx)), c.termWidth-1)
	yStart := max(int(math.Floor(pcy-ry)), 0)
	yEnd := min(int(math.Ceil(pcy+ry)), c.subPixelHeight-1)

	for py := yStart; py <= yEnd; py++ {
		ny := (float64(py) + 0.5 - pcy) / ry
		for px := xStart; px <= xEnd; px++ {
			nx := (float64(px) + 0.5 - pcx) / rx
			if nx*nx+ny*ny <= 1 {
				c.pixels[py*c.termWidth+px] = col
			}
		}
	}
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1500 bytes matches typical MTU size for smooth SSH/network transmission.
const maxChunkSize = 1400

// Render outputs the canvas to the writer using colored half-block characters.
// A cell whose halves differ in color uses the foreground for the top half
// and the background for the bottom half.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 24) // Estimate ~24 bytes per colored cell

	for row := 0; row < c.termHeight; row++ {
		topY := row * 2
		bottomY := row*2 + 1
		topOffset := topY * c.termWidth
		bottomOffset := bottomY * c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := ColorNone
			if bottomY < c.subPixelHeight {
				bottom = c.pixels[bottomOffset+col]
			}

			termRow, termCol := row+1+c.offsetRow, col+1+c.offsetCol
			switch {
			case top == ColorNone && bottom == ColorNone:
				continue // Skip empty cells
			case top == bottom:
				fmt.Fprintf(&c.renderBuf, "\033[%d;%dH\033[0;38;5;%dm%c", termRow, termCol, top, BlockFull)
			case top != ColorNone && bottom != ColorNone:
				fmt.Fprintf(&c.renderBuf, "\033[%d;%dH\033[38;5;%d;48;5;%dm%c", termRow, termCol, top, bottom, BlockUpperHalf)
			case top != ColorNone:
				fmt.Fprintf(&c.renderBuf, "\033[%d;%dH\033[0;38;5;%dm%c", termRow, termCol, top, BlockUpperHalf)
			default:
				fmt.Fprintf(&c.renderBuf, "\033[%d;%dH\033[0;38;5;%dm%c", termRow, termCol, bottom, BlockLowerHalf)
			}
		}
	}
	c.renderBuf.WriteString("\033[0m")

	// Write output in chunks for optimal network flow
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
// Draws horizontal borders when there is vertical offset, vertical borders
// when there is horizontal offset, and corners when both are present.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	buf.Grow((c.termWidth+2)*2 + c.termHeight*2*12)

	if hasV {
		if hasH {
			fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, strings.Repeat("─", c.termWidth))
			fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, strings.Repeat("─", c.termWidth))
		} else {
			fmt.Fprintf(&buf, "\033[%d;%dH%s", top, c.offsetCol+1, strings.Repeat("─", c.termWidth))
			fmt.Fprintf(&buf, "\033[%d;%dH%s", bottom, c.offsetCol+1, strings.Repeat("─", c.termWidth))
		}
	}

	if hasH {
		startRow := top + 1
		endRow := bottom
		if !hasV {
			// No horizontal borders, side bars span full canvas height
			startRow = c.offsetRow + 1
			endRow = c.offsetRow + c.termHeight + 1
		}
		for row := startRow; row < endRow; row++ {
			fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}

	io.WriteString(w, buf.String())
}

// LogicalHeight returns the logical height (target resolution).
func (c *Canvas) LogicalHeight() float64 {
	return c.logicalHeight
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to a 1-based terminal position (col, row)
// relative to the canvas origin. Useful for placing text overlays.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	return px + 1, py/2 + 1
}

// TerminalToLogical converts a 0-based terminal cell (as reported by the mouse)
// to the logical coordinates of the cell center. Centering offsets are removed.
func (c *Canvas) TerminalToLogical(col, row int) (x, y float64) {
	px := float64(col-c.offsetCol) + 0.5
	py := float64((row-c.offsetRow)*2) + 1
	return px / c.scaleX, py / c.scaleY
}
