// Package draw renders the scene onto a terminal using half-block characters.
package draw

import "math"

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Color is an ANSI 256-color palette index. ColorNone marks an unset pixel.
type Color uint8

// Palette used by the simulator.
const (
	ColorNone    Color = 0
	ColorGrid    Color = 236
	ColorGround  Color = 242
	ColorBlock   Color = 67
	ColorPreview Color = 110
	ColorTrail   Color = 244
	ColorBall    Color = 196
	ColorLanded  Color = 208
	ColorOutlet  Color = 33
	ColorAim     Color = 39
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
