package config

import "time"

// View resolution - the visible viewport in logical pixels.
// Actual rendering scales to fit terminal size.
const (
	ViewWidth  = 480 // Logical viewport width
	ViewHeight = 320 // Logical viewport height (half-block sub-pixels are scaled into this)
)

// Max render resolution in terminal cells. Larger terminals get a centered, bordered canvas.
const (
	MaxTermWidth  = 200
	MaxTermHeight = 60
)

// Client rendering
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// MaxFrameDelta caps the delta fed to the simulation after a stalled frame
// (slow SSH link, suspended terminal).
const MaxFrameDelta = 100 * time.Millisecond

// Keyboard parameter steps
const (
	AngleStep   = 5.0  // Degrees per key press
	SpeedStep   = 1.0  // Units/s per key press
	GravityStep = 0.5  // Units/s² per key press
	ZoomStep    = 0.5  // Pixels per unit per key press
	PanStep     = 20.0 // Pixels per key press
	MinZoom     = 0.5
)
