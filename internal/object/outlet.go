package object

import (
	"math"

	"github.com/tomz197/trajectory/internal/draw"
)

// Outlet geometry, in pixels.
const (
	OutletSize = 20.0 // Side of the square marker
	AimLength  = 30.0 // Length of the direction indicator
)

// Outlet is the launch point. Angle is in degrees in screen space
// (0 = right, 90 = down) and any real value is accepted, taken mod 360.
type Outlet struct {
	X, Y  float64
	Angle float64 // Degrees
	Speed float64 // Units/s
}

// NormalizeAngle maps any angle in degrees into [0, 360).
func NormalizeAngle(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 { // -tiny + 360 rounds up to 360
		a = 0
	}
	return a
}

// Velocity returns the launch velocity in units/s.
func (o Outlet) Velocity() (vx, vy float64) {
	rad := o.Angle * math.Pi / 180
	return o.Speed * math.Cos(rad), o.Speed * math.Sin(rad)
}

// AimAt points the outlet at a world position.
func (o *Outlet) AimAt(x, y float64) {
	o.Angle = NormalizeAngle(math.Atan2(y-o.Y, x-o.X) * 180 / math.Pi)
}

// Draw renders the outlet square and its direction indicator.
func (o *Outlet) Draw(ctx DrawContext) {
	sx, sy := ctx.Camera.WorldToScreen(o.X, o.Y)
	ctx.Renderer.FillRect(sx-OutletSize/2, sy-OutletSize/2, OutletSize, OutletSize, draw.ColorOutlet)

	rad := o.Angle * math.Pi / 180
	ctx.Renderer.DrawLine(sx, sy, sx+AimLength*math.Cos(rad), sy+AimLength*math.Sin(rad), draw.ColorAim)
}
