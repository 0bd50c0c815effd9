package object

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/tomz197/trajectory/internal/draw"
)

// Projectile is a ball launched from the outlet.
type Projectile struct {
	X, Y     float64 // Position in world pixels
	VX, VY   float64 // Velocity in simulation units per second
	Path     *Trail  // Bounded history of positions, one per frame
	inactive bool    // Landed or left the world
}

// NewProjectile creates a projectile from a snapshot of the outlet.
// Later changes to the outlet do not affect it.
func NewProjectile(o Outlet, trailCapacity int) *Projectile {
	vx, vy := o.Velocity()
	p := &Projectile{
		X:    o.X,
		Y:    o.Y,
		VX:   vx,
		VY:   vy,
		Path: NewTrail(trailCapacity),
	}
	p.Path.Push(r2.Point{X: p.X, Y: p.Y})
	return p
}

// Deactivate stops the projectile. It stays in the scene as a landed marker.
func (p *Projectile) Deactivate() {
	p.inactive = true
	p.VX, p.VY = 0, 0
}

// IsActive reports whether the projectile is still being simulated.
func (p *Projectile) IsActive() bool {
	return !p.inactive
}

// Draw renders the ball. Nothing is drawn for a non-finite position.
func (p *Projectile) Draw(ctx DrawContext) {
	if !isFinitePoint(r2.Point{X: p.X, Y: p.Y}) {
		return
	}
	col := draw.ColorBall
	if p.inactive {
		col = draw.ColorLanded
	}
	sx, sy := ctx.Camera.WorldToScreen(p.X, p.Y)
	ctx.Renderer.DrawCircle(sx, sy, BallRadius, col)
}

// DrawPath renders the trail as connected segments. Segments touching a
// non-finite point are skipped.
func (p *Projectile) DrawPath(ctx DrawContext) {
	n := p.Path.Len()
	if n < 2 {
		return
	}
	prev := p.Path.At(0)
	for i := 1; i < n; i++ {
		cur := p.Path.At(i)
		if isFinitePoint(prev) && isFinitePoint(cur) {
			x1, y1 := ctx.Camera.WorldToScreen(prev.X, prev.Y)
			x2, y2 := ctx.Camera.WorldToScreen(cur.X, cur.Y)
			ctx.Renderer.DrawLine(x1, y1, x2, y2, draw.ColorTrail)
		}
		prev = cur
	}
}

func isFinitePoint(p r2.Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
