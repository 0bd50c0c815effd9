package physics

import (
	"github.com/golang/geo/r2"
	"github.com/tomz197/trajectory/internal/object"
)

// World is what a projectile collides with during a step.
type World struct {
	Gravity     float64 // Units/s², positive accelerates toward +Y (screen down)
	Scale       float64 // Pixels per unit
	Substeps    int
	Restitution float64
	Blocks      []*object.Block
}

// Step advances p by dt seconds split into equal substeps. Velocity is
// integrated before position, and every block is resolved in insertion order
// after each substep. The final position is appended to the trail once.
func Step(p *object.Projectile, w World, dt float64) {
	n := w.Substeps
	if n < 1 {
		n = 1
	}
	h := dt / float64(n)

	for i := 0; i < n; i++ {
		p.VY += w.Gravity * h
		p.X += p.VX * h * w.Scale
		p.Y += p.VY * h * w.Scale

		for _, b := range w.Blocks {
			ResolveCircleRect(p, object.BallRadius, w.Restitution, b.Rect())
		}
	}

	p.Path.Push(r2.Point{X: p.X, Y: p.Y})
}
