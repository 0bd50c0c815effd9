package physics

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/tomz197/trajectory/internal/object"
)

// separationSlop is added to every push-out so a resolved circle sits just
// outside the surface and a repeated check reports no overlap.
const separationSlop = 1e-7

// Overlaps reports whether a circle at (x, y) intersects rect.
// Touching counts as overlapping.
func Overlaps(x, y, radius float64, rect r2.Rect) bool {
	c := r2.Point{X: x, Y: y}
	d := c.Sub(rect.ClampPoint(c))
	return d.Dot(d) <= radius*radius
}

// ResolveCircleRect pushes the projectile out of rect and reflects the approaching
// part of its velocity, scaled by (1 + restitution). It reports whether a
// collision occurred. The resolver is not swept: a projectile that crosses a
// thin block within one substep passes through.
func ResolveCircleRect(p *object.Projectile, radius, restitution float64, rect r2.Rect) bool {
	c := r2.Point{X: p.X, Y: p.Y}
	d := c.Sub(rect.ClampPoint(c))
	distSq := d.Dot(d)
	if distSq > radius*radius {
		return false
	}

	var normal r2.Point
	var push float64
	if distSq == 0 {
		// Center on or inside the rectangle: leave through the nearest face
		var depth float64
		normal, depth = nearestFace(rect, c)
		push = radius + depth
	} else {
		dist := math.Sqrt(distSq)
		normal = d.Mul(1 / dist)
		push = radius - dist
	}

	push += separationSlop
	p.X += normal.X * push
	p.Y += normal.Y * push

	vn := p.VX*normal.X + p.VY*normal.Y
	if vn < 0 {
		j := (1 + restitution) * vn
		p.VX -= j * normal.X
		p.VY -= j * normal.Y
	}
	return true
}

// nearestFace returns the outward normal of the face of rect closest to c
// and the distance from c to it.
func nearestFace(rect r2.Rect, c r2.Point) (r2.Point, float64) {
	faces := [...]struct {
		normal r2.Point
		dist   float64
	}{
		{r2.Point{X: 0, Y: -1}, c.Y - rect.Y.Lo}, // top
		{r2.Point{X: -1, Y: 0}, c.X - rect.X.Lo}, // left
		{r2.Point{X: 1, Y: 0}, rect.X.Hi - c.X},  // right
		{r2.Point{X: 0, Y: 1}, rect.Y.Hi - c.Y},  // bottom
	}
	best := faces[0]
	for _, f := range faces[1:] {
		if f.dist < best.dist {
			best = f
		}
	}
	return best.normal, best.dist
}
