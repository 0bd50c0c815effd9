package object

// Camera converts world positions to screen positions: screen = world + offset.
// It knows nothing about zoom; the pixels-per-unit scale only feeds the physics.
type Camera struct {
	OffsetX, OffsetY float64
	Follow           bool // Recenter on the tracked projectile every frame
}

// WorldToScreen converts a world position to screen coordinates.
func (c Camera) WorldToScreen(x, y float64) (sx, sy float64) {
	return x + c.OffsetX, y + c.OffsetY
}

// ScreenToWorld converts screen coordinates to a world position.
func (c Camera) ScreenToWorld(sx, sy float64) (x, y float64) {
	return sx - c.OffsetX, sy - c.OffsetY
}

// Pan shifts the view by (dx, dy) screen pixels.
func (c *Camera) Pan(dx, dy float64) {
	c.OffsetX += dx
	c.OffsetY += dy
}

// CenterOn moves the offset so the world position (x, y) lands on the view center.
func (c *Camera) CenterOn(view Screen, x, y float64) {
	c.OffsetX = view.CenterX - x
	c.OffsetY = view.CenterY - y
}

// Reset returns the offset to the origin. The follow mode is kept.
func (c *Camera) Reset() {
	c.OffsetX = 0
	c.OffsetY = 0
}
