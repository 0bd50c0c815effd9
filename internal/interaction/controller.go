// Package interaction interprets pointer events as scene edits.
package interaction

import (
	"github.com/tomz197/trajectory/internal/object"
	"github.com/tomz197/trajectory/internal/physics"
	"github.com/tomz197/trajectory/internal/scene"
)

// DefaultPickRadius is how close, in world pixels, a press must land to grab the outlet.
const DefaultPickRadius = 15.0

// Controller is the pointer state machine. The current state lives in scene.Mode.
type Controller struct {
	PickRadius float64
}

// NewController creates a controller with the given outlet pick radius.
func NewController(pickRadius float64) *Controller {
	return &Controller{PickRadius: pickRadius}
}

// PointerDown starts a gesture at screen position (sx, sy).
func (c *Controller) PointerDown(s *scene.Scene, sx, sy float64) {
	x, y := s.Camera.ScreenToWorld(sx, sy)

	switch {
	case s.Toggles.Authoring:
		s.Mode = scene.DrawingBlock{
			AnchorX: x,
			AnchorY: y,
			Preview: object.Block{X: x, Y: y},
		}
	case s.BlockAt(x, y) != nil:
		s.Mode = scene.DraggingBlock{Block: s.BlockAt(x, y)}
	case physics.PointInCircle(x, y, s.Outlet.X, s.Outlet.Y, c.PickRadius):
		s.Mode = scene.DraggingOutlet{}
	default:
		s.Mode = scene.RotatingAngle{}
		s.Outlet.AimAt(x, y)
	}
}

// PointerMove updates the active gesture. It is a no-op while idle.
func (c *Controller) PointerMove(s *scene.Scene, sx, sy float64) {
	x, y := s.Camera.ScreenToWorld(sx, sy)

	switch m := s.Mode.(type) {
	case scene.DrawingBlock:
		m.Preview = object.BlockFromCorners(m.AnchorX, m.AnchorY, x, y)
		s.Mode = m
	case scene.DraggingBlock:
		m.Block.CenterOn(x, y)
	case scene.DraggingOutlet:
		s.Outlet.X = x
		s.Outlet.Y = y
	case scene.RotatingAngle:
		s.Outlet.AimAt(x, y)
	}
}

// PointerUp ends the gesture at (sx, sy) and returns to Idle. When a block
// drawing ends with a non-degenerate preview the new block is stored and
// returned; otherwise the result is nil.
func (c *Controller) PointerUp(s *scene.Scene, sx, sy float64) *object.Block {
	c.PointerMove(s, sx, sy)
	defer func() { s.Mode = scene.Idle{} }()

	m, ok := s.Mode.(scene.DrawingBlock)
	if !ok {
		return nil
	}
	b, err := object.NewBlock(m.Preview.X, m.Preview.Y, m.Preview.W, m.Preview.H)
	if err != nil {
		return nil
	}
	if err := s.AddBlock(b); err != nil {
		return nil
	}
	return b
}
