// Package scene holds the mutable world shared by the simulator and the interaction controller.
package scene

import (
	"github.com/tomz197/trajectory/internal/object"
)

// Params are the numeric scene parameters not owned by an entity.
type Params struct {
	Gravity float64 // Units/s², positive is screen down
	Zoom    float64 // Pixels per unit, consumed only by the stepper
}

// Toggles are the boolean modes. Camera follow lives on the camera.
type Toggles struct {
	SlowMotion bool
	ShowPath   bool
	Authoring  bool
}

// Scene is the complete simulation state of one session.
type Scene struct {
	Projectiles []*object.Projectile // Launch order
	Blocks      []*object.Block      // Insertion order, earlier blocks win picks
	Outlet      object.Outlet
	Camera      object.Camera
	Params      Params
	Toggles     Toggles
	Mode        Mode
	View        object.Screen
}

// New creates an empty scene for a view of the given size.
func New(view object.Screen) *Scene {
	return &Scene{
		Mode: Idle{},
		View: view,
	}
}

// Reset clears projectiles, blocks and the camera offset, and returns to Idle.
// Parameters, toggles and the outlet are kept.
func (s *Scene) Reset() {
	s.Projectiles = nil
	s.Blocks = nil
	s.Camera.Reset()
	s.Mode = Idle{}
}

// AddBlock appends a block. Degenerate blocks are rejected.
func (s *Scene) AddBlock(b *object.Block) error {
	if b.IsDegenerate() {
		return object.ErrDegenerateBlock
	}
	s.Blocks = append(s.Blocks, b)
	return nil
}

// BlockAt returns the first block, in insertion order, containing the world point.
func (s *Scene) BlockAt(x, y float64) *object.Block {
	for _, b := range s.Blocks {
		if b.Contains(x, y) {
			return b
		}
	}
	return nil
}

// ActiveCount returns the number of projectiles still in flight.
func (s *Scene) ActiveCount() int {
	n := 0
	for _, p := range s.Projectiles {
		if p.IsActive() {
			n++
		}
	}
	return n
}
