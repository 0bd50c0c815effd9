// Package object defines the entities of the scene: projectiles, blocks, the outlet and the camera.
package object

import (
	"github.com/tomz197/trajectory/internal/draw"
)

// BallRadius is the projectile radius in pixels. Shared by the stepper,
// the collision resolver and rendering.
const BallRadius = 5.0

// Screen represents viewport dimensions in logical pixels.
type Screen struct {
	Width   float64
	Height  float64
	CenterX float64
	CenterY float64
}

// NewScreen returns a screen of the given size with its center precomputed.
func NewScreen(width, height float64) Screen {
	return Screen{Width: width, Height: height, CenterX: width / 2, CenterY: height / 2}
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Renderer draw.Renderer
	Camera   Camera // Offset applied to every world position
}
