package sim

import (
	"math"
	"time"

	"github.com/tomz197/trajectory/internal/draw"
	"github.com/tomz197/trajectory/internal/object"
	"github.com/tomz197/trajectory/internal/scene"
)

// gridSpacing is the distance between background grid lines in world pixels.
const gridSpacing = 40.0

// StepAndRender runs one frame: Update, then Render.
func (s *Simulator) StepAndRender(delta time.Duration, r draw.Renderer) {
	s.Update(delta)
	s.Render(r)
}

// Render draws the scene back to front: background, blocks, the block being
// drawn, trails, projectiles and finally the outlet.
func (s *Simulator) Render(r draw.Renderer) {
	sc := s.scene
	ctx := object.DrawContext{Renderer: r, Camera: sc.Camera}

	s.drawBackground(ctx)

	for _, b := range sc.Blocks {
		b.Draw(ctx)
	}

	if m, ok := sc.Mode.(scene.DrawingBlock); ok && !m.Preview.IsDegenerate() {
		m.Preview.DrawColor(ctx, draw.ColorPreview)
	}

	if sc.Toggles.ShowPath {
		for _, p := range sc.Projectiles {
			p.DrawPath(ctx)
		}
	}

	for _, p := range sc.Projectiles {
		p.Draw(ctx)
	}

	sc.Outlet.Draw(ctx)
}

// drawBackground draws the world grid and the ground line. Both scroll with the camera.
func (s *Simulator) drawBackground(ctx object.DrawContext) {
	view := s.scene.View
	cam := ctx.Camera

	for sx := gridStart(cam.OffsetX); sx <= view.Width; sx += gridSpacing {
		ctx.Renderer.DrawLine(sx, 0, sx, view.Height, draw.ColorGrid)
	}
	for sy := gridStart(cam.OffsetY); sy <= view.Height; sy += gridSpacing {
		ctx.Renderer.DrawLine(0, sy, view.Width, sy, draw.ColorGrid)
	}

	if s.settings.Physics.Ground {
		_, sy := cam.WorldToScreen(0, view.Height)
		ctx.Renderer.FillRect(0, sy-1, view.Width, 2, draw.ColorGround)
	}
}

// gridStart returns the first on-screen grid coordinate for a camera offset.
// It is NaN for a non-finite offset, which draws no lines.
func gridStart(offset float64) float64 {
	start := math.Mod(offset, gridSpacing)
	if start < 0 {
		start += gridSpacing
	}
	return start
}
