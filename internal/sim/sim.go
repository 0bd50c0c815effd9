// Package sim composes the stepper, camera, interaction controller and render
// calls into one simulator per session.
package sim

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/golang/geo/r2"
	"github.com/tomz197/trajectory/internal/config"
	"github.com/tomz197/trajectory/internal/interaction"
	"github.com/tomz197/trajectory/internal/logging"
	"github.com/tomz197/trajectory/internal/object"
	"github.com/tomz197/trajectory/internal/physics"
	"github.com/tomz197/trajectory/internal/scene"
)

// Simulator owns a scene and advances it frame by frame.
// It is not safe for concurrent use; the host loop goroutine drives it.
type Simulator struct {
	scene    *scene.Scene
	ctrl     *interaction.Controller
	settings config.Settings
	logger   *log.Logger
}

// New creates a simulator with an empty scene sized to view.
// A nil logger discards output.
func New(settings config.Settings, logger *log.Logger, view object.Screen) *Simulator {
	if logger == nil {
		logger = logging.Discard()
	}

	s := scene.New(view)
	s.Outlet = object.Outlet{
		X:     settings.Launch.OutletX,
		Y:     settings.Launch.OutletY,
		Angle: object.NormalizeAngle(settings.Launch.Angle),
		Speed: settings.Launch.Speed,
	}
	s.Params = scene.Params{
		Gravity: settings.Launch.Gravity,
		Zoom:    settings.Launch.Zoom,
	}
	s.Toggles = scene.Toggles{
		SlowMotion: settings.Toggles.SlowMotion,
		ShowPath:   settings.Toggles.ShowPath,
		Authoring:  settings.Toggles.Authoring,
	}
	s.Camera.Follow = settings.Toggles.Follow

	return &Simulator{
		scene:    s,
		ctrl:     interaction.NewController(settings.PickRadius),
		settings: settings,
		logger:   logger,
	}
}

// Scene exposes the simulated scene for inspection.
func (s *Simulator) Scene() *scene.Scene {
	return s.scene
}

// Launch fires a projectile from the outlet's current state. When the scene
// already holds the maximum number of projectiles the oldest one is evicted.
func (s *Simulator) Launch() *object.Projectile {
	p := object.NewProjectile(s.scene.Outlet, s.settings.TrailCapacity)

	if n := len(s.scene.Projectiles); n >= s.settings.MaxProjectiles {
		drop := n - s.settings.MaxProjectiles + 1
		s.scene.Projectiles = append(s.scene.Projectiles[:0:0], s.scene.Projectiles[drop:]...)
		s.logger.Debug("evicted projectiles", "count", drop)
	}
	s.scene.Projectiles = append(s.scene.Projectiles, p)

	s.logger.Debug("launch",
		"x", p.X, "y", p.Y,
		"angle", s.scene.Outlet.Angle,
		"speed", s.scene.Outlet.Speed,
		"projectiles", len(s.scene.Projectiles),
	)
	return p
}

// Reset clears projectiles, blocks and the camera offset in one step.
func (s *Simulator) Reset() {
	s.scene.Reset()
	s.logger.Debug("reset")
}

// Update advances every active projectile by delta, scaled down in slow motion,
// then recenters the camera in follow mode.
func (s *Simulator) Update(delta time.Duration) {
	dt := delta.Seconds()
	if s.scene.Toggles.SlowMotion {
		dt *= s.settings.Physics.SlowMotionFactor
	}

	world := physics.World{
		Gravity:     s.scene.Params.Gravity,
		Scale:       s.scene.Params.Zoom,
		Substeps:    s.settings.Physics.Substeps,
		Restitution: s.settings.Physics.Restitution,
		Blocks:      s.scene.Blocks,
	}

	var tracked *object.Projectile
	for _, p := range s.scene.Projectiles {
		if !p.IsActive() {
			continue
		}
		physics.Step(p, world, dt)
		if s.land(p) || s.exited(p) {
			continue
		}
		tracked = p
	}

	if s.scene.Camera.Follow && tracked != nil {
		s.scene.Camera.CenterOn(s.scene.View, tracked.X, tracked.Y)
	}
}

// land stops a projectile that reached the ground line at the bottom of the view.
func (s *Simulator) land(p *object.Projectile) bool {
	if !s.settings.Physics.Ground {
		return false
	}
	groundY := s.scene.View.Height - object.BallRadius
	if p.Y < groundY {
		return false
	}
	p.Y = groundY
	p.Deactivate()
	p.Path.Push(r2.Point{X: p.X, Y: p.Y})
	s.logger.Debug("landed", "x", p.X)
	return true
}

// exited stops a projectile that left the view expanded by the exit margin.
func (s *Simulator) exited(p *object.Projectile) bool {
	bounds := r2.RectFromPoints(
		r2.Point{X: 0, Y: 0},
		r2.Point{X: s.scene.View.Width, Y: s.scene.View.Height},
	).ExpandedByMargin(s.settings.Physics.ExitMargin)

	if bounds.ContainsPoint(r2.Point{X: p.X, Y: p.Y}) {
		return false
	}
	p.Deactivate()
	s.logger.Debug("left world", "x", p.X, "y", p.Y)
	return true
}

// ToggleSlowMotion flips slow motion and returns the new state.
func (s *Simulator) ToggleSlowMotion() bool {
	s.scene.Toggles.SlowMotion = !s.scene.Toggles.SlowMotion
	return s.scene.Toggles.SlowMotion
}

// TogglePath flips trail rendering and returns the new state.
func (s *Simulator) TogglePath() bool {
	s.scene.Toggles.ShowPath = !s.scene.Toggles.ShowPath
	return s.scene.Toggles.ShowPath
}

// ToggleFollow flips camera follow and returns the new state.
func (s *Simulator) ToggleFollow() bool {
	s.scene.Camera.Follow = !s.scene.Camera.Follow
	return s.scene.Camera.Follow
}

// ToggleAuthoring flips block authoring and returns the new state.
func (s *Simulator) ToggleAuthoring() bool {
	s.scene.Toggles.Authoring = !s.scene.Toggles.Authoring
	return s.scene.Toggles.Authoring
}

// OnPointerDown forwards a press in screen coordinates to the controller.
func (s *Simulator) OnPointerDown(sx, sy float64) {
	s.ctrl.PointerDown(s.scene, sx, sy)
}

// OnPointerMove forwards pointer motion in screen coordinates to the controller.
func (s *Simulator) OnPointerMove(sx, sy float64) {
	s.ctrl.PointerMove(s.scene, sx, sy)
}

// OnPointerUp forwards a release in screen coordinates to the controller.
func (s *Simulator) OnPointerUp(sx, sy float64) {
	if b := s.ctrl.PointerUp(s.scene, sx, sy); b != nil {
		s.logger.Debug("block added", "x", b.X, "y", b.Y, "w", b.W, "h", b.H, "blocks", len(s.scene.Blocks))
	}
}
