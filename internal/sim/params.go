package sim

import (
	"math"

	"github.com/tomz197/trajectory/internal/config"
	"github.com/tomz197/trajectory/internal/object"
)

// AdjustAngle rotates the outlet by delta degrees.
func (s *Simulator) AdjustAngle(delta float64) {
	s.scene.Outlet.Angle = object.NormalizeAngle(s.scene.Outlet.Angle + delta)
}

// AdjustSpeed changes the launch speed. Zero and negative speeds are allowed.
func (s *Simulator) AdjustSpeed(delta float64) {
	s.scene.Outlet.Speed += delta
}

// AdjustGravity changes gravity. Zero and negative gravity are allowed.
func (s *Simulator) AdjustGravity(delta float64) {
	s.scene.Params.Gravity += delta
}

// AdjustZoom changes the pixels-per-unit scale, never below config.MinZoom.
func (s *Simulator) AdjustZoom(delta float64) {
	s.scene.Params.Zoom = math.Max(config.MinZoom, s.scene.Params.Zoom+delta)
}

// PanCamera shifts the view by (dx, dy) screen pixels.
func (s *Simulator) PanCamera(dx, dy float64) {
	s.scene.Camera.Pan(dx, dy)
}

// Status is a snapshot of the values shown on the HUD.
type Status struct {
	Angle, Speed  float64
	Gravity, Zoom float64
	Active, Total int
	Blocks        int
	SlowMotion    bool
	ShowPath      bool
	Follow        bool
	Authoring     bool
	Mode          string
}

// Status returns the current HUD values.
func (s *Simulator) Status() Status {
	sc := s.scene
	return Status{
		Angle:      sc.Outlet.Angle,
		Speed:      sc.Outlet.Speed,
		Gravity:    sc.Params.Gravity,
		Zoom:       sc.Params.Zoom,
		Active:     sc.ActiveCount(),
		Total:      len(sc.Projectiles),
		Blocks:     len(sc.Blocks),
		SlowMotion: sc.Toggles.SlowMotion,
		ShowPath:   sc.Toggles.ShowPath,
		Follow:     sc.Camera.Follow,
		Authoring:  sc.Toggles.Authoring,
		Mode:       sc.Mode.String(),
	}
}
