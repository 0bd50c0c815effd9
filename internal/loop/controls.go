package loop

import (
	"github.com/tomz197/trajectory/internal/config"
	"github.com/tomz197/trajectory/internal/input"
)

// applyKey maps a key command onto the simulator.
func (s *session) applyKey(k input.Key) {
	switch k {
	case input.KeyQuit:
		s.running = false
	case input.KeyLaunch:
		s.sim.Launch()
	case input.KeyReset:
		s.sim.Reset()
	case input.KeySlowMotion:
		s.sim.ToggleSlowMotion()
	case input.KeyPath:
		s.sim.TogglePath()
	case input.KeyFollow:
		s.sim.ToggleFollow()
	case input.KeyAuthoring:
		s.sim.ToggleAuthoring()
	case input.KeyAngleDown:
		s.sim.AdjustAngle(-config.AngleStep)
	case input.KeyAngleUp:
		s.sim.AdjustAngle(config.AngleStep)
	case input.KeySpeedDown:
		s.sim.AdjustSpeed(-config.SpeedStep)
	case input.KeySpeedUp:
		s.sim.AdjustSpeed(config.SpeedStep)
	case input.KeyGravityDown:
		s.sim.AdjustGravity(-config.GravityStep)
	case input.KeyGravityUp:
		s.sim.AdjustGravity(config.GravityStep)
	case input.KeyZoomOut:
		s.sim.AdjustZoom(-config.ZoomStep)
	case input.KeyZoomIn:
		s.sim.AdjustZoom(config.ZoomStep)
	// Arrows move the view, so the world appears to move the other way
	case input.KeyPanLeft:
		s.sim.PanCamera(config.PanStep, 0)
	case input.KeyPanRight:
		s.sim.PanCamera(-config.PanStep, 0)
	case input.KeyPanUp:
		s.sim.PanCamera(0, config.PanStep)
	case input.KeyPanDown:
		s.sim.PanCamera(0, -config.PanStep)
	}
}

// applyPointer converts a mouse report from terminal cells to view pixels
// and forwards it to the simulator.
func (s *session) applyPointer(p input.Pointer) {
	x, y := s.canvas.TerminalToLogical(p.Col, p.Row)
	switch p.Action {
	case input.PointerDown:
		s.sim.OnPointerDown(x, y)
	case input.PointerMove:
		s.sim.OnPointerMove(x, y)
	case input.PointerUp:
		s.sim.OnPointerUp(x, y)
	}
}
