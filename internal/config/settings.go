package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings is returned (wrapped) by Validate and Load for out-of-range values.
var ErrInvalidSettings = errors.New("invalid settings")

// PhysicsSettings tunes the integrator and the collision response.
type PhysicsSettings struct {
	Substeps         int     `yaml:"substeps"`
	Restitution      float64 `yaml:"restitution"`
	SlowMotionFactor float64 `yaml:"slow_motion_factor"`
	Ground           bool    `yaml:"ground"`      // Projectiles land on the bottom of the view
	ExitMargin       float64 `yaml:"exit_margin"` // Pixels beyond the view before a projectile goes inactive
}

// LaunchSettings are the initial values of the parameter source.
type LaunchSettings struct {
	Angle   float64 `yaml:"angle"` // Degrees, screen space (0 = right, 90 = down)
	Speed   float64 `yaml:"speed"` // Units/s
	Gravity float64 `yaml:"gravity"`
	OutletX float64 `yaml:"outlet_x"`
	OutletY float64 `yaml:"outlet_y"`
	Zoom    float64 `yaml:"zoom"` // Pixels per unit
}

// ToggleSettings are the initial states of the boolean modes.
type ToggleSettings struct {
	SlowMotion bool `yaml:"slow_motion"`
	ShowPath   bool `yaml:"show_path"`
	Follow     bool `yaml:"follow"`
	Authoring  bool `yaml:"authoring"`
}

// Settings holds everything a simulator needs at construction time.
type Settings struct {
	Physics        PhysicsSettings `yaml:"physics"`
	Launch         LaunchSettings  `yaml:"launch"`
	Toggles        ToggleSettings  `yaml:"toggles"`
	TrailCapacity  int             `yaml:"trail_capacity"`
	MaxProjectiles int             `yaml:"max_projectiles"`
	PickRadius     float64         `yaml:"pick_radius"`
	LogFile        string          `yaml:"log_file"`
	LogLevel       string          `yaml:"log_level"`
}

// Default returns the stock settings.
func Default() Settings {
	return Settings{
		Physics: PhysicsSettings{
			Substeps:         6,
			Restitution:      0.6,
			SlowMotionFactor: 0.25,
			Ground:           true,
			ExitMargin:       1000,
		},
		Launch: LaunchSettings{
			Angle:   315,
			Speed:   30,
			Gravity: 9.8,
			OutletX: 40,
			OutletY: ViewHeight - 40,
			Zoom:    6,
		},
		Toggles: ToggleSettings{
			ShowPath: true,
		},
		TrailCapacity:  256,
		MaxProjectiles: 256,
		PickRadius:     15,
		LogLevel:       "info",
	}
}

// Validate checks the invariants the simulator relies on.
// Gravity and speed are free: zero or negative values are unusual but valid.
func (s Settings) Validate() error {
	floats := []struct {
		name string
		v    float64
	}{
		{"restitution", s.Physics.Restitution},
		{"slow motion factor", s.Physics.SlowMotionFactor},
		{"exit margin", s.Physics.ExitMargin},
		{"angle", s.Launch.Angle},
		{"speed", s.Launch.Speed},
		{"gravity", s.Launch.Gravity},
		{"outlet x", s.Launch.OutletX},
		{"outlet y", s.Launch.OutletY},
		{"zoom", s.Launch.Zoom},
		{"pick radius", s.PickRadius},
	}
	for _, f := range floats {
		if !isFinite(f.v) {
			return fmt.Errorf("%w: %s must be finite, got %g", ErrInvalidSettings, f.name, f.v)
		}
	}

	switch {
	case s.Physics.Substeps < 1:
		return fmt.Errorf("%w: substeps must be positive, got %d", ErrInvalidSettings, s.Physics.Substeps)
	case s.Physics.Restitution < 0 || s.Physics.Restitution > 1:
		return fmt.Errorf("%w: restitution must be within [0, 1], got %g", ErrInvalidSettings, s.Physics.Restitution)
	case s.Physics.SlowMotionFactor <= 0 || s.Physics.SlowMotionFactor > 1:
		return fmt.Errorf("%w: slow motion factor must be within (0, 1], got %g", ErrInvalidSettings, s.Physics.SlowMotionFactor)
	case s.Physics.ExitMargin < 0:
		return fmt.Errorf("%w: exit margin must not be negative, got %g", ErrInvalidSettings, s.Physics.ExitMargin)
	case s.Launch.Zoom <= 0:
		return fmt.Errorf("%w: zoom must be positive, got %g", ErrInvalidSettings, s.Launch.Zoom)
	case s.TrailCapacity < 1:
		return fmt.Errorf("%w: trail capacity must be positive, got %d", ErrInvalidSettings, s.TrailCapacity)
	case s.MaxProjectiles < 1:
		return fmt.Errorf("%w: max projectiles must be positive, got %d", ErrInvalidSettings, s.MaxProjectiles)
	case s.PickRadius < 0:
		return fmt.Errorf("%w: pick radius must not be negative, got %g", ErrInvalidSettings, s.PickRadius)
	}
	return nil
}

// Load builds settings from defaults, the YAML file at path (skipped when path is empty)
// and SIM_* environment overrides, then validates the result.
func Load(path string) (Settings, error) {
	s := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Settings{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := s.applyEnv(); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// applyEnv overrides fields from SIM_* environment variables.
func (s *Settings) applyEnv() error {
	floats := []struct {
		key string
		dst *float64
	}{
		{"SIM_RESTITUTION", &s.Physics.Restitution},
		{"SIM_SLOW_MOTION_FACTOR", &s.Physics.SlowMotionFactor},
		{"SIM_EXIT_MARGIN", &s.Physics.ExitMargin},
		{"SIM_ANGLE", &s.Launch.Angle},
		{"SIM_SPEED", &s.Launch.Speed},
		{"SIM_GRAVITY", &s.Launch.Gravity},
		{"SIM_ZOOM", &s.Launch.Zoom},
		{"SIM_PICK_RADIUS", &s.PickRadius},
	}
	for _, f := range floats {
		v, ok, err := GetEnvFloat(f.key)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidSettings, f.key, err)
		}
		if ok {
			*f.dst = v
		}
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"SIM_SUBSTEPS", &s.Physics.Substeps},
		{"SIM_TRAIL_CAPACITY", &s.TrailCapacity},
		{"SIM_MAX_PROJECTILES", &s.MaxProjectiles},
	}
	for _, f := range ints {
		v, ok, err := GetEnvInt(f.key)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidSettings, f.key, err)
		}
		if ok {
			*f.dst = v
		}
	}

	if v, ok, err := GetEnvBool("SIM_GROUND"); err != nil {
		return fmt.Errorf("%w: SIM_GROUND: %v", ErrInvalidSettings, err)
	} else if ok {
		s.Physics.Ground = v
	}

	s.LogFile = GetEnv("SIM_LOG_FILE", s.LogFile)
	s.LogLevel = GetEnv("SIM_LOG_LEVEL", s.LogLevel)
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
