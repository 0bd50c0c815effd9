package object

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

const eps = 1e-9

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{45, 45},
		{360, 0},
		{725, 5},
		{-90, 270},
		{-720, 0},
	}
	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); math.Abs(got-tt.want) > eps {
			t.Errorf("NormalizeAngle(%g) = %g, want %g", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeAngleRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		deg := rapid.Float64Range(-1e6, 1e6).Draw(t, "deg")
		got := NormalizeAngle(deg)
		if got < 0 || got >= 360 {
			t.Fatalf("NormalizeAngle(%g) = %g, outside [0, 360)", deg, got)
		}
	})
}

func TestOutletVelocity(t *testing.T) {
	o := Outlet{Angle: 45, Speed: 100}
	vx, vy := o.Velocity()
	want := 100 * math.Cos(math.Pi/4)
	if math.Abs(vx-want) > eps || math.Abs(vy-want) > eps {
		t.Errorf("Velocity() = (%g, %g), want (%g, %g)", vx, vy, want, want)
	}

	// Angles are taken mod 360
	o.Angle = 45 + 720
	vx2, vy2 := o.Velocity()
	if math.Abs(vx2-vx) > 1e-6 || math.Abs(vy2-vy) > 1e-6 {
		t.Errorf("Velocity() at 765° = (%g, %g), want (%g, %g)", vx2, vy2, vx, vy)
	}
}

func TestOutletAimAt(t *testing.T) {
	o := Outlet{X: 100, Y: 100}
	tests := []struct {
		x, y, want float64
	}{
		{200, 100, 0},
		{100, 200, 90},
		{0, 100, 180},
		{100, 0, 270},
		{200, 200, 45},
	}
	for _, tt := range tests {
		o.AimAt(tt.x, tt.y)
		if math.Abs(o.Angle-tt.want) > eps {
			t.Errorf("AimAt(%g, %g) angle = %g, want %g", tt.x, tt.y, o.Angle, tt.want)
		}
	}
}

func TestNewProjectileSnapshotsOutlet(t *testing.T) {
	o := Outlet{X: 10, Y: 20, Angle: 0, Speed: 50}
	p := NewProjectile(o, 8)

	o.Angle = 90
	o.Speed = 1
	o.X = 999

	if p.X != 10 || p.Y != 20 || math.Abs(p.VX-50) > eps || math.Abs(p.VY) > eps {
		t.Errorf("projectile = %+v, want launch snapshot", p)
	}
	if p.Path.Len() != 1 {
		t.Errorf("Path.Len() = %d, want 1 (launch point)", p.Path.Len())
	}
	if !p.IsActive() {
		t.Error("new projectile inactive")
	}

	p.Deactivate()
	if p.IsActive() || p.VX != 0 || p.VY != 0 {
		t.Errorf("Deactivate() left %+v", p)
	}
}

func TestCamera(t *testing.T) {
	var c Camera
	c.Pan(10, -5)
	sx, sy := c.WorldToScreen(1, 1)
	if sx != 11 || sy != -4 {
		t.Errorf("WorldToScreen = (%g, %g), want (11, -4)", sx, sy)
	}
	x, y := c.ScreenToWorld(sx, sy)
	if x != 1 || y != 1 {
		t.Errorf("ScreenToWorld = (%g, %g), want (1, 1)", x, y)
	}

	c.Follow = true
	c.CenterOn(NewScreen(200, 100), 300, 40)
	if c.OffsetX != -200 || c.OffsetY != 10 {
		t.Errorf("CenterOn offset = (%g, %g), want (-200, 10)", c.OffsetX, c.OffsetY)
	}

	c.Reset()
	if c.OffsetX != 0 || c.OffsetY != 0 || !c.Follow {
		t.Errorf("Reset() = %+v, want zero offset and follow kept", c)
	}
}
