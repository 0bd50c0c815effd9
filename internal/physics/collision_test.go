package physics

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/tomz197/trajectory/internal/object"
	"pgregory.net/rapid"
)

func rect(x, y, w, h float64) r2.Rect {
	return object.Block{X: x, Y: y, W: w, H: h}.Rect()
}

func TestResolveNoCollision(t *testing.T) {
	p := &object.Projectile{X: 0, Y: 0, VX: 3, VY: 4}
	if ResolveCircleRect(p, 5, 0.5, rect(10, 10, 20, 20)) {
		t.Fatal("ResolveCircleRect() reported a collision for a distant block")
	}
	if p.X != 0 || p.Y != 0 || p.VX != 3 || p.VY != 4 {
		t.Errorf("projectile modified without collision: %+v", p)
	}
}

func TestResolveRestitutionBounds(t *testing.T) {
	tests := []struct {
		name        string
		restitution float64
		wantVY      float64
	}{
		{"inelastic", 0, 0},
		{"half", 0.5, -5},
		{"elastic", 1, -10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Falling onto the top face, 2px into the surface
			p := &object.Projectile{X: 50, Y: 97, VX: 2, VY: 10}
			if !ResolveCircleRect(p, 5, tt.restitution, rect(0, 100, 100, 50)) {
				t.Fatal("collision not detected")
			}
			if math.Abs(p.VY-tt.wantVY) > 1e-9 {
				t.Errorf("VY = %g, want %g", p.VY, tt.wantVY)
			}
			if p.VX != 2 {
				t.Errorf("tangential VX changed to %g", p.VX)
			}
			if p.Y > 95 {
				t.Errorf("Y = %g, want pushed above 95", p.Y)
			}
		})
	}
}

func TestResolveSeparatingVelocityUntouched(t *testing.T) {
	// Already moving away from the surface: position corrected, velocity kept
	p := &object.Projectile{X: 50, Y: 97, VX: 0, VY: -3}
	ResolveCircleRect(p, 5, 1, rect(0, 100, 100, 50))
	if p.VY != -3 {
		t.Errorf("VY = %g, want -3", p.VY)
	}
}

func TestResolveCenterInsideRect(t *testing.T) {
	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64 // Side the projectile must end up on, 0 for unchanged axis
	}{
		{"near top", 50, 102, 50, 95},
		{"near left", 3, 125, -5, 125},
		{"near right", 98, 125, 105, 125},
		{"near bottom", 50, 148, 50, 155},
		{"on top edge", 50, 100, 50, 95},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &object.Projectile{X: tt.x, Y: tt.y}
			if !ResolveCircleRect(p, 5, 0.5, rect(0, 100, 100, 50)) {
				t.Fatal("collision not detected")
			}
			if math.IsNaN(p.X) || math.IsNaN(p.Y) {
				t.Fatalf("NaN position %+v", p)
			}
			if math.Abs(p.X-tt.wantX) > 1e-6 || math.Abs(p.Y-tt.wantY) > 1e-6 {
				t.Errorf("position = (%g, %g), want (%g, %g)", p.X, p.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestResolveCorner(t *testing.T) {
	// Approaching the top-left corner diagonally
	p := &object.Projectile{X: -2, Y: 98, VX: 1, VY: 1}
	if !ResolveCircleRect(p, 5, 1, rect(0, 100, 100, 50)) {
		t.Fatal("collision not detected")
	}
	d := Distance(p.X, p.Y, 0, 100)
	if d < 5 || d > 5+1e-6 {
		t.Errorf("distance to corner = %g, want 5", d)
	}
	if math.Abs(p.VX+1) > 1e-9 || math.Abs(p.VY+1) > 1e-9 {
		t.Errorf("velocity = (%g, %g), want (-1, -1)", p.VX, p.VY)
	}
}

func TestResolveIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := rect(
			rapid.Float64Range(-500, 500).Draw(t, "x"),
			rapid.Float64Range(-500, 500).Draw(t, "y"),
			rapid.Float64Range(1, 300).Draw(t, "w"),
			rapid.Float64Range(1, 300).Draw(t, "h"),
		)
		p := &object.Projectile{
			X:  rapid.Float64Range(-600, 900).Draw(t, "px"),
			Y:  rapid.Float64Range(-600, 900).Draw(t, "py"),
			VX: rapid.Float64Range(-100, 100).Draw(t, "vx"),
			VY: rapid.Float64Range(-100, 100).Draw(t, "vy"),
		}
		restitution := rapid.Float64Range(0, 1).Draw(t, "restitution")

		ResolveCircleRect(p, object.BallRadius, restitution, r)
		if Overlaps(p.X, p.Y, object.BallRadius, r) {
			t.Fatalf("still overlapping after resolve: %+v", p)
		}

		before := *p
		if ResolveCircleRect(p, object.BallRadius, restitution, r) {
			t.Fatalf("second resolve reported a collision: %+v", before)
		}
		if *p != before {
			t.Fatalf("second resolve moved the projectile: %+v -> %+v", before, *p)
		}
	})
}

func TestResolveNeverGainsNormalSpeed(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		vy := rapid.Float64Range(0.1, 200).Draw(t, "vy")
		e := rapid.Float64Range(0, 1).Draw(t, "restitution")

		p := &object.Projectile{X: 50, Y: 98, VY: vy}
		ResolveCircleRect(p, object.BallRadius, e, rect(0, 100, 100, 50))

		if p.VY > 0 {
			t.Fatalf("still approaching after resolve: VY = %g", p.VY)
		}
		if -p.VY > vy*(1+1e-12) {
			t.Fatalf("normal speed grew from %g to %g", vy, -p.VY)
		}
	})
}
