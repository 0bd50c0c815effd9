package object

import (
	"errors"
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestNewBlockRejectsDegenerate(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative", -5, 10},
		{"nan", math.NaN(), 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBlock(0, 0, tt.w, tt.h)
			if !errors.Is(err, ErrDegenerateBlock) {
				t.Errorf("NewBlock() error = %v, want ErrDegenerateBlock", err)
			}
			if b != nil {
				t.Errorf("NewBlock() = %+v, want nil", b)
			}
		})
	}

	b, err := NewBlock(1, 2, 3, 4)
	if err != nil {
		t.Fatalf("NewBlock() error = %v", err)
	}
	if *b != (Block{X: 1, Y: 2, W: 3, H: 4}) {
		t.Errorf("NewBlock() = %+v", *b)
	}
}

func TestBlockFromCorners(t *testing.T) {
	got := BlockFromCorners(100, 60, 10, 10)
	want := Block{X: 10, Y: 10, W: 90, H: 50}
	if got != want {
		t.Errorf("BlockFromCorners() = %+v, want %+v", got, want)
	}
}

func TestBlockFromCornersNeverNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ax := rapid.Float64Range(-1e4, 1e4).Draw(t, "ax")
		ay := rapid.Float64Range(-1e4, 1e4).Draw(t, "ay")
		bx := rapid.Float64Range(-1e4, 1e4).Draw(t, "bx")
		by := rapid.Float64Range(-1e4, 1e4).Draw(t, "by")

		b := BlockFromCorners(ax, ay, bx, by)
		if b.W < 0 || b.H < 0 {
			t.Fatalf("negative size %+v", b)
		}
		if b.X != math.Min(ax, bx) || b.Y != math.Min(ay, by) {
			t.Fatalf("origin %+v is not the component-wise minimum", b)
		}
		if math.Abs(b.X+b.W-math.Max(ax, bx)) > 1e-9 || math.Abs(b.Y+b.H-math.Max(ay, by)) > 1e-9 {
			t.Fatalf("block %+v does not reach the far corner", b)
		}
	})
}

func TestBlockContainsAndCenterOn(t *testing.T) {
	b := Block{X: 10, Y: 10, W: 20, H: 10}
	if !b.Contains(10, 10) || !b.Contains(30, 20) || !b.Contains(15, 15) {
		t.Error("Contains() false for a point on or inside the block")
	}
	if b.Contains(31, 15) || b.Contains(15, 9) {
		t.Error("Contains() true for a point outside the block")
	}

	b.CenterOn(100, 100)
	if b.X != 90 || b.Y != 95 || b.W != 20 || b.H != 10 {
		t.Errorf("CenterOn() = %+v, want X=90 Y=95 W=20 H=10", b)
	}
}
