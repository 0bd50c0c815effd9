package object

import (
	"testing"

	"github.com/golang/geo/r2"
	"pgregory.net/rapid"
)

func TestTrailEvictsOldest(t *testing.T) {
	tr := NewTrail(3)
	for i := 0; i < 5; i++ {
		tr.Push(r2.Point{X: float64(i)})
	}

	if tr.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tr.Len())
	}
	got := tr.Points()
	for i, want := range []float64{2, 3, 4} {
		if got[i].X != want {
			t.Errorf("Points()[%d].X = %g, want %g", i, got[i].X, want)
		}
	}
	last, ok := tr.Last()
	if !ok || last.X != 4 {
		t.Errorf("Last() = %v, %v, want 4, true", last, ok)
	}
}

func TestTrailMinimumCapacity(t *testing.T) {
	tr := NewTrail(0)
	if tr.Cap() != 1 {
		t.Errorf("Cap() = %d, want 1", tr.Cap())
	}
	if _, ok := tr.Last(); ok {
		t.Error("Last() on empty trail reported ok")
	}
}

func TestTrailNeverExceedsCapacity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		capacity := rapid.IntRange(1, 64).Draw(t, "capacity")
		pushes := rapid.IntRange(0, 300).Draw(t, "pushes")

		tr := NewTrail(capacity)
		for i := 0; i < pushes; i++ {
			tr.Push(r2.Point{X: float64(i)})
		}

		want := min(pushes, capacity)
		if tr.Len() != want {
			t.Fatalf("Len() = %d, want %d", tr.Len(), want)
		}
		// Oldest-first order, newest points retained
		for i := 0; i < tr.Len(); i++ {
			if got, exp := tr.At(i).X, float64(pushes-want+i); got != exp {
				t.Fatalf("At(%d).X = %g, want %g", i, got, exp)
			}
		}
	})
}
