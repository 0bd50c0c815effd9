package object

import "github.com/golang/geo/r2"

// Trail is a fixed-capacity ring buffer of visited positions.
// Once full, every push evicts the oldest point.
type Trail struct {
	points []r2.Point
	start  int // Index of the oldest point
	count  int
}

// NewTrail creates a trail holding at most capacity points (minimum 1).
func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{points: make([]r2.Point, capacity)}
}

// Push appends a point, evicting the oldest one when full.
func (t *Trail) Push(p r2.Point) {
	capacity := len(t.points)
	if t.count < capacity {
		t.points[(t.start+t.count)%capacity] = p
		t.count++
		return
	}
	t.points[t.start] = p
	t.start = (t.start + 1) % capacity
}

// Len returns the number of stored points.
func (t *Trail) Len() int {
	return t.count
}

// Cap returns the capacity.
func (t *Trail) Cap() int {
	return len(t.points)
}

// At returns the i-th point, oldest first.
func (t *Trail) At(i int) r2.Point {
	return t.points[(t.start+i)%len(t.points)]
}

// Last returns the newest point. ok is false for an empty trail.
func (t *Trail) Last() (p r2.Point, ok bool) {
	if t.count == 0 {
		return r2.Point{}, false
	}
	return t.At(t.count - 1), true
}

// Points returns a copy of the stored points, oldest first.
func (t *Trail) Points() []r2.Point {
	out := make([]r2.Point, t.count)
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}
