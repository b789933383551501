package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Body is the ordered list of snake segments, head at index 0.
// It always holds at least one segment.
type Body struct {
	segments []core.Point
}

// NewBody creates a one-segment snake at head.
func NewBody(head core.Point) *Body {
	return &Body{segments: []core.Point{head}}
}

// Head returns the head position.
func (b *Body) Head() core.Point {
	return b.segments[0]
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return len(b.segments)
}

// Segments returns a copy of the segment positions, head first.
func (b *Body) Segments() []core.Point {
	out := make([]core.Point, len(b.segments))
	copy(out, b.segments)
	return out
}

// Advance moves the snake one cell of size step in direction d.
// Each trailing segment takes its predecessor's previous position, then the head moves.
func (b *Body) Advance(d Direction, step int) {
	dx, dy := d.Delta()
	next := b.segments[0].Add(dx*step, dy*step)
	for i := len(b.segments) - 1; i > 0; i-- {
		b.segments[i] = b.segments[i-1]
	}
	b.segments[0] = next
}

// Grow appends a copy of the tail. It unfolds on the next Advance.
func (b *Body) Grow() {
	b.segments = append(b.segments, b.segments[len(b.segments)-1])
}

// ShrinkTail removes the last segment. The head is never removed;
// it returns false when the snake is already a single segment.
func (b *Body) ShrinkTail() bool {
	if len(b.segments) <= 1 {
		return false
	}
	b.segments = b.segments[:len(b.segments)-1]
	return true
}

// HitsSelf reports whether the head is within radius of any body segment.
// A segment stacked on its predecessor was just grown and is skipped.
func (b *Body) HitsSelf(radius float64) bool {
	head := b.segments[0]
	for i := 1; i < len(b.segments); i++ {
		if b.segments[i] == b.segments[i-1] {
			continue
		}
		if head.Dist(b.segments[i]) < radius {
			return true
		}
	}
	return false
}
