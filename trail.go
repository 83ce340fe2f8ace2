package stabletrack

import "sync"

// Trail is a fixed capacity ring buffer holding the most recent screen
// positions of one stable identity, used for drawing a trail.  When the
// buffer is full the oldest point is overwritten
type Trail struct {
	// points is the ring storage, length equals the capacity
	points []Point
	// next is the ring index the next point is written to
	next int
	// count is the number of points held, at most len(points)
	count int
	sync.Mutex
}

// NewTrail returns a new trail ring buffer.  Size is the maximum number of
// most recent points to keep
func NewTrail(size int) *Trail {

	if size < 1 {
		size = 1
	}

	return &Trail{
		points: make([]Point, size),
	}
}

// Add appends a point to the trail, overwriting the oldest point once the
// capacity is reached
func (t *Trail) Add(p Point) {
	t.Lock()
	defer t.Unlock()

	t.points[t.next] = p
	t.next = (t.next + 1) % len(t.points)

	if t.count < len(t.points) {
		t.count++
	}
}

// Len returns the number of points currently held
func (t *Trail) Len() int {
	t.Lock()
	defer t.Unlock()

	return t.count
}

// Points returns a copy of the trail points ordered oldest to newest
func (t *Trail) Points() []Point {
	t.Lock()
	defer t.Unlock()

	out := make([]Point, 0, t.count)

	start := t.next - t.count

	if start < 0 {
		start += len(t.points)
	}

	for i := 0; i < t.count; i++ {
		out = append(out, t.points[(start+i)%len(t.points)])
	}

	return out
}
