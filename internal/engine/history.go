package engine

import "github.com/tphakala/go-video-magnify/internal/simdops"

// history is a fixed-capacity delay line of recently ingested frame copies,
// ordered newest-first. It generalizes the reference implementation's deque
// into a ring over a preallocated arena of frame buffers: push and evict are
// O(1) index moves plus one plane copy, with no steady-state allocation.
//
// Length never exceeds capacity. After warm-up the engine holds exactly
// capacity or capacity-1 frames, so the memory footprint stays bounded at
// capacity × frame size.
type history[F simdops.Float] struct {
	frames []Frame[F] // arena, len == capacity
	head   int        // arena index of the newest frame
	size   int
}

// newHistory preallocates an arena of capacity frames of the given shape.
func newHistory[F simdops.Float](capacity, width, height int) *history[F] {
	h := &history[F]{
		frames: make([]Frame[F], capacity),
	}
	for i := range h.frames {
		h.frames[i] = NewFrame[F](width, height)
	}
	return h
}

// push copies src into the slot that becomes the new head.
// When the ring is full the copy lands in the slot freed by the last evict.
func (h *history[F]) push(src Frame[F]) {
	h.head = (h.head - 1 + len(h.frames)) % len(h.frames)
	h.frames[h.head].copyFrom(src)
	if h.size < len(h.frames) {
		h.size++
	}
}

// at returns the n-th newest frame; at(0) is the frame pushed last.
// The returned frame aliases arena storage and must not be retained
// across a subsequent push.
func (h *history[F]) at(n int) Frame[F] {
	return h.frames[(h.head+n)%len(h.frames)]
}

// evict drops the oldest frame. The arena slot is reused by a later push.
func (h *history[F]) evict() {
	if h.size > 0 {
		h.size--
	}
}

// len returns the current number of retained frames.
func (h *history[F]) len() int {
	return h.size
}

// full reports whether the ring holds capacity frames.
func (h *history[F]) full() bool {
	return h.size == len(h.frames)
}

// reset empties the ring without releasing the arena.
func (h *history[F]) reset() {
	h.head = 0
	h.size = 0
}
