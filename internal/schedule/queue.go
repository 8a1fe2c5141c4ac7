package schedule

import (
	"time"

	"github.com/illiux/stagger/internal/core/ecs"
)

// entry is one outstanding schedule slot: an entity and the logical time at
// or after which it should next fire.
type entry struct {
	id  ecs.EntityID
	due time.Duration
}

// dueHeap is a min-heap of entries keyed by due-time. It holds entities that
// have never fired since being tracked: registrations arrive in arbitrary
// time order (jitter is random), so a priority structure is required here
// where a plain queue suffices for steady-state recurrence.
type dueHeap []entry

func (h dueHeap) Len() int { return len(h) }

func (h dueHeap) Less(i, j int) bool {
	return h[i].due < h[j].due
}

func (h dueHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends x. Called by container/heap; callers must not invoke directly.
func (h *dueHeap) Push(x any) {
	*h = append(*h, x.(entry))
}

// Pop removes and returns the last element. Called by container/heap.
func (h *dueHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// ring is a growable FIFO of entries backed by a circular slice. It holds
// entities that have fired at least once and are waiting for their next
// periodic trigger.
//
// Invariant: entries are appended in non-decreasing due order, which holds
// exactly when every component tracked by one scheduler shares an update
// interval. Under mixed intervals the front can delay a later-queued,
// earlier-due entry by at most the interval spread; entries are never lost
// and per-entity spacing stays exact.
type ring struct {
	buf  []entry
	head int
	n    int
}

func (r *ring) len() int { return r.n }

func (r *ring) push(e entry) {
	if r.n == len(r.buf) {
		r.grow()
	}
	r.buf[(r.head+r.n)%len(r.buf)] = e
	r.n++
}

func (r *ring) front() (entry, bool) {
	if r.n == 0 {
		return entry{}, false
	}
	return r.buf[r.head], true
}

func (r *ring) pop() (entry, bool) {
	if r.n == 0 {
		return entry{}, false
	}
	e := r.buf[r.head]
	r.buf[r.head] = entry{}
	r.head = (r.head + 1) % len(r.buf)
	r.n--
	return e, true
}

func (r *ring) grow() {
	next := make([]entry, max(8, 2*len(r.buf)))
	for i := 0; i < r.n; i++ {
		next[i] = r.buf[(r.head+i)%len(r.buf)]
	}
	r.buf = next
	r.head = 0
}
