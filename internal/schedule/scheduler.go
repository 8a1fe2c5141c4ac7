// Package schedule implements the staggered periodic-update scheduler: given
// a population of entities each carrying a component with a fixed update
// interval, it spreads their recurring updates evenly over logical time
// instead of firing them all in the same tick. A freshly tracked entity gets
// a randomized first due-time within one interval; after its first firing it
// recurs on its exact interval.
//
// One scheduler instance exists per tracked component type. All access must
// happen on the goroutine that owns the tick loop; nothing here locks.
package schedule

import (
	"container/heap"
	"time"

	"github.com/illiux/stagger/internal/core/ecs"
	"github.com/illiux/stagger/internal/core/event"
)

// Component is the constraint on tracked component types: anything exposing
// a strictly positive update interval.
type Component interface {
	UpdateInterval() time.Duration
}

// Clock is the logical time source consumed by the scheduler.
type Clock interface {
	Now() time.Duration
	TickLength() time.Duration
}

// Rand supplies first-fire jitter. *rand.Rand satisfies it; tests inject a
// fixed source.
type Rand interface {
	Int63n(n int64) int64
}

// Pauser reports whether an entity is currently paused. Paused entities are
// rescheduled on their normal cadence but not yielded.
type Pauser interface {
	IsPaused(id ecs.EntityID) bool
}

// Scheduler staggers periodic updates for one component type.
//
// Entities live in exactly one of two structures at a time: the pending
// min-heap (never fired since tracking, arbitrary-order arrival) or the
// recurrence ring (fired at least once, FIFO). The tracked set mirrors the
// union of both and blocks double registration.
type Scheduler[T Component] struct {
	store  *ecs.Store[T]
	clk    Clock
	rng    Rand
	paused Pauser

	tracked map[ecs.EntityID]struct{}
	pending dueHeap
	recur   ring

	onTrack func(ecs.EntityID, *T)
}

// Option configures a Scheduler at construction time.
type Option[T Component] func(*Scheduler[T])

// WithTrackedHook installs a single-slot callback invoked synchronously
// right after a new entity is first tracked, with the same payload the
// scheduler observed. Replay of the pre-existing population fires it too.
func WithTrackedHook[T Component](fn func(ecs.EntityID, *T)) Option[T] {
	return func(s *Scheduler[T]) { s.onTrack = fn }
}

// New builds a scheduler and seeds it by replaying the store's current
// population through Track. The store doubles as the liveness probe during
// extraction; paused may be nil when the world has no pause notion.
func New[T Component](store *ecs.Store[T], clk Clock, rng Rand, paused Pauser, opts ...Option[T]) *Scheduler[T] {
	s := &Scheduler[T]{
		store:   store,
		clk:     clk,
		rng:     rng,
		paused:  paused,
		tracked: make(map[ecs.EntityID]struct{}, store.Len()),
		pending: make(dueHeap, 0, store.Len()),
	}
	for _, opt := range opts {
		opt(s)
	}
	store.Each(s.Track)
	return s
}

// Subscribe wires the scheduler to live attach notifications on the bus.
func (s *Scheduler[T]) Subscribe(bus *event.Bus) {
	event.Subscribe(bus, func(ev event.ComponentAttached[T]) {
		s.Track(ev.Entity, ev.Comp)
	})
}

// Track registers an entity for staggered updates. Idempotent: an already
// tracked entity is left untouched, so a component detached and re-attached
// before its due-time keeps exactly one outstanding entry.
//
// The first due-time is now + one tick + uniform jitter in [0, interval):
// the current tick's updates may already have run, so the earliest valid
// slot is the next tick, and the jitter is what prevents a thundering herd
// when thousands of entities register in the same tick.
func (s *Scheduler[T]) Track(id ecs.EntityID, comp *T) {
	if _, ok := s.tracked[id]; ok {
		return
	}
	s.tracked[id] = struct{}{}
	due := s.clk.Now() + s.clk.TickLength() + s.jitter((*comp).UpdateInterval())
	heap.Push(&s.pending, entry{id: id, due: due})
	if s.onTrack != nil {
		s.onTrack(id, comp)
	}
}

func (s *Scheduler[T]) jitter(interval time.Duration) time.Duration {
	if interval <= 0 {
		return 0
	}
	return time.Duration(s.rng.Int63n(int64(interval)))
}

// Tracked reports whether the entity has an outstanding schedule entry.
func (s *Scheduler[T]) Tracked(id ecs.EntityID) bool {
	_, ok := s.tracked[id]
	return ok
}

// Outstanding returns the number of tracked entities.
func (s *Scheduler[T]) Outstanding() int {
	return len(s.tracked)
}

// Due returns a lazy, single-pass iterator over entities due at or before
// the clock reading taken now. The snapshot is frozen here: entities
// registered while iterating land strictly after it and wait for the next
// pass. The iterator must not be reused after exhaustion.
func (s *Scheduler[T]) Due() *Iter[T] {
	return &Iter[T]{s: s, until: s.clk.Now()}
}

// popDue removes and returns the earlier of the two queue heads, provided it
// is due at or before until. Ties go to the recurrence ring so steady-state
// entries are not starved by same-tick registrations.
func (s *Scheduler[T]) popDue(until time.Duration) (entry, bool) {
	re, rok := s.recur.front()
	pok := len(s.pending) > 0
	if rok && (!pok || re.due <= s.pending[0].due) {
		if re.due > until {
			return entry{}, false
		}
		s.recur.pop()
		return re, true
	}
	if !pok || s.pending[0].due > until {
		return entry{}, false
	}
	return heap.Pop(&s.pending).(entry), true
}

// Iter walks one scheduler pass. Next pops due entries, drops entities whose
// component no longer resolves, reschedules the rest, and yields the
// unpaused ones.
type Iter[T Component] struct {
	s     *Scheduler[T]
	until time.Duration
	done  bool
}

// Next returns the next due (entity, component) pair, or false when no head
// is due anymore. Calling Next again after it returned false panics: a
// restart would violate the single-pass snapshot contract.
func (it *Iter[T]) Next() (ecs.EntityID, *T, bool) {
	if it.done {
		panic("schedule: Next called after iterator exhaustion")
	}
	for {
		e, ok := it.s.popDue(it.until)
		if !ok {
			it.done = true
			return 0, nil, false
		}

		comp, ok := it.s.store.Get(e.id)
		if !ok {
			// Component gone: the entity was destroyed out of band.
			// Untrack permanently; a fresh attach notification is the
			// only way back in.
			delete(it.s.tracked, e.id)
			continue
		}

		// Reschedule off the nominal due-time, not the clock, so spacing
		// between consecutive firings is exactly one interval with no
		// wall-clock catch-up.
		it.s.recur.push(entry{id: e.id, due: e.due + (*comp).UpdateInterval()})

		if it.s.paused != nil && it.s.paused.IsPaused(e.id) {
			continue // rescheduled above, just not yielded this pass
		}
		return e.id, comp, true
	}
}
