package ecs

import "testing"

type health struct{ hp int }
type tag struct{}

func TestEntityPoolGenerations(t *testing.T) {
	p := NewEntityPool()

	a := p.Create()
	b := p.Create()
	if a == b {
		t.Fatal("distinct creates returned the same id")
	}
	if !p.Alive(a) || !p.Alive(b) {
		t.Fatal("fresh entities not alive")
	}

	p.Destroy(a)
	if p.Alive(a) {
		t.Fatal("destroyed entity still alive")
	}

	// The slot is recycled under a new generation; the stale handle stays dead.
	c := p.Create()
	if c.Index() != a.Index() {
		t.Fatalf("expected slot reuse, got index %d want %d", c.Index(), a.Index())
	}
	if c.Generation() == a.Generation() {
		t.Fatal("recycled slot kept its old generation")
	}
	if p.Alive(a) {
		t.Fatal("stale handle resolves after slot reuse")
	}
	if !p.Alive(c) {
		t.Fatal("recycled entity not alive")
	}

	// Double destroy via the stale handle is a no-op.
	p.Destroy(a)
	if !p.Alive(c) {
		t.Fatal("stale destroy killed the recycled entity")
	}

	if got := p.Live(); got != 2 {
		t.Fatalf("Live = %d, want 2", got)
	}
}

func TestStoreBasics(t *testing.T) {
	s := NewStore[health]()
	id := NewEntityID(1, 0)

	if s.Has(id) || s.Len() != 0 {
		t.Fatal("empty store reports contents")
	}
	if _, ok := s.Get(id); ok {
		t.Fatal("Get on empty store succeeded")
	}

	s.Set(id, &health{hp: 10})
	c, ok := s.Get(id)
	if !ok || c.hp != 10 {
		t.Fatalf("Get = (%v, %v)", c, ok)
	}

	c.hp = 20
	c2, _ := s.Get(id)
	if c2.hp != 20 {
		t.Fatal("store does not share the component pointer")
	}

	s.Remove(id)
	if s.Has(id) {
		t.Fatal("component survived Remove")
	}
}

func TestStoreEachVisitsAll(t *testing.T) {
	s := NewStore[health]()
	for i := uint32(0); i < 25; i++ {
		s.Set(NewEntityID(i, 0), &health{hp: int(i)})
	}

	seen := make(map[EntityID]int)
	s.Each(func(id EntityID, c *health) {
		seen[id] = c.hp
	})
	if len(seen) != 25 {
		t.Fatalf("Each visited %d entries, want 25", len(seen))
	}
}

func TestRegistryRemoveAll(t *testing.T) {
	healths := NewStore[health]()
	tags := NewStore[tag]()

	r := NewRegistry()
	r.Register(healths)
	r.Register(tags)

	id := NewEntityID(9, 0)
	healths.Set(id, &health{hp: 1})
	tags.Set(id, &tag{})

	r.RemoveAll(id)
	if healths.Has(id) || tags.Has(id) {
		t.Fatal("RemoveAll left component data behind")
	}
}

func TestWorldDeferredDestruction(t *testing.T) {
	w := NewWorld()
	healths := NewStore[health]()
	w.Registry().Register(healths)

	id := w.CreateEntity()
	healths.Set(id, &health{hp: 5})

	w.MarkForDestruction(id)
	// Deferred: still intact until the flush.
	if !w.Alive(id) || !healths.Has(id) {
		t.Fatal("destruction applied before flush")
	}

	w.FlushDestroyQueue()
	if w.Alive(id) {
		t.Fatal("entity alive after flush")
	}
	if healths.Has(id) {
		t.Fatal("component data survived flush")
	}

	// Flushing again is harmless.
	w.FlushDestroyQueue()
}

func TestEach2IntersectsStores(t *testing.T) {
	healths := NewStore[health]()
	tags := NewStore[tag]()

	for i := uint32(0); i < 10; i++ {
		healths.Set(NewEntityID(i, 0), &health{hp: int(i)})
	}
	for i := uint32(5); i < 15; i++ {
		tags.Set(NewEntityID(i, 0), &tag{})
	}

	count := 0
	Each2(healths, tags, func(id EntityID, h *health, _ *tag) {
		if id.Index() < 5 || id.Index() >= 10 {
			t.Fatalf("Each2 yielded entity %d outside the intersection", id.Index())
		}
		count++
	})
	if count != 5 {
		t.Fatalf("Each2 visited %d entities, want 5", count)
	}
}
