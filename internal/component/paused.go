package component

import "github.com/illiux/stagger/internal/core/ecs"

// Paused marks an entity as temporarily excluded from staggered yields.
// A paused entity keeps its schedule slot advancing on the normal cadence;
// it is silently skipped until the component is removed.
type Paused struct {
	UntilTick uint64 // tick index at which the pause lifts; 0 = indefinite
}

// PauseSet answers pause queries from the Paused component store.
type PauseSet struct {
	store *ecs.Store[Paused]
}

func NewPauseSet(store *ecs.Store[Paused]) *PauseSet {
	return &PauseSet{store: store}
}

func (p *PauseSet) IsPaused(id ecs.EntityID) bool {
	return p.store.Has(id)
}
