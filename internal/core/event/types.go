package event

import "github.com/illiux/stagger/internal/core/ecs"

// ComponentAttached fires when a component of type T is attached to an
// entity after world construction. Schedulers subscribe to it to pick up
// late arrivals; the construction-time population is seeded by store replay
// instead.
type ComponentAttached[T any] struct {
	Entity ecs.EntityID
	Comp   *T
}
