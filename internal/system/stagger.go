package system

import (
	"time"

	"github.com/illiux/stagger/internal/core/ecs"
	coresys "github.com/illiux/stagger/internal/core/system"
	"github.com/illiux/stagger/internal/schedule"
)

// TickStats accumulates yield counts across the staggered-update systems of
// one tick. The report system reads and resets it.
type TickStats struct {
	Yields int
}

// StaggerUpdateSystem drains one scheduler's due entities each tick and
// applies fn to each. One instance exists per tracked component type.
// Phase 3 (Update).
type StaggerUpdateSystem[T schedule.Component] struct {
	sched *schedule.Scheduler[T]
	fn    func(ecs.EntityID, *T)
	stats *TickStats
}

func NewStaggerUpdateSystem[T schedule.Component](sched *schedule.Scheduler[T], stats *TickStats, fn func(ecs.EntityID, *T)) *StaggerUpdateSystem[T] {
	return &StaggerUpdateSystem[T]{sched: sched, fn: fn, stats: stats}
}

func (s *StaggerUpdateSystem[T]) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *StaggerUpdateSystem[T]) Update(_ time.Duration) {
	it := s.sched.Due()
	for {
		id, comp, ok := it.Next()
		if !ok {
			return
		}
		s.fn(id, comp)
		if s.stats != nil {
			s.stats.Yields++
		}
	}
}
