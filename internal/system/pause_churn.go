package system

import (
	"math/rand"
	"time"

	"github.com/illiux/stagger/internal/clock"
	"github.com/illiux/stagger/internal/component"
	"github.com/illiux/stagger/internal/core/ecs"
	coresys "github.com/illiux/stagger/internal/core/system"
)

// PauseChurnSystem randomly pauses live regenerators for a stretch of ticks
// and lifts pauses whose deadline passed. Paused entities keep their schedule
// slots advancing; they just stop yielding, so churn here must never change
// scheduler counts. Registered before the staggered-update systems in the
// same phase.
type PauseChurnSystem struct {
	clk    *clock.Clock
	regen  *ecs.Store[component.Regen]
	paused *ecs.Store[component.Paused]
	rng    *rand.Rand

	chancePerMille int64  // per-entity pause probability per tick, in 1/1000
	pauseTicks     uint64 // pause length
}

func NewPauseChurnSystem(clk *clock.Clock, regen *ecs.Store[component.Regen], paused *ecs.Store[component.Paused], rng *rand.Rand) *PauseChurnSystem {
	return &PauseChurnSystem{
		clk:            clk,
		regen:          regen,
		paused:         paused,
		rng:            rng,
		chancePerMille: 5,
		pauseTicks:     25,
	}
}

func (s *PauseChurnSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *PauseChurnSystem) Update(_ time.Duration) {
	now := s.clk.Ticks()

	var expired []ecs.EntityID
	s.paused.Each(func(id ecs.EntityID, p *component.Paused) {
		if p.UntilTick != 0 && p.UntilTick <= now {
			expired = append(expired, id)
		}
	})
	for _, id := range expired {
		s.paused.Remove(id)
	}

	s.regen.Each(func(id ecs.EntityID, _ *component.Regen) {
		if s.paused.Has(id) {
			return
		}
		if s.rng.Int63n(1000) < s.chancePerMille {
			s.paused.Set(id, &component.Paused{UntilTick: now + s.pauseTicks})
		}
	})
}
