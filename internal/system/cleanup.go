package system

import (
	"time"

	"github.com/illiux/stagger/internal/core/ecs"
	coresys "github.com/illiux/stagger/internal/core/system"
)

// CleanupSystem flushes the deferred entity destruction queue at tick end.
// Schedulers never learn about destructions directly; they notice on their
// next extraction when the component fails to resolve. Phase 5 (Cleanup).
type CleanupSystem struct {
	world *ecs.World
}

func NewCleanupSystem(world *ecs.World) *CleanupSystem {
	return &CleanupSystem{world: world}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Duration) {
	s.world.FlushDestroyQueue()
}
