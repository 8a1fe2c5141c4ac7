package system

import (
	"time"

	"github.com/illiux/stagger/internal/core/event"
	coresys "github.com/illiux/stagger/internal/core/system"
)

// EventDispatchSystem swaps the event bus double-buffer and dispatches all
// events emitted during the previous tick. Phase 1 (Dispatch).
type EventDispatchSystem struct {
	bus *event.Bus
}

func NewEventDispatchSystem(bus *event.Bus) *EventDispatchSystem {
	return &EventDispatchSystem{bus: bus}
}

func (s *EventDispatchSystem) Phase() coresys.Phase { return coresys.PhaseDispatch }

func (s *EventDispatchSystem) Update(_ time.Duration) {
	s.bus.SwapBuffers()
	s.bus.DispatchAll()
}
