package system

import (
	"time"

	"github.com/illiux/stagger/internal/clock"
	coresys "github.com/illiux/stagger/internal/core/system"
)

// ClockSystem advances the logical clock by one tick. Phase 0 (Clock) so
// every other system in the tick observes the new time.
type ClockSystem struct {
	clk *clock.Clock
}

func NewClockSystem(clk *clock.Clock) *ClockSystem {
	return &ClockSystem{clk: clk}
}

func (s *ClockSystem) Phase() coresys.Phase { return coresys.PhaseClock }

func (s *ClockSystem) Update(_ time.Duration) {
	s.clk.Advance()
}
