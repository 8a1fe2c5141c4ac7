package system

import "time"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseClock    Phase = iota // 0: advance the logical clock
	PhaseDispatch              // 1: deliver last tick's events
	PhaseSpawn                 // 2: introduce new entities
	PhaseUpdate                // 3: staggered component updates
	PhaseReport                // 4: aggregate + log tick metrics
	PhaseCleanup               // 5: destroy queued entities
)

// System is the interface every tick system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
