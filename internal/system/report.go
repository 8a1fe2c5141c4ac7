package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/illiux/stagger/internal/clock"
	"github.com/illiux/stagger/internal/component"
	"github.com/illiux/stagger/internal/core/ecs"
	coresys "github.com/illiux/stagger/internal/core/system"
)

// ReportSystem aggregates per-tick yield counts and logs a window summary
// every N ticks. A flat min/max spread across the window is the visible
// proof that staggering is working: without jitter the whole population
// fires in one tick and idles in the rest. Phase 4 (Report).
type ReportSystem struct {
	log    *zap.Logger
	clk    *clock.Clock
	stats  *TickStats
	regen  *ecs.Store[component.Regen]
	paused *ecs.Store[component.Paused]

	every  int
	counts []int

	outstanding func() int // total tracked entities across schedulers
}

func NewReportSystem(log *zap.Logger, clk *clock.Clock, stats *TickStats, regen *ecs.Store[component.Regen], paused *ecs.Store[component.Paused], every int, outstanding func() int) *ReportSystem {
	if every < 1 {
		every = 1
	}
	return &ReportSystem{
		log:         log,
		clk:         clk,
		stats:       stats,
		regen:       regen,
		paused:      paused,
		every:       every,
		counts:      make([]int, 0, every),
		outstanding: outstanding,
	}
}

func (s *ReportSystem) Phase() coresys.Phase { return coresys.PhaseReport }

func (s *ReportSystem) Update(_ time.Duration) {
	s.counts = append(s.counts, s.stats.Yields)
	s.stats.Yields = 0
	if len(s.counts) < s.every {
		return
	}

	minY, maxY, sum := s.counts[0], s.counts[0], 0
	for _, c := range s.counts {
		if c < minY {
			minY = c
		}
		if c > maxY {
			maxY = c
		}
		sum += c
	}
	mean := float64(sum) / float64(len(s.counts))

	pausedRegen := 0
	ecs.Each2(s.regen, s.paused, func(ecs.EntityID, *component.Regen, *component.Paused) {
		pausedRegen++
	})

	s.log.Info("yield report",
		zap.Uint64("tick", s.clk.Ticks()),
		zap.Int("window", len(s.counts)),
		zap.Int("min_per_tick", minY),
		zap.Int("max_per_tick", maxY),
		zap.Float64("mean_per_tick", mean),
		zap.Int("tracked", s.outstanding()),
		zap.Int("paused_regen", pausedRegen),
	)
	s.counts = s.counts[:0]
}
