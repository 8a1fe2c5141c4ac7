package system

import (
	"time"

	"github.com/illiux/stagger/internal/component"
	"github.com/illiux/stagger/internal/core/ecs"
	"github.com/illiux/stagger/internal/core/event"
	coresys "github.com/illiux/stagger/internal/core/system"
	"github.com/illiux/stagger/internal/data"
	"github.com/illiux/stagger/internal/scripting"
)

// Spawner creates entities from spawn entries, deriving each archetype's
// update interval from the scripting engine.
type Spawner struct {
	world *ecs.World
	regen *ecs.Store[component.Regen]
	decay *ecs.Store[component.Decay]
	lua   *scripting.Engine
}

func NewSpawner(world *ecs.World, regen *ecs.Store[component.Regen], decay *ecs.Store[component.Decay], lua *scripting.Engine) *Spawner {
	return &Spawner{world: world, regen: regen, decay: decay, lua: lua}
}

func (sp *Spawner) SpawnRegen(level int) (ecs.EntityID, *component.Regen) {
	id := sp.world.CreateEntity()
	maxHP := int32(50 + 10*level)
	c := &component.Regen{
		HP:       maxHP / 2,
		MaxHP:    maxHP,
		Amount:   int32(1 + level/10),
		Interval: sp.lua.UpdateInterval("regen", level),
	}
	sp.regen.Set(id, c)
	return id, c
}

func (sp *Spawner) SpawnDecay(level int) (ecs.EntityID, *component.Decay) {
	id := sp.world.CreateEntity()
	c := &component.Decay{
		Remaining: int32(5 + level),
		Interval:  sp.lua.UpdateInterval("decay", level),
	}
	sp.decay.Set(id, c)
	return id, c
}

// SpawnEntry creates entry.Count entities at once. Used for the
// construction-time population, which schedulers pick up by store replay
// rather than events.
func (sp *Spawner) SpawnEntry(entry data.SpawnEntry) {
	for i := 0; i < entry.Count; i++ {
		switch entry.Kind {
		case "regen":
			sp.SpawnRegen(entry.Level)
		case "decay":
			sp.SpawnDecay(entry.Level)
		}
	}
}

// TrickleSpawnSystem drips the trickle-marked spawn entries into the world
// during the run, one entity per tick, announcing each over the event bus so
// schedulers pick them up through the live attach path. Phase 2 (Spawn).
type TrickleSpawnSystem struct {
	spawner *Spawner
	bus     *event.Bus
	pending []data.SpawnEntry // one element per entity still to spawn
}

func NewTrickleSpawnSystem(spawner *Spawner, bus *event.Bus, list *data.SpawnList) *TrickleSpawnSystem {
	s := &TrickleSpawnSystem{spawner: spawner, bus: bus}
	for _, e := range list.Entries {
		if !e.Trickle {
			continue
		}
		for i := 0; i < e.Count; i++ {
			s.pending = append(s.pending, e)
		}
	}
	return s
}

func (s *TrickleSpawnSystem) Phase() coresys.Phase { return coresys.PhaseSpawn }

// Remaining returns the number of entities not yet spawned.
func (s *TrickleSpawnSystem) Remaining() int {
	return len(s.pending)
}

func (s *TrickleSpawnSystem) Update(_ time.Duration) {
	if len(s.pending) == 0 {
		return
	}
	e := s.pending[0]
	s.pending = s.pending[1:]

	switch e.Kind {
	case "regen":
		id, c := s.spawner.SpawnRegen(e.Level)
		event.Emit(s.bus, event.ComponentAttached[component.Regen]{Entity: id, Comp: c})
	case "decay":
		id, c := s.spawner.SpawnDecay(e.Level)
		event.Emit(s.bus, event.ComponentAttached[component.Decay]{Entity: id, Comp: c})
	}
}
