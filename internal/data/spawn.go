package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SpawnEntry describes one batch of entities to create. Kind selects the
// tracked component ("regen" or "decay"); Level feeds the Lua interval
// function. Trickle entries are introduced gradually during the run instead
// of at world build, exercising the live attach path.
type SpawnEntry struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	Count   int    `yaml:"count"`
	Level   int    `yaml:"level"`
	Trickle bool   `yaml:"trickle"`
}

// SpawnList is the parsed spawn file.
type SpawnList struct {
	Entries []SpawnEntry `yaml:"spawns"`
}

// LoadSpawnList loads and validates spawn_list.yaml.
func LoadSpawnList(path string) (*SpawnList, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spawn list: %w", err)
	}
	var list SpawnList
	if err := yaml.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("parse spawn list: %w", err)
	}
	for i, e := range list.Entries {
		if e.Kind != "regen" && e.Kind != "decay" {
			return nil, fmt.Errorf("spawn entry %d (%s): unknown kind %q", i, e.Name, e.Kind)
		}
		if e.Count < 0 {
			return nil, fmt.Errorf("spawn entry %d (%s): negative count", i, e.Name)
		}
	}
	return &list, nil
}

// Count returns the total number of entities the list will spawn.
func (l *SpawnList) Count() int {
	total := 0
	for _, e := range l.Entries {
		total += e.Count
	}
	return total
}
