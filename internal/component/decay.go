package component

import "time"

// Decay counts an entity down to destruction, one step per firing. Ground
// loot, corpses and similar transients carry it.
type Decay struct {
	Remaining int32 // firings left before the entity is destroyed
	Interval  time.Duration
}

func (d Decay) UpdateInterval() time.Duration { return d.Interval }

// Step consumes one decay firing. Returns true once the entity is spent.
func (d *Decay) Step() bool {
	if d.Remaining > 0 {
		d.Remaining--
	}
	return d.Remaining <= 0
}
