package component

import "time"

// Regen periodically restores an entity's health. Interval varies per
// archetype (content-defined via Lua), which is exactly the load profile the
// staggered scheduler exists for: thousands of regenerators must not all
// fire in the same tick.
type Regen struct {
	HP       int32
	MaxHP    int32
	Amount   int32 // restored per firing
	Interval time.Duration
}

func (r Regen) UpdateInterval() time.Duration { return r.Interval }

// Apply restores one regen step, clamped to MaxHP. Returns true if HP moved.
func (r *Regen) Apply() bool {
	if r.HP >= r.MaxHP {
		return false
	}
	r.HP += r.Amount
	if r.HP > r.MaxHP {
		r.HP = r.MaxHP
	}
	return true
}
