package component

import (
	"testing"
	"time"

	"github.com/illiux/stagger/internal/core/ecs"
)

func TestRegenApplyClampsToMax(t *testing.T) {
	tests := []struct {
		name    string
		hp, max int32
		amount  int32
		wantHP  int32
		moved   bool
	}{
		{"normal step", 10, 100, 5, 15, true},
		{"clamped step", 98, 100, 5, 100, true},
		{"already full", 100, 100, 5, 100, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Regen{HP: tt.hp, MaxHP: tt.max, Amount: tt.amount, Interval: time.Second}
			if got := r.Apply(); got != tt.moved {
				t.Fatalf("Apply = %v, want %v", got, tt.moved)
			}
			if r.HP != tt.wantHP {
				t.Fatalf("HP = %d, want %d", r.HP, tt.wantHP)
			}
		})
	}
}

func TestDecayStep(t *testing.T) {
	d := &Decay{Remaining: 2, Interval: time.Second}
	if d.Step() {
		t.Fatal("spent after first step")
	}
	if !d.Step() {
		t.Fatal("not spent after final step")
	}
	if !d.Step() {
		t.Fatal("spent state did not stick")
	}
}

func TestComponentsExposeIntervals(t *testing.T) {
	r := Regen{Interval: 3 * time.Second}
	if r.UpdateInterval() != 3*time.Second {
		t.Fatalf("Regen interval = %v", r.UpdateInterval())
	}
	d := Decay{Interval: 10 * time.Second}
	if d.UpdateInterval() != 10*time.Second {
		t.Fatalf("Decay interval = %v", d.UpdateInterval())
	}
}

func TestPauseSet(t *testing.T) {
	store := ecs.NewStore[Paused]()
	set := NewPauseSet(store)

	id := ecs.NewEntityID(1, 0)
	if set.IsPaused(id) {
		t.Fatal("fresh entity reported paused")
	}
	store.Set(id, &Paused{UntilTick: 5})
	if !set.IsPaused(id) {
		t.Fatal("paused entity reported unpaused")
	}
	store.Remove(id)
	if set.IsPaused(id) {
		t.Fatal("pause survived removal")
	}
}
