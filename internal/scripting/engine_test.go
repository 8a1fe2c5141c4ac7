package scripting

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestEngine(t *testing.T, script string) *Engine {
	t.Helper()
	dir := t.TempDir()
	if script != "" {
		if err := os.WriteFile(filepath.Join(dir, "intervals.lua"), []byte(script), 0644); err != nil {
			t.Fatal(err)
		}
	}
	e, err := NewEngine(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	t.Cleanup(e.Close)
	return e
}

func TestUpdateIntervalFromScript(t *testing.T) {
	e := newTestEngine(t, `
function update_interval(kind, level)
    if kind == "regen" then
        return 1000 + level * 40
    end
    return 10000
end
`)

	if got := e.UpdateInterval("regen", 30); got != 2200*time.Millisecond {
		t.Fatalf("regen level 30 = %v, want 2.2s", got)
	}
	if got := e.UpdateInterval("decay", 5); got != 10*time.Second {
		t.Fatalf("decay = %v, want 10s", got)
	}
}

func TestUpdateIntervalFallbacks(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"no function defined", ""},
		{"non-positive result", "function update_interval(k, l) return 0 end"},
		{"runtime error", "function update_interval(k, l) error('boom') end"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, tt.script)
			if got := e.UpdateInterval("regen", 1); got != time.Second {
				t.Fatalf("fallback = %v, want 1s", got)
			}
		})
	}
}

func TestNewEngineMissingDirIsFine(t *testing.T) {
	e, err := NewEngine(filepath.Join(t.TempDir(), "absent"), zap.NewNop())
	if err != nil {
		t.Fatalf("NewEngine on missing dir: %v", err)
	}
	defer e.Close()
	if got := e.UpdateInterval("regen", 1); got != time.Second {
		t.Fatalf("fallback = %v, want 1s", got)
	}
}

func TestNewEngineRejectsBrokenScript(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.lua"), []byte("function ("), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewEngine(dir, zap.NewNop()); err == nil {
		t.Fatal("broken script accepted")
	}
}
