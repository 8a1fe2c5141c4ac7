package data

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSpawnFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spawn_list.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSpawnList(t *testing.T) {
	path := writeSpawnFile(t, `
spawns:
  - name: guards
    kind: regen
    count: 10
    level: 30
  - name: loot
    kind: decay
    count: 5
    level: 2
    trickle: true
`)

	list, err := LoadSpawnList(path)
	if err != nil {
		t.Fatalf("LoadSpawnList: %v", err)
	}
	if len(list.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(list.Entries))
	}
	if list.Count() != 15 {
		t.Fatalf("Count = %d, want 15", list.Count())
	}

	guards := list.Entries[0]
	if guards.Name != "guards" || guards.Kind != "regen" || guards.Level != 30 || guards.Trickle {
		t.Fatalf("guards entry parsed wrong: %+v", guards)
	}
	if !list.Entries[1].Trickle {
		t.Fatal("trickle flag lost")
	}
}

func TestLoadSpawnListRejectsUnknownKind(t *testing.T) {
	path := writeSpawnFile(t, `
spawns:
  - name: ghosts
    kind: haunt
    count: 1
`)
	if _, err := LoadSpawnList(path); err == nil {
		t.Fatal("unknown kind accepted")
	}
}

func TestLoadSpawnListRejectsNegativeCount(t *testing.T) {
	path := writeSpawnFile(t, `
spawns:
  - name: guards
    kind: regen
    count: -3
`)
	if _, err := LoadSpawnList(path); err == nil {
		t.Fatal("negative count accepted")
	}
}

func TestLoadSpawnListMissingFile(t *testing.T) {
	if _, err := LoadSpawnList(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("missing file accepted")
	}
}
