package defs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadWaveTable(t *testing.T) {
	original := WaveTable
	t.Cleanup(func() { WaveTable = original })

	path := writeTempFile(t, "waves.json", `[
		{"number": 1, "walkers": 3, "runners": 1, "spawn_interval_ms": 500},
		{"number": 2, "walkers": 6, "runners": 4, "spawn_interval_ms": 400}
	]`)
	if err := LoadWaveTable(path); err != nil {
		t.Fatalf("LoadWaveTable failed: %v", err)
	}

	if len(WaveTable) != 2 {
		t.Fatalf("expected 2 waves, got %d", len(WaveTable))
	}
	w := WaveTable[1]
	if w.Walkers != 3 || w.Runners != 1 || w.SpawnInterval != 500*time.Millisecond {
		t.Fatalf("wave 1 loaded wrong: %+v", w)
	}
	if FinalWave() != 2 {
		t.Fatalf("expected final wave 2, got %d", FinalWave())
	}
}

func TestLoadWaveTableRejectsBadInput(t *testing.T) {
	original := WaveTable
	t.Cleanup(func() { WaveTable = original })

	empty := writeTempFile(t, "empty.json", `[]`)
	if err := LoadWaveTable(empty); err == nil {
		t.Fatalf("empty table must be rejected")
	}

	bad := writeTempFile(t, "bad.json", `[{"number": 0, "walkers": 1}]`)
	if err := LoadWaveTable(bad); err == nil {
		t.Fatalf("wave number 0 must be rejected")
	}

	if err := LoadWaveTable(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("missing file must be reported")
	}
}

func TestLoadTowerDefinitions(t *testing.T) {
	original := TowerLibrary
	t.Cleanup(func() { TowerLibrary = original })

	path := writeTempFile(t, "towers.json", `[
		{"id": "TOWER_TEST", "name": "Test", "cost": 75, "blocking": true,
		 "combat": {"damage": 20, "fire_interval": 1.0, "range": 6}}
	]`)
	if err := LoadTowerDefinitions(path); err != nil {
		t.Fatalf("LoadTowerDefinitions failed: %v", err)
	}

	def, ok := TowerLibrary["TOWER_TEST"]
	if !ok {
		t.Fatalf("loaded tower not found in the library")
	}
	if def.Cost != 75 || def.Combat == nil || def.Combat.Damage != 20 {
		t.Fatalf("tower loaded wrong: %+v", def)
	}
}
