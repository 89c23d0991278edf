package system

import (
	"testing"

	"github.com/rs/zerolog"

	"dead-end/internal/defs"
	"dead-end/internal/entity"
	"dead-end/internal/event"
	"dead-end/internal/utils"
	"dead-end/pkg/grid"
)

func testPath() []grid.Cell {
	return []grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}
}

func newTestWaveSystem(ecs *entity.ECS) *WaveSystem {
	return NewWaveSystem(ecs, event.NewDispatcher(), utils.NewPRNGService(1), zerolog.Nop())
}

func TestStartWaveBuildsQueue(t *testing.T) {
	ecs := entity.NewECS()
	ws := newTestWaveSystem(ecs)

	wave := ws.StartWave(2, testPath())
	if wave == nil {
		t.Fatalf("wave 2 is defined, expected a wave state")
	}

	def := defs.WaveTable[2]
	if len(wave.Queue) != def.Walkers+def.Runners {
		t.Fatalf("expected %d spawn entries, got %d", def.Walkers+def.Runners, len(wave.Queue))
	}

	walkers, runners := 0, 0
	interval := def.SpawnInterval.Seconds()
	for i, entry := range wave.Queue {
		switch entry.EnemyID {
		case defs.EnemyWalker:
			walkers++
		case defs.EnemyRunner:
			runners++
		default:
			t.Fatalf("unexpected enemy kind %q", entry.EnemyID)
		}
		if want := float64(i) * interval; entry.Delay != want {
			t.Fatalf("entry %d: expected delay %v, got %v", i, want, entry.Delay)
		}
	}
	if walkers != def.Walkers || runners != def.Runners {
		t.Fatalf("composition mismatch: %d/%d walkers, %d/%d runners",
			walkers, def.Walkers, runners, def.Runners)
	}
}

func TestStartWaveRejectsBadInput(t *testing.T) {
	ecs := entity.NewECS()
	ws := newTestWaveSystem(ecs)

	if wave := ws.StartWave(99, testPath()); wave != nil {
		t.Fatalf("undefined wave must return nil")
	}
	if wave := ws.StartWave(1, nil); wave != nil {
		t.Fatalf("wave without a route must return nil")
	}
}

// Волна несёт собственный снимок маршрута: изменения исходного среза
// после старта её не касаются.
func TestStartWaveSnapshotsPath(t *testing.T) {
	ecs := entity.NewECS()
	ws := newTestWaveSystem(ecs)

	path := testPath()
	wave := ws.StartWave(1, path)
	if wave == nil {
		t.Fatalf("StartWave failed")
	}

	path[0] = grid.Cell{Row: 9, Col: 9}
	if wave.Path[0] != (grid.Cell{Row: 0, Col: 0}) {
		t.Fatalf("wave path must be an independent copy, got %+v", wave.Path[0])
	}
}

func TestUpdateSpawnsOnSchedule(t *testing.T) {
	ecs := entity.NewECS()
	ws := newTestWaveSystem(ecs)

	ecs.Wave = ws.StartWave(1, testPath()) // 5 Walkers с шагом в секунду
	if ecs.Wave == nil {
		t.Fatalf("StartWave failed")
	}

	ws.Update(0.05)
	if len(ecs.Enemies) != 1 {
		t.Fatalf("expected the first enemy right away, got %d", len(ecs.Enemies))
	}

	ws.Update(0.5)
	if len(ecs.Enemies) != 1 {
		t.Fatalf("second enemy must wait its full delay, got %d", len(ecs.Enemies))
	}

	ws.Update(0.5) // Elapsed = 1.05
	if len(ecs.Enemies) != 2 {
		t.Fatalf("expected the second enemy after a second, got %d", len(ecs.Enemies))
	}

	for id, enemy := range ecs.Enemies {
		pos := ecs.Positions[id]
		if pos == nil || pos.X != 0 || pos.Y != 0 {
			t.Fatalf("enemy must spawn at the route start, got %+v", pos)
		}
		if enemy.SpawnSeq == 0 {
			t.Fatalf("spawned enemy must carry a spawn sequence number")
		}
	}
}

func TestClearedRequiresEmptyQueueAndField(t *testing.T) {
	ecs := entity.NewECS()
	ws := newTestWaveSystem(ecs)

	if ws.Cleared() {
		t.Fatalf("no active wave means nothing to clear")
	}

	ecs.Wave = ws.StartWave(1, testPath())
	if ws.Cleared() {
		t.Fatalf("wave with a pending queue is not cleared")
	}

	// Выпускаем всех врагов разом.
	ws.Update(10)
	if ws.Cleared() {
		t.Fatalf("wave with live enemies is not cleared")
	}

	for id := range ecs.Enemies {
		ecs.RemoveEntity(id)
	}
	if !ws.Cleared() {
		t.Fatalf("empty queue and empty field must read as cleared")
	}
}
