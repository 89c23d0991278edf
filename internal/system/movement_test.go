package system

import (
	"math"
	"testing"

	"dead-end/internal/component"
	"dead-end/internal/entity"
	"dead-end/internal/event"
	"dead-end/internal/types"
	"dead-end/pkg/grid"
)

func addWalkingEnemy(ecs *entity.ECS, path []grid.Cell, speed float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.SpawnSeq++
	start := path[0]
	ecs.Positions[id] = &component.Position{X: float64(start.Col), Y: float64(start.Row)}
	ecs.Velocities[id] = &component.Velocity{Speed: speed}
	ecs.Paths[id] = &component.Path{Cells: path}
	ecs.Healths[id] = &component.Health{Value: 30, Max: 30}
	ecs.Enemies[id] = &component.Enemy{DefID: "ENEMY_TEST", SpawnSeq: ecs.SpawnSeq}
	return id
}

func TestMovementFollowsRoute(t *testing.T) {
	ecs := entity.NewECS()
	ms := NewMovementSystem(ecs, event.NewDispatcher())

	path := []grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}}
	id := addWalkingEnemy(ecs, path, 1.0)

	ms.Update(1.0)
	pos := ecs.Positions[id]
	if pos.X != 1 || pos.Y != 0 {
		t.Fatalf("expected enemy at (0,1), got row=%v col=%v", pos.Y, pos.X)
	}
	if got := ecs.Paths[id].Progress; got != 1.0 {
		t.Fatalf("expected progress 1.0, got %v", got)
	}

	ms.Update(0.5)
	pos = ecs.Positions[id]
	if math.Abs(pos.X-1.5) > 1e-9 || pos.Y != 0 {
		t.Fatalf("expected enemy mid-segment at col 1.5, got row=%v col=%v", pos.Y, pos.X)
	}
	if got := ecs.Paths[id].Progress; math.Abs(got-1.5) > 1e-9 {
		t.Fatalf("expected progress 1.5, got %v", got)
	}
}

// Быстрый враг проходит несколько точек маршрута за один тик.
func TestMovementCrossesSeveralWaypointsPerTick(t *testing.T) {
	ecs := entity.NewECS()
	ms := NewMovementSystem(ecs, event.NewDispatcher())

	path := []grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}}
	id := addWalkingEnemy(ecs, path, 5.0)

	ms.Update(0.5) // шаг 2.5 клетки
	pos := ecs.Positions[id]
	if math.Abs(pos.X-2.5) > 1e-9 || pos.Y != 0 {
		t.Fatalf("expected enemy at col 2.5, got row=%v col=%v", pos.Y, pos.X)
	}
	if got := ecs.Paths[id].Progress; math.Abs(got-2.5) > 1e-9 {
		t.Fatalf("expected progress 2.5, got %v", got)
	}
}

func TestMovementEscapeRemovesEnemy(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	counter := &eventCounter{}
	dispatcher.Subscribe(event.EnemyEscaped, counter)
	ms := NewMovementSystem(ecs, dispatcher)

	path := []grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}
	id := addWalkingEnemy(ecs, path, 10.0)

	ms.Update(1.0)

	if _, alive := ecs.Enemies[id]; alive {
		t.Fatalf("escaped enemy must be removed from the field")
	}
	if len(counter.events) != 1 {
		t.Fatalf("expected exactly one EnemyEscaped, got %d", len(counter.events))
	}
	data, ok := counter.events[0].Data.(event.EnemyEscapedData)
	if !ok || data.ID != id {
		t.Fatalf("unexpected escape payload: %+v", counter.events[0].Data)
	}
}
