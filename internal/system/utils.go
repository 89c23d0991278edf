// internal/system/utils.go
package system

import (
	"math"

	"dead-end/internal/component"
	"dead-end/internal/entity"
	"dead-end/internal/event"
	"dead-end/internal/types"
)

// ApplyDamage наносит урон врагу. HP ≤ 0 означает смерть: сущность
// удаляется сразу, EnemyKilled с наградой отправляется ровно один раз.
func ApplyDamage(ecs *entity.ECS, dispatcher *event.Dispatcher, id types.EntityID, damage int) {
	health, hasHealth := ecs.Healths[id]
	enemy, isEnemy := ecs.Enemies[id]
	if !hasHealth || !isEnemy {
		return
	}

	health.Value -= damage
	if health.Value > 0 {
		return
	}
	health.Value = 0

	data := event.EnemyKilledData{ID: id, DefID: enemy.DefID, Bounty: enemy.Bounty}
	ecs.RemoveEntity(id)
	dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: data})
}

// progressAlongPath — пройденное расстояние вдоль маршрута в клетках:
// индекс текущей точки плюс доля отрезка до следующей.
func progressAlongPath(pos *component.Position, path *component.Path) float64 {
	if path.CurrentIndex >= len(path.Cells) {
		return float64(len(path.Cells) - 1)
	}
	current := path.Cells[path.CurrentIndex]
	dx := pos.X - float64(current.Col)
	dy := pos.Y - float64(current.Row)
	return float64(path.CurrentIndex) + math.Sqrt(dx*dx+dy*dy)
}

// cellDistance — евклидово расстояние между центром клетки башни и текущей
// позицией врага, в клетках.
func cellDistance(towerPos *component.Position, enemyPos *component.Position) float64 {
	dx := enemyPos.X - towerPos.X
	dy := enemyPos.Y - towerPos.Y
	return math.Sqrt(dx*dx + dy*dy)
}
