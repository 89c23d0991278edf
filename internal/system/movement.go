// internal/system/movement.go
package system

import (
	"math"

	"dead-end/internal/entity"
	"dead-end/internal/event"
	"dead-end/internal/types"
)

// MovementSystem ведёт врагов по назначенным маршрутам. Дошедший до выхода
// враг "сбегает": сущность удаляется, событие EnemyEscaped снимает жизнь.
type MovementSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *MovementSystem) Update(deltaTime float64) {
	var escaped []types.EntityID

	for id, enemy := range s.ecs.Enemies {
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		path := s.ecs.Paths[id]
		if pos == nil || vel == nil || path == nil || len(path.Cells) == 0 {
			continue
		}

		// За один тик враг может пройти несколько точек маршрута.
		step := vel.Speed * deltaTime
		for step > 0 {
			if path.CurrentIndex >= len(path.Cells)-1 {
				enemy.ReachedEnd = true
				break
			}
			target := path.Cells[path.CurrentIndex+1]
			tx, ty := float64(target.Col), float64(target.Row)
			dx := tx - pos.X
			dy := ty - pos.Y
			dist := math.Sqrt(dx*dx + dy*dy)

			if dist <= step {
				pos.X = tx
				pos.Y = ty
				path.CurrentIndex++
				step -= dist
			} else {
				pos.X += dx / dist * step
				pos.Y += dy / dist * step
				step = 0
			}
		}
		path.Progress = progressAlongPath(pos, path)

		if enemy.ReachedEnd {
			escaped = append(escaped, id)
		}
	}

	for _, id := range escaped {
		defID := s.ecs.Enemies[id].DefID
		s.ecs.RemoveEntity(id)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemyEscaped,
			Data: event.EnemyEscapedData{ID: id, DefID: defID},
		})
	}
}
