// internal/system/projectile.go
package system

import (
	"math"
	"sort"

	"dead-end/internal/entity"
	"dead-end/internal/event"
	"dead-end/internal/types"
)

// ProjectileSystem ведёт снаряды к целям и наносит урон при попадании.
// Базовый набор башен стреляет мгновенно, так что снаряды появляются
// только у типов со временем полёта.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	ids := make([]types.EntityID, 0, len(s.ecs.Projectiles))
	for id := range s.ecs.Projectiles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		proj := s.ecs.Projectiles[id]
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.ecs.RemoveEntity(id)
			continue
		}

		// Цель могла умереть или сбежать, пока снаряд летел.
		targetPos, targetAlive := s.ecs.Positions[proj.TargetID]
		if !targetAlive {
			s.ecs.RemoveEntity(id)
			continue
		}

		dx := targetPos.X - pos.X
		dy := targetPos.Y - pos.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		travel := proj.Speed * deltaTime

		if dist <= travel {
			targetID, damage := proj.TargetID, proj.Damage
			s.ecs.RemoveEntity(id)
			ApplyDamage(s.ecs, s.eventDispatcher, targetID, damage)
			continue
		}
		pos.X += dx / dist * travel
		pos.Y += dy / dist * travel
	}
}
