// internal/system/combat.go
package system

import (
	"sort"

	"dead-end/internal/component"
	"dead-end/internal/entity"
	"dead-end/internal/event"
	"dead-end/internal/types"
)

// CombatSystem управляет атакой башен: выбор цели и нанесение урона.
// Башни обходятся в порядке создания, чтобы исход тика не зависел от
// порядка обхода карт — при двух башнях на одну цель убийство всегда
// достаётся той, что построена раньше.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *CombatSystem) Update(deltaTime float64) {
	ids := make([]types.EntityID, 0, len(s.ecs.Combats))
	for id := range s.ecs.Combats {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		combat := s.ecs.Combats[id]
		tower, hasTower := s.ecs.Towers[id]
		if !hasTower {
			continue
		}

		if combat.FireCooldown > 0 {
			combat.FireCooldown -= deltaTime
			continue
		}

		towerPos := component.Position{X: float64(tower.Cell.Col), Y: float64(tower.Cell.Row)}
		targetID := s.acquireTarget(&towerPos, combat.Range)
		if targetID == 0 {
			continue
		}

		if combat.ProjectileSpeed > 0 {
			s.launchProjectile(id, targetID, combat, &towerPos)
		} else {
			// Мгновенное попадание: урон в момент захвата цели.
			ApplyDamage(s.ecs, s.eventDispatcher, targetID, combat.Damage)
		}
		combat.FireCooldown = combat.FireInterval
	}
}

// acquireTarget выбирает среди живых врагов в радиусе того, кто дальше всех
// прошёл по маршруту. Ничьи решаются меньшим остатком HP, затем порядком
// появления.
func (s *CombatSystem) acquireTarget(towerPos *component.Position, rangeRadius float64) types.EntityID {
	var bestID types.EntityID
	var bestProgress float64
	var bestHP int
	var bestSeq uint64

	for enemyID, enemy := range s.ecs.Enemies {
		// Враг, появившийся в этом же тике, ещё не цель.
		if enemy.SpawnTick == s.ecs.Tick {
			continue
		}
		pos := s.ecs.Positions[enemyID]
		health := s.ecs.Healths[enemyID]
		path := s.ecs.Paths[enemyID]
		if pos == nil || health == nil || path == nil || health.Value <= 0 {
			continue
		}
		if cellDistance(towerPos, pos) > rangeRadius {
			continue
		}

		if bestID == 0 ||
			path.Progress > bestProgress ||
			(path.Progress == bestProgress && health.Value < bestHP) ||
			(path.Progress == bestProgress && health.Value == bestHP && enemy.SpawnSeq < bestSeq) {
			bestID = enemyID
			bestProgress = path.Progress
			bestHP = health.Value
			bestSeq = enemy.SpawnSeq
		}
	}
	return bestID
}

func (s *CombatSystem) launchProjectile(towerID, targetID types.EntityID, combat *component.Combat, towerPos *component.Position) {
	projID := s.ecs.NewEntity()
	s.ecs.Positions[projID] = &component.Position{X: towerPos.X, Y: towerPos.Y}
	s.ecs.Projectiles[projID] = &component.Projectile{
		SourceID: towerID,
		TargetID: targetID,
		Speed:    combat.ProjectileSpeed,
		Damage:   combat.Damage,
	}
}
