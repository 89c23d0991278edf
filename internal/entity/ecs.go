// internal/entity/ecs.go
package entity

import (
	"dead-end/internal/component"
	"dead-end/internal/types"
)

// ECS хранит все живые сущности матча по компонентам.
type ECS struct {
	Tick     uint64  // Монотонный счётчик тиков; пауза его не двигает
	GameTime float64 // Игровое время в секундах
	NextID   types.EntityID
	SpawnSeq uint64 // Сквозной порядковый номер спавна врагов

	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Paths       map[types.EntityID]*component.Path
	Healths     map[types.EntityID]*component.Health
	Towers      map[types.EntityID]*component.Tower
	Combats     map[types.EntityID]*component.Combat
	Enemies     map[types.EntityID]*component.Enemy
	Projectiles map[types.EntityID]*component.Projectile

	Wave  *component.Wave
	Phase component.Phase
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Paths:       make(map[types.EntityID]*component.Path),
		Healths:     make(map[types.EntityID]*component.Health),
		Towers:      make(map[types.EntityID]*component.Tower),
		Combats:     make(map[types.EntityID]*component.Combat),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Wave:        nil,
		Phase:       component.PhaseMenu,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет сущность из всех компонентных карт.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Healths, id)
	delete(ecs.Towers, id)
	delete(ecs.Combats, id)
	delete(ecs.Enemies, id)
	delete(ecs.Projectiles, id)
}
