// internal/types/types.go
package types

// EntityID — идентификатор сущности в ECS. 0 зарезервирован как "нет сущности".
type EntityID uint64
