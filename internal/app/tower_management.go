// internal/app/tower_management.go
package app

import (
	"math"

	"dead-end/internal/component"
	"dead-end/internal/config"
	"dead-end/internal/defs"
	"dead-end/internal/event"
	"dead-end/internal/types"
	"dead-end/pkg/grid"
)

// PlaceTower attempts to place a tower at the given cell.
// Транзакция validate-then-commit: любая проверка до коммита отклоняет
// команду без единой мутации; после коммита маршрут гарантированно есть.
func (g *Game) PlaceTower(c grid.Cell, towerID string) error {
	if g.ECS.Phase != component.PhaseBuild {
		return ErrWrongPhase
	}
	def, ok := defs.TowerLibrary[towerID]
	if !ok {
		return ErrUnknownTower
	}

	// Статические проверки клетки — без мутаций.
	if !g.Grid.InBounds(c) {
		return grid.ErrOutOfBounds
	}
	if c == g.Grid.Entry || c == g.Grid.Exit {
		return grid.ErrEntryOrExit
	}
	if tile, _ := g.Grid.Tile(c); tile.Blocked {
		return grid.ErrOccupied
	}
	if !g.Economy.CanAfford(def.Cost) {
		return ErrInsufficientFunds
	}
	// Пробная блокировка: карта после вызова не изменена.
	if g.Grid.WouldDisconnect(c) {
		return ErrWouldBlockPath
	}

	// Коммит.
	id := g.createTowerEntity(c, def)
	if err := g.Grid.Place(c, uint64(id)); err != nil {
		// Проверки выше исключают все причины отказа.
		g.ECS.RemoveEntity(id)
		return err
	}
	if err := g.Economy.Debit(def.Cost); err != nil {
		return err
	}
	if g.PathCache.Path(g.Grid) == nil {
		panic("game: committed placement left the grid without a route")
	}

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.TowerPlacedData{ID: id, DefID: towerID, Cell: c},
	})
	g.log.Info().Str("tower", towerID).Int("row", c.Row).Int("col", c.Col).Msg("tower placed")
	return nil
}

// RemoveTower removes a tower from the given cell. Возврат денег —
// настраиваемая доля стоимости (config.RemoveRefundFraction, по умолчанию 0).
func (g *Game) RemoveTower(c grid.Cell) error {
	if g.ECS.Phase != component.PhaseBuild {
		return ErrWrongPhase
	}

	occupant, err := g.Grid.Remove(c)
	if err != nil {
		return err
	}
	id := types.EntityID(occupant)

	var defID string
	if tower, ok := g.ECS.Towers[id]; ok {
		defID = tower.DefID
		if def, ok := defs.TowerLibrary[defID]; ok {
			refund := int(math.Floor(float64(def.Cost) * config.RemoveRefundFraction))
			g.Economy.Credit(refund)
		}
	}
	g.ECS.RemoveEntity(id)

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerRemoved,
		Data: event.TowerPlacedData{ID: id, DefID: defID, Cell: c},
	})
	g.log.Info().Str("tower", defID).Int("row", c.Row).Int("col", c.Col).Msg("tower removed")
	return nil
}

func (g *Game) createTowerEntity(c grid.Cell, def defs.TowerDefinition) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Towers[id] = &component.Tower{DefID: def.ID, Cell: c}
	if def.Health > 0 {
		g.ECS.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	}
	if def.Combat != nil {
		g.ECS.Combats[id] = &component.Combat{
			Damage:          def.Combat.Damage,
			FireInterval:    def.Combat.FireInterval,
			Range:           def.Combat.Range,
			ProjectileSpeed: def.Combat.ProjectileSpeed,
		}
	}
	return id
}

// TowerAt возвращает башню на клетке, если она там есть.
func (g *Game) TowerAt(c grid.Cell) (*component.Tower, bool) {
	id := types.EntityID(g.Grid.OccupantAt(c))
	if id == 0 {
		return nil, false
	}
	tower, ok := g.ECS.Towers[id]
	return tower, ok
}
