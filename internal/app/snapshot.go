// internal/app/snapshot.go
package app

import (
	"sort"

	"dead-end/internal/types"
	"dead-end/pkg/grid"
)

// Snapshot — сериализуемый срез всей читаемой поверхности матча на момент
// тика. Ядро только строит структуру; запись на диск — забота внешнего
// инструмента.
type Snapshot struct {
	Tick     uint64  `json:"tick"`
	GameTime float64 `json:"game_time"`
	Phase    string  `json:"phase"`
	Paused   bool    `json:"paused"`
	Wave     int     `json:"wave"`

	Money int       `json:"money"`
	Lives int       `json:"lives"`
	Stats StatsView `json:"stats"`

	Grid    GridView       `json:"grid"`
	Path    []grid.Cell    `json:"path,omitempty"`
	Towers  []TowerView    `json:"towers"`
	Enemies []EnemyView    `json:"enemies"`
	WaveRun *WaveProgress  `json:"wave_progress,omitempty"`
}

// StatsView — накопленная статистика матча.
type StatsView struct {
	EnemiesKilled  int `json:"enemies_killed"`
	WavesCompleted int `json:"waves_completed"`
	TotalEarned    int `json:"total_earned"`
	TotalSpent     int `json:"total_spent"`
}

// GridView — полное состояние карты: размеры, вход/выход и занятые клетки.
// Клетки вне Blocked проходимы и свободны.
type GridView struct {
	Rows    int           `json:"rows"`
	Cols    int           `json:"cols"`
	Entry   grid.Cell     `json:"entry"`
	Exit    grid.Cell     `json:"exit"`
	Version uint64        `json:"version"`
	Blocked []BlockedCell `json:"blocked"`
}

// BlockedCell — занятая клетка и её владелец.
type BlockedCell struct {
	Cell     grid.Cell `json:"cell"`
	Occupant uint64    `json:"occupant"`
}

// TowerView — живая башня в снапшоте.
type TowerView struct {
	ID   uint64    `json:"id"`
	Type string    `json:"type"`
	Cell grid.Cell `json:"cell"`
	// CooldownFraction — остаток перезарядки от 0 (готова) до 1.
	CooldownFraction float64 `json:"cooldown_fraction"`
	HP               int     `json:"hp,omitempty"`
	MaxHP            int     `json:"max_hp,omitempty"`
}

// EnemyView — живой враг в снапшоте.
type EnemyView struct {
	ID         uint64  `json:"id"`
	Type       string  `json:"type"`
	Row        float64 `json:"row"`
	Col        float64 `json:"col"`
	Progress   float64 `json:"progress"`
	HPFraction float64 `json:"hp_fraction"`
}

// WaveProgress — ход активной волны.
type WaveProgress struct {
	Number         int     `json:"number"`
	Elapsed        float64 `json:"elapsed"`
	QueueRemaining int     `json:"queue_remaining"`
	EnemiesAlive   int     `json:"enemies_alive"`
}

// Snapshot собирает срез текущего состояния. Списки отсортированы по ID,
// чтобы одинаковые состояния давали байт-в-байт одинаковый JSON.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.ECS.Tick,
		GameTime: g.ECS.GameTime,
		Phase:    g.ECS.Phase.String(),
		Paused:   g.paused,
		Wave:     g.currentWave,
		Money:    g.Economy.Money(),
		Lives:    g.Economy.Lives(),
		Stats: StatsView{
			EnemiesKilled:  g.Economy.EnemiesKilled(),
			WavesCompleted: g.Economy.WavesCompleted(),
			TotalEarned:    g.Economy.TotalEarned(),
			TotalSpent:     g.Economy.TotalSpent(),
		},
		Grid: GridView{
			Rows:    g.Grid.Rows,
			Cols:    g.Grid.Cols,
			Entry:   g.Grid.Entry,
			Exit:    g.Grid.Exit,
			Version: g.Grid.Version(),
		},
		Towers:  make([]TowerView, 0, len(g.ECS.Towers)),
		Enemies: make([]EnemyView, 0, len(g.ECS.Enemies)),
	}

	for _, c := range g.Grid.BlockedCells() {
		snap.Grid.Blocked = append(snap.Grid.Blocked, BlockedCell{Cell: c, Occupant: g.Grid.OccupantAt(c)})
	}
	snap.Path = g.PathCache.Path(g.Grid)

	towerIDs := sortedIDs(g.ECS.Towers)
	for _, id := range towerIDs {
		tower := g.ECS.Towers[id]
		view := TowerView{ID: uint64(id), Type: tower.DefID, Cell: tower.Cell}
		if combat, ok := g.ECS.Combats[id]; ok && combat.FireInterval > 0 {
			fraction := combat.FireCooldown / combat.FireInterval
			if fraction < 0 {
				fraction = 0
			} else if fraction > 1 {
				fraction = 1
			}
			view.CooldownFraction = fraction
		}
		if health, ok := g.ECS.Healths[id]; ok {
			view.HP = health.Value
			view.MaxHP = health.Max
		}
		snap.Towers = append(snap.Towers, view)
	}

	enemyIDs := sortedIDs(g.ECS.Enemies)
	for _, id := range enemyIDs {
		enemy := g.ECS.Enemies[id]
		view := EnemyView{ID: uint64(id), Type: enemy.DefID}
		if pos, ok := g.ECS.Positions[id]; ok {
			view.Row = pos.Y
			view.Col = pos.X
		}
		if path, ok := g.ECS.Paths[id]; ok {
			view.Progress = path.Progress
		}
		if health, ok := g.ECS.Healths[id]; ok && health.Max > 0 {
			view.HPFraction = float64(health.Value) / float64(health.Max)
		}
		snap.Enemies = append(snap.Enemies, view)
	}

	if wave := g.ECS.Wave; wave != nil {
		snap.WaveRun = &WaveProgress{
			Number:         wave.Number,
			Elapsed:        wave.Elapsed,
			QueueRemaining: wave.QueueRemaining(),
			EnemiesAlive:   len(g.ECS.Enemies),
		}
	}
	return snap
}

func sortedIDs[T any](m map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
