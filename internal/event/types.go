// internal/event/types.go
package event

import (
	"dead-end/internal/types"
	"dead-end/pkg/grid"
)

const (
	TowerPlaced   EventType = "TowerPlaced"   // Башня построена
	TowerRemoved  EventType = "TowerRemoved"  // Башня снесена
	EnemyKilled   EventType = "EnemyKilled"   // Враг убит башней
	EnemyEscaped  EventType = "EnemyEscaped"  // Враг дошёл до выхода
	WaveStarted   EventType = "WaveStarted"   // Волна запущена
	WaveCleared   EventType = "WaveCleared"   // Очередь пуста, врагов не осталось
	LivesDepleted EventType = "LivesDepleted" // Жизни кончились
)

// TowerPlacedData — полезная нагрузка TowerPlaced и TowerRemoved.
type TowerPlacedData struct {
	ID    types.EntityID
	DefID string
	Cell  grid.Cell
}

// EnemyKilledData — полезная нагрузка EnemyKilled. Bounty начисляется
// ровно один раз: событие отправляется в момент удаления сущности.
type EnemyKilledData struct {
	ID     types.EntityID
	DefID  string
	Bounty int
}

// EnemyEscapedData — полезная нагрузка EnemyEscaped.
type EnemyEscapedData struct {
	ID    types.EntityID
	DefID string
}

// WaveStartedData — полезная нагрузка WaveStarted.
type WaveStartedData struct {
	Number  int
	Enemies int // Сколько врагов стоит в очереди спавна
}

// WaveClearedData — полезная нагрузка WaveCleared.
type WaveClearedData struct {
	Number int
}
