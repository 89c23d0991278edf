// internal/system/wave.go
package system

import (
	"sort"

	"github.com/rs/zerolog"

	"dead-end/internal/component"
	"dead-end/internal/defs"
	"dead-end/internal/entity"
	"dead-end/internal/event"
	"dead-end/internal/utils"
	"dead-end/pkg/grid"
)

// WaveSystem выпускает врагов по расписанию активной волны.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	log             zerolog.Logger
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, log zerolog.Logger) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		log:             log,
	}
}

// StartWave собирает очередь спавна волны number и возвращает её состояние.
// path — снимок маршрута на момент входа в волну; все враги волны получают
// именно его. Возвращает nil, если волна не определена в таблице.
func (s *WaveSystem) StartWave(number int, path []grid.Cell) *component.Wave {
	waveDef, ok := defs.WaveTable[number]
	if !ok {
		s.log.Error().Int("wave", number).Msg("no definition for wave")
		return nil
	}
	if len(path) == 0 {
		s.log.Error().Int("wave", number).Msg("wave started without a route")
		return nil
	}

	// Состав волны: порядок типов перемешивается, задержки остаются
	// равномерной сеткой интервала спавна.
	kinds := make([]string, 0, waveDef.Walkers+waveDef.Runners)
	for i := 0; i < waveDef.Walkers; i++ {
		kinds = append(kinds, defs.EnemyWalker)
	}
	for i := 0; i < waveDef.Runners; i++ {
		kinds = append(kinds, defs.EnemyRunner)
	}
	s.rng.Shuffle(len(kinds), func(i, j int) {
		kinds[i], kinds[j] = kinds[j], kinds[i]
	})

	interval := waveDef.SpawnInterval.Seconds()
	queue := make([]component.SpawnEntry, len(kinds))
	for i, kind := range kinds {
		queue[i] = component.SpawnEntry{EnemyID: kind, Delay: float64(i) * interval}
	}
	sort.SliceStable(queue, func(i, j int) bool { return queue[i].Delay < queue[j].Delay })

	pathCopy := make([]grid.Cell, len(path))
	copy(pathCopy, path)

	return &component.Wave{
		Number: number,
		Queue:  queue,
		Path:   pathCopy,
	}
}

// Update продвигает время волны и выпускает всех врагов, чья задержка истекла.
func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if wave == nil {
		return
	}
	wave.Elapsed += deltaTime
	for wave.NextSpawn < len(wave.Queue) && wave.Queue[wave.NextSpawn].Delay <= wave.Elapsed {
		s.spawnEnemy(wave, wave.Queue[wave.NextSpawn].EnemyID)
		wave.NextSpawn++
	}
}

// Cleared сообщает, что волна зачищена: очередь пуста и живых врагов нет.
func (s *WaveSystem) Cleared() bool {
	wave := s.ecs.Wave
	if wave == nil {
		return false
	}
	return wave.SpawnExhausted() && len(s.ecs.Enemies) == 0
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave, enemyID string) {
	def, ok := defs.EnemyLibrary[enemyID]
	if !ok {
		s.log.Error().Str("enemy", enemyID).Msg("enemy definition not found")
		return
	}

	id := s.ecs.NewEntity()
	s.ecs.SpawnSeq++
	start := wave.Path[0]
	s.ecs.Positions[id] = &component.Position{X: float64(start.Col), Y: float64(start.Row)}
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	s.ecs.Paths[id] = &component.Path{Cells: wave.Path}
	s.ecs.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:     enemyID,
		Bounty:    def.Bounty,
		SpawnSeq:  s.ecs.SpawnSeq,
		SpawnTick: s.ecs.Tick,
	}
}
