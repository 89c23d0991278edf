// internal/app/game.go
package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"dead-end/internal/component"
	"dead-end/internal/config"
	"dead-end/internal/entity"
	"dead-end/internal/event"
	"dead-end/internal/system"
	"dead-end/internal/utils"
	"dead-end/pkg/grid"
)

// Game holds the main game state and logic: карта, ECS, экономика и системы
// одного матча. Никаких глобальных синглтонов — всё состояние матча живёт
// здесь и умирает вместе с ним.
type Game struct {
	Grid      *grid.Map
	ECS       *entity.ECS
	Economy   *Economy
	PathCache *grid.PathCache

	WaveSystem       *system.WaveSystem
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	StateSystem      *system.StateSystem
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService

	log         zerolog.Logger
	paused      bool
	currentWave int // Номер последней запущенной волны
}

// DefaultMap строит карту из констант config: вход слева в середине,
// выход справа напротив.
func DefaultMap() *grid.Map {
	return grid.NewMap(
		config.GridRows, config.GridCols,
		grid.Cell{Row: config.GridRows / 2, Col: 0},
		grid.Cell{Row: config.GridRows / 2, Col: config.GridCols - 1},
	)
}

// NewGame initializes a new game instance. Сид 0 даёт недетерминированный
// матч, фиксированный сид — воспроизводимый.
func NewGame(gridMap *grid.Map, seed int64, log zerolog.Logger) *Game {
	if gridMap == nil {
		panic("gridMap cannot be nil")
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	g := &Game{
		Grid:             gridMap,
		ECS:              ecs,
		Economy:          NewEconomy(),
		PathCache:        &grid.PathCache{},
		MovementSystem:   system.NewMovementSystem(ecs, eventDispatcher),
		CombatSystem:     system.NewCombatSystem(ecs, eventDispatcher),
		ProjectileSystem: system.NewProjectileSystem(ecs, eventDispatcher),
		EventDispatcher:  eventDispatcher,
		Rng:              rng,
		log:              log,
	}
	g.WaveSystem = system.NewWaveSystem(ecs, eventDispatcher, rng, log)
	g.StateSystem = system.NewStateSystem(ecs, eventDispatcher, log)

	eventDispatcher.Subscribe(event.EnemyKilled, g)
	eventDispatcher.Subscribe(event.EnemyEscaped, g)
	eventDispatcher.Subscribe(event.WaveCleared, g)

	return g
}

// OnEvent применяет денежные и жизненные дельты боевых событий к экономике.
// Никто другой деньги и жизни не трогает.
func (g *Game) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		data, ok := e.Data.(event.EnemyKilledData)
		if !ok {
			return
		}
		g.Economy.EnemyKilled(data.Bounty)
		g.log.Debug().Str("enemy", data.DefID).Int("bounty", data.Bounty).Msg("enemy killed")
	case event.EnemyEscaped:
		data, ok := e.Data.(event.EnemyEscapedData)
		if !ok {
			return
		}
		g.Economy.LoseLife(1)
		g.log.Info().Str("enemy", data.DefID).Int("lives", g.Economy.Lives()).Msg("enemy escaped")
		if g.Economy.Lives() == 0 {
			g.EventDispatcher.Dispatch(event.Event{Type: event.LivesDepleted})
		}
	case event.WaveCleared:
		data, ok := e.Data.(event.WaveClearedData)
		if !ok {
			return
		}
		g.Economy.WaveCompleted(data.Number)
		g.log.Info().Int("wave", data.Number).Int("money", g.Economy.Money()).Msg("wave cleared")
	}
}

// StartGame переводит матч из меню в фазу строительства.
func (g *Game) StartGame() error {
	if g.ECS.Phase != component.PhaseMenu {
		return ErrWrongPhase
	}
	g.ECS.Phase = component.PhaseBuild
	g.log.Info().Msg("match started")
	return nil
}

// StartWave запускает следующую волну. Легально только в фазе строительства.
func (g *Game) StartWave() error {
	if g.ECS.Phase != component.PhaseBuild {
		return ErrWrongPhase
	}
	path := g.PathCache.Path(g.Grid)
	if path == nil {
		// Validate-then-commit обязан был не допустить такого состояния.
		panic("game: no walkable route at wave start")
	}

	next := g.currentWave + 1
	wave := g.WaveSystem.StartWave(next, path)
	if wave == nil {
		return fmt.Errorf("start wave %d: %w", next, ErrWrongPhase)
	}
	g.ECS.Wave = wave
	g.currentWave = next
	g.StateSystem.SwitchToWave()
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveStartedData{Number: next, Enemies: len(wave.Queue)},
	})
	g.log.Info().Int("wave", next).Int("enemies", len(wave.Queue)).Msg("wave started")
	return nil
}

// Pause замораживает продвижение времени. Фаза не меняется,
// состояние остаётся читаемым.
func (g *Game) Pause() {
	g.paused = true
}

// Resume снимает паузу.
func (g *Game) Resume() {
	g.paused = false
}

func (g *Game) IsPaused() bool {
	return g.paused
}

func (g *Game) Phase() component.Phase {
	return g.ECS.Phase
}

// CurrentWave — номер последней запущенной волны (0 до первой волны).
func (g *Game) CurrentWave() int {
	return g.currentWave
}

// Update — один синхронный тик симуляции. Фиксированный порядок подсистем:
// спавн и движение, затем бой, затем применение экономики и проверка
// зачистки. На паузе и в терминальной фазе тик — no-op.
func (g *Game) Update(deltaTime float64) {
	if g.paused || g.ECS.Phase.Terminal() || deltaTime <= 0 {
		return
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}

	g.ECS.Tick++
	g.ECS.GameTime += deltaTime

	if g.ECS.Phase != component.PhaseWave {
		return
	}

	g.WaveSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	if g.ECS.Phase != component.PhaseWave {
		// Сбежавший враг снял последнюю жизнь: GAMEOVER перекрывает всё.
		return
	}
	g.CombatSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)

	if g.WaveSystem.Cleared() {
		number := g.ECS.Wave.Number
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.WaveCleared,
			Data: event.WaveClearedData{Number: number},
		})
	}
}
