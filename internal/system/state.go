// internal/system/state.go
package system

import (
	"github.com/rs/zerolog"

	"dead-end/internal/component"
	"dead-end/internal/defs"
	"dead-end/internal/entity"
	"dead-end/internal/event"
)

// StateSystem переключает фазы матча по событиям волны и экономики.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	log             zerolog.Logger
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, log zerolog.Logger) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		log:             log,
	}
	eventDispatcher.Subscribe(event.WaveCleared, ss)
	eventDispatcher.Subscribe(event.LivesDepleted, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveCleared:
		// Потеря последней жизни уже могла перевести матч в GAMEOVER —
		// тогда зачистка волны ничего не меняет.
		if s.ecs.Phase != component.PhaseWave {
			return
		}
		data, ok := e.Data.(event.WaveClearedData)
		if !ok {
			return
		}
		if data.Number >= defs.FinalWave() {
			s.SwitchToVictory()
		} else {
			s.SwitchToBuild()
		}
	case event.LivesDepleted:
		s.SwitchToGameOver()
	}
}

// SwitchToBuild возвращает матч в фазу строительства после зачистки волны.
func (s *StateSystem) SwitchToBuild() {
	s.ecs.Phase = component.PhaseBuild
	s.ecs.Wave = nil
	s.clearProjectiles()
	s.log.Info().Msg("switched to build phase")
}

// SwitchToWave переводит матч в фазу волны. Саму волну запускает Game.
func (s *StateSystem) SwitchToWave() {
	s.ecs.Phase = component.PhaseWave
}

// SwitchToGameOver — терминальная фаза поражения. Состояние остаётся
// читаемым, дальнейшие тики — no-op.
func (s *StateSystem) SwitchToGameOver() {
	if s.ecs.Phase.Terminal() {
		return
	}
	s.ecs.Phase = component.PhaseGameOver
	s.log.Info().Msg("game over")
}

// SwitchToVictory — терминальная фаза победы.
func (s *StateSystem) SwitchToVictory() {
	if s.ecs.Phase.Terminal() {
		return
	}
	s.ecs.Phase = component.PhaseVictory
	s.ecs.Wave = nil
	s.clearProjectiles()
	s.log.Info().Msg("victory")
}

func (s *StateSystem) clearProjectiles() {
	for id := range s.ecs.Projectiles {
		s.ecs.RemoveEntity(id)
	}
}

func (s *StateSystem) Current() component.Phase {
	return s.ecs.Phase
}
