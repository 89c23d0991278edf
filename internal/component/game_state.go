// internal/component/game_state.go
package component

// Phase — компонент для хранения фазы матча.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseBuild
	PhaseWave
	PhaseGameOver
	PhaseVictory
)

// Terminal сообщает, что матч окончен и дальнейшие тики — no-op.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseVictory
}

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "MENU"
	case PhaseBuild:
		return "BUILD"
	case PhaseWave:
		return "WAVE"
	case PhaseGameOver:
		return "GAMEOVER"
	case PhaseVictory:
		return "VICTORY"
	default:
		return "UNKNOWN"
	}
}
