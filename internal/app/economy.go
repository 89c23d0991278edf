// internal/app/economy.go
package app

import "dead-end/internal/config"

// Economy хранит деньги и жизни матча. Все изменения идут через
// охраняемые мутаторы: деньги и жизни не бывают отрицательными.
type Economy struct {
	money    int
	lives    int
	maxLives int

	// Статистика матча — для снапшота и финального экрана.
	totalEarned    int
	totalSpent     int
	enemiesKilled  int
	wavesCompleted int
}

func NewEconomy() *Economy {
	return &Economy{
		money:    config.StartingMoney,
		lives:    config.StartingLives,
		maxLives: config.StartingLives,
	}
}

func (e *Economy) Money() int { return e.money }
func (e *Economy) Lives() int { return e.lives }

func (e *Economy) CanAfford(amount int) bool {
	return e.money >= amount
}

// Credit безусловно начисляет деньги. Отрицательные суммы игнорируются:
// списание — только через Debit.
func (e *Economy) Credit(amount int) {
	if amount <= 0 {
		return
	}
	e.money += amount
	e.totalEarned += amount
}

// Debit списывает деньги или отклоняет операцию без мутации,
// если баланс ушёл бы в минус.
func (e *Economy) Debit(amount int) error {
	if amount > e.money {
		return ErrInsufficientFunds
	}
	e.money -= amount
	e.totalSpent += amount
	return nil
}

// LoseLife снимает n жизней, не опускаясь ниже нуля.
func (e *Economy) LoseLife(n int) {
	e.lives -= n
	if e.lives < 0 {
		e.lives = 0
	}
}

// EnemyKilled начисляет награду за убийство и ведёт счёт.
func (e *Economy) EnemyKilled(bounty int) {
	e.Credit(bounty)
	e.enemiesKilled++
}

// WaveCompleted начисляет бонус за зачистку волны wave.
func (e *Economy) WaveCompleted(wave int) {
	e.wavesCompleted++
	e.Credit(config.WaveClearBonusBase + wave*config.WaveClearBonusPerWave)
}

func (e *Economy) EnemiesKilled() int  { return e.enemiesKilled }
func (e *Economy) WavesCompleted() int { return e.wavesCompleted }
func (e *Economy) TotalEarned() int    { return e.totalEarned }
func (e *Economy) TotalSpent() int     { return e.totalSpent }
