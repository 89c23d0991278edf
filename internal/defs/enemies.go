// internal/defs/enemies.go
package defs

// Enemy definition IDs for the base set.
const (
	EnemyWalker = "ENEMY_WALKER"
	EnemyRunner = "ENEMY_RUNNER"
)

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Health int     `json:"health"`
	Speed  float64 `json:"speed"`  // Cells per second
	Bounty int     `json:"bounty"` // Money credited on death
}

// EnemyLibrary is the library of all enemy definitions, mapped by their ID.
var EnemyLibrary = map[string]EnemyDefinition{
	EnemyWalker: {
		ID:     EnemyWalker,
		Name:   "Walker",
		Health: 30,
		Speed:  1.5,
		Bounty: 5,
	},
	EnemyRunner: {
		ID:     EnemyRunner,
		Name:   "Runner",
		Health: 15,
		Speed:  3.0,
		Bounty: 8,
	},
}
