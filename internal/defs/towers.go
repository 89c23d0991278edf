// internal/defs/towers.go
package defs

// Tower definition IDs for the base set.
const (
	TowerRifleman  = "TOWER_RIFLEMAN"
	TowerSniper    = "TOWER_SNIPER"
	TowerBarricade = "TOWER_BARRICADE"
)

// CombatStats contains parameters related to a tower's combat abilities.
// A nil CombatStats on a definition means the tower never attacks.
type CombatStats struct {
	Damage       int     `json:"damage"`
	FireInterval float64 `json:"fire_interval"` // Seconds between shots
	Range        float64 `json:"range"`         // In grid-distance units
	// ProjectileSpeed > 0 switches the tower to travel-time shots
	// (cells per second). 0 means instant hit. The base set is all instant.
	ProjectileSpeed float64 `json:"projectile_speed,omitempty"`
}

// TowerDefinition holds all the static data for a specific type of tower.
// Every tower in the base set blocks its cell.
type TowerDefinition struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Cost     int          `json:"cost"`
	Health   int          `json:"health,omitempty"` // 0 — башню нельзя повредить
	Blocking bool         `json:"blocking"`
	Combat   *CombatStats `json:"combat,omitempty"`
}

// TowerLibrary is the library of all tower definitions, mapped by their ID.
var TowerLibrary = map[string]TowerDefinition{
	TowerRifleman: {
		ID:       TowerRifleman,
		Name:     "Rifleman",
		Cost:     50,
		Blocking: true,
		Combat: &CombatStats{
			Damage:       10,
			FireInterval: 0.5,
			Range:        4,
		},
	},
	TowerSniper: {
		ID:       TowerSniper,
		Name:     "Sniper",
		Cost:     100,
		Blocking: true,
		Combat: &CombatStats{
			Damage:       40,
			FireInterval: 1.5,
			Range:        8,
		},
	},
	TowerBarricade: {
		ID:       TowerBarricade,
		Name:     "Barricade",
		Cost:     25,
		Health:   200,
		Blocking: true,
	},
}
