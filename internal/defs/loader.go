// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// LoadTowerDefinitions reads a tower configuration file and replaces the
// TowerLibrary. Used to rebalance the game without recompiling.
func LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tower definitions: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := json.Unmarshal(file, &towerDefs); err != nil {
		return fmt.Errorf("unmarshal tower definitions: %w", err)
	}

	lib := make(map[string]TowerDefinition, len(towerDefs))
	for _, def := range towerDefs {
		lib[def.ID] = def
	}
	TowerLibrary = lib
	return nil
}

// LoadEnemyDefinitions reads an enemy configuration file and replaces the
// EnemyLibrary.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read enemy definitions: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("unmarshal enemy definitions: %w", err)
	}

	lib := make(map[string]EnemyDefinition, len(enemyDefs))
	for _, def := range enemyDefs {
		lib[def.ID] = def
	}
	EnemyLibrary = lib
	return nil
}

// waveFileEntry — волна в JSON-файле; интервал задаётся в миллисекундах.
type waveFileEntry struct {
	Number          int `json:"number"`
	Walkers         int `json:"walkers"`
	Runners         int `json:"runners"`
	SpawnIntervalMS int `json:"spawn_interval_ms"`
}

// LoadWaveTable reads a wave configuration file and replaces the WaveTable.
func LoadWaveTable(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read wave table: %w", err)
	}

	var entries []waveFileEntry
	if err := json.Unmarshal(file, &entries); err != nil {
		return fmt.Errorf("unmarshal wave table: %w", err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("wave table %s is empty", path)
	}

	table := make(map[int]WaveDefinition, len(entries))
	for _, e := range entries {
		if e.Number <= 0 {
			return fmt.Errorf("wave table %s: invalid wave number %d", path, e.Number)
		}
		table[e.Number] = WaveDefinition{
			Walkers:       e.Walkers,
			Runners:       e.Runners,
			SpawnInterval: time.Duration(e.SpawnIntervalMS) * time.Millisecond,
		}
	}
	WaveTable = table
	return nil
}
