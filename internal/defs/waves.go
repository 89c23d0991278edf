// internal/defs/waves.go
package defs

import "time"

// WaveDefinition описывает состав одной волны врагов. Кривая эскалации —
// данные, а не код: поздние волны поднимают число и долю Runner'ов
// относительно Walker'ов прямо в таблице.
type WaveDefinition struct {
	Walkers       int           `json:"walkers"`
	Runners       int           `json:"runners"`
	SpawnInterval time.Duration `json:"spawn_interval"` // Интервал между появлением врагов
}

// WaveTable определяет последовательность волн в матче. Ключ — номер волны.
var WaveTable = map[int]WaveDefinition{
	1: {Walkers: 5, Runners: 0, SpawnInterval: time.Millisecond * 1000},
	2: {Walkers: 8, Runners: 2, SpawnInterval: time.Millisecond * 800},
	3: {Walkers: 12, Runners: 5, SpawnInterval: time.Millisecond * 700},
	4: {Walkers: 15, Runners: 10, SpawnInterval: time.Millisecond * 600},
	5: {Walkers: 20, Runners: 15, SpawnInterval: time.Millisecond * 500},
}

// FinalWave — номер последней волны; её зачистка означает победу.
func FinalWave() int {
	final := 0
	for n := range WaveTable {
		if n > final {
			final = n
		}
	}
	return final
}
