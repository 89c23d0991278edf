// internal/component/wave.go
package component

import "dead-end/pkg/grid"

// SpawnEntry — одна запись очереди спавна: кого выпустить и через сколько
// секунд от начала волны.
type SpawnEntry struct {
	EnemyID string
	Delay   float64
}

// Wave хранит состояние активной волны.
type Wave struct {
	Number    int
	Elapsed   float64      // Секунд с начала волны
	Queue     []SpawnEntry // Отсортирована по Delay
	NextSpawn int          // Индекс первой ещё не выпущенной записи
	// Path — снимок маршрута, сделанный при входе в волну. Все враги этой
	// волны идут по нему, даже если карта изменится.
	Path []grid.Cell
}

// SpawnExhausted сообщает, что очередь спавна опустела.
func (w *Wave) SpawnExhausted() bool {
	return w.NextSpawn >= len(w.Queue)
}

// QueueRemaining — сколько врагов ещё не выпущено.
func (w *Wave) QueueRemaining() int {
	return len(w.Queue) - w.NextSpawn
}
