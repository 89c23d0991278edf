// internal/component/enemy.go
package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID      string // ID из defs.EnemyLibrary
	Bounty     int    // Награда за убийство
	SpawnSeq   uint64 // Порядковый номер спавна — разрешает ничьи при выборе цели
	SpawnTick  uint64 // Тик появления: в свой первый тик враг ещё не цель
	ReachedEnd bool   // Дошёл ли враг до выхода
}
