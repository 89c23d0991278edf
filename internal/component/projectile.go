// internal/component/projectile.go
package component

import "dead-end/internal/types"

// Projectile представляет летящий снаряд. Базовые башни стреляют мгновенно
// и снарядов не создают; модель нужна типам башен со временем полёта
// (ProjectileSpeed > 0 в определении).
type Projectile struct {
	SourceID types.EntityID
	TargetID types.EntityID
	Speed    float64 // Клеток в секунду
	Damage   int
}
