// internal/component/combat.go
package component

// Health — компонент здоровья.
type Health struct {
	Value int
	Max   int
}

// Combat — компонент атакующих башен. У Barricade его нет:
// она только занимает клетку.
type Combat struct {
	Damage          int
	FireInterval    float64 // Секунд между выстрелами
	FireCooldown    float64 // Оставшееся время до следующего выстрела
	Range           float64 // Радиус действия в клетках
	ProjectileSpeed float64 // 0 — мгновенное попадание
}
