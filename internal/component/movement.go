// internal/component/movement.go
package component

import "dead-end/pkg/grid"

// Position — компонент позиции в координатах клеток (X — столбец, Y — строка).
// Дробные значения означают положение между центрами клеток.
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости (клеток в секунду).
type Velocity struct {
	Speed float64
}

// Path — маршрут, назначенный врагу при появлении. Не пересчитывается
// в полёте: изменения карты влияют только на будущие спавны.
type Path struct {
	Cells        []grid.Cell
	CurrentIndex int
	// Progress — пройденное расстояние вдоль маршрута в клетках:
	// индекс текущей клетки плюс доля пути до следующей. По нему башни
	// выбирают цель, ушедшую дальше всех к выходу.
	Progress float64
}
