// pkg/grid/pathfinding.go
package grid

// Порядок обхода соседей фиксирован: вверх, вправо, вниз, влево.
// От него зависит, какой из равных по длине путей вернёт поиск, — результат
// обязан быть воспроизводимым для одинакового состояния карты.
var neighborOffsets = [4]Cell{
	{Row: -1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
}

// FindPath находит кратчайший проходимый маршрут от входа до выхода поиском
// в ширину. Все клетки равноценны, поэтому эвристика не нужна. Возвращает
// последовательность клеток от входа до выхода включительно или nil, если
// вход и выход разъединены.
func FindPath(m *Map) []Cell {
	return FindPathBetween(m, m.Entry, m.Exit)
}

// FindPathBetween — BFS между двумя произвольными клетками карты.
func FindPathBetween(m *Map, start, goal Cell) []Cell {
	if !m.Walkable(start) || !m.Walkable(goal) {
		return nil
	}
	if start == goal {
		return []Cell{start}
	}

	cameFrom := make(map[Cell]Cell, m.Rows*m.Cols)
	cameFrom[start] = start
	queue := []Cell{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, off := range neighborOffsets {
			next := Cell{Row: current.Row + off.Row, Col: current.Col + off.Col}
			if !m.Walkable(next) {
				continue
			}
			if _, visited := cameFrom[next]; visited {
				continue
			}
			cameFrom[next] = current
			if next == goal {
				return reconstructPath(cameFrom, start, goal)
			}
			queue = append(queue, next)
		}
	}
	return nil // Нет пути
}

// HasPath — быстрая проверка связности входа и выхода.
func HasPath(m *Map) bool {
	return FindPath(m) != nil
}

func reconstructPath(cameFrom map[Cell]Cell, start, goal Cell) []Cell {
	var path []Cell
	for c := goal; c != start; c = cameFrom[c] {
		path = append(path, c)
	}
	path = append(path, start)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// PathCache кэширует маршрут для текущей версии карты. Пересчёт происходит
// только после зафиксированной мутации, не каждый тик; все враги, созданные
// при одной версии, получают один и тот же маршрут.
type PathCache struct {
	version uint64
	path    []Cell
	valid   bool
}

// Path возвращает маршрут вход→выход для текущей версии карты,
// пересчитывая его только если версия изменилась.
func (pc *PathCache) Path(m *Map) []Cell {
	if !pc.valid || pc.version != m.Version() {
		pc.path = FindPath(m)
		pc.version = m.Version()
		pc.valid = true
	}
	return pc.path
}

// Invalidate сбрасывает кэш принудительно.
func (pc *PathCache) Invalidate() {
	pc.valid = false
	pc.path = nil
}
