// pkg/grid/grid.go
package grid

import "errors"

var (
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
	ErrOccupied    = errors.New("grid: cell already occupied")
	ErrEntryOrExit = errors.New("grid: cell is entry or exit")
	ErrEmpty       = errors.New("grid: cell is empty")
)

// Cell — координата клетки на прямоугольной карте.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Tile хранит состояние одной клетки: проходимость и ссылку на занявшую её сущность.
type Tile struct {
	Blocked  bool
	Occupant uint64 // 0 — клетка свободна
}

// Map — прямоугольная карта с одним входом и одним выходом.
// Вход и выход всегда проходимы, занять их нельзя.
type Map struct {
	Rows, Cols int
	Entry      Cell
	Exit       Cell

	tiles   []Tile // row-major
	version uint64
}

// NewMap создаёт пустую карту rows×cols. Паникует, если вход или выход
// вне границ — это ошибка конструирования, не игровая ситуация.
func NewMap(rows, cols int, entry, exit Cell) *Map {
	m := &Map{
		Rows:  rows,
		Cols:  cols,
		Entry: entry,
		Exit:  exit,
		tiles: make([]Tile, rows*cols),
	}
	if !m.InBounds(entry) || !m.InBounds(exit) {
		panic("grid: entry or exit out of bounds")
	}
	return m
}

func (m *Map) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < m.Rows && c.Col >= 0 && c.Col < m.Cols
}

func (m *Map) index(c Cell) int { return c.Row*m.Cols + c.Col }

// Tile возвращает состояние клетки. Вторым значением — попала ли клетка в границы.
func (m *Map) Tile(c Cell) (Tile, bool) {
	if !m.InBounds(c) {
		return Tile{}, false
	}
	return m.tiles[m.index(c)], true
}

// Walkable сообщает, может ли враг пройти через клетку.
func (m *Map) Walkable(c Cell) bool {
	if !m.InBounds(c) {
		return false
	}
	return !m.tiles[m.index(c)].Blocked
}

// OccupantAt возвращает сущность, занимающую клетку (0 — никто).
func (m *Map) OccupantAt(c Cell) uint64 {
	if !m.InBounds(c) {
		return 0
	}
	return m.tiles[m.index(c)].Occupant
}

// Version — счётчик зафиксированных мутаций. Нужен для инвалидации
// закэшированных путей.
func (m *Map) Version() uint64 { return m.version }

// Place занимает клетку и помечает её непроходимой. Связность маршрута
// здесь не проверяется — это забота вызывающего кода (validate-then-commit).
func (m *Map) Place(c Cell, occupant uint64) error {
	if !m.InBounds(c) {
		return ErrOutOfBounds
	}
	if c == m.Entry || c == m.Exit {
		return ErrEntryOrExit
	}
	t := &m.tiles[m.index(c)]
	if t.Occupant != 0 || t.Blocked {
		return ErrOccupied
	}
	t.Blocked = true
	t.Occupant = occupant
	m.version++
	return nil
}

// Remove освобождает клетку и возвращает прежнего владельца.
func (m *Map) Remove(c Cell) (uint64, error) {
	if !m.InBounds(c) {
		return 0, ErrOutOfBounds
	}
	t := &m.tiles[m.index(c)]
	if t.Occupant == 0 {
		return 0, ErrEmpty
	}
	occupant := t.Occupant
	t.Blocked = false
	t.Occupant = 0
	m.version++
	return occupant, nil
}

// WouldDisconnect временно блокирует клетку и проверяет, остаётся ли маршрут
// вход→выход. Карта и её версия после вызова не меняются.
func (m *Map) WouldDisconnect(c Cell) bool {
	if !m.InBounds(c) || c == m.Entry || c == m.Exit {
		return false
	}
	idx := m.index(c)
	original := m.tiles[idx]
	m.tiles[idx] = Tile{Blocked: true, Occupant: original.Occupant}
	disconnected := FindPath(m) == nil
	m.tiles[idx] = original
	return disconnected
}

// BlockedCells перечисляет занятые клетки в детерминированном порядке
// (row-major) — для снапшотов и сравнения состояний в тестах.
func (m *Map) BlockedCells() []Cell {
	var cells []Cell
	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			if m.tiles[row*m.Cols+col].Blocked {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}
	return cells
}
