package grid

import (
	"reflect"
	"testing"
)

func TestFindPathOnEmptyMap(t *testing.T) {
	m := NewMap(5, 5, Cell{Row: 0, Col: 0}, Cell{Row: 4, Col: 4})
	path := FindPath(m)
	if path == nil {
		t.Fatalf("expected a route on an empty map")
	}
	if path[0] != m.Entry || path[len(path)-1] != m.Exit {
		t.Fatalf("route must run entry to exit, got %+v .. %+v", path[0], path[len(path)-1])
	}
	// BFS даёт кратчайший маршрут: манхэттенская длина + стартовая клетка.
	if len(path) != 9 {
		t.Fatalf("expected shortest route of 9 cells, got %d", len(path))
	}
	for i := 1; i < len(path); i++ {
		dr := path[i].Row - path[i-1].Row
		dc := path[i].Col - path[i-1].Col
		if dr*dr+dc*dc != 1 {
			t.Fatalf("route step %d is not 4-adjacent: %+v -> %+v", i, path[i-1], path[i])
		}
	}
}

// Порядок соседей фиксирован (вверх, вправо, вниз, влево), поэтому при равных
// по длине маршрутах BFS всегда выбирает один и тот же.
func TestFindPathNeighborOrderIsStable(t *testing.T) {
	m := NewMap(3, 3, Cell{Row: 0, Col: 0}, Cell{Row: 2, Col: 2})
	want := []Cell{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}}
	got := FindPath(m)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected the right-first route %v, got %v", want, got)
	}
}

func TestFindPathIsIdempotent(t *testing.T) {
	m := NewMap(6, 8, Cell{Row: 3, Col: 0}, Cell{Row: 3, Col: 7})
	for _, c := range []Cell{{2, 2}, {3, 2}, {4, 4}, {1, 5}} {
		if err := m.Place(c, 1); err != nil {
			t.Fatalf("setup placement at %+v failed: %v", c, err)
		}
	}
	first := FindPath(m)
	second := FindPath(m)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical grids must yield identical routes:\n%v\n%v", first, second)
	}
}

func TestFindPathDisconnected(t *testing.T) {
	m := NewMap(3, 3, Cell{Row: 0, Col: 0}, Cell{Row: 2, Col: 2})
	for _, c := range []Cell{{0, 1}, {1, 1}, {1, 0}} {
		if err := m.Place(c, 1); err != nil {
			t.Fatalf("setup placement at %+v failed: %v", c, err)
		}
	}
	if path := FindPath(m); path != nil {
		t.Fatalf("expected nil route for a walled-off entry, got %v", path)
	}
	if HasPath(m) {
		t.Fatalf("HasPath must agree with FindPath")
	}
}

func TestPathCacheTracksVersion(t *testing.T) {
	m := NewMap(5, 5, Cell{Row: 0, Col: 0}, Cell{Row: 4, Col: 4})
	cache := &PathCache{}

	first := cache.Path(m)
	again := cache.Path(m)
	if &first[0] != &again[0] {
		t.Fatalf("unchanged grid must hit the cache")
	}

	if err := m.Place(Cell{Row: 0, Col: 1}, 1); err != nil {
		t.Fatalf("placement failed: %v", err)
	}
	after := cache.Path(m)
	if after == nil {
		t.Fatalf("expected a route after placement")
	}
	if reflect.DeepEqual(first, after) {
		t.Fatalf("blocking the old route must change the cached path")
	}
}
