package grid

import (
	"errors"
	"reflect"
	"testing"
)

func TestPlaceAndQuery(t *testing.T) {
	m := NewMap(5, 5, Cell{Row: 0, Col: 0}, Cell{Row: 4, Col: 4})

	c := Cell{Row: 2, Col: 2}
	if err := m.Place(c, 7); err != nil {
		t.Fatalf("expected placement to succeed, got %v", err)
	}
	tile, ok := m.Tile(c)
	if !ok || !tile.Blocked || tile.Occupant != 7 {
		t.Fatalf("expected blocked tile with occupant 7, got %+v ok=%v", tile, ok)
	}
	if m.Walkable(c) {
		t.Fatalf("expected occupied cell to be unwalkable")
	}
}

func TestPlaceRejections(t *testing.T) {
	m := NewMap(5, 5, Cell{Row: 0, Col: 0}, Cell{Row: 4, Col: 4})
	if err := m.Place(Cell{Row: 1, Col: 1}, 1); err != nil {
		t.Fatalf("setup placement failed: %v", err)
	}

	cases := []struct {
		name string
		cell Cell
		want error
	}{
		{"out of bounds", Cell{Row: -1, Col: 0}, ErrOutOfBounds},
		{"beyond edge", Cell{Row: 5, Col: 5}, ErrOutOfBounds},
		{"entry", Cell{Row: 0, Col: 0}, ErrEntryOrExit},
		{"exit", Cell{Row: 4, Col: 4}, ErrEntryOrExit},
		{"occupied", Cell{Row: 1, Col: 1}, ErrOccupied},
	}
	for _, tc := range cases {
		versionBefore := m.Version()
		err := m.Place(tc.cell, 9)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
		if m.Version() != versionBefore {
			t.Fatalf("%s: rejected placement must not bump the version", tc.name)
		}
	}
}

func TestRemove(t *testing.T) {
	m := NewMap(5, 5, Cell{Row: 0, Col: 0}, Cell{Row: 4, Col: 4})
	c := Cell{Row: 3, Col: 1}
	if _, err := m.Remove(c); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty for empty cell, got %v", err)
	}

	if err := m.Place(c, 42); err != nil {
		t.Fatalf("placement failed: %v", err)
	}
	occupant, err := m.Remove(c)
	if err != nil {
		t.Fatalf("expected removal to succeed, got %v", err)
	}
	if occupant != 42 {
		t.Fatalf("expected occupant 42 back, got %d", occupant)
	}
	if !m.Walkable(c) {
		t.Fatalf("expected removed cell to be walkable again")
	}
}

func TestVersionCountsCommittedMutationsOnly(t *testing.T) {
	m := NewMap(5, 5, Cell{Row: 0, Col: 0}, Cell{Row: 4, Col: 4})
	if m.Version() != 0 {
		t.Fatalf("fresh map must start at version 0, got %d", m.Version())
	}
	c := Cell{Row: 2, Col: 3}
	if err := m.Place(c, 1); err != nil {
		t.Fatalf("placement failed: %v", err)
	}
	if m.Version() != 1 {
		t.Fatalf("expected version 1 after placement, got %d", m.Version())
	}
	if _, err := m.Remove(c); err != nil {
		t.Fatalf("removal failed: %v", err)
	}
	if m.Version() != 2 {
		t.Fatalf("expected version 2 after removal, got %d", m.Version())
	}
}

func TestWouldDisconnectLeavesMapUntouched(t *testing.T) {
	m := NewMap(3, 3, Cell{Row: 0, Col: 0}, Cell{Row: 2, Col: 2})
	// Оставляем единственный проход через (1,1).
	for _, c := range []Cell{{0, 2}, {2, 0}, {1, 2}} {
		if err := m.Place(c, 1); err != nil {
			t.Fatalf("setup placement at %+v failed: %v", c, err)
		}
	}
	before := m.BlockedCells()
	versionBefore := m.Version()

	if !m.WouldDisconnect(Cell{Row: 1, Col: 1}) {
		t.Fatalf("expected blocking the last corridor to disconnect")
	}
	if m.WouldDisconnect(Cell{Row: 1, Col: 0}) {
		t.Fatalf("dead-end cell must not be reported as disconnecting")
	}

	if m.Version() != versionBefore {
		t.Fatalf("WouldDisconnect must not change the version")
	}
	if !reflect.DeepEqual(before, m.BlockedCells()) {
		t.Fatalf("WouldDisconnect must not change occupancy")
	}
}
