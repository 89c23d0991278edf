// internal/component/tower.go
package component

import "dead-end/pkg/grid"

// Tower представляет установленную башню.
type Tower struct {
	DefID string    // ID из defs.TowerLibrary
	Cell  grid.Cell // Клетка, которую башня занимает и блокирует
}
