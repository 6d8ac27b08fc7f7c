// internal/component/item.go
package component

import (
	"go-space-survivor/internal/config"
	"go-space-survivor/internal/defs"
	"go-space-survivor/pkg/geom"
)

// Item is an item instance lying in the world, in a chest or in the inventory.
type Item struct {
	defs.ItemDefinition
	Pos geom.Vec
}

func NewItem(def defs.ItemDefinition, pos geom.Vec) Item {
	return Item{ItemDefinition: def, Pos: pos}
}

// Box returns the pickup area of the item.
func (it Item) Box() geom.Rect {
	return geom.Box(it.Pos, config.ItemBox)
}

// Chest holds items until the player opens it; opening takes everything at once.
type Chest struct {
	Pos      geom.Vec
	Contents []Item
}

func (c Chest) Box() geom.Rect {
	return geom.Box(c.Pos, config.ChestBox)
}
