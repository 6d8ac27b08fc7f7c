// internal/system/pickup.go
package system

import (
	"go-space-survivor/internal/component"
	"go-space-survivor/internal/entity"
	"go-space-survivor/internal/event"
)

// PickupSystem обрабатывает подбор предметов и открытие сундуков под игроком.
type PickupSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewPickupSystem(world *entity.World, eventDispatcher *event.Dispatcher) *PickupSystem {
	return &PickupSystem{world: world, eventDispatcher: eventDispatcher}
}

// UseItems collects every item overlapping the player. Consumables are applied,
// others go to the inventory; items that do not fit stay on the floor.
func (s *PickupSystem) UseItems() int {
	w := s.world
	pbox := w.Player.Box()
	collected := 0
	remaining := make([]component.Item, 0, len(w.Items))
	for _, it := range w.Items {
		if it.Box().Intersects(pbox) && w.Player.ApplyItem(it) {
			s.collected(it)
			collected++
			continue
		}
		remaining = append(remaining, it)
	}
	w.Items = remaining
	return collected
}

// OpenChests opens every chest overlapping the player. Each content is applied
// or stored; contents that do not fit are lost with the chest.
func (s *PickupSystem) OpenChests() int {
	w := s.world
	pbox := w.Player.Box()
	opened := 0
	remaining := make([]component.Chest, 0, len(w.Chests))
	for _, c := range w.Chests {
		if !c.Box().Intersects(pbox) {
			remaining = append(remaining, c)
			continue
		}
		for _, it := range c.Contents {
			if w.Player.ApplyItem(it) {
				s.collected(it)
			}
		}
		Explode(w, s.eventDispatcher, c.Pos)
		logEntry(w, "pickup").WithField("items", len(c.Contents)).Debug("Chest opened")
		opened++
	}
	w.Chests = remaining
	return opened
}

func (s *PickupSystem) collected(it component.Item) {
	s.eventDispatcher.Emit(event.PickupCollected, event.PickupCollectedData{Item: it.Name, Type: it.Type})
}
