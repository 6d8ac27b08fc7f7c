package system

import (
	"testing"

	"go-space-survivor/internal/component"
	"go-space-survivor/internal/defs"
	"go-space-survivor/internal/event"
	"go-space-survivor/pkg/geom"
)

func TestUseItemsConsumesOverlapping(t *testing.T) {
	f := newFixture(t)
	w := f.world
	w.Player.Health = 50
	w.Items = []component.Item{
		component.NewItem(defs.HealthPack, w.Player.Pos),
		// Touching edges only: boxes 806..826 and 826..846.
		component.NewItem(defs.ArmorPlate, w.Player.Pos.Add(geom.V(20, 0))),
	}

	if n := f.pickups.UseItems(); n != 1 {
		t.Fatalf("collected %d, want 1", n)
	}
	if w.Player.Health != 100 {
		t.Errorf("health = %d", w.Player.Health)
	}
	if len(w.Items) != 1 || w.Items[0].Name != defs.ArmorPlate.Name {
		t.Errorf("items left = %+v", w.Items)
	}
	if f.events.Count(event.PickupCollected) != 1 {
		t.Error("no pickup event")
	}
}

func TestUseItemsFullInventory(t *testing.T) {
	f := newFixture(t)
	w := f.world
	for !w.Player.Inventory.Full() {
		w.Player.Inventory.AddItem(component.NewItem(defs.Resource, geom.Vec{}))
	}
	w.Items = []component.Item{component.NewItem(defs.Resource, w.Player.Pos)}

	if n := f.pickups.UseItems(); n != 0 {
		t.Errorf("collected %d into a full inventory", n)
	}
	if len(w.Items) != 1 {
		t.Error("item vanished")
	}
}

func TestOpenChest(t *testing.T) {
	f := newFixture(t)
	w := f.world
	pos := w.Player.Pos.Add(geom.V(5, 5))
	w.Chests = []component.Chest{
		{Pos: pos, Contents: []component.Item{
			component.NewItem(defs.WeaponItem(defs.WeaponLibrary[1]), pos),
			component.NewItem(defs.ArmorPlate, pos),
		}},
		{Pos: geom.V(100, 100), Contents: []component.Item{component.NewItem(defs.HealthPack, geom.V(100, 100))}},
	}

	if n := f.pickups.OpenChests(); n != 1 {
		t.Fatalf("opened %d chests", n)
	}
	if len(w.Chests) != 1 || w.Chests[0].Pos != geom.V(100, 100) {
		t.Errorf("chests left = %+v", w.Chests)
	}
	if !w.Player.Inventory.HasWeapon("Sniper") || w.Player.Armor != 5 {
		t.Errorf("contents not applied: weapons %v armor %d", w.Player.Inventory.Weapons, w.Player.Armor)
	}
	if len(w.Particles) != ExplosionParticles {
		t.Errorf("particles = %d", len(w.Particles))
	}
	if f.events.Count(event.PickupCollected) != 2 {
		t.Errorf("pickup events = %d", f.events.Count(event.PickupCollected))
	}
}

func TestParticlesExpire(t *testing.T) {
	f := newFixture(t)
	w := f.world
	Explode(w, f.dispatcher, geom.V(0, 0))
	for i := 0; i < component.ParticleLifetime-1; i++ {
		f.effects.Update()
	}
	if len(w.Particles) != ExplosionParticles {
		t.Fatalf("particles = %d before expiry", len(w.Particles))
	}
	f.effects.Update()
	if len(w.Particles) != 0 {
		t.Errorf("particles = %d after lifetime", len(w.Particles))
	}
}
