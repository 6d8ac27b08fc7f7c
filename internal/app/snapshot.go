// internal/app/snapshot.go
package app

import (
	"maps"
	"slices"

	"go-space-survivor/internal/component"
	"go-space-survivor/internal/state"
	"go-space-survivor/pkg/geom"
	"go-space-survivor/pkg/tilemap"
)

// Snapshot is a read-only copy of everything the presentation needs for one
// frame. Map and Walls are shared with the world and must not be modified.
type Snapshot struct {
	Tick    uint64
	Session string
	Mode    state.Mode

	Player    component.Player
	Inventory component.Inventory
	Camera    component.Camera
	Map       *tilemap.Map
	Walls     []geom.Rect

	Enemies   []component.Enemy
	Boss      *component.Boss
	Bullets   []component.Bullet
	Particles []component.Particle
	Items     []component.Item
	Chests    []component.Chest

	UpgradeOptions []string
	UpgradeCursor  int
	PauseOptions   []string
	PauseCursor    int

	Stats Stats
}

// Snapshot copies the current state out of the world.
func (g *Game) Snapshot() Snapshot {
	w := g.World
	inv := *w.Player.Inventory
	inv.Items = cloneItems(inv.Items)
	inv.Weapons = slices.Clone(inv.Weapons)
	inv.Ammo = maps.Clone(inv.Ammo)

	player := *w.Player
	player.Inventory = &inv

	enemies := make([]component.Enemy, len(w.Enemies))
	for i, e := range w.Enemies {
		enemies[i] = *e
		enemies[i].Path = slices.Clone(e.Path)
	}
	var boss *component.Boss
	if w.Boss != nil {
		b := *w.Boss
		b.Path = slices.Clone(w.Boss.Path)
		boss = &b
	}
	chests := make([]component.Chest, len(w.Chests))
	for i, c := range w.Chests {
		chests[i] = component.Chest{Pos: c.Pos, Contents: cloneItems(c.Contents)}
	}

	return Snapshot{
		Tick:           w.Tick,
		Session:        w.Session.String(),
		Mode:           g.State.Current(),
		Player:         player,
		Inventory:      inv,
		Camera:         w.Camera,
		Map:            w.Map,
		Walls:          w.Walls,
		Enemies:        enemies,
		Boss:           boss,
		Bullets:        slices.Clone(w.Bullets),
		Particles:      slices.Clone(w.Particles),
		Items:          cloneItems(w.Items),
		Chests:         chests,
		UpgradeOptions: slices.Clone(g.UpgradeMenu.Options),
		UpgradeCursor:  g.UpgradeMenu.Cursor,
		PauseOptions:   slices.Clone(g.PauseMenu.Options),
		PauseCursor:    g.PauseMenu.Cursor,
		Stats:          *g.Stats,
	}
}

// cloneItems copies items together with their weapon stats so the snapshot
// does not alias *defs.Weapon values held by the world.
func cloneItems(items []component.Item) []component.Item {
	out := slices.Clone(items)
	for i := range out {
		if w := out[i].Weapon; w != nil {
			cp := *w
			out[i].Weapon = &cp
		}
	}
	return out
}
