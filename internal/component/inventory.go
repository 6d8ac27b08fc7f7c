// internal/component/inventory.go
package component

import "go-space-survivor/internal/defs"

const InventoryCapacity = 20

// Inventory holds carried items and unlocked weapons. Ammo is keyed by weapon
// name; defs.InfiniteAmmo means the weapon never runs dry.
type Inventory struct {
	Items    []Item
	Capacity int
	Weapons  []defs.Weapon
	Ammo     map[string]int
	Selected int
}

// NewInventory returns an inventory with the pistol unlocked and selected.
func NewInventory() *Inventory {
	return &Inventory{
		Items:    []Item{{ItemDefinition: defs.WeaponItem(defs.Pistol)}},
		Capacity: InventoryCapacity,
		Weapons:  []defs.Weapon{defs.Pistol},
		Ammo:     map[string]int{defs.Pistol.Name: defs.InfiniteAmmo},
	}
}

// Full reports whether no more items fit.
func (inv *Inventory) Full() bool {
	return len(inv.Items) >= inv.Capacity
}

// AddItem stores an item if there is room. Weapon items also unlock their weapon.
func (inv *Inventory) AddItem(item Item) bool {
	if inv.Full() {
		return false
	}
	inv.Items = append(inv.Items, item)
	if item.Type == defs.ItemWeapon && item.Weapon != nil {
		inv.UnlockWeapon(*item.Weapon)
	}
	return true
}

// UnlockWeapon adds w to the weapon list with a full pool (MaxAmmo). Ammo
// picked up before the unlock is never lowered. A weapon that is already
// unlocked is not duplicated; its ammo is topped up by w.Ammo instead.
func (inv *Inventory) UnlockWeapon(w defs.Weapon) {
	if inv.HasWeapon(w.Name) {
		inv.AddAmmo(w.Name, w.Ammo, w.MaxAmmo)
		return
	}
	inv.Weapons = append(inv.Weapons, w)
	cur, ok := inv.Ammo[w.Name]
	switch {
	case w.MaxAmmo == defs.InfiniteAmmo || (ok && cur == defs.InfiniteAmmo):
		inv.Ammo[w.Name] = defs.InfiniteAmmo
	default:
		inv.Ammo[w.Name] = max(cur, w.MaxAmmo)
	}
}

// HasWeapon reports whether a weapon with this name is unlocked.
func (inv *Inventory) HasWeapon(name string) bool {
	for _, w := range inv.Weapons {
		if w.Name == name {
			return true
		}
	}
	return false
}

// AddAmmo adds amount rounds for a weapon, capped at maxAmmo. Infinite pools stay infinite.
func (inv *Inventory) AddAmmo(weapon string, amount, maxAmmo int) {
	cur, ok := inv.Ammo[weapon]
	if ok && cur == defs.InfiniteAmmo {
		return
	}
	if maxAmmo == defs.InfiniteAmmo {
		inv.Ammo[weapon] = cur + amount
		return
	}
	inv.Ammo[weapon] = min(cur+amount, maxAmmo)
}

// Weapon returns the selected weapon.
func (inv *Inventory) Weapon() defs.Weapon {
	return inv.Weapons[inv.Selected]
}

// AmmoOf returns the ammo count for a weapon; weapons without a pool are infinite.
func (inv *Inventory) AmmoOf(name string) int {
	if a, ok := inv.Ammo[name]; ok {
		return a
	}
	return defs.InfiniteAmmo
}

// UseAmmo spends one round. It returns false only when a finite pool is empty.
func (inv *Inventory) UseAmmo(name string) bool {
	a, ok := inv.Ammo[name]
	if !ok || a == defs.InfiniteAmmo {
		return true
	}
	if a > 0 {
		inv.Ammo[name] = a - 1
		return true
	}
	return false
}

// Select picks a weapon by index; out of range indexes are ignored.
func (inv *Inventory) Select(i int) bool {
	if i < 0 || i >= len(inv.Weapons) {
		return false
	}
	inv.Selected = i
	return true
}

// Cycle moves the selection by delta, wrapping around.
func (inv *Inventory) Cycle(delta int) {
	n := len(inv.Weapons)
	inv.Selected = ((inv.Selected+delta)%n + n) % n
}
