// internal/defs/items.go
package defs

// ItemDefinition is the static part of an item. Which optional fields are set
// depends on Type: Duration for temp_health, AmmoFor/MaxAmmo for ammo,
// Weapon for weapon.
type ItemDefinition struct {
	Name     string
	Type     ItemType
	Value    int
	Duration int    // ticks
	AmmoFor  string // weapon name
	MaxAmmo  int
	Weapon   *Weapon
}

const TempHealthDuration = 600

var (
	HealthPack      = ItemDefinition{Name: "Health Pack", Type: ItemHealth, Value: 50}
	TempHealthBoost = ItemDefinition{Name: "Temp Health Boost", Type: ItemTempHealth, Value: 50, Duration: TempHealthDuration}
	ArmorPlate      = ItemDefinition{Name: "Armor", Type: ItemArmor, Value: 5}
	Resource        = ItemDefinition{Name: "Resource", Type: ItemResource, Value: 2}
)

// DropTable lists what a killed enemy may leave behind; one entry is picked uniformly.
var DropTable = []ItemDefinition{
	HealthPack,
	TempHealthBoost,
	ArmorPlate,
	Resource,
	{Name: "Shotgun Ammo", Type: ItemAmmo, Value: 20, AmmoFor: "Shotgun", MaxAmmo: 100},
	{Name: "Sniper Ammo", Type: ItemAmmo, Value: 10, AmmoFor: "Sniper", MaxAmmo: 50},
	{Name: "Laser Ammo", Type: ItemAmmo, Value: 30, AmmoFor: "Laser", MaxAmmo: 150},
	{Name: "Grenade Ammo", Type: ItemAmmo, Value: 5, AmmoFor: "Grenade Launcher", MaxAmmo: 20},
	{Name: "Flamethrower Ammo", Type: ItemAmmo, Value: 50, AmmoFor: "Flamethrower", MaxAmmo: 200},
	{Name: "Plasma Ammo", Type: ItemAmmo, Value: 15, AmmoFor: "Plasma Rifle", MaxAmmo: 80},
	{Name: "Rocket Ammo", Type: ItemAmmo, Value: 5, AmmoFor: "Rocket Launcher", MaxAmmo: 15},
	{Name: "Freeze Ammo", Type: ItemAmmo, Value: 10, AmmoFor: "Freeze Shotgun", MaxAmmo: 60},
}

// WeaponItem wraps a weapon so it can lie on the floor or sit in a chest.
func WeaponItem(w Weapon) ItemDefinition {
	return ItemDefinition{Name: w.Name, Type: ItemWeapon, Weapon: &w}
}

// ChestPool lists everything a chest can contain: the basic consumables plus every weapon.
func ChestPool() []ItemDefinition {
	pool := []ItemDefinition{HealthPack, TempHealthBoost, ArmorPlate}
	for _, w := range WeaponLibrary {
		pool = append(pool, WeaponItem(w))
	}
	return pool
}

// MaxChestItems bounds chest contents; a chest holds 1..MaxChestItems distinct entries.
const MaxChestItems = 3
