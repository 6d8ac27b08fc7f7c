// internal/defs/types.go
package defs

// ItemType tags what an item does when used.
type ItemType string

const (
	ItemHealth     ItemType = "health"
	ItemTempHealth ItemType = "temp_health"
	ItemArmor      ItemType = "armor"
	ItemAmmo       ItemType = "ammo"
	ItemResource   ItemType = "resource"
	ItemWeapon     ItemType = "weapon"
)

// Consumable reports whether the item applies instantly instead of going to the inventory.
func (t ItemType) Consumable() bool {
	switch t {
	case ItemHealth, ItemTempHealth, ItemArmor, ItemAmmo:
		return true
	}
	return false
}

// Owner tags which side fired a bullet.
type Owner string

const (
	OwnerPlayer Owner = "player"
	OwnerEnemy  Owner = "enemy"
	OwnerBoss   Owner = "boss"
)

// Hostile reports whether bullets of this owner damage the player.
func (o Owner) Hostile() bool {
	return o == OwnerEnemy || o == OwnerBoss
}

// Behavior is the movement/fire policy of an enemy.
type Behavior string

const (
	BehaviorRanged Behavior = "ranged"
	BehaviorCharge Behavior = "charge"
)

// InfiniteAmmo marks weapons that never run out.
const InfiniteAmmo = -1
