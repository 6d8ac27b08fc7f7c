// internal/component/upgrade.go
package component

// UpgradeKind is one permanent buff offered on level-up.
type UpgradeKind int

const (
	UpgradeDamage UpgradeKind = iota
	UpgradeSpeed
	UpgradeArmor
	UpgradeRegen
	UpgradeMaxHealth
)

// UpgradePool is the fixed catalog options are drawn from.
var UpgradePool = []UpgradeKind{UpgradeDamage, UpgradeSpeed, UpgradeArmor, UpgradeRegen, UpgradeMaxHealth}

// UpgradeChoices is how many options a level-up menu shows.
const UpgradeChoices = 3

func (k UpgradeKind) String() string {
	switch k {
	case UpgradeDamage:
		return "Damage +20%"
	case UpgradeSpeed:
		return "Speed +10%"
	case UpgradeArmor:
		return "Armor +3"
	case UpgradeRegen:
		return "Health Regen +1/s"
	case UpgradeMaxHealth:
		return "Max Health +20"
	}
	return "Unknown"
}

// ApplyUpgrade returns p with the upgrade applied. The inventory pointer is shared.
func ApplyUpgrade(k UpgradeKind, p Player) Player {
	switch k {
	case UpgradeDamage:
		p.DamageModifier += 0.2
	case UpgradeSpeed:
		p.Speed *= 1.1
	case UpgradeArmor:
		p.Armor += 3
	case UpgradeRegen:
		p.RegenRate++
	case UpgradeMaxHealth:
		p.MaxHealth += 20
		p.Heal(20)
	}
	return p
}
