// internal/component/player.go
package component

import (
	"go-space-survivor/internal/config"
	"go-space-survivor/internal/defs"
	"go-space-survivor/pkg/geom"
)

const (
	PlayerSpeed        = 5.0
	PlayerHealth       = 100
	StartExpToNext     = 100
	ExpGrowth          = 1.5
	LevelHealthBonus   = 20
	DiagonalFactor     = 0.707
	RegenIntervalTicks = 60
)

// MoveIntent is the directional input of one tick.
type MoveIntent struct {
	Up, Down, Left, Right bool
}

// Rand is the random source entity behaviors draw from.
type Rand interface {
	Float64() float64
	Uniform(lo, hi float64) float64
}

// Player хранит всё состояние игрока: позицию, здоровье, прогресс и инвентарь.
type Player struct {
	Pos             geom.Vec
	Vel             geom.Vec
	Speed           float64
	Health          int
	MaxHealth       int
	TempHealthBoost int
	TempHealthTimer int
	Level           int
	Exp             int
	ExpToNext       int
	Resources       int
	Armor           int
	DamageModifier  float64
	RegenRate       int
	RegenTimer      int
	FireTimer       int
	Inventory       *Inventory
}

// NewPlayer creates a level 1 player holding only the pistol.
func NewPlayer(pos geom.Vec) *Player {
	return &Player{
		Pos:            pos,
		Speed:          PlayerSpeed,
		Health:         PlayerHealth,
		MaxHealth:      PlayerHealth,
		Level:          1,
		ExpToNext:      StartExpToNext,
		DamageModifier: 1.0,
		Inventory:      NewInventory(),
	}
}

// Box returns the player's hit box.
func (p *Player) Box() geom.Rect {
	return geom.Box(p.Pos, config.PlayerBox)
}

// HealthCap is the most health the player can hold right now.
func (p *Player) HealthCap() int {
	return p.MaxHealth + p.TempHealthBoost
}

// Heal adds amount, capped at HealthCap.
func (p *Player) Heal(amount int) {
	p.Health = min(p.Health+amount, p.HealthCap())
}

// Move resolves one tick of movement. X and Y are tested against the walls
// separately, so pushing diagonally into a wall slides along it.
func (p *Player) Move(in MoveIntent, walls []geom.Rect) {
	p.Vel = geom.Vec{}
	if in.Up {
		p.Vel.Y = -p.Speed
	}
	if in.Down {
		p.Vel.Y = p.Speed
	}
	if in.Left {
		p.Vel.X = -p.Speed
	}
	if in.Right {
		p.Vel.X = p.Speed
	}
	if p.Vel.X != 0 && p.Vel.Y != 0 {
		p.Vel = p.Vel.Scale(DiagonalFactor)
	}

	if next := geom.Box(geom.V(p.Pos.X+p.Vel.X, p.Pos.Y), config.PlayerBox); !next.IntersectsAny(walls) {
		p.Pos.X += p.Vel.X
	}
	if next := geom.Box(geom.V(p.Pos.X, p.Pos.Y+p.Vel.Y), config.PlayerBox); !next.IntersectsAny(walls) {
		p.Pos.Y += p.Vel.Y
	}
}

// Shoot fires the selected weapon at target. It returns nil when the weapon
// has finite ammo and none is left.
func (p *Player) Shoot(target geom.Vec, rng Rand) []Bullet {
	w := p.Inventory.Weapon()
	if !p.Inventory.UseAmmo(w.Name) {
		return nil
	}
	angle := geom.Angle(p.Pos, target)
	damage := int(float64(w.Damage) * p.DamageModifier)
	bullets := make([]Bullet, 0, w.BulletCount)
	for i := 0; i < w.BulletCount; i++ {
		spread := 0.0
		if w.Spread > 0 {
			spread = rng.Uniform(-w.Spread, w.Spread)
		}
		bullets = append(bullets, Bullet{
			Pos:    p.Pos,
			Vel:    geom.FromAngle(angle+spread, w.Speed),
			Damage: damage,
			Owner:  defs.OwnerPlayer,
		})
	}
	return bullets
}

// TryFire handles the fire button for one tick: shoots when held and the
// cooldown is over, then counts the cooldown down.
func (p *Player) TryFire(held bool, target geom.Vec, rng Rand) []Bullet {
	var bullets []Bullet
	if held && p.FireTimer <= 0 {
		bullets = p.Shoot(target, rng)
		p.FireTimer = p.Inventory.Weapon().FireRate
	}
	if p.FireTimer > 0 {
		p.FireTimer--
	}
	return bullets
}

// GainExp adds experience and levels up as many times as it covers.
// It returns every level reached, in order.
func (p *Player) GainExp(amount int) []int {
	p.Exp += amount
	var levels []int
	for p.Exp >= p.ExpToNext {
		p.levelUp()
		levels = append(levels, p.Level)
	}
	return levels
}

func (p *Player) levelUp() {
	p.Level++
	p.Exp -= p.ExpToNext
	p.ExpToNext = int(float64(p.ExpToNext) * ExpGrowth)
	p.MaxHealth += LevelHealthBonus
	p.Heal(LevelHealthBonus)
}

// TakeDamage applies armor (never below 1 damage) and returns the damage dealt.
func (p *Player) TakeDamage(amount int) int {
	actual := max(1, amount-p.Armor)
	p.Health -= actual
	if p.Health < 0 {
		p.Health = 0
	}
	return actual
}

// Dead reports whether the player has no health left.
func (p *Player) Dead() bool {
	return p.Health <= 0
}

// Update ticks regeneration and the temporary health boost.
func (p *Player) Update() {
	if p.RegenTimer <= 0 && p.RegenRate > 0 {
		p.Heal(p.RegenRate)
		p.RegenTimer = RegenIntervalTicks
	} else {
		p.RegenTimer--
	}

	if p.TempHealthTimer > 0 {
		p.TempHealthTimer--
		if p.TempHealthTimer <= 0 {
			p.TempHealthBoost = 0
			p.Health = min(p.Health, p.MaxHealth)
		}
	}
}

// ApplyItem uses or stores an item. Consumables always apply; anything else
// goes to the inventory, and false means the inventory was full.
func (p *Player) ApplyItem(item Item) bool {
	if !item.Type.Consumable() {
		if !p.Inventory.AddItem(item) {
			return false
		}
		if item.Type == defs.ItemResource {
			p.Resources += item.Value
		}
		return true
	}
	switch item.Type {
	case defs.ItemHealth:
		p.Heal(item.Value)
	case defs.ItemTempHealth:
		p.TempHealthBoost += item.Value
		p.TempHealthTimer = item.Duration
	case defs.ItemArmor:
		p.Armor += item.Value
	case defs.ItemAmmo:
		p.Inventory.AddAmmo(item.AmmoFor, item.Value, item.MaxAmmo)
	}
	return true
}

// SelectWeapon picks the i-th unlocked weapon, 1-based as on the number keys.
func (p *Player) SelectWeapon(i int) bool {
	return p.Inventory.Select(i - 1)
}

// CycleWeapon moves the weapon selection by delta, wrapping around.
func (p *Player) CycleWeapon(delta int) {
	p.Inventory.Cycle(delta)
}
