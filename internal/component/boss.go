// internal/component/boss.go
package component

import (
	"go-space-survivor/internal/config"
	"go-space-survivor/internal/defs"
	"go-space-survivor/pkg/geom"
)

const (
	bossFanBullets   = 5
	bossFanStep      = 0.2
	bossFanSpeed     = 6.0
	bossSniperSpeed  = 10.0
	bossAttackPhases = 2
)

// Boss is the single periodic heavy enemy. It alternates between a bullet
// fan and one fast half-damage shot.
type Boss struct {
	Pos         geom.Vec
	Health      int
	MaxHealth   int
	Speed       float64
	Damage      int
	FireRate    int
	FireTimer   int
	AttackPhase int
	PathFollower
}

// NewBoss creates a boss whose health scales with the player's level at spawn time.
func NewBoss(pos geom.Vec, playerLevel int) *Boss {
	health := defs.BossBaseHealth + playerLevel*defs.BossHealthPerLevel
	return &Boss{
		Pos:       pos,
		Health:    health,
		MaxHealth: health,
		Speed:     defs.BossSpeed,
		Damage:    defs.BossDamage,
		FireRate:  defs.BossFireRate,
	}
}

func (b *Boss) Box() geom.Rect {
	return geom.Box(b.Pos, config.BossBox)
}

// MoveToward only follows paths; the boss never charges blindly.
func (b *Boss) MoveToward(target geom.Vec, nav Navigator, rng Rand) {
	b.follow(&b.Pos, b.Speed, target, nav, rng, defs.BossRepathChance, defs.BossRepathCooldown)
}

// Shoot fires the current attack pattern at target and switches to the other one.
func (b *Boss) Shoot(target geom.Vec) []Bullet {
	angle := geom.Angle(b.Pos, target)
	var bullets []Bullet
	if b.AttackPhase == 0 {
		half := bossFanBullets / 2
		for i := -half; i <= half; i++ {
			bullets = append(bullets, Bullet{
				Pos:    b.Pos,
				Vel:    geom.FromAngle(angle+float64(i)*bossFanStep, bossFanSpeed),
				Damage: b.Damage,
				Owner:  defs.OwnerBoss,
			})
		}
	} else {
		bullets = append(bullets, Bullet{
			Pos:    b.Pos,
			Vel:    geom.FromAngle(angle, bossSniperSpeed),
			Damage: b.Damage / 2,
			Owner:  defs.OwnerBoss,
		})
	}
	b.AttackPhase = (b.AttackPhase + 1) % bossAttackPhases
	return bullets
}

// TakeDamage subtracts amount and reports whether the boss is destroyed.
func (b *Boss) TakeDamage(amount int) bool {
	b.Health -= amount
	return b.Health <= 0
}

// ExpReward is the experience granted for the kill.
func (b *Boss) ExpReward(playerLevel int) int {
	return defs.BossExpBase + defs.BossExpPerLevel*playerLevel
}
