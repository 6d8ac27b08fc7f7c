// internal/component/enemy.go
package component

import (
	"go-space-survivor/internal/config"
	"go-space-survivor/internal/defs"
	"go-space-survivor/pkg/geom"
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	Pos          geom.Vec
	Kind         defs.EnemyKind
	Behavior     defs.Behavior
	Health       int
	MaxHealth    int
	Speed        float64
	Damage       int
	FireRate     int
	FireTimer    int
	ContactTimer int // ticks until the next contact hit may land
	PathFollower
}

// NewEnemy builds an enemy of def at pos. Health grows with the player's
// level at spawn time; fireTimer staggers the first shot.
func NewEnemy(def defs.EnemyDefinition, pos geom.Vec, playerLevel, fireTimer int) *Enemy {
	health := def.Health + playerLevel*defs.EnemyHealthPerLevel
	return &Enemy{
		Pos:       pos,
		Kind:      def.Kind,
		Behavior:  def.Behavior,
		Health:    health,
		MaxHealth: health,
		Speed:     def.Speed,
		Damage:    def.Damage,
		FireRate:  def.FireRate,
		FireTimer: fireTimer,
	}
}

func (e *Enemy) Box() geom.Rect {
	return geom.Box(e.Pos, config.EnemyBox)
}

// MoveToward steps along the cached path. Charge enemies without a path run
// straight at the target; ranged ones stay put.
func (e *Enemy) MoveToward(target geom.Vec, nav Navigator, rng Rand) {
	if e.follow(&e.Pos, e.Speed, target, nav, rng, defs.EnemyRepathChance, defs.EnemyRepathCooldown) {
		return
	}
	if e.Behavior == defs.BehaviorCharge {
		delta := target.Sub(e.Pos)
		dist := max(delta.Len(), 1)
		e.Pos = e.Pos.Add(delta.Scale(e.Speed / dist))
	}
}

// Shoot fires one aimed bullet at target.
func (e *Enemy) Shoot(target geom.Vec) Bullet {
	return Bullet{
		Pos:    e.Pos,
		Vel:    geom.FromAngle(geom.Angle(e.Pos, target), defs.EnemyBulletSpeed),
		Damage: e.Damage,
		Owner:  defs.OwnerEnemy,
	}
}

// TakeDamage subtracts amount and reports whether the enemy is destroyed.
// Removal and rewards are up to the caller.
func (e *Enemy) TakeDamage(amount int) bool {
	e.Health -= amount
	return e.Health <= 0
}

// ExpReward is the experience granted for killing e at the given player level.
func (e *Enemy) ExpReward(playerLevel int) int {
	def := defs.EnemyLibrary[e.Kind]
	return def.ExpBase + def.ExpPerLevel*playerLevel
}
