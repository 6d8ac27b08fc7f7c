// internal/system/combat.go
package system

import (
	"go-space-survivor/internal/defs"
	"go-space-survivor/internal/entity"
	"go-space-survivor/internal/event"
	"go-space-survivor/pkg/geom"
)

// CombatSystem управляет стрельбой игрока, врагов и босса, а также
// контактным уроном таранящих врагов.
type CombatSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(world *entity.World, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{world: world, eventDispatcher: eventDispatcher}
}

// PlayerFire handles the fire button for one tick. target is in world space.
func (s *CombatSystem) PlayerFire(held bool, target geom.Vec) {
	w := s.world
	bullets := w.Player.TryFire(held, target, w.Rng)
	if len(bullets) == 0 {
		return
	}
	w.Bullets = append(w.Bullets, bullets...)
	s.eventDispatcher.Emit(event.ShotFired, event.ShotFiredData{
		Owner:   defs.OwnerPlayer,
		Weapon:  w.Player.Inventory.Weapon().Name,
		Bullets: len(bullets),
	})
}

// UpdateEnemies moves every enemy and lets it attack. Ranged enemies hold
// their distance and shoot; charge enemies close in and hit on contact.
func (s *CombatSystem) UpdateEnemies() {
	w := s.world
	p := w.Player
	for _, e := range w.Enemies {
		dist := geom.Dist(e.Pos, p.Pos)
		switch e.Behavior {
		case defs.BehaviorRanged:
			if dist > defs.RangedHoldDistance {
				e.MoveToward(p.Pos, w, w.Rng)
			}
			if e.FireTimer <= 0 && dist < defs.EnemyFireRange {
				w.Bullets = append(w.Bullets, e.Shoot(p.Pos))
				e.FireTimer = e.FireRate
				s.eventDispatcher.Emit(event.ShotFired, event.ShotFiredData{Owner: defs.OwnerEnemy, Bullets: 1})
			} else {
				e.FireTimer--
			}
		default:
			e.MoveToward(p.Pos, w, w.Rng)
			if w.Cfg.ContactDamage {
				s.contact(e.Damage, e.FireRate, &e.ContactTimer, e.Box().Intersects(p.Box()))
			}
		}
	}
}

// contact deals damage on overlap at most once per cooldown ticks.
func (s *CombatSystem) contact(damage, cooldown int, timer *int, touching bool) {
	if *timer > 0 {
		*timer--
	}
	if *timer > 0 || !touching {
		return
	}
	dealt := s.world.Player.TakeDamage(damage)
	*timer = cooldown
	logEntry(s.world, "combat").WithField("damage", dealt).Debug("Contact hit")
}

// UpdateBoss moves the boss and fires its current attack pattern when in range.
func (s *CombatSystem) UpdateBoss() {
	w := s.world
	b := w.Boss
	if b == nil {
		return
	}
	dist := geom.Dist(b.Pos, w.Player.Pos)
	b.MoveToward(w.Player.Pos, w, w.Rng)
	if b.FireTimer <= 0 && dist < defs.BossFireRange {
		bullets := b.Shoot(w.Player.Pos)
		w.Bullets = append(w.Bullets, bullets...)
		b.FireTimer = b.FireRate
		s.eventDispatcher.Emit(event.ShotFired, event.ShotFiredData{Owner: defs.OwnerBoss, Bullets: len(bullets)})
	} else {
		b.FireTimer--
	}
}
