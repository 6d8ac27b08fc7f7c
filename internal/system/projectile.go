// internal/system/projectile.go
package system

import (
	"slices"

	"github.com/sirupsen/logrus"

	"go-space-survivor/internal/component"
	"go-space-survivor/internal/defs"
	"go-space-survivor/internal/entity"
	"go-space-survivor/internal/event"
	"go-space-survivor/pkg/geom"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	spawner         *SpawnSystem
	players         *PlayerSystem
}

func NewProjectileSystem(world *entity.World, eventDispatcher *event.Dispatcher, spawner *SpawnSystem, players *PlayerSystem) *ProjectileSystem {
	return &ProjectileSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		spawner:         spawner,
		players:         players,
	}
}

// Update advances every bullet and resolves wall, enemy, boss and player hits.
// A bullet is consumed by the first thing it hits.
func (s *ProjectileSystem) Update() {
	w := s.world
	next := make([]component.Bullet, 0, len(w.Bullets))
	for _, b := range w.Bullets {
		b.Advance()
		if !w.InPlayArea(b.Pos) {
			continue
		}
		box := b.Box()
		if box.IntersectsAny(w.Walls) {
			Explode(w, s.eventDispatcher, b.Pos)
			continue
		}
		if b.Owner == defs.OwnerPlayer {
			if s.hitEnemy(b, box) || s.hitBoss(b, box) {
				continue
			}
		} else if b.Owner.Hostile() && box.Intersects(w.Player.Box()) {
			dealt := w.Player.TakeDamage(b.Damage)
			logEntry(w, "projectile").WithFields(logrus.Fields{
				"owner":  b.Owner,
				"damage": dealt,
				"health": w.Player.Health,
			}).Debug("Player hit")
			continue
		}
		next = append(next, b)
	}
	w.Bullets = next
}

func (s *ProjectileSystem) hitEnemy(b component.Bullet, box geom.Rect) bool {
	w := s.world
	for i, e := range w.Enemies {
		if !box.Intersects(e.Box()) {
			continue
		}
		if e.TakeDamage(b.Damage) {
			w.Enemies = slices.Delete(w.Enemies, i, i+1)
			exp := e.ExpReward(w.Player.Level)
			logEntry(w, "projectile").WithFields(logrus.Fields{
				"kind": e.Kind,
				"exp":  exp,
			}).Debug("Enemy destroyed")
			s.eventDispatcher.Emit(event.EnemyKilled, event.EnemyKilledData{Kind: e.Kind, Pos: e.Pos, Exp: exp})
			s.players.AwardExp(exp)
			Explode(w, s.eventDispatcher, e.Pos)
			if w.Rng.Chance(w.Cfg.ItemDropChance) {
				s.spawner.SpawnItem(e.Pos)
			}
		}
		return true
	}
	return false
}

func (s *ProjectileSystem) hitBoss(b component.Bullet, box geom.Rect) bool {
	w := s.world
	boss := w.Boss
	if boss == nil || !box.Intersects(boss.Box()) {
		return false
	}
	if boss.TakeDamage(b.Damage) {
		w.Boss = nil
		exp := boss.ExpReward(w.Player.Level)
		logEntry(w, "projectile").WithField("exp", exp).Info("Boss defeated")
		s.eventDispatcher.Emit(event.BossDefeated, event.BossDefeatedData{Exp: exp})
		s.players.AwardExp(exp)
		Explode(w, s.eventDispatcher, boss.Pos)
		s.spawner.SpawnChest()
		s.spawner.SpawnChest()
	}
	return true
}
