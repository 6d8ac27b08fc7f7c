// internal/system/spawn.go
package system

import (
	"github.com/sirupsen/logrus"

	"go-space-survivor/internal/component"
	"go-space-survivor/internal/config"
	"go-space-survivor/internal/defs"
	"go-space-survivor/internal/entity"
	"go-space-survivor/internal/event"
	"go-space-survivor/pkg/geom"
)

// SpawnSystem размещает врагов, босса, предметы и сундуки. Места выбираются
// случайными центрами клеток с отбраковкой по стенам и дистанции до игрока.
type SpawnSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewSpawnSystem(world *entity.World, eventDispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{world: world, eventDispatcher: eventDispatcher}
}

// SpawnEnemies fills the enemy list up to MaxEnemies. Nothing spawns while a
// boss is alive. It returns how many enemies were added.
func (s *SpawnSystem) SpawnEnemies() int {
	w := s.world
	spawned := 0
	for attempt := 0; len(w.Enemies) < w.Cfg.MaxEnemies && w.Boss == nil && attempt < w.Cfg.MaxPlacementAttempts; attempt++ {
		pos := w.RandomTileCenter()
		if w.Blocked(pos, config.EnemyBox) || geom.Dist(pos, w.Player.Pos) <= defs.EnemySpawnMinDistance {
			continue
		}
		def := defs.EnemyLibrary[defs.EnemyKinds[w.Rng.Intn(len(defs.EnemyKinds))]]
		e := component.NewEnemy(def, pos, w.Player.Level, w.Rng.IntRange(0, def.FireRate))
		w.Enemies = append(w.Enemies, e)
		spawned++
	}
	if spawned > 0 {
		logEntry(w, "spawn").WithField("count", spawned).Debug("Enemies spawned")
	}
	return spawned
}

// SpawnBoss places the boss far from the player and clears the regular enemies.
// It reports false, leaving the enemies alone, if no valid spot was found
// within the attempt budget.
func (s *SpawnSystem) SpawnBoss() bool {
	w := s.world
	for attempt := 0; attempt < w.Cfg.MaxPlacementAttempts; attempt++ {
		pos := w.RandomTileCenter()
		if w.Blocked(pos, config.BossBox) || geom.Dist(pos, w.Player.Pos) < defs.BossSpawnMinDistance {
			continue
		}
		w.Enemies = nil
		w.Boss = component.NewBoss(pos, w.Player.Level)
		logEntry(w, "spawn").WithFields(logrus.Fields{
			"health": w.Boss.Health,
			"level":  w.Player.Level,
		}).Info("Boss spawned")
		s.eventDispatcher.Emit(event.BossSpawned, event.BossSpawnedData{Pos: pos, Health: w.Boss.Health})
		return true
	}
	logEntry(w, "spawn").Warn("No room for the boss")
	return false
}

// SpawnItem drops one random item from the drop table at pos.
func (s *SpawnSystem) SpawnItem(pos geom.Vec) {
	w := s.world
	def := defs.DropTable[w.Rng.Intn(len(defs.DropTable))]
	w.Items = append(w.Items, component.NewItem(def, pos))
}

// SpawnChest makes a single placement attempt and reports whether a chest was added.
func (s *SpawnSystem) SpawnChest() bool {
	w := s.world
	pos := w.RandomTileCenter()
	if w.Blocked(pos, config.ChestBox) || geom.Dist(pos, w.Player.Pos) <= defs.ChestSpawnMinDistance {
		return false
	}
	pool := defs.ChestPool()
	picks := w.Rng.Sample(len(pool), w.Rng.IntRange(1, defs.MaxChestItems))
	contents := make([]component.Item, 0, len(picks))
	for _, i := range picks {
		contents = append(contents, component.NewItem(pool[i], pos))
	}
	w.Chests = append(w.Chests, component.Chest{Pos: pos, Contents: contents})
	logEntry(w, "spawn").WithField("items", len(contents)).Debug("Chest spawned")
	return true
}

// Passive rolls the per-tick enemy refill and chest spawn.
func (s *SpawnSystem) Passive() {
	w := s.world
	if w.Rng.Chance(w.Cfg.EnemySpawnChance) {
		s.SpawnEnemies()
	}
	if w.Rng.Chance(w.Cfg.ChestSpawnChance) {
		s.SpawnChest()
	}
}

// Populate is the initial fill of a fresh world: enemies plus one chest attempt.
func (s *SpawnSystem) Populate() {
	s.SpawnEnemies()
	s.SpawnChest()
}
