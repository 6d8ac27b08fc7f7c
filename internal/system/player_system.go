// internal/system/player_system.go
package system

import (
	"github.com/sirupsen/logrus"

	"go-space-survivor/internal/component"
	"go-space-survivor/internal/defs"
	"go-space-survivor/internal/entity"
	"go-space-survivor/internal/event"
)

// PlayerSystem отвечает за прогресс игрока: опыт, уровни, меню улучшений и
// появление босса. Исходы повышений копятся и разрешаются в конце тика.
type PlayerSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	spawner         *SpawnSystem

	pendingBoss     bool
	pendingUpgrades int
	Options         []component.UpgradeKind // варианты открытого меню, nil если меню закрыто
}

func NewPlayerSystem(world *entity.World, eventDispatcher *event.Dispatcher, spawner *SpawnSystem) *PlayerSystem {
	return &PlayerSystem{world: world, eventDispatcher: eventDispatcher, spawner: spawner}
}

// Update ticks regeneration and the temporary health boost.
func (s *PlayerSystem) Update() {
	s.world.Player.Update()
}

// AwardExp grants experience and queues the outcome of every level reached:
// a boss on multiples of BossLevelInterval when none is alive or queued,
// an upgrade menu otherwise.
func (s *PlayerSystem) AwardExp(amount int) {
	w := s.world
	for _, level := range w.Player.GainExp(amount) {
		s.eventDispatcher.Emit(event.LevelUp, event.LevelUpData{Level: level})
		bossLevel := level%defs.BossLevelInterval == 0 && w.Boss == nil && !s.pendingBoss
		if bossLevel {
			s.pendingBoss = true
		} else {
			s.pendingUpgrades++
		}
		logEntry(w, "player").WithFields(logrus.Fields{
			"level":    level,
			"boss":     bossLevel,
			"exp_next": w.Player.ExpToNext,
		}).Info("Level up")
	}
}

// Resolve applies queued level outcomes. It spawns a pending boss and reports
// whether an upgrade menu was opened; only one menu is open at a time.
// A boss that finds no room turns into an ordinary upgrade.
func (s *PlayerSystem) Resolve() bool {
	if s.pendingBoss {
		s.pendingBoss = false
		if !s.spawner.SpawnBoss() {
			s.pendingUpgrades++
		}
	}
	if s.pendingUpgrades == 0 || s.Options != nil {
		return false
	}
	s.pendingUpgrades--
	s.Options = s.rollOptions()
	return true
}

func (s *PlayerSystem) rollOptions() []component.UpgradeKind {
	picks := s.world.Rng.Sample(len(component.UpgradePool), component.UpgradeChoices)
	options := make([]component.UpgradeKind, len(picks))
	for i, idx := range picks {
		options[i] = component.UpgradePool[idx]
	}
	return options
}

// Choose applies option i of the open menu and closes it.
func (s *PlayerSystem) Choose(i int) bool {
	if i < 0 || i >= len(s.Options) {
		return false
	}
	kind := s.Options[i]
	*s.world.Player = component.ApplyUpgrade(kind, *s.world.Player)
	s.Options = nil
	logEntry(s.world, "player").WithField("upgrade", kind.String()).Info("Upgrade applied")
	return true
}

// Pending reports how many upgrade menus are still queued, the open one excluded.
func (s *PlayerSystem) Pending() int {
	return s.pendingUpgrades
}

// Reset drops every queued outcome.
func (s *PlayerSystem) Reset() {
	s.pendingBoss = false
	s.pendingUpgrades = 0
	s.Options = nil
}
