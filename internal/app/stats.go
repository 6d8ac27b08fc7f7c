// internal/app/stats.go
package app

import (
	"go-space-survivor/internal/defs"
	"go-space-survivor/internal/event"
)

// Stats counts what happened during the current session.
type Stats struct {
	ShotsFired     int
	EnemiesKilled  int
	BossesDefeated int
	ItemsCollected int
	Explosions     int
	LevelsGained   int
}

func (s *Stats) record(e event.Event) {
	switch e.Type {
	case event.ShotFired:
		if d, ok := e.Data.(event.ShotFiredData); ok && d.Owner == defs.OwnerPlayer {
			s.ShotsFired++
		}
	case event.EnemyKilled:
		s.EnemiesKilled++
	case event.BossDefeated:
		s.BossesDefeated++
	case event.PickupCollected:
		s.ItemsCollected++
	case event.Explosion:
		s.Explosions++
	case event.LevelUp:
		s.LevelsGained++
	}
}
