// internal/event/types.go
package event

import (
	"go-space-survivor/internal/defs"
	"go-space-survivor/pkg/geom"
)

const (
	ShotFired       EventType = "ShotFired"       // Выстрел (игрок, враг или босс)
	Explosion       EventType = "Explosion"       // Взрыв частиц
	PickupCollected EventType = "PickupCollected" // Предмет подобран
	EnemyKilled     EventType = "EnemyKilled"     // Враг уничтожен
	LevelUp         EventType = "LevelUp"
	BossSpawned     EventType = "BossSpawned"
	BossDefeated    EventType = "BossDefeated"
	PlayerDied      EventType = "PlayerDied"
	ModeChanged     EventType = "ModeChanged"
)

// All lists every event type, in declaration order.
var All = []EventType{ShotFired, Explosion, PickupCollected, EnemyKilled, LevelUp, BossSpawned, BossDefeated, PlayerDied, ModeChanged}

type ShotFiredData struct {
	Owner   defs.Owner
	Weapon  string // empty for enemy and boss shots
	Bullets int
}

type ExplosionData struct {
	Pos geom.Vec
}

type PickupCollectedData struct {
	Item string
	Type defs.ItemType
}

type EnemyKilledData struct {
	Kind defs.EnemyKind
	Pos  geom.Vec
	Exp  int
}

type LevelUpData struct {
	Level int
}

type BossSpawnedData struct {
	Pos    geom.Vec
	Health int
}

type BossDefeatedData struct {
	Exp int
}

type PlayerDiedData struct {
	Level int
	Tick  uint64
}

type ModeChangedData struct {
	From, To string
}
