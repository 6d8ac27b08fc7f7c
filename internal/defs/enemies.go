// internal/defs/enemies.go
package defs

// EnemyKind identifies an enemy type.
type EnemyKind string

const (
	KindDrone EnemyKind = "drone"
	KindTank  EnemyKind = "tank"
)

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	Kind     EnemyKind
	Behavior Behavior
	Health   int
	Speed    float64
	Damage   int
	FireRate int // ticks between shots
	// ExpReward = ExpBase + ExpPerLevel × player level.
	ExpBase     int
	ExpPerLevel int
}

// EnemyLibrary is keyed by kind.
var EnemyLibrary = map[EnemyKind]EnemyDefinition{
	KindDrone: {Kind: KindDrone, Behavior: BehaviorRanged, Health: 80, Speed: 2.5, Damage: 10, FireRate: 60, ExpBase: 50, ExpPerLevel: 10},
	KindTank:  {Kind: KindTank, Behavior: BehaviorCharge, Health: 150, Speed: 1.8, Damage: 20, FireRate: 90, ExpBase: 100, ExpPerLevel: 20},
}

// EnemyKinds is the spawn order used for uniform kind selection.
var EnemyKinds = []EnemyKind{KindDrone, KindTank}

// Per-level bonuses applied at spawn time.
const (
	EnemyHealthPerLevel = 20

	BossBaseHealth     = 500
	BossHealthPerLevel = 100
	BossSpeed          = 1.5
	BossDamage         = 30
	BossFireRate       = 30
	BossExpBase        = 500
	BossExpPerLevel    = 100
	BossLevelInterval  = 5
)

// Pathing and engagement tuning, px and ticks.
const (
	EnemyRepathChance   = 0.05
	EnemyRepathCooldown = 30
	BossRepathChance    = 0.10
	BossRepathCooldown  = 20
	WaypointReached     = 5.0

	RangedHoldDistance = 200.0
	EnemyFireRange     = 400.0
	BossFireRange      = 500.0
	EnemyBulletSpeed   = 8.0

	EnemySpawnMinDistance = 300.0
	BossSpawnMinDistance  = 500.0
	ChestSpawnMinDistance = 200.0
)
