package component

import (
	"math"
	"testing"

	"go-space-survivor/internal/defs"
	"go-space-survivor/pkg/geom"
	"go-space-survivor/pkg/tilemap"
)

func TestNewEnemyScalesWithLevel(t *testing.T) {
	e := NewEnemy(defs.EnemyLibrary[defs.KindDrone], geom.V(0, 0), 2, 0)
	if e.Health != 120 || e.MaxHealth != 120 {
		t.Errorf("health = %d/%d, want 120", e.Health, e.MaxHealth)
	}
	if got := e.ExpReward(2); got != 70 {
		t.Errorf("exp reward = %d, want 70", got)
	}
}

func TestEnemyTakeDamage(t *testing.T) {
	e := NewEnemy(defs.EnemyLibrary[defs.KindDrone], geom.V(0, 0), 1, 0)
	if e.TakeDamage(50) {
		t.Fatal("enemy destroyed too early")
	}
	if !e.TakeDamage(50) {
		t.Error("enemy with 0 health should be destroyed")
	}
}

func TestEnemyFollowsPath(t *testing.T) {
	nav := &stubNav{path: []tilemap.Cell{{X: 3, Y: 1}}}
	e := NewEnemy(defs.EnemyLibrary[defs.KindDrone], geom.V(48, 48), 1, 0)

	e.MoveToward(geom.V(112, 48), nav, stubRand{f: 0})
	if nav.calls != 1 {
		t.Fatalf("FindPath calls = %d, want 1", nav.calls)
	}
	if math.Abs(e.Pos.X-50.5) > 1e-9 || e.Pos.Y != 48 {
		t.Errorf("pos = %v, want (50.5, 48)", e.Pos)
	}
	if e.PathTimer != defs.EnemyRepathCooldown {
		t.Errorf("PathTimer = %d", e.PathTimer)
	}

	e.MoveToward(geom.V(112, 48), nav, stubRand{f: 0})
	if nav.calls != 1 {
		t.Errorf("repathed while the cached path was fresh")
	}
}

func TestEnemyPopsReachedWaypoint(t *testing.T) {
	nav := &stubNav{}
	e := NewEnemy(defs.EnemyLibrary[defs.KindDrone], geom.V(110, 48), 1, 0)
	e.Path = []tilemap.Cell{{X: 3, Y: 1}, {X: 4, Y: 1}}
	e.PathTimer = 10

	e.MoveToward(geom.V(200, 48), nav, stubRand{f: 1})
	if len(e.Path) != 1 || e.Path[0] != (tilemap.Cell{X: 4, Y: 1}) {
		t.Errorf("path = %v, want first waypoint popped", e.Path)
	}
	if e.Pos != geom.V(110, 48) {
		t.Errorf("enemy moved while popping a waypoint: %v", e.Pos)
	}
}

func TestChargeFallbackWithoutPath(t *testing.T) {
	nav := &stubNav{}
	tank := NewEnemy(defs.EnemyLibrary[defs.KindTank], geom.V(0, 0), 1, 0)
	drone := NewEnemy(defs.EnemyLibrary[defs.KindDrone], geom.V(0, 0), 1, 0)

	tank.MoveToward(geom.V(100, 0), nav, stubRand{f: 1})
	drone.MoveToward(geom.V(100, 0), nav, stubRand{f: 1})

	if math.Abs(tank.Pos.X-1.8) > 1e-9 {
		t.Errorf("tank x = %f, want 1.8", tank.Pos.X)
	}
	if drone.Pos != geom.V(0, 0) {
		t.Errorf("drone moved without a path: %v", drone.Pos)
	}
	if nav.calls != 0 {
		t.Errorf("repath attempted despite failed roll")
	}
}

func TestEnemyShootAims(t *testing.T) {
	e := NewEnemy(defs.EnemyLibrary[defs.KindDrone], geom.V(0, 0), 1, 0)
	b := e.Shoot(geom.V(0, -50))
	if b.Owner != defs.OwnerEnemy || b.Damage != 10 {
		t.Errorf("bullet = %+v", b)
	}
	if math.Abs(b.Vel.Y+defs.EnemyBulletSpeed) > 1e-9 || math.Abs(b.Vel.X) > 1e-9 {
		t.Errorf("velocity = %v", b.Vel)
	}
}

func TestBossHealthAtLevel(t *testing.T) {
	b := NewBoss(geom.V(0, 0), 3)
	if b.Health != 800 {
		t.Errorf("boss health = %d, want 800", b.Health)
	}
	if got := b.ExpReward(3); got != 800 {
		t.Errorf("boss exp = %d, want 800", got)
	}
}

func TestBossAlternatesAttacks(t *testing.T) {
	b := NewBoss(geom.V(0, 0), 1)
	target := geom.V(100, 0)

	fan := b.Shoot(target)
	if len(fan) != 5 {
		t.Fatalf("fan has %d bullets, want 5", len(fan))
	}
	for i, bl := range fan {
		want := float64(i-2) * 0.2
		if a := math.Atan2(bl.Vel.Y, bl.Vel.X); math.Abs(a-want) > 1e-9 {
			t.Errorf("bullet %d angle = %f, want %f", i, a, want)
		}
		if math.Abs(bl.Vel.Len()-6) > 1e-9 || bl.Damage != defs.BossDamage {
			t.Errorf("bullet %d: speed %f damage %d", i, bl.Vel.Len(), bl.Damage)
		}
	}

	snipe := b.Shoot(target)
	if len(snipe) != 1 {
		t.Fatalf("second attack has %d bullets, want 1", len(snipe))
	}
	if math.Abs(snipe[0].Vel.Len()-10) > 1e-9 || snipe[0].Damage != defs.BossDamage/2 {
		t.Errorf("sniper shot: speed %f damage %d", snipe[0].Vel.Len(), snipe[0].Damage)
	}

	if again := b.Shoot(target); len(again) != 5 {
		t.Errorf("third attack has %d bullets, want the fan again", len(again))
	}
}

func TestBossDoesNotChargeWithoutPath(t *testing.T) {
	b := NewBoss(geom.V(0, 0), 1)
	b.MoveToward(geom.V(100, 0), &stubNav{}, stubRand{f: 0})
	if b.Pos != geom.V(0, 0) {
		t.Errorf("boss moved without a path: %v", b.Pos)
	}
}

func TestCameraFollow(t *testing.T) {
	var c Camera
	c.Follow(geom.V(1000, 700), 800, 600)
	if c.Offset != geom.V(600, 400) {
		t.Errorf("offset = %v", c.Offset)
	}
	if got := c.ToScreen(geom.V(1000, 700)); got != geom.V(400, 300) {
		t.Errorf("player on screen at %v, want center", got)
	}
	if got := c.ToWorld(geom.V(400, 300)); got != geom.V(1000, 700) {
		t.Errorf("ToWorld = %v", got)
	}
}

func TestParticleLifetime(t *testing.T) {
	p := Particle{Vel: geom.V(1, 0), Lifetime: 2, Size: 4}
	if !p.Update() {
		t.Fatal("particle died after one tick")
	}
	if p.Update() {
		t.Error("particle should die when lifetime runs out")
	}
	if p.Pos.X != 2 || math.Abs(p.Size-4*0.95*0.95) > 1e-9 {
		t.Errorf("pos %v size %f", p.Pos, p.Size)
	}
}
