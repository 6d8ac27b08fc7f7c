package system

import (
	"testing"

	"go-space-survivor/internal/component"
	"go-space-survivor/internal/defs"
	"go-space-survivor/internal/event"
	"go-space-survivor/pkg/geom"
)

func TestRangedEnemyHoldsDistanceAndFires(t *testing.T) {
	f := newFixture(t)
	w := f.world
	drone := component.NewEnemy(defs.EnemyLibrary[defs.KindDrone], geom.V(966, 816), 1, 0)
	w.Enemies = []*component.Enemy{drone}

	f.combat.UpdateEnemies()
	if drone.Pos != geom.V(966, 816) {
		t.Errorf("drone within hold distance moved to %v", drone.Pos)
	}
	if len(w.Bullets) != 1 {
		t.Fatalf("bullets = %d, want 1", len(w.Bullets))
	}
	if b := w.Bullets[0]; b.Owner != defs.OwnerEnemy || b.Vel.X >= 0 {
		t.Errorf("bullet = %+v", b)
	}
	if drone.FireTimer != drone.FireRate {
		t.Errorf("FireTimer = %d", drone.FireTimer)
	}
	if f.events.Count(event.ShotFired) != 1 {
		t.Error("no ShotFired event")
	}
}

func TestRangedEnemyOutOfRangeCountsDown(t *testing.T) {
	f := newFixture(t)
	w := f.world
	drone := component.NewEnemy(defs.EnemyLibrary[defs.KindDrone], geom.V(1300, 816), 1, 5)
	w.Enemies = []*component.Enemy{drone}

	f.combat.UpdateEnemies()
	if len(w.Bullets) != 0 {
		t.Error("fired out of range")
	}
	if drone.FireTimer != 4 {
		t.Errorf("FireTimer = %d, want 4", drone.FireTimer)
	}
}

func TestChargeContactDamage(t *testing.T) {
	f := newFixture(t)
	w := f.world
	tank := component.NewEnemy(defs.EnemyLibrary[defs.KindTank], geom.V(826, 816), 1, 0)
	w.Enemies = []*component.Enemy{tank}

	f.combat.UpdateEnemies()
	if w.Player.Health != 80 {
		t.Fatalf("health = %d, want 80", w.Player.Health)
	}
	for i := 0; i < tank.FireRate-1; i++ {
		f.combat.UpdateEnemies()
	}
	if w.Player.Health != 80 {
		t.Errorf("contact hit landed during cooldown: health %d", w.Player.Health)
	}
	f.combat.UpdateEnemies()
	if w.Player.Health != 60 {
		t.Errorf("health = %d after cooldown, want 60", w.Player.Health)
	}
}

func TestContactDamageDisabled(t *testing.T) {
	f := newFixture(t)
	w := f.world
	w.Cfg.ContactDamage = false
	w.Enemies = []*component.Enemy{component.NewEnemy(defs.EnemyLibrary[defs.KindTank], geom.V(826, 816), 1, 0)}

	f.combat.UpdateEnemies()
	if w.Player.Health != 100 {
		t.Errorf("health = %d", w.Player.Health)
	}
}

func TestBossFiresInRange(t *testing.T) {
	f := newFixture(t)
	w := f.world
	w.Boss = component.NewBoss(geom.V(900, 816), 1)

	f.combat.UpdateBoss()
	if len(w.Bullets) != 5 {
		t.Fatalf("bullets = %d, want 5", len(w.Bullets))
	}
	if w.Boss.FireTimer != defs.BossFireRate || w.Boss.AttackPhase != 1 {
		t.Errorf("timer %d phase %d", w.Boss.FireTimer, w.Boss.AttackPhase)
	}
	f.combat.UpdateBoss()
	if len(w.Bullets) != 5 || w.Boss.FireTimer != defs.BossFireRate-1 {
		t.Errorf("boss fired during cooldown")
	}
}

func TestPlayerFire(t *testing.T) {
	f := newFixture(t)
	w := f.world
	f.combat.PlayerFire(true, geom.V(900, 816))
	if len(w.Bullets) != 1 {
		t.Fatalf("bullets = %d", len(w.Bullets))
	}
	if f.events.Count(event.ShotFired) != 1 {
		t.Fatal("no ShotFired event")
	}
	data := f.events.Events[0].Data.(event.ShotFiredData)
	if data.Weapon != "Pistol" || data.Owner != defs.OwnerPlayer {
		t.Errorf("event = %+v", data)
	}

	f.combat.PlayerFire(false, geom.V(900, 816))
	if len(w.Bullets) != 1 {
		t.Error("fired without the button held")
	}
}
