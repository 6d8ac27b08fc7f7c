package system

import (
	"testing"

	"go-space-survivor/internal/component"
	"go-space-survivor/internal/defs"
	"go-space-survivor/internal/event"
	"go-space-survivor/pkg/geom"
)

func TestLevelFiveSpawnsBoss(t *testing.T) {
	f := newFixture(t)
	p := f.world.Player
	p.Level = 4
	p.ExpToNext = 337

	f.players.AwardExp(337)
	if p.Level != 5 {
		t.Fatalf("level = %d", p.Level)
	}
	if f.players.Resolve() {
		t.Error("upgrade menu opened on a boss level")
	}
	if f.world.Boss == nil {
		t.Fatal("boss not spawned")
	}
	if f.world.Boss.Health != 1000 {
		t.Errorf("boss health = %d, want 1000", f.world.Boss.Health)
	}
	if f.events.Count(event.LevelUp) != 1 || f.events.Count(event.BossSpawned) != 1 {
		t.Errorf("events: level %d boss %d", f.events.Count(event.LevelUp), f.events.Count(event.BossSpawned))
	}
}

func TestBossLevelWithActiveBossOffersUpgrade(t *testing.T) {
	f := newFixture(t)
	w := f.world
	w.Boss = component.NewBoss(geom.V(0, 0), 1)
	w.Player.Level = 4
	w.Player.ExpToNext = 337

	f.players.AwardExp(337)
	if !f.players.Resolve() {
		t.Error("expected an upgrade menu while the boss is alive")
	}
	if w.Boss.Health != w.Boss.MaxHealth || f.events.Count(event.BossSpawned) != 0 {
		t.Error("a second boss was spawned")
	}
}

func TestBossWithoutRoomBecomesUpgrade(t *testing.T) {
	f := newFixture(t)
	w := f.world
	w.Cfg.MaxPlacementAttempts = 0
	w.Enemies = []*component.Enemy{component.NewEnemy(defs.EnemyLibrary[defs.KindDrone], geom.V(100, 100), 1, 0)}
	w.Player.Level = 4
	w.Player.ExpToNext = 337

	f.players.AwardExp(337)
	if !f.players.Resolve() {
		t.Fatal("level outcome lost when the boss could not be placed")
	}
	if w.Boss != nil || f.events.Count(event.BossSpawned) != 0 {
		t.Error("boss spawned without room")
	}
	if len(f.players.Options) != component.UpgradeChoices {
		t.Errorf("options = %v", f.players.Options)
	}
	if len(w.Enemies) != 1 {
		t.Errorf("enemies = %d, want the drone kept", len(w.Enemies))
	}
}

func TestUpgradeMenuOptions(t *testing.T) {
	f := newFixture(t)
	f.players.AwardExp(100)
	if !f.players.Resolve() {
		t.Fatal("no menu after level 2")
	}
	opts := f.players.Options
	if len(opts) != component.UpgradeChoices {
		t.Fatalf("options = %v", opts)
	}
	seen := map[component.UpgradeKind]bool{}
	for _, o := range opts {
		if seen[o] {
			t.Errorf("duplicate option %s", o)
		}
		seen[o] = true
	}

	before := *f.world.Player
	if !f.players.Choose(0) {
		t.Fatal("choose failed")
	}
	if f.players.Options != nil {
		t.Error("menu still open after choosing")
	}
	want := component.ApplyUpgrade(opts[0], before)
	got := *f.world.Player
	if got.DamageModifier != want.DamageModifier || got.Speed != want.Speed || got.Armor != want.Armor ||
		got.RegenRate != want.RegenRate || got.MaxHealth != want.MaxHealth {
		t.Errorf("upgrade %s not applied", opts[0])
	}
	if f.players.Choose(0) {
		t.Error("choose accepted with no open menu")
	}
}

func TestQueuedUpgradeMenus(t *testing.T) {
	f := newFixture(t)
	f.players.AwardExp(100 + 150 + 225)

	menus := 0
	for i := 0; i < 10; i++ {
		if f.players.Resolve() {
			menus++
			if f.players.Resolve() {
				t.Fatal("second menu opened while one is open")
			}
			f.players.Choose(1)
		}
	}
	if menus != 3 {
		t.Errorf("menus = %d, want 3", menus)
	}
}

func TestReset(t *testing.T) {
	f := newFixture(t)
	f.players.AwardExp(475)
	f.players.Resolve()
	f.players.Reset()
	if f.players.Options != nil || f.players.Pending() != 0 || f.players.Resolve() {
		t.Error("reset left queued outcomes")
	}
}
