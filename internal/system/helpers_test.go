package system

import (
	"os"
	"testing"

	"go-space-survivor/internal/config"
	"go-space-survivor/internal/entity"
	"go-space-survivor/internal/event"
	"go-space-survivor/internal/utils"
	"go-space-survivor/pkg/logger"
	"go-space-survivor/pkg/tilemap"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

type fixture struct {
	world      *entity.World
	dispatcher *event.Dispatcher
	events     *event.Recorder
	spawner    *SpawnSystem
	players    *PlayerSystem
	combat     *CombatSystem
	bullets    *ProjectileSystem
	pickups    *PickupSystem
	effects    *VisualEffectSystem
}

// newFixture builds a 50×50 world without walls except the given cells.
// The player stands at (816, 816), the middle of cell (25, 25).
func newFixture(t *testing.T, walls ...tilemap.Cell) *fixture {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 7
	cfg.WallProbability = 0
	w := entity.NewWorld(cfg, utils.NewPRNGService(cfg.Seed))
	for _, c := range walls {
		w.Map.Tiles[c.Y][c.X] = tilemap.Wall
	}
	w.Walls = w.Map.Walls()

	d := event.NewDispatcher()
	rec := &event.Recorder{}
	d.SubscribeAll(rec, event.All...)

	f := &fixture{world: w, dispatcher: d, events: rec}
	f.spawner = NewSpawnSystem(w, d)
	f.players = NewPlayerSystem(w, d, f.spawner)
	f.combat = NewCombatSystem(w, d)
	f.bullets = NewProjectileSystem(w, d, f.spawner, f.players)
	f.pickups = NewPickupSystem(w, d)
	f.effects = NewVisualEffectSystem(w)
	return f
}
