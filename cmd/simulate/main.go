// cmd/simulate/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"go-space-survivor/internal/app"
	"go-space-survivor/internal/autopilot"
	"go-space-survivor/internal/config"
	"go-space-survivor/pkg/logger"
)

// simulate гоняет игру без окна под управлением автопилота и печатает итоги.
func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	seed := flag.Int64("seed", 0, "world seed, 0 for a random one")
	ticks := flag.Uint64("ticks", 36000, "stop after this many ticks, 0 to run until interrupted")
	realtime := flag.Bool("realtime", false, "pace ticks at the configured tick rate")
	restarts := flag.Int("restarts", 0, "how many times the pilot restarts after game over")
	flag.Parse()

	logger.Init()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load config")
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game := app.NewGame(cfg)
	pilot := autopilot.New(cfg.Seed+1, *restarts)
	loop := &app.Loop{
		Game:     game,
		Input:    pilot.Next,
		MaxTicks: *ticks,
	}
	if *realtime {
		loop.TickDuration = cfg.TickDuration()
	}

	started := time.Now()
	err = loop.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Log.WithError(err).Fatal("Simulation failed")
	}

	s := game.Stats
	logger.Log.WithFields(logrus.Fields{
		"session":         game.World.Session.String(),
		"mode":            game.Mode(),
		"tick":            game.World.Tick,
		"level":           game.World.Player.Level,
		"shots_fired":     s.ShotsFired,
		"enemies_killed":  s.EnemiesKilled,
		"bosses_defeated": s.BossesDefeated,
		"items_collected": s.ItemsCollected,
		"explosions":      s.Explosions,
		"levels_gained":   s.LevelsGained,
		"elapsed":         time.Since(started).Round(time.Millisecond),
	}).Info("Simulation finished")
}
