// cmd/game/main.go
package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"go-space-survivor/internal/app"
	"go-space-survivor/internal/config"
	"go-space-survivor/internal/input"
	"go-space-survivor/internal/state"
	"go-space-survivor/internal/ui"
	"go-space-survivor/pkg/geom"
	"go-space-survivor/pkg/logger"
	"go-space-survivor/pkg/render"
)

// AppGame связывает симуляцию с окном ebiten: Update делает один тик, Draw рисует кадр.
type AppGame struct {
	game   *app.Game
	world  *render.WorldRenderer
	hud    *ui.HUD
	menus  *ui.MenuRenderer
	cursor geom.Vec
	cfg    *config.Config
}

func (a *AppGame) Update() error {
	in := input.Poll(input.Ebiten{}, a.game.World.Camera)
	a.cursor = in.Cursor
	a.game.Step(in)
	if a.game.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	if a.game.State.Is(state.Title) {
		a.menus.DrawTitle(screen)
		return
	}
	snap := a.game.Snapshot()
	a.world.Draw(screen, &snap)
	if snap.Mode == state.Playing {
		a.world.DrawAimLine(screen, &snap, a.cursor)
	}
	a.hud.Draw(screen, &snap)

	switch snap.Mode {
	case state.Paused:
		a.menus.DrawPause(screen, &snap)
	case state.UpgradeMenu:
		a.menus.DrawUpgrade(screen, &snap)
	case state.GameOver:
		a.menus.DrawGameOver(screen, &snap)
	}
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.ScreenWidth, a.cfg.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	seed := flag.Int64("seed", 0, "world seed, 0 for a random one")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	flag.Parse()

	logger.Init()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load config")
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	if *pprofAddr != "" {
		go func() {
			logger.Log.WithError(http.ListenAndServe(*pprofAddr, nil)).Warn("pprof server stopped")
		}()
	}

	a := &AppGame{
		game:  app.NewGame(cfg),
		world: render.NewWorldRenderer(cfg.ScreenWidth, cfg.ScreenHeight),
		hud:   ui.NewHUD(cfg.ScreenWidth, cfg.ScreenHeight),
		menus: ui.NewMenuRenderer(cfg.ScreenWidth, cfg.ScreenHeight),
		cfg:   cfg,
	}

	logger.Log.WithFields(logrus.Fields{
		"tps":    cfg.TickRate,
		"width":  cfg.ScreenWidth,
		"height": cfg.ScreenHeight,
	}).Info("Starting window")

	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Space Survivor")
	if err := ebiten.RunGame(a); err != nil {
		logger.Log.WithError(err).Fatal("Game stopped with error")
	}
}
