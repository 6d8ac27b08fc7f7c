// internal/app/game.go
package app

import (
	"github.com/sirupsen/logrus"

	"go-space-survivor/internal/config"
	"go-space-survivor/internal/entity"
	"go-space-survivor/internal/event"
	"go-space-survivor/internal/state"
	"go-space-survivor/internal/system"
	"go-space-survivor/internal/utils"
	"go-space-survivor/pkg/logger"
)

// Game holds the world, its systems and the mode machine.
type Game struct {
	Config             *config.Config
	World              *entity.World
	EventDispatcher    *event.Dispatcher
	State              *state.StateMachine
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	VisualEffectSystem *system.VisualEffectSystem
	SpawnSystem        *system.SpawnSystem
	PlayerSystem       *system.PlayerSystem
	PickupSystem       *system.PickupSystem
	Rng                *utils.PRNGService

	PauseMenu   *state.Menu
	UpgradeMenu *state.Menu
	Stats       *Stats

	quit bool
}

// NewGame initializes a new game instance on the title screen.
func NewGame(cfg *config.Config) *Game {
	rng := utils.NewPRNGService(cfg.Seed)
	world := entity.NewWorld(cfg, rng)
	eventDispatcher := event.NewDispatcher()

	g := &Game{
		Config:             cfg,
		World:              world,
		EventDispatcher:    eventDispatcher,
		State:              state.NewStateMachine(state.Title, eventDispatcher),
		MovementSystem:     system.NewMovementSystem(world),
		CombatSystem:       system.NewCombatSystem(world, eventDispatcher),
		VisualEffectSystem: system.NewVisualEffectSystem(world),
		SpawnSystem:        system.NewSpawnSystem(world, eventDispatcher),
		PickupSystem:       system.NewPickupSystem(world, eventDispatcher),
		Rng:                rng,
		PauseMenu:          state.NewPauseMenu(),
		UpgradeMenu:        state.NewMenu(),
		Stats:              &Stats{},
	}
	g.PlayerSystem = system.NewPlayerSystem(world, eventDispatcher, g.SpawnSystem)
	g.ProjectileSystem = system.NewProjectileSystem(world, eventDispatcher, g.SpawnSystem, g.PlayerSystem)

	listener := &GameEventListener{game: g}
	eventDispatcher.SubscribeAll(listener, event.All...)

	g.State.OnEnter(state.Paused, func(from, to state.Mode) { g.PauseMenu.Cursor = 0 })
	g.State.OnExit(state.UpgradeMenu, func(from, to state.Mode) { g.UpgradeMenu = state.NewMenu() })

	logger.Log.WithFields(logrus.Fields{
		"component": "game",
		"seed":      rng.Seed(),
	}).Info("Game created")
	return g
}

// Reset starts a new session: fresh world, initial enemies and one chest attempt.
func (g *Game) Reset() {
	g.World.Reset()
	g.PlayerSystem.Reset()
	g.SpawnSystem.Populate()
	*g.Stats = Stats{}
	g.PauseMenu.Cursor = 0
	g.UpgradeMenu = state.NewMenu()

	logger.Log.WithFields(logrus.Fields{
		"component": "game",
		"session":   g.World.Session.String(),
		"walls":     len(g.World.Walls),
		"enemies":   len(g.World.Enemies),
	}).Info("New session")
}

// Mode returns the current game mode.
func (g *Game) Mode() state.Mode {
	return g.State.Current()
}

// QuitRequested reports whether the player chose Exit in the pause menu.
func (g *Game) QuitRequested() bool {
	return g.quit
}

// Step advances the game by one fixed tick.
func (g *Game) Step(in Input) {
	if !g.handleModeInput(in) {
		return
	}
	w := g.World
	w.Tick++
	g.handleGameplayInput(in)

	g.PlayerSystem.Update()
	g.MovementSystem.Update(in.Move())
	g.CombatSystem.PlayerFire(in.Fire, in.Cursor)

	g.MovementSystem.FollowCamera()

	g.CombatSystem.UpdateEnemies()
	g.CombatSystem.UpdateBoss()

	g.ProjectileSystem.Update()
	if w.Player.Dead() {
		g.gameOver()
		return
	}

	g.VisualEffectSystem.Update()
	g.SpawnSystem.Passive()

	if g.PlayerSystem.Resolve() {
		g.openUpgradeMenu()
	}
}

// handleModeInput handles mode switches and menu navigation. It reports
// whether the world should advance this tick.
func (g *Game) handleModeInput(in Input) bool {
	switch g.State.Current() {
	case state.Title:
		if in.Confirm {
			g.Reset()
			g.setMode(state.Playing)
		}
		return false

	case state.Paused:
		switch {
		case in.Pause:
			g.setMode(state.Playing)
		case in.MenuUp:
			g.PauseMenu.Up()
		case in.MenuDown:
			g.PauseMenu.Down()
		case in.Confirm:
			if g.PauseMenu.Selected() == state.PauseExit {
				g.quit = true
				g.log().Info("Quit requested")
				return false
			}
			g.setMode(state.Playing)
		}
		return false

	case state.UpgradeMenu:
		switch {
		case in.MenuUp:
			g.UpgradeMenu.Up()
		case in.MenuDown:
			g.UpgradeMenu.Down()
		case in.Confirm:
			g.PlayerSystem.Choose(g.UpgradeMenu.Cursor)
			g.setMode(state.Playing)
		}
		return false

	case state.GameOver:
		if in.Restart {
			g.Reset()
			g.setMode(state.Playing)
		}
		return false
	}

	if in.Pause {
		g.setMode(state.Paused)
	}
	return !g.State.Blocking()
}

func (g *Game) handleGameplayInput(in Input) {
	p := g.World.Player
	if in.UseItem {
		g.PickupSystem.UseItems()
	}
	if in.OpenChest {
		g.PickupSystem.OpenChests()
	}
	if in.SelectWeapon > 0 {
		p.SelectWeapon(in.SelectWeapon)
	}
	switch {
	case in.Scroll > 0:
		p.CycleWeapon(-1)
	case in.Scroll < 0:
		p.CycleWeapon(1)
	}
}

func (g *Game) openUpgradeMenu() {
	names := make([]string, len(g.PlayerSystem.Options))
	for i, o := range g.PlayerSystem.Options {
		names[i] = o.String()
	}
	g.UpgradeMenu = state.NewMenu(names...)
	g.setMode(state.UpgradeMenu)
}

func (g *Game) gameOver() {
	w := g.World
	g.EventDispatcher.Emit(event.PlayerDied, event.PlayerDiedData{Level: w.Player.Level, Tick: w.Tick})
	g.log().WithFields(logrus.Fields{
		"level": w.Player.Level,
		"tick":  w.Tick,
	}).Info("Game over")
	g.setMode(state.GameOver)
}

// setMode switches modes; the machine logs and rejects illegal moves.
func (g *Game) setMode(m state.Mode) {
	_ = g.State.SetState(m)
}

func (g *Game) log() *logrus.Entry {
	return logger.Log.WithFields(logrus.Fields{
		"component": "game",
		"session":   g.World.Session.String(),
	})
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	l.game.Stats.record(e)
}
