// internal/autopilot/pilot.go
package autopilot

import (
	"math"

	"go-space-survivor/internal/app"
	"go-space-survivor/internal/defs"
	"go-space-survivor/internal/state"
	"go-space-survivor/internal/utils"
	"go-space-survivor/pkg/geom"
)

const (
	// FireRange - дистанция, с которой пилот открывает огонь.
	FireRange      = defs.EnemyFireRange
	retreatRange   = 120.0
	deadZone       = 4.0
	axisThreshold  = 0.3
	wanderInterval = 90
	wanderLength   = 100.0
)

// Pilot - безголовый источник ввода: ведёт игрока без окна, для симуляций
// и нагрузочных прогонов. Использует свой генератор, чтобы не сдвигать
// случайную последовательность мира.
type Pilot struct {
	// Restarts - сколько раз пилот начнёт заново после поражения.
	Restarts int

	rng      *utils.PRNGService
	wander   geom.Vec
	ticks    int
	upgrades int
}

func New(seed int64, restarts int) *Pilot {
	return &Pilot{Restarts: restarts, rng: utils.NewPRNGService(seed)}
}

// Next returns the input for the next tick. It matches app.InputSource.
func (p *Pilot) Next(g *app.Game) app.Input {
	switch g.Mode() {
	case state.Title:
		return app.Input{Confirm: true}
	case state.Paused:
		return app.Input{Pause: true}
	case state.UpgradeMenu:
		return p.pickUpgrade(g)
	case state.GameOver:
		if p.Restarts > 0 {
			p.Restarts--
			return app.Input{Restart: true}
		}
		return app.Input{}
	}
	return p.play(g)
}

// pickUpgrade cycles through the offered options across menus so every
// upgrade kind gets exercised.
func (p *Pilot) pickUpgrade(g *app.Game) app.Input {
	n := len(g.UpgradeMenu.Options)
	if n == 0 {
		return app.Input{Confirm: true}
	}
	if g.UpgradeMenu.Cursor != p.upgrades%n {
		return app.Input{MenuDown: true}
	}
	p.upgrades++
	return app.Input{Confirm: true}
}

func (p *Pilot) play(g *app.Game) app.Input {
	w := g.World
	pos := w.Player.Pos
	p.ticks++

	var in app.Input
	target, dist, ok := nearestHostile(g)
	if ok && dist < FireRange {
		in.Fire = true
		in.Cursor = target
	}

	goal, goalDist, hasGoal := nearestPickup(g)
	var dir geom.Vec
	switch {
	case ok && dist < retreatRange:
		dir = pos.Sub(target)
	case hasGoal:
		dir = goal.Sub(pos)
		if goalDist < w.Cfg.TileSize {
			in.UseItem = true
			in.OpenChest = true
		}
	case ok:
		dir = target.Sub(pos)
	default:
		if p.ticks%wanderInterval == 1 {
			p.wander = geom.FromAngle(p.rng.Uniform(0, 2*math.Pi), wanderLength)
		}
		dir = p.wander
	}
	steer(&in, dir)

	if p.ticks%wanderInterval == 0 {
		in.Scroll = 1
	}
	return in
}

// steer presses the direction keys closest to dir. Short vectors are ignored
// so the player does not jitter on top of its goal.
func steer(in *app.Input, dir geom.Vec) {
	l := dir.Len()
	if l < deadZone {
		return
	}
	u := dir.Scale(1 / l)
	in.Up, in.Down = u.Y < -axisThreshold, u.Y > axisThreshold
	in.Left, in.Right = u.X < -axisThreshold, u.X > axisThreshold
}

func nearestHostile(g *app.Game) (geom.Vec, float64, bool) {
	w := g.World
	best, bestDist, found := geom.Vec{}, math.Inf(1), false
	for _, e := range w.Enemies {
		if d := geom.Dist(e.Pos, w.Player.Pos); d < bestDist {
			best, bestDist, found = e.Pos, d, true
		}
	}
	if w.Boss != nil {
		if d := geom.Dist(w.Boss.Pos, w.Player.Pos); d < bestDist {
			best, bestDist, found = w.Boss.Pos, d, true
		}
	}
	return best, bestDist, found
}

func nearestPickup(g *app.Game) (geom.Vec, float64, bool) {
	w := g.World
	best, bestDist, found := geom.Vec{}, math.Inf(1), false
	for _, it := range w.Items {
		if d := geom.Dist(it.Pos, w.Player.Pos); d < bestDist {
			best, bestDist, found = it.Pos, d, true
		}
	}
	for _, c := range w.Chests {
		if d := geom.Dist(c.Pos, w.Player.Pos); d < bestDist {
			best, bestDist, found = c.Pos, d, true
		}
	}
	return best, bestDist, found
}
