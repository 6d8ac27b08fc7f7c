// internal/app/loop.go
package app

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"go-space-survivor/pkg/logger"
)

// Clock abstracts time so the loop can be driven by tests.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// RealClock is the wall clock.
type RealClock struct{}

func (RealClock) Now() time.Time                         { return time.Now() }
func (RealClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// InputSource produces the input for the next tick.
type InputSource func(g *Game) Input

// Loop steps a Game at a fixed rate on the calling goroutine.
type Loop struct {
	Game  *Game
	Clock Clock
	Input InputSource
	// TickDuration is the fixed timestep; zero runs ticks back to back.
	TickDuration time.Duration
	// MaxTicks stops the loop after that many ticks; zero means no limit.
	MaxTicks uint64
	// OnTick, if set, runs after every step.
	OnTick func(g *Game)
}

// maxLag bounds how far the schedule may fall behind before it is reset
// instead of catching up with a burst of ticks.
const maxLag = 5

// Run steps the game until ctx is cancelled, the game requests quit or
// MaxTicks is reached. Only cancellation returns an error.
func (l *Loop) Run(ctx context.Context) error {
	clock := l.Clock
	if clock == nil {
		clock = RealClock{}
	}
	input := l.Input
	if input == nil {
		input = func(*Game) Input { return Input{} }
	}

	log := logger.Log.WithFields(logrus.Fields{"component": "loop", "tick_duration": l.TickDuration})
	log.Debug("Loop started")

	var ticks uint64
	next := clock.Now()
	for {
		if err := ctx.Err(); err != nil {
			log.WithField("ticks", ticks).Info("Loop cancelled")
			return err
		}

		l.Game.Step(input(l.Game))
		ticks++
		if l.OnTick != nil {
			l.OnTick(l.Game)
		}
		if l.Game.QuitRequested() {
			log.WithField("ticks", ticks).Info("Loop stopped: quit requested")
			return nil
		}
		if l.MaxTicks > 0 && ticks >= l.MaxTicks {
			log.WithField("ticks", ticks).Debug("Loop stopped: tick limit")
			return nil
		}

		if l.TickDuration <= 0 {
			continue
		}
		next = next.Add(l.TickDuration)
		wait := next.Sub(clock.Now())
		if wait <= -maxLag*l.TickDuration {
			next = clock.Now()
			continue
		}
		if wait <= 0 {
			continue
		}
		select {
		case <-ctx.Done():
			log.WithField("ticks", ticks).Info("Loop cancelled")
			return ctx.Err()
		case <-clock.After(wait):
		}
	}
}
