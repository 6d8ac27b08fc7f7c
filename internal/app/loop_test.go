package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-space-survivor/internal/config"
)

type fakeClock struct {
	now   time.Time
	waits []time.Duration
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.waits = append(c.waits, d)
	c.now = c.now.Add(d)
	ch := make(chan time.Time, 1)
	ch <- c.now
	return ch
}

func TestLoopFixedTimestep(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	ticks := 0
	l := &Loop{
		Game:         NewGame(config.Default()),
		Clock:        clock,
		TickDuration: time.Second / 60,
		MaxTicks:     10,
		OnTick:       func(*Game) { ticks++ },
	}
	if err := l.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if ticks != 10 {
		t.Errorf("ticks = %d", ticks)
	}
	// The last tick returns before waiting.
	if len(clock.waits) != 9 {
		t.Fatalf("waits = %d", len(clock.waits))
	}
	for _, d := range clock.waits {
		if d != time.Second/60 {
			t.Errorf("waited %v", d)
		}
	}
}

func TestLoopStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ticks := 0
	l := &Loop{
		Game:  NewGame(config.Default()),
		Clock: &fakeClock{},
		OnTick: func(*Game) {
			ticks++
			if ticks == 3 {
				cancel()
			}
		},
	}
	err := l.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if ticks != 3 {
		t.Errorf("ticks = %d", ticks)
	}
}

func TestLoopStopsOnQuit(t *testing.T) {
	script := []Input{
		{Confirm: true},
		{Pause: true},
		{MenuDown: true},
		{Confirm: true},
	}
	step := 0
	l := &Loop{
		Game:  NewGame(config.Default()),
		Clock: &fakeClock{},
		Input: func(*Game) Input {
			in := Input{}
			if step < len(script) {
				in = script[step]
			}
			step++
			return in
		},
		MaxTicks: 100,
	}
	if err := l.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if step != len(script) {
		t.Errorf("loop ran %d ticks, want %d", step, len(script))
	}
	if !l.Game.QuitRequested() {
		t.Error("quit not requested")
	}
}
