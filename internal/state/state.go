// internal/state/state.go
package state

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"go-space-survivor/internal/event"
	"go-space-survivor/pkg/logger"
)

// Mode - режим игры. Во всех режимах, кроме Playing, симуляция мира стоит.
type Mode string

const (
	Title       Mode = "title"
	Playing     Mode = "playing"
	Paused      Mode = "paused"
	UpgradeMenu Mode = "upgrade_menu"
	GameOver    Mode = "game_over"
)

// transitions lists the legal moves out of each mode.
var transitions = map[Mode][]Mode{
	Title:       {Playing},
	Playing:     {Paused, UpgradeMenu, GameOver},
	Paused:      {Playing},
	UpgradeMenu: {Playing},
	GameOver:    {Playing},
}

// Hook runs on entering or leaving a mode.
type Hook func(from, to Mode)

// ErrIllegalTransition is wrapped by SetState when a move is not allowed.
var ErrIllegalTransition = errors.New("illegal mode transition")

// StateMachine - машина режимов с таблицей допустимых переходов.
type StateMachine struct {
	current    Mode
	onEnter    map[Mode][]Hook
	onExit     map[Mode][]Hook
	dispatcher *event.Dispatcher
}

// NewStateMachine создаёт машину в режиме initial. dispatcher может быть nil.
func NewStateMachine(initial Mode, dispatcher *event.Dispatcher) *StateMachine {
	return &StateMachine{
		current:    initial,
		onEnter:    make(map[Mode][]Hook),
		onExit:     make(map[Mode][]Hook),
		dispatcher: dispatcher,
	}
}

// Current returns the active mode.
func (sm *StateMachine) Current() Mode {
	return sm.current
}

func (sm *StateMachine) Is(m Mode) bool {
	return sm.current == m
}

// Blocking reports whether the world is frozen in the current mode.
func (sm *StateMachine) Blocking() bool {
	return sm.current != Playing
}

// CanTransition reports whether moving to next is allowed from the current mode.
func (sm *StateMachine) CanTransition(next Mode) bool {
	for _, m := range transitions[sm.current] {
		if m == next {
			return true
		}
	}
	return false
}

// OnEnter registers a hook that runs after the machine enters m.
func (sm *StateMachine) OnEnter(m Mode, h Hook) {
	sm.onEnter[m] = append(sm.onEnter[m], h)
}

// OnExit registers a hook that runs before the machine leaves m.
func (sm *StateMachine) OnExit(m Mode, h Hook) {
	sm.onExit[m] = append(sm.onExit[m], h)
}

// SetState устанавливает новый режим. Недопустимый переход отклоняется,
// логируется и возвращает ошибку; текущий режим при этом не меняется.
func (sm *StateMachine) SetState(next Mode) error {
	from := sm.current
	if !sm.CanTransition(next) {
		logger.Log.WithFields(logrus.Fields{
			"component": "state",
			"from":      from,
			"to":        next,
		}).Warn("Rejected mode transition")
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, next)
	}

	for _, h := range sm.onExit[from] {
		h(from, next)
	}
	sm.current = next
	for _, h := range sm.onEnter[next] {
		h(from, next)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "state",
		"from":      from,
		"to":        next,
	}).Debug("Mode changed")
	if sm.dispatcher != nil {
		sm.dispatcher.Emit(event.ModeChanged, event.ModeChangedData{From: string(from), To: string(next)})
	}
	return nil
}
