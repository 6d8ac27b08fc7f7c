// internal/app/input.go
package app

import (
	"go-space-survivor/internal/component"
	"go-space-survivor/pkg/geom"
)

// Input - намерения игрока за один тик. Заполняется адаптером ввода
// (окно или автопилот) и отбрасывается после тика.
type Input struct {
	Up, Down, Left, Right bool
	Fire                  bool
	Cursor                geom.Vec // world space

	MenuUp, MenuDown bool
	Confirm          bool
	Pause            bool
	Restart          bool

	UseItem      bool
	OpenChest    bool
	SelectWeapon int // 1-based, 0 = none
	Scroll       int // >0 up, <0 down
}

// Move returns the directional part of the input.
func (in Input) Move() component.MoveIntent {
	return component.MoveIntent{Up: in.Up, Down: in.Down, Left: in.Left, Right: in.Right}
}
