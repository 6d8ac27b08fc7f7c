// internal/input/keyboard.go
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-space-survivor/internal/app"
	"go-space-survivor/internal/component"
	"go-space-survivor/pkg/geom"
)

// Device - источник сырого ввода. В игре это ebiten, в тестах подделка.
type Device interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	MousePressed() bool
	Cursor() (int, int)
	Wheel() float64
}

// Ebiten reads the keyboard and mouse through ebiten. Only valid inside Update.
type Ebiten struct{}

func (Ebiten) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (Ebiten) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (Ebiten) MousePressed() bool            { return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) }
func (Ebiten) Cursor() (int, int)            { return ebiten.CursorPosition() }

func (Ebiten) Wheel() float64 {
	_, dy := ebiten.Wheel()
	return dy
}

var weaponKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// Poll переводит состояние устройства в намерения одного тика.
// Движение и стрельба удерживаются; остальное срабатывает по нажатию.
func Poll(d Device, cam component.Camera) app.Input {
	cx, cy := d.Cursor()
	in := app.Input{
		Up:    d.Pressed(ebiten.KeyW),
		Down:  d.Pressed(ebiten.KeyS),
		Left:  d.Pressed(ebiten.KeyA),
		Right: d.Pressed(ebiten.KeyD),
		Fire:  d.MousePressed(),

		Cursor: cam.ToWorld(geom.V(float64(cx), float64(cy))),

		MenuUp:   d.JustPressed(ebiten.KeyArrowUp),
		MenuDown: d.JustPressed(ebiten.KeyArrowDown),
		Confirm:  d.JustPressed(ebiten.KeyEnter) || d.JustPressed(ebiten.KeySpace),
		Pause:    d.JustPressed(ebiten.KeyEscape),
		Restart:  d.JustPressed(ebiten.KeyR),

		UseItem:   d.JustPressed(ebiten.KeyE),
		OpenChest: d.JustPressed(ebiten.KeyQ),
	}
	for i, k := range weaponKeys {
		if d.JustPressed(k) {
			in.SelectWeapon = i + 1
			break
		}
	}
	switch w := d.Wheel(); {
	case w > 0:
		in.Scroll = 1
	case w < 0:
		in.Scroll = -1
	}
	return in
}
